package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packageIncoming/project-locus-prototype/internal/api/shared"
	"github.com/packageIncoming/project-locus-prototype/internal/domain"
	"github.com/packageIncoming/project-locus-prototype/internal/service/card_review"
	"github.com/packageIncoming/project-locus-prototype/internal/store"
)

// fakeCardStore stubs the store.CardStore methods the handlers call.
type fakeCardStore struct {
	store.CardStore

	card        *domain.Flashcard
	cards       []*domain.Flashcard
	getOwnedErr error
	createErr   error
	createdCard *domain.Flashcard
	listErr     error
	updateErr   error
	deleteErr   error
}

func (f *fakeCardStore) Create(ctx context.Context, card *domain.Flashcard) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.createdCard = card
	return nil
}

func (f *fakeCardStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Flashcard, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.cards, nil
}

func (f *fakeCardStore) GetOwned(ctx context.Context, id, userID uuid.UUID) (*domain.Flashcard, error) {
	if f.getOwnedErr != nil {
		return nil, f.getOwnedErr
	}
	return f.card, nil
}

func (f *fakeCardStore) ListByNote(ctx context.Context, noteID uuid.UUID) ([]*domain.Flashcard, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.cards, nil
}

func (f *fakeCardStore) Update(ctx context.Context, card *domain.Flashcard) error {
	return f.updateErr
}

func (f *fakeCardStore) Delete(ctx context.Context, id uuid.UUID) error {
	return f.deleteErr
}

// fakeNoteStore stubs the store.NoteStore methods the handlers call.
type fakeNoteStore struct {
	store.NoteStore

	note        *domain.Note
	notes       []*domain.Note
	getOwnedErr error
	createErr   error
	listErr     error
	updateErr   error
	deleteErr   error
}

func (f *fakeNoteStore) GetOwned(ctx context.Context, id, userID uuid.UUID) (*domain.Note, error) {
	if f.getOwnedErr != nil {
		return nil, f.getOwnedErr
	}
	return f.note, nil
}

func (f *fakeNoteStore) Create(ctx context.Context, note *domain.Note) error {
	return f.createErr
}

func (f *fakeNoteStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Note, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.notes, nil
}

func (f *fakeNoteStore) Update(ctx context.Context, note *domain.Note) error {
	return f.updateErr
}

func (f *fakeNoteStore) Delete(ctx context.Context, id uuid.UUID) error {
	return f.deleteErr
}

// fakeReviewService stubs card_review.CardReviewService.
type fakeReviewService struct {
	card    *domain.Flashcard
	nextErr error
	submit  func(userID, cardID uuid.UUID, quality domain.ReviewQuality) (*domain.Flashcard, error)
}

func (f *fakeReviewService) GetNextCard(ctx context.Context, userID uuid.UUID) (*domain.Flashcard, error) {
	if f.nextErr != nil {
		return nil, f.nextErr
	}
	return f.card, nil
}

func (f *fakeReviewService) SubmitReview(
	ctx context.Context,
	userID uuid.UUID,
	cardID uuid.UUID,
	quality domain.ReviewQuality,
) (*domain.Flashcard, error) {
	return f.submit(userID, cardID, quality)
}

// newAuthedRequest builds a request carrying an authenticated user ID and an
// optional chi path parameter, the way the router and middleware would.
func newAuthedRequest(
	t *testing.T,
	method, target string,
	body string,
	userID uuid.UUID,
	pathParams map[string]string,
) *http.Request {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := context.WithValue(req.Context(), shared.UserIDContextKey, userID)

	if len(pathParams) > 0 {
		routeCtx := chi.NewRouteContext()
		for key, value := range pathParams {
			routeCtx.URLParams.Add(key, value)
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, routeCtx)
	}

	return req.WithContext(ctx)
}

func newStoredCard(t *testing.T, userID uuid.UUID) *domain.Flashcard {
	t.Helper()
	card, err := domain.NewFlashcard(userID, uuid.New(), "What is DNA?", "Deoxyribonucleic acid")
	require.NoError(t, err)
	return card
}

func TestCardHandlerGetCard(t *testing.T) {
	t.Parallel()
	userID := uuid.New()
	card := newStoredCard(t, userID)

	t.Run("returns the card", func(t *testing.T) {
		t.Parallel()
		handler := NewCardHandler(&fakeCardStore{card: card}, &fakeNoteStore{}, &fakeReviewService{}, nil)

		req := newAuthedRequest(t, http.MethodGet, "/flashcards/"+card.ID.String(), "", userID,
			map[string]string{"id": card.ID.String()})
		rec := httptest.NewRecorder()
		handler.GetCard(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp FlashcardResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, card.ID, resp.ID)
		assert.Equal(t, card.Front, resp.Front)
	})

	t.Run("404 when the card is not owned", func(t *testing.T) {
		t.Parallel()
		handler := NewCardHandler(&fakeCardStore{getOwnedErr: store.ErrCardNotFound}, &fakeNoteStore{}, &fakeReviewService{}, nil)

		req := newAuthedRequest(t, http.MethodGet, "/flashcards/"+card.ID.String(), "", userID,
			map[string]string{"id": card.ID.String()})
		rec := httptest.NewRecorder()
		handler.GetCard(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("400 for a malformed id", func(t *testing.T) {
		t.Parallel()
		handler := NewCardHandler(&fakeCardStore{card: card}, &fakeNoteStore{}, &fakeReviewService{}, nil)

		req := newAuthedRequest(t, http.MethodGet, "/flashcards/not-a-uuid", "", userID,
			map[string]string{"id": "not-a-uuid"})
		rec := httptest.NewRecorder()
		handler.GetCard(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("401 without an authenticated user", func(t *testing.T) {
		t.Parallel()
		handler := NewCardHandler(&fakeCardStore{card: card}, &fakeNoteStore{}, &fakeReviewService{}, nil)

		req := newAuthedRequest(t, http.MethodGet, "/flashcards/"+card.ID.String(), "", uuid.Nil,
			map[string]string{"id": card.ID.String()})
		rec := httptest.NewRecorder()
		handler.GetCard(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestCardHandlerSubmitReview(t *testing.T) {
	t.Parallel()
	userID := uuid.New()
	card := newStoredCard(t, userID)

	t.Run("grades the card and returns the new schedule", func(t *testing.T) {
		t.Parallel()
		reviewSvc := &fakeReviewService{submit: func(uid, cid uuid.UUID, quality domain.ReviewQuality) (*domain.Flashcard, error) {
			assert.Equal(t, userID, uid)
			assert.Equal(t, card.ID, cid)
			assert.Equal(t, domain.ReviewQuality(4), quality)

			graded := *card
			graded.Repetitions = 1
			graded.Interval = 1
			return &graded, nil
		}}
		handler := NewCardHandler(&fakeCardStore{}, &fakeNoteStore{}, reviewSvc, nil)

		req := newAuthedRequest(t, http.MethodPatch, "/flashcards/"+card.ID.String()+"/review",
			`{"quality": 4}`, userID, map[string]string{"id": card.ID.String()})
		rec := httptest.NewRecorder()
		handler.SubmitReview(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp FlashcardResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, 1, resp.Repetitions)
		assert.Equal(t, 1, resp.Interval)
	})

	t.Run("quality zero is a valid grade", func(t *testing.T) {
		t.Parallel()
		reviewSvc := &fakeReviewService{submit: func(uid, cid uuid.UUID, quality domain.ReviewQuality) (*domain.Flashcard, error) {
			assert.Equal(t, domain.ReviewQuality(0), quality)
			return card, nil
		}}
		handler := NewCardHandler(&fakeCardStore{}, &fakeNoteStore{}, reviewSvc, nil)

		req := newAuthedRequest(t, http.MethodPatch, "/flashcards/"+card.ID.String()+"/review",
			`{"quality": 0}`, userID, map[string]string{"id": card.ID.String()})
		rec := httptest.NewRecorder()
		handler.SubmitReview(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("400 for out-of-range quality", func(t *testing.T) {
		t.Parallel()
		handler := NewCardHandler(&fakeCardStore{}, &fakeNoteStore{}, &fakeReviewService{}, nil)

		for _, body := range []string{`{"quality": 6}`, `{"quality": -1}`, `{}`} {
			req := newAuthedRequest(t, http.MethodPatch, "/flashcards/"+card.ID.String()+"/review",
				body, userID, map[string]string{"id": card.ID.String()})
			rec := httptest.NewRecorder()
			handler.SubmitReview(rec, req)

			require.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
			var resp shared.ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, "Review quality must be between 0 and 5", resp.Error)
		}
	})

	t.Run("400 for a malformed body", func(t *testing.T) {
		t.Parallel()
		handler := NewCardHandler(&fakeCardStore{}, &fakeNoteStore{}, &fakeReviewService{}, nil)

		req := newAuthedRequest(t, http.MethodPatch, "/flashcards/"+card.ID.String()+"/review",
			`{"quality": "high"}`, userID, map[string]string{"id": card.ID.String()})
		rec := httptest.NewRecorder()
		handler.SubmitReview(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("404 when the service reports the card missing", func(t *testing.T) {
		t.Parallel()
		reviewSvc := &fakeReviewService{submit: func(uid, cid uuid.UUID, quality domain.ReviewQuality) (*domain.Flashcard, error) {
			return nil, store.ErrCardNotFound
		}}
		handler := NewCardHandler(&fakeCardStore{}, &fakeNoteStore{}, reviewSvc, nil)

		req := newAuthedRequest(t, http.MethodPatch, "/flashcards/"+card.ID.String()+"/review",
			`{"quality": 3}`, userID, map[string]string{"id": card.ID.String()})
		rec := httptest.NewRecorder()
		handler.SubmitReview(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCardHandlerCreateCard(t *testing.T) {
	t.Parallel()
	userID := uuid.New()
	noteID := uuid.New()

	ownedNote := func(t *testing.T) *domain.Note {
		t.Helper()
		note, err := domain.NewNote(userID, "Biology", "content")
		require.NoError(t, err)
		return note
	}

	t.Run("201 with the created card and scheduling defaults", func(t *testing.T) {
		t.Parallel()
		cardStore := &fakeCardStore{}
		handler := NewCardHandler(cardStore, &fakeNoteStore{note: ownedNote(t)}, &fakeReviewService{}, nil)

		req := newAuthedRequest(t, http.MethodPost, "/flashcards",
			`{"note_id": "`+noteID.String()+`", "front": "What is DNA?", "back": "Deoxyribonucleic acid"}`,
			userID, nil)
		rec := httptest.NewRecorder()
		handler.CreateCard(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp FlashcardResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "What is DNA?", resp.Front)
		assert.Equal(t, domain.DefaultEaseFactor, resp.EaseFactor)
		assert.Equal(t, 0, resp.Repetitions)
		assert.Equal(t, 0, resp.Interval)

		// The persisted card belongs to the caller and the named note.
		require.NotNil(t, cardStore.createdCard)
		assert.Equal(t, userID, cardStore.createdCard.UserID)
		assert.Equal(t, noteID, cardStore.createdCard.NoteID)
	})

	t.Run("404 when the note is not owned", func(t *testing.T) {
		t.Parallel()
		cardStore := &fakeCardStore{}
		handler := NewCardHandler(cardStore, &fakeNoteStore{getOwnedErr: store.ErrNoteNotFound}, &fakeReviewService{}, nil)

		req := newAuthedRequest(t, http.MethodPost, "/flashcards",
			`{"note_id": "`+noteID.String()+`", "front": "Q", "back": "A"}`, userID, nil)
		rec := httptest.NewRecorder()
		handler.CreateCard(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Nil(t, cardStore.createdCard)
	})

	t.Run("400 for invalid payloads", func(t *testing.T) {
		t.Parallel()
		handler := NewCardHandler(&fakeCardStore{}, &fakeNoteStore{note: ownedNote(t)}, &fakeReviewService{}, nil)

		for _, body := range []string{
			`{"note_id": "` + noteID.String() + `", "front": "", "back": "A"}`,
			`{"note_id": "` + noteID.String() + `", "front": "Q"}`,
			`{"front": "Q", "back": "A"}`,
			`not json`,
		} {
			req := newAuthedRequest(t, http.MethodPost, "/flashcards", body, userID, nil)
			rec := httptest.NewRecorder()
			handler.CreateCard(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
		}
	})

	t.Run("401 without an authenticated user", func(t *testing.T) {
		t.Parallel()
		handler := NewCardHandler(&fakeCardStore{}, &fakeNoteStore{note: ownedNote(t)}, &fakeReviewService{}, nil)

		req := newAuthedRequest(t, http.MethodPost, "/flashcards",
			`{"note_id": "`+noteID.String()+`", "front": "Q", "back": "A"}`, uuid.Nil, nil)
		rec := httptest.NewRecorder()
		handler.CreateCard(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestCardHandlerListCards(t *testing.T) {
	t.Parallel()
	userID := uuid.New()

	t.Run("lists the user's cards", func(t *testing.T) {
		t.Parallel()
		cards := []*domain.Flashcard{newStoredCard(t, userID), newStoredCard(t, userID)}
		handler := NewCardHandler(&fakeCardStore{cards: cards}, &fakeNoteStore{}, &fakeReviewService{}, nil)

		req := newAuthedRequest(t, http.MethodGet, "/flashcards", "", userID, nil)
		rec := httptest.NewRecorder()
		handler.ListCards(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp []FlashcardResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.Len(t, resp, 2)
		assert.Equal(t, cards[0].ID, resp[0].ID)
	})

	t.Run("empty list is a JSON array, not null", func(t *testing.T) {
		t.Parallel()
		handler := NewCardHandler(&fakeCardStore{}, &fakeNoteStore{}, &fakeReviewService{}, nil)

		req := newAuthedRequest(t, http.MethodGet, "/flashcards", "", userID, nil)
		rec := httptest.NewRecorder()
		handler.ListCards(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
	})
}

func TestCardHandlerGetNextReviewCard(t *testing.T) {
	t.Parallel()
	userID := uuid.New()

	t.Run("returns the due card", func(t *testing.T) {
		t.Parallel()
		card := newStoredCard(t, userID)
		handler := NewCardHandler(&fakeCardStore{}, &fakeNoteStore{}, &fakeReviewService{card: card}, nil)

		req := newAuthedRequest(t, http.MethodGet, "/flashcards/next", "", userID, nil)
		rec := httptest.NewRecorder()
		handler.GetNextReviewCard(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp FlashcardResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, card.ID, resp.ID)
	})

	t.Run("204 when nothing is due", func(t *testing.T) {
		t.Parallel()
		handler := NewCardHandler(&fakeCardStore{}, &fakeNoteStore{}, &fakeReviewService{nextErr: card_review.ErrNoCardsDue}, nil)

		req := newAuthedRequest(t, http.MethodGet, "/flashcards/next", "", userID, nil)
		rec := httptest.NewRecorder()
		handler.GetNextReviewCard(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Zero(t, rec.Body.Len())
	})
}

func TestCardHandlerListCardsByNote(t *testing.T) {
	t.Parallel()
	userID := uuid.New()
	noteID := uuid.New()

	t.Run("lists cards for an owned note", func(t *testing.T) {
		t.Parallel()
		cards := []*domain.Flashcard{newStoredCard(t, userID), newStoredCard(t, userID)}
		note, err := domain.NewNote(userID, "Biology", "content")
		require.NoError(t, err)

		handler := NewCardHandler(&fakeCardStore{cards: cards}, &fakeNoteStore{note: note}, &fakeReviewService{}, nil)

		req := newAuthedRequest(t, http.MethodGet, "/notes/"+noteID.String()+"/flashcards", "", userID,
			map[string]string{"id": noteID.String()})
		rec := httptest.NewRecorder()
		handler.ListCardsByNote(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp []FlashcardResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Len(t, resp, 2)
	})

	t.Run("404 when the note is not owned", func(t *testing.T) {
		t.Parallel()
		handler := NewCardHandler(&fakeCardStore{}, &fakeNoteStore{getOwnedErr: store.ErrNoteNotFound}, &fakeReviewService{}, nil)

		req := newAuthedRequest(t, http.MethodGet, "/notes/"+noteID.String()+"/flashcards", "", userID,
			map[string]string{"id": noteID.String()})
		rec := httptest.NewRecorder()
		handler.ListCardsByNote(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
