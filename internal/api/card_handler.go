package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/packageIncoming/project-locus-prototype/internal/api/shared"
	"github.com/packageIncoming/project-locus-prototype/internal/domain"
	"github.com/packageIncoming/project-locus-prototype/internal/platform/logger"
	"github.com/packageIncoming/project-locus-prototype/internal/redact"
	"github.com/packageIncoming/project-locus-prototype/internal/service/card_review"
	"github.com/packageIncoming/project-locus-prototype/internal/store"
)

// CardHandler handles flashcard-related HTTP requests.
type CardHandler struct {
	cardStore         store.CardStore
	noteStore         store.NoteStore
	cardReviewService card_review.CardReviewService
	logger            *slog.Logger
}

// NewCardHandler creates a new CardHandler with the given dependencies.
func NewCardHandler(
	cardStore store.CardStore,
	noteStore store.NoteStore,
	cardReviewService card_review.CardReviewService,
	logger *slog.Logger,
) *CardHandler {
	if cardStore == nil {
		panic("cardStore cannot be nil")
	}
	if noteStore == nil {
		panic("noteStore cannot be nil")
	}
	if cardReviewService == nil {
		panic("cardReviewService cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &CardHandler{
		cardStore:         cardStore,
		noteStore:         noteStore,
		cardReviewService: cardReviewService,
		logger:            logger.With(slog.String("component", "card_handler")),
	}
}

// CreateCard handles POST /flashcards requests.
// It creates a hand-written flashcard under one of the user's notes. The card
// starts with the same scheduling defaults as a generated one, so it is due
// immediately.
func (h *CardHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		HandleAPIError(w, r, domain.ErrUnauthorized, "User ID not found or invalid")
		return
	}

	var req CreateCardRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	// The note lookup is owner-scoped, so attaching a card to someone else's
	// note 404s without revealing that the note exists.
	if _, err := h.noteStore.GetOwned(r.Context(), req.NoteID, userID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	card, err := domain.NewFlashcard(userID, req.NoteID, req.Front, req.Back)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid card data: "+err.Error())
		return
	}

	if err := h.cardStore.Create(r.Context(), card); err != nil {
		log.Error("failed to create flashcard", "error", redact.Error(err))
		HandleAPIError(w, r, err, "Failed to create flashcard")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, cardToResponse(card))
}

// ListCards handles GET /flashcards requests.
// It lists every flashcard owned by the authenticated user, newest first.
func (h *CardHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		HandleAPIError(w, r, domain.ErrUnauthorized, "User ID not found or invalid")
		return
	}

	cards, err := h.cardStore.ListByUser(r.Context(), userID)
	if err != nil {
		log.Error("failed to list flashcards", "error", redact.Error(err))
		HandleAPIError(w, r, err, "Failed to list flashcards")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, cardsToResponse(cards))
}

// GetCard handles GET /flashcards/{id} requests.
func (h *CardHandler) GetCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, cardID, ok := requireUserIDAndPathUUID(w, r, "id", log)
	if !ok {
		return
	}

	card, err := h.cardStore.GetOwned(r.Context(), cardID, userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, cardToResponse(card))
}

// ListCardsByNote handles GET /notes/{id}/flashcards requests.
// It lists the flashcards generated from a note the user owns.
func (h *CardHandler) ListCardsByNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, noteID, ok := requireUserIDAndPathUUID(w, r, "id", log)
	if !ok {
		return
	}

	// The note lookup is owner-scoped, so listing cards of someone else's
	// note 404s without revealing that the note exists.
	if _, err := h.noteStore.GetOwned(r.Context(), noteID, userID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	cards, err := h.cardStore.ListByNote(r.Context(), noteID)
	if err != nil {
		log.Error("failed to list flashcards", "error", redact.Error(err))
		HandleAPIError(w, r, err, "Failed to list flashcards")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, cardsToResponse(cards))
}

// GetNextReviewCard handles GET /flashcards/next requests.
// It retrieves the card due next for review for the authenticated user, or
// responds 204 when nothing is due.
func (h *CardHandler) GetNextReviewCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		HandleAPIError(w, r, domain.ErrUnauthorized, "User ID not found or invalid")
		return
	}

	card, err := h.cardReviewService.GetNextCard(r.Context(), userID)
	if errors.Is(err, card_review.ErrNoCardsDue) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get next review card")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, cardToResponse(card))
}

// SubmitReview handles PATCH /flashcards/{id}/review requests.
// It grades the card with the submitted quality and returns the card with
// its updated review schedule.
func (h *CardHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, cardID, ok := requireUserIDAndPathUUID(w, r, "id", log)
	if !ok {
		return
	}

	var req SubmitReviewRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format",
			slog.String("error", redact.Error(err)),
			slog.String("card_id", cardID.String()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(
			w,
			r,
			http.StatusBadRequest,
			"Review quality must be between 0 and 5",
		)
		return
	}

	card, err := h.cardReviewService.SubmitReview(
		r.Context(),
		userID,
		cardID,
		domain.ReviewQuality(*req.Quality),
	)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, cardToResponse(card))
}

// UpdateCard handles PUT /flashcards/{id} requests.
// It edits the card's front and back text; scheduling state is untouched.
func (h *CardHandler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, cardID, ok := requireUserIDAndPathUUID(w, r, "id", log)
	if !ok {
		return
	}

	var req UpdateCardRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	card, err := h.cardStore.GetOwned(r.Context(), cardID, userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := card.UpdateContent(req.Front, req.Back); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid card data: "+err.Error())
		return
	}

	if err := h.cardStore.Update(r.Context(), card); err != nil {
		log.Error("failed to update flashcard", "error", redact.Error(err))
		HandleAPIError(w, r, err, "Failed to update flashcard")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, cardToResponse(card))
}

// DeleteCard handles DELETE /flashcards/{id} requests.
func (h *CardHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, cardID, ok := requireUserIDAndPathUUID(w, r, "id", log)
	if !ok {
		return
	}

	if _, err := h.cardStore.GetOwned(r.Context(), cardID, userID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.cardStore.Delete(r.Context(), cardID); err != nil {
		log.Error("failed to delete flashcard", "error", redact.Error(err))
		HandleAPIError(w, r, err, "Failed to delete flashcard")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
