package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/packageIncoming/project-locus-prototype/internal/domain"
	"github.com/packageIncoming/project-locus-prototype/internal/generation"
	"github.com/packageIncoming/project-locus-prototype/internal/platform/logger"
	"github.com/packageIncoming/project-locus-prototype/internal/store"
)

// MaxCardsPerGeneration caps how many cards a single request may ask for.
// Large counts blow the model's output budget and degrade card quality.
const MaxCardsPerGeneration = 50

// GenerationRequest describes one note-to-flashcards generation call.
type GenerationRequest struct {
	// NoteID identifies the source note. It must be owned by the calling user.
	NoteID uuid.UUID

	// Count is the number of flashcards to request from the model.
	Count int
}

// GenerationService turns a stored note into persisted flashcards using a
// generative text model.
type GenerationService interface {
	// GenerateFlashcards builds a prompt from the note identified by
	// req.NoteID, calls the text generator, parses the output, and persists
	// the resulting cards as a single atomic batch.
	//
	// The note lookup is scoped to userID: a note owned by someone else
	// yields store.ErrNoteNotFound, identical to a nonexistent ID.
	// Returns domain.ErrValidation for a bad count,
	// generation.ErrUpstreamFailure if the model endpoint failed, and
	// generation.ErrMalformedOutput if its output could not be parsed.
	// On any error, nothing is persisted.
	GenerateFlashcards(
		ctx context.Context,
		userID uuid.UUID,
		req GenerationRequest,
	) ([]*domain.Flashcard, error)
}

// Verify interface compliance at compile time
var _ GenerationService = (*generationServiceImpl)(nil)

// generationServiceImpl implements the GenerationService interface.
type generationServiceImpl struct {
	db            *sql.DB
	noteStore     store.NoteStore
	cardStore     store.CardStore
	promptBuilder *generation.PromptBuilder
	textGenerator generation.TextGenerator
	logger        *slog.Logger
}

// NewGenerationService creates a new GenerationService implementation.
func NewGenerationService(
	db *sql.DB,
	noteStore store.NoteStore,
	cardStore store.CardStore,
	promptBuilder *generation.PromptBuilder,
	textGenerator generation.TextGenerator,
	logger *slog.Logger,
) GenerationService {
	if db == nil {
		panic("db cannot be nil")
	}
	if noteStore == nil {
		panic("noteStore cannot be nil")
	}
	if cardStore == nil {
		panic("cardStore cannot be nil")
	}
	if promptBuilder == nil {
		panic("promptBuilder cannot be nil")
	}
	if textGenerator == nil {
		panic("textGenerator cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &generationServiceImpl{
		db:            db,
		noteStore:     noteStore,
		cardStore:     cardStore,
		promptBuilder: promptBuilder,
		textGenerator: textGenerator,
		logger:        logger.With(slog.String("component", "generation_service")),
	}
}

// GenerateFlashcards implements GenerationService.GenerateFlashcards.
func (s *generationServiceImpl) GenerateFlashcards(
	ctx context.Context,
	userID uuid.UUID,
	req GenerationRequest,
) ([]*domain.Flashcard, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("starting flashcard generation",
		slog.String("user_id", userID.String()),
		slog.String("note_id", req.NoteID.String()),
		slog.Int("count", req.Count))

	// Reject a bad count before touching the database or the model.
	if req.Count < 1 || req.Count > MaxCardsPerGeneration {
		log.Warn("invalid card count requested",
			slog.String("user_id", userID.String()),
			slog.Int("count", req.Count))
		return nil, fmt.Errorf("%w: card count must be between 1 and %d, got %d",
			domain.ErrValidation, MaxCardsPerGeneration, req.Count)
	}

	note, err := s.noteStore.GetOwned(ctx, req.NoteID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoteNotFound) {
			log.Debug("note not found for generation",
				slog.String("user_id", userID.String()),
				slog.String("note_id", req.NoteID.String()))
			return nil, err
		}

		log.Error("failed to load note for generation",
			slog.String("error", err.Error()),
			slog.String("note_id", req.NoteID.String()))
		return nil, err
	}

	payload, err := s.promptBuilder.Build(note.Title, note.Content, req.Count)
	if err != nil {
		log.Warn("failed to build generation prompt",
			slog.String("error", err.Error()),
			slog.String("note_id", note.ID.String()))
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	text, err := s.textGenerator.GenerateText(ctx, payload)
	if err != nil {
		log.Error("text generation failed",
			slog.String("error", err.Error()),
			slog.String("note_id", note.ID.String()))
		return nil, err
	}

	drafts, err := generation.ParseDrafts(text)
	if err != nil {
		log.Warn("failed to parse generated drafts",
			slog.String("error", err.Error()),
			slog.String("note_id", note.ID.String()))
		return nil, err
	}

	cards := make([]*domain.Flashcard, 0, len(drafts))
	for i, draft := range drafts {
		card, err := domain.NewFlashcard(userID, note.ID, draft.Front, draft.Back)
		if err != nil {
			log.Warn("generated draft failed flashcard validation",
				slog.String("error", err.Error()),
				slog.Int("index", i))
			return nil, fmt.Errorf("%w: draft %d: %v", generation.ErrMalformedOutput, i, err)
		}
		cards = append(cards, card)
	}

	// Persist the batch atomically: a partial set of cards for a note is
	// worse than none, since the caller will retry the whole call.
	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.cardStore.WithTx(tx).CreateMultiple(ctx, cards)
	})
	if err != nil {
		log.Error("failed to persist generated flashcards",
			slog.String("error", err.Error()),
			slog.String("note_id", note.ID.String()),
			slog.Int("count", len(cards)))
		return nil, err
	}

	log.Info("flashcards generated successfully",
		slog.String("user_id", userID.String()),
		slog.String("note_id", note.ID.String()),
		slog.Int("requested", req.Count),
		slog.Int("generated", len(cards)))

	return cards, nil
}
