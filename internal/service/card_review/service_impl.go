package card_review

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/packageIncoming/project-locus-prototype/internal/domain"
	"github.com/packageIncoming/project-locus-prototype/internal/domain/srs"
	"github.com/packageIncoming/project-locus-prototype/internal/platform/logger"
	"github.com/packageIncoming/project-locus-prototype/internal/store"
)

// Verify interface compliance at compile time
var _ CardReviewService = (*cardReviewServiceImpl)(nil)

// cardReviewServiceImpl implements the CardReviewService interface.
type cardReviewServiceImpl struct {
	db         *sql.DB
	cardStore  store.CardStore
	srsService srs.Service
	logger     *slog.Logger
	timeFunc   func() time.Time // Injectable for testing
}

// NewCardReviewService creates a new CardReviewService implementation.
func NewCardReviewService(
	db *sql.DB,
	cardStore store.CardStore,
	srsService srs.Service,
	logger *slog.Logger,
) CardReviewService {
	if db == nil {
		panic("db cannot be nil")
	}
	if cardStore == nil {
		panic("cardStore cannot be nil")
	}
	if srsService == nil {
		panic("srsService cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &cardReviewServiceImpl{
		db:         db,
		cardStore:  cardStore,
		srsService: srsService,
		logger:     logger.With(slog.String("component", "card_review_service")),
		timeFunc:   time.Now,
	}
}

// GetNextCard implements CardReviewService.GetNextCard.
func (s *cardReviewServiceImpl) GetNextCard(
	ctx context.Context,
	userID uuid.UUID,
) (*domain.Flashcard, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving next review card", slog.String("user_id", userID.String()))

	card, err := s.cardStore.GetNextReviewCard(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrCardNotFound) {
			log.Debug("no cards due for review", slog.String("user_id", userID.String()))
			return nil, ErrNoCardsDue
		}

		log.Error("failed to get next review card",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to get next review card: %w", err)
	}

	return card, nil
}

// SubmitReview implements CardReviewService.SubmitReview.
// The owner-scoped lookup and the schedule update run in a single
// transaction so a failed write never leaves a half-graded card.
func (s *cardReviewServiceImpl) SubmitReview(
	ctx context.Context,
	userID uuid.UUID,
	cardID uuid.UUID,
	quality domain.ReviewQuality,
) (*domain.Flashcard, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("processing card review",
		slog.String("user_id", userID.String()),
		slog.String("card_id", cardID.String()),
		slog.Int("quality", int(quality)))

	// Reject bad grades before touching the database.
	if err := quality.Validate(); err != nil {
		log.Warn("invalid review quality",
			slog.String("user_id", userID.String()),
			slog.String("card_id", cardID.String()),
			slog.Int("quality", int(quality)))
		return nil, err
	}

	var updatedCard *domain.Flashcard
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txCardStore := s.cardStore.WithTx(tx)

		card, err := txCardStore.GetOwned(ctx, cardID, userID)
		if err != nil {
			return err
		}

		updated, err := s.srsService.ApplyReview(card, quality, s.timeFunc().UTC())
		if err != nil {
			return err
		}

		if err := txCardStore.Update(ctx, updated); err != nil {
			return err
		}

		updatedCard = updated
		return nil
	})

	if err != nil {
		if errors.Is(err, store.ErrCardNotFound) {
			log.Debug("flashcard not found for review",
				slog.String("user_id", userID.String()),
				slog.String("card_id", cardID.String()))
			return nil, err
		}

		log.Error("failed to submit review",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("card_id", cardID.String()))
		return nil, err
	}

	log.Info("card review processed",
		slog.String("user_id", userID.String()),
		slog.String("card_id", cardID.String()),
		slog.Int("quality", int(quality)),
		slog.Int("interval_days", updatedCard.Interval),
		slog.Time("next_review_date", updatedCard.NextReviewDate))

	return updatedCard, nil
}
