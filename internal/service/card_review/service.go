// Package card_review provides the service for reviewing flashcards with
// the spaced repetition scheduler.
package card_review

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/packageIncoming/project-locus-prototype/internal/domain"
)

// CardReviewService provides methods for reviewing flashcards
// using a spaced repetition algorithm.
type CardReviewService interface {
	// GetNextCard retrieves the card due next for review for a user: the one
	// with the earliest next review date that is not in the future.
	// Returns ErrNoCardsDue if the user has no cards due for review.
	GetNextCard(ctx context.Context, userID uuid.UUID) (*domain.Flashcard, error)

	// SubmitReview grades a flashcard with a recall quality and updates its
	// review schedule. The lookup is scoped to the user: a card owned by
	// someone else yields ErrCardNotFound, the same as a nonexistent ID.
	// Returns domain.ErrInvalidQuality if the quality is out of range.
	// The returned flashcard carries the updated scheduling state.
	SubmitReview(
		ctx context.Context,
		userID uuid.UUID,
		cardID uuid.UUID,
		quality domain.ReviewQuality,
	) (*domain.Flashcard, error)
}

// Common error types for CardReviewService
var (
	// ErrNoCardsDue indicates that the user has no cards due for review.
	ErrNoCardsDue = errors.New("no cards due for review")
)
