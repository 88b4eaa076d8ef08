package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/packageIncoming/project-locus-prototype/internal/domain"
)

// CardStore defines the interface for flashcard data persistence.
type CardStore interface {
	// Create saves a single flashcard to the store, e.g. one written by hand
	// rather than generated.
	// Returns ErrInvalidEntity if the referenced user or note does not exist.
	Create(ctx context.Context, card *domain.Flashcard) error

	// CreateMultiple saves a batch of flashcards to the store. Run it inside
	// a transaction (WithTx + store.RunInTransaction) so a generation call
	// persists either every draft or none of them.
	CreateMultiple(ctx context.Context, cards []*domain.Flashcard) error

	// GetByID retrieves a flashcard by its unique ID.
	// Returns ErrCardNotFound if the card does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Flashcard, error)

	// GetOwned retrieves a flashcard by ID scoped to its owner. A card that
	// exists but belongs to a different user yields ErrCardNotFound,
	// identical to a nonexistent ID.
	GetOwned(ctx context.Context, id, userID uuid.UUID) (*domain.Flashcard, error)

	// ListByNote retrieves all flashcards generated from the given note, in
	// creation order. Returns an empty slice if the note has none.
	ListByNote(ctx context.Context, noteID uuid.UUID) ([]*domain.Flashcard, error)

	// ListByUser retrieves all flashcards owned by the given user, newest
	// first. Returns an empty slice if the user has none.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Flashcard, error)

	// GetNextReviewCard retrieves the card with the earliest NextReviewDate
	// that is due (not after now) for the given user.
	// Returns ErrCardNotFound if no cards are due.
	GetNextReviewCard(ctx context.Context, userID uuid.UUID) (*domain.Flashcard, error)

	// Update saves changes to an existing flashcard, including its
	// scheduling state after a review.
	// Returns ErrCardNotFound if the card does not exist.
	Update(ctx context.Context, card *domain.Flashcard) error

	// Delete removes a flashcard from the store by its ID.
	// Returns ErrCardNotFound if the card does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new CardStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) CardStore
}
