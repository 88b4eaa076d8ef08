package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/packageIncoming/project-locus-prototype/internal/domain"
)

// NoteStore defines the interface for note data persistence.
type NoteStore interface {
	// Create saves a new note to the store.
	// It handles domain validation internally.
	Create(ctx context.Context, note *domain.Note) error

	// GetByID retrieves a note by its unique ID.
	// Returns ErrNoteNotFound if the note does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Note, error)

	// GetOwned retrieves a note by ID scoped to its owner. A note that
	// exists but belongs to a different user yields ErrNoteNotFound,
	// identical to a nonexistent ID, so existence is never leaked across
	// users.
	GetOwned(ctx context.Context, id, userID uuid.UUID) (*domain.Note, error)

	// ListByUser retrieves all notes owned by the given user, newest first.
	// Returns an empty slice if the user has no notes.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Note, error)

	// Update saves changes to an existing note.
	// Returns ErrNoteNotFound if the note does not exist.
	Update(ctx context.Context, note *domain.Note) error

	// Delete removes a note from the store by its ID. Flashcards generated
	// from the note are removed by the database's ON DELETE CASCADE.
	// Returns ErrNoteNotFound if the note does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new NoteStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) NoteStore
}
