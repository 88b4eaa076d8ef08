package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Scheduling defaults for newly created flashcards.
const (
	// DefaultEaseFactor is the SM-2 starting ease factor for a new card.
	DefaultEaseFactor = 2.5

	// MinEaseFactor is the floor below which a card's ease factor never drops.
	MinEaseFactor = 1.3
)

// Common validation errors for Flashcard
var (
	ErrEmptyCardID     = errors.New("flashcard ID cannot be empty")
	ErrEmptyCardUserID = errors.New("flashcard user ID cannot be empty")
	ErrEmptyCardNoteID = errors.New("flashcard note ID cannot be empty")
	ErrEmptyCardFront  = errors.New("flashcard front cannot be empty")
	ErrEmptyCardBack   = errors.New("flashcard back cannot be empty")
	ErrInvalidInterval = errors.New("interval must be greater than or equal to 0")
	ErrLowEaseFactor   = errors.New("ease factor must be at least 1.3")
	ErrNegativeReps    = errors.New("repetitions must be greater than or equal to 0")
)

// ReviewQuality is a 0..5 self-assessment of recall difficulty supplied at
// review time. Scores below 3 count as a failed recall.
type ReviewQuality int

// Quality boundaries.
const (
	MinReviewQuality ReviewQuality = 0
	MaxReviewQuality ReviewQuality = 5
)

// Validate checks that the quality score is within the allowed 0..5 range.
// This must be checked before invoking the scheduling algorithm, which is
// only defined over valid scores.
func (q ReviewQuality) Validate() error {
	if q < MinReviewQuality || q > MaxReviewQuality {
		return fmt.Errorf("%w: got %d", ErrInvalidQuality, int(q))
	}
	return nil
}

// Flashcard represents a reviewable front/back card generated from a note
// (or created by hand). The scheduling fields (EaseFactor, Interval,
// Repetitions, NextReviewDate) are mutated only by the srs package.
type Flashcard struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	NoteID         uuid.UUID `json:"note_id"`
	Front          string    `json:"front"`
	Back           string    `json:"back"`
	EaseFactor     float64   `json:"ease_factor"`
	Interval       int       `json:"interval"`    // Days until next review
	Repetitions    int       `json:"repetitions"` // Consecutive successful recalls; a fail resets to 0
	NextReviewDate time.Time `json:"next_review_date"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewFlashcard creates a new Flashcard owned by the given (user, note) pair
// with scheduling defaults: ease factor 2.5, interval 0, repetitions 0, and
// next review due immediately.
// Returns an error if validation fails.
func NewFlashcard(userID, noteID uuid.UUID, front, back string) (*Flashcard, error) {
	now := time.Now().UTC()
	card := &Flashcard{
		ID:             uuid.New(),
		UserID:         userID,
		NoteID:         noteID,
		Front:          front,
		Back:           back,
		EaseFactor:     DefaultEaseFactor,
		Interval:       0,
		Repetitions:    0,
		NextReviewDate: now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}

	return card, nil
}

// Validate checks if the Flashcard has valid data.
// Returns an error if any field fails validation.
func (c *Flashcard) Validate() error {
	if c.ID == uuid.Nil {
		return ErrEmptyCardID
	}

	if c.UserID == uuid.Nil {
		return ErrEmptyCardUserID
	}

	if c.NoteID == uuid.Nil {
		return ErrEmptyCardNoteID
	}

	if c.Front == "" {
		return ErrEmptyCardFront
	}

	if c.Back == "" {
		return ErrEmptyCardBack
	}

	if c.Interval < 0 {
		return ErrInvalidInterval
	}

	if c.EaseFactor < MinEaseFactor {
		return ErrLowEaseFactor
	}

	if c.Repetitions < 0 {
		return ErrNegativeReps
	}

	return nil
}

// UpdateContent replaces the card's front and back text and bumps the
// UpdatedAt timestamp. Scheduling state is untouched.
// Returns an error if the new content is invalid.
func (c *Flashcard) UpdateContent(front, back string) error {
	origFront, origBack := c.Front, c.Back
	c.Front = front
	c.Back = back

	if err := c.Validate(); err != nil {
		c.Front, c.Back = origFront, origBack
		return err
	}

	c.UpdatedAt = time.Now().UTC()
	return nil
}
