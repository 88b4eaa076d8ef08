// Package srs implements the spaced-repetition scheduling algorithm
// (an SM-2 variant) as a pure state transition over flashcards.
package srs

import (
	"errors"
	"time"

	"github.com/packageIncoming/project-locus-prototype/internal/domain"
)

// Common errors
var (
	ErrNilCard = errors.New("flashcard cannot be nil")
)

// Service defines the interface for scheduling operations.
type Service interface {
	// ApplyReview computes a card's next scheduling state from a review
	// quality score. It returns a new Flashcard value and never mutates
	// the input; persistence is the caller's responsibility.
	//
	// Precondition: quality has already been validated to be within 0..5.
	// An out-of-range score is rejected here as a final guard, but callers
	// must validate it before any I/O.
	ApplyReview(
		card *domain.Flashcard,
		quality domain.ReviewQuality,
		now time.Time,
	) (*domain.Flashcard, error)
}

// defaultService is the standard implementation of the Service interface.
type defaultService struct {
	params *Params
}

// NewDefaultService creates a new scheduling service with default parameters.
func NewDefaultService() Service {
	return &defaultService{
		params: NewDefaultParams(),
	}
}

// NewServiceWithParams creates a new scheduling service with custom parameters.
func NewServiceWithParams(params *Params) Service {
	return &defaultService{
		params: params,
	}
}

// ApplyReview implements the Service interface.
func (s *defaultService) ApplyReview(
	card *domain.Flashcard,
	quality domain.ReviewQuality,
	now time.Time,
) (*domain.Flashcard, error) {
	if card == nil {
		return nil, ErrNilCard
	}

	if err := quality.Validate(); err != nil {
		return nil, err
	}

	return calculateNextStats(card, quality, now, s.params), nil
}
