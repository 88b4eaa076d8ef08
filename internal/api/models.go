package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/packageIncoming/project-locus-prototype/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	UserID uuid.UUID `json:"user_id"`
	Token  string    `json:"token"`
}

// CreateNoteRequest defines the payload for creating a note.
type CreateNoteRequest struct {
	Title   string `json:"title"   validate:"required,max=500"`
	Content string `json:"content" validate:"required"`
}

// UpdateNoteRequest defines the payload for updating a note.
type UpdateNoteRequest struct {
	Title   string `json:"title"   validate:"required,max=500"`
	Content string `json:"content" validate:"required"`
}

// NoteResponse represents a note in API responses.
type NoteResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// noteToResponse converts a domain note to its API representation.
func noteToResponse(note *domain.Note) NoteResponse {
	return NoteResponse{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}

// FlashcardResponse represents a flashcard in API responses, including its
// review scheduling state.
type FlashcardResponse struct {
	ID             uuid.UUID `json:"id"`
	NoteID         uuid.UUID `json:"note_id"`
	Front          string    `json:"front"`
	Back           string    `json:"back"`
	EaseFactor     float64   `json:"ease_factor"`
	Interval       int       `json:"interval"`
	Repetitions    int       `json:"repetitions"`
	NextReviewDate time.Time `json:"next_review_date"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// cardToResponse converts a domain flashcard to its API representation.
func cardToResponse(card *domain.Flashcard) FlashcardResponse {
	return FlashcardResponse{
		ID:             card.ID,
		NoteID:         card.NoteID,
		Front:          card.Front,
		Back:           card.Back,
		EaseFactor:     card.EaseFactor,
		Interval:       card.Interval,
		Repetitions:    card.Repetitions,
		NextReviewDate: card.NextReviewDate,
		CreatedAt:      card.CreatedAt,
		UpdatedAt:      card.UpdatedAt,
	}
}

// cardsToResponse converts a slice of flashcards, preserving order.
func cardsToResponse(cards []*domain.Flashcard) []FlashcardResponse {
	responses := make([]FlashcardResponse, 0, len(cards))
	for _, card := range cards {
		responses = append(responses, cardToResponse(card))
	}
	return responses
}

// CreateCardRequest defines the payload for creating a flashcard by hand,
// attached to one of the user's notes.
type CreateCardRequest struct {
	NoteID uuid.UUID `json:"note_id" validate:"required"`
	Front  string    `json:"front"   validate:"required"`
	Back   string    `json:"back"    validate:"required"`
}

// UpdateCardRequest defines the payload for editing a flashcard's content.
type UpdateCardRequest struct {
	Front string `json:"front" validate:"required"`
	Back  string `json:"back"  validate:"required"`
}

// SubmitReviewRequest defines the payload for grading a flashcard review.
// Quality is a pointer so a legitimate grade of 0 survives the required check.
type SubmitReviewRequest struct {
	Quality *int `json:"quality" validate:"required,min=0,max=5"`
}

// GenerateFlashcardsRequest defines the payload for the AI generation
// endpoint.
type GenerateFlashcardsRequest struct {
	NoteID uuid.UUID `json:"note_id" validate:"required"`
	Count  int       `json:"count"   validate:"required,min=1,max=50"`
}

// GenerateFlashcardsResponse defines the successful response for the AI
// generation endpoint.
type GenerateFlashcardsResponse struct {
	Flashcards []FlashcardResponse `json:"flashcards"`
}
