package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFlashcard(t *testing.T) {
	t.Parallel()
	userID := uuid.New()
	noteID := uuid.New()

	t.Run("applies scheduling defaults", func(t *testing.T) {
		t.Parallel()
		card, err := NewFlashcard(userID, noteID, "front", "back")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, card.ID)
		assert.Equal(t, userID, card.UserID)
		assert.Equal(t, noteID, card.NoteID)
		assert.Equal(t, DefaultEaseFactor, card.EaseFactor)
		assert.Equal(t, 0, card.Interval)
		assert.Equal(t, 0, card.Repetitions)
		// A new card is due immediately.
		assert.False(t, card.NextReviewDate.After(card.CreatedAt))
	})

	t.Run("rejects empty sides", func(t *testing.T) {
		t.Parallel()
		_, err := NewFlashcard(userID, noteID, "", "back")
		assert.ErrorIs(t, err, ErrEmptyCardFront)

		_, err = NewFlashcard(userID, noteID, "front", "")
		assert.ErrorIs(t, err, ErrEmptyCardBack)
	})

	t.Run("rejects missing owners", func(t *testing.T) {
		t.Parallel()
		_, err := NewFlashcard(uuid.Nil, noteID, "front", "back")
		assert.ErrorIs(t, err, ErrEmptyCardUserID)

		_, err = NewFlashcard(userID, uuid.Nil, "front", "back")
		assert.ErrorIs(t, err, ErrEmptyCardNoteID)
	})
}

func TestFlashcardValidate(t *testing.T) {
	t.Parallel()

	newValid := func() *Flashcard {
		card, err := NewFlashcard(uuid.New(), uuid.New(), "front", "back")
		require.NoError(t, err)
		return card
	}

	t.Run("low ease factor", func(t *testing.T) {
		t.Parallel()
		card := newValid()
		card.EaseFactor = 1.2
		assert.ErrorIs(t, card.Validate(), ErrLowEaseFactor)
	})

	t.Run("negative interval", func(t *testing.T) {
		t.Parallel()
		card := newValid()
		card.Interval = -1
		assert.ErrorIs(t, card.Validate(), ErrInvalidInterval)
	})

	t.Run("negative repetitions", func(t *testing.T) {
		t.Parallel()
		card := newValid()
		card.Repetitions = -1
		assert.ErrorIs(t, card.Validate(), ErrNegativeReps)
	})
}

func TestReviewQualityValidate(t *testing.T) {
	t.Parallel()

	for q := MinReviewQuality; q <= MaxReviewQuality; q++ {
		assert.NoError(t, q.Validate(), "quality %d is valid", q)
	}

	assert.ErrorIs(t, ReviewQuality(-1).Validate(), ErrInvalidQuality)
	assert.ErrorIs(t, ReviewQuality(6).Validate(), ErrInvalidQuality)
}

func TestFlashcardUpdateContent(t *testing.T) {
	t.Parallel()

	card, err := NewFlashcard(uuid.New(), uuid.New(), "front", "back")
	require.NoError(t, err)

	t.Run("valid update replaces both sides", func(t *testing.T) {
		require.NoError(t, card.UpdateContent("new front", "new back"))
		assert.Equal(t, "new front", card.Front)
		assert.Equal(t, "new back", card.Back)
	})

	t.Run("invalid update rolls back", func(t *testing.T) {
		err := card.UpdateContent("", "other back")
		assert.ErrorIs(t, err, ErrEmptyCardFront)
		assert.Equal(t, "new front", card.Front)
		assert.Equal(t, "new back", card.Back)
	})
}
