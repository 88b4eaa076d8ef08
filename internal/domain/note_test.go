package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNote(t *testing.T) {
	t.Parallel()
	userID := uuid.New()

	t.Run("valid note", func(t *testing.T) {
		t.Parallel()
		note, err := NewNote(userID, "Biology", "The mitochondria is the powerhouse of the cell.")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, note.ID)
		assert.Equal(t, userID, note.UserID)
		assert.Equal(t, note.CreatedAt, note.UpdatedAt)
	})

	t.Run("rejects empty fields", func(t *testing.T) {
		t.Parallel()
		_, err := NewNote(uuid.Nil, "Biology", "content")
		assert.ErrorIs(t, err, ErrEmptyNoteUserID)

		_, err = NewNote(userID, "", "content")
		assert.ErrorIs(t, err, ErrEmptyNoteTitle)

		_, err = NewNote(userID, "Biology", "")
		assert.ErrorIs(t, err, ErrEmptyNoteContent)
	})
}

func TestNoteUpdate(t *testing.T) {
	t.Parallel()

	note, err := NewNote(uuid.New(), "Biology", "original content")
	require.NoError(t, err)

	require.NoError(t, note.Update("Chemistry", "new content"))
	assert.Equal(t, "Chemistry", note.Title)
	assert.Equal(t, "new content", note.Content)

	// Invalid update leaves the note untouched.
	err = note.Update("", "other content")
	assert.ErrorIs(t, err, ErrEmptyNoteTitle)
	assert.Equal(t, "Chemistry", note.Title)
	assert.Equal(t, "new content", note.Content)
}

func TestNewUser(t *testing.T) {
	t.Parallel()

	t.Run("valid user", func(t *testing.T) {
		t.Parallel()
		user, err := NewUser("student@example.com", "correct-horse-battery")
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, user.ID)
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		t.Parallel()
		_, err := NewUser("not-an-email", "correct-horse-battery")
		assert.ErrorIs(t, err, ErrInvalidEmail)
	})

	t.Run("rejects short password", func(t *testing.T) {
		t.Parallel()
		_, err := NewUser("student@example.com", "short")
		assert.ErrorIs(t, err, ErrPasswordTooShort)
	})

	t.Run("rejects password beyond bcrypt limit", func(t *testing.T) {
		t.Parallel()
		_, err := NewUser("student@example.com", strings.Repeat("a", 73))
		assert.ErrorIs(t, err, ErrPasswordTooLong)
	})

	t.Run("hashed password satisfies validation without plaintext", func(t *testing.T) {
		t.Parallel()
		user := &User{
			ID:             uuid.New(),
			Email:          "student@example.com",
			HashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
		}
		assert.NoError(t, user.Validate())
	})
}
