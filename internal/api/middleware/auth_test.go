package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packageIncoming/project-locus-prototype/internal/service/auth"
)

// fakeJWTService validates a single known token.
type fakeJWTService struct {
	validToken string
	userID     uuid.UUID
	err        error
}

func (f *fakeJWTService) GenerateToken(ctx context.Context, userID uuid.UUID) (string, error) {
	return f.validToken, nil
}

func (f *fakeJWTService) ValidateToken(ctx context.Context, token string) (*auth.Claims, error) {
	if f.err != nil {
		return nil, f.err
	}
	if token != f.validToken {
		return nil, auth.ErrInvalidToken
	}
	return &auth.Claims{UserID: f.userID}, nil
}

func TestAuthMiddlewareAuthenticate(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	const token = "valid-token"

	newHandler := func(jwtService auth.JWTService, captured *uuid.UUID) http.Handler {
		mw := NewAuthMiddleware(jwtService)
		return mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := GetUserID(r)
			require.True(t, ok)
			*captured = id
			w.WriteHeader(http.StatusOK)
		}))
	}

	t.Run("valid token reaches the handler with the user ID", func(t *testing.T) {
		t.Parallel()
		var captured uuid.UUID
		handler := newHandler(&fakeJWTService{validToken: token, userID: userID}, &captured)

		req := httptest.NewRequest(http.MethodGet, "/notes", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, userID, captured)
	})

	t.Run("missing header", func(t *testing.T) {
		t.Parallel()
		var captured uuid.UUID
		handler := newHandler(&fakeJWTService{validToken: token, userID: userID}, &captured)

		req := httptest.NewRequest(http.MethodGet, "/notes", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, uuid.Nil, captured)
	})

	t.Run("malformed header", func(t *testing.T) {
		t.Parallel()
		var captured uuid.UUID
		handler := newHandler(&fakeJWTService{validToken: token, userID: userID}, &captured)

		for _, header := range []string{"Basic abc123", "Bearer", "Bearer ", token} {
			req := httptest.NewRequest(http.MethodGet, "/notes", nil)
			req.Header.Set("Authorization", header)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
		}
		assert.Equal(t, uuid.Nil, captured)
	})

	t.Run("invalid token", func(t *testing.T) {
		t.Parallel()
		var captured uuid.UUID
		handler := newHandler(&fakeJWTService{validToken: token, userID: userID}, &captured)

		req := httptest.NewRequest(http.MethodGet, "/notes", nil)
		req.Header.Set("Authorization", "Bearer forged-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, uuid.Nil, captured)
	})

	t.Run("expired token", func(t *testing.T) {
		t.Parallel()
		var captured uuid.UUID
		handler := newHandler(&fakeJWTService{err: auth.ErrExpiredToken}, &captured)

		req := httptest.NewRequest(http.MethodGet, "/notes", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
