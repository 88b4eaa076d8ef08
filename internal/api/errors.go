package api

import (
	"errors"
	"net/http"

	"github.com/packageIncoming/project-locus-prototype/internal/api/shared"
	"github.com/packageIncoming/project-locus-prototype/internal/domain"
	"github.com/packageIncoming/project-locus-prototype/internal/generation"
	"github.com/packageIncoming/project-locus-prototype/internal/service/auth"
	"github.com/packageIncoming/project-locus-prototype/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Not found errors. Owner-scoped lookups return the same not-found
	// errors for other users' entities, so a 404 never confirms existence.
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Conflict errors
	case store.IsDuplicateError(err):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidQuality),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// The generative endpoint misbehaving is an upstream failure from the
	// client's point of view, including unparseable model output.
	case errors.Is(err, generation.ErrUpstreamFailure),
		errors.Is(err, generation.ErrMalformedOutput):
		return http.StatusBadGateway

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken):
		return "Invalid token"

	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid credentials"

	case errors.Is(err, domain.ErrUnauthorized):
		return "Unauthorized"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrNoteNotFound):
		return "Note not found"

	case errors.Is(err, store.ErrCardNotFound):
		return "Flashcard not found"

	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"

	case errors.Is(err, domain.ErrInvalidQuality):
		return "Review quality must be between 0 and 5"

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, store.ErrInvalidEntity):
		return "Invalid request data"

	case errors.Is(err, generation.ErrUpstreamFailure):
		return "Flashcard generation service is unavailable"

	case errors.Is(err, generation.ErrMalformedOutput):
		return "Flashcard generation produced unusable output"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes an error response derived from the given error.
// If userMessage is empty, a safe message is derived from the error type.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, userMessage string) {
	status := MapErrorToStatusCode(err)
	if userMessage == "" {
		userMessage = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, userMessage, err)
}
