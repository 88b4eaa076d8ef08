package generation

import (
	"errors"
	"fmt"
)

// Common errors returned by the generation pipeline
var (
	// ErrGenerationFailed is returned when card generation fails for any general reason
	ErrGenerationFailed = errors.New("failed to generate flashcards from note")

	// ErrInvalidConfig is returned when generation configuration is invalid,
	// such as a missing system instruction file. This is fatal at process
	// start, never a per-request condition.
	ErrInvalidConfig = errors.New("invalid generation configuration")

	// ErrUpstreamFailure is returned when the generative endpoint returned a
	// non-success response or was unreachable. Retryable from the caller's
	// point of view.
	ErrUpstreamFailure = errors.New("generative endpoint request failed")

	// ErrMalformedOutput is returned when the endpoint responded successfully
	// but the text could not be parsed into flashcard drafts. Retryable: a
	// second attempt may get better-formatted output from the model.
	ErrMalformedOutput = errors.New("malformed generation output")
)

// UpstreamError carries the upstream HTTP status and response body of a
// failed generative call, so callers can distinguish "model refused or is
// erroring" from "our bug". It wraps ErrUpstreamFailure and is matchable
// with errors.As.
type UpstreamError struct {
	StatusCode int
	Body       string
	Err        error
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("generative endpoint returned status %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("generative endpoint request failed: %v", e.Err)
}

// Unwrap makes the error matchable as ErrUpstreamFailure and, when present,
// as its underlying cause via errors.Is.
func (e *UpstreamError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrUpstreamFailure, e.Err}
	}
	return []error{ErrUpstreamFailure}
}
