package generation

import "context"

// Payload is a model-ready generation request. It is vendor-neutral: the
// TextGenerator implementation maps it onto the wire format of whichever
// endpoint it talks to.
type Payload struct {
	// SystemInstruction is the fixed instruction describing the required
	// output shape to the model. Loaded once at process start.
	SystemInstruction string

	// UserPrompt is the per-call instruction built from the note being
	// converted into flashcards.
	UserPrompt string

	// ResponseMIMEType asks the model to return machine-parseable
	// structured text, typically "application/json".
	ResponseMIMEType string
}

// TextGenerator defines the boundary between the generation pipeline and an
// external text-generation endpoint. Implementations send the payload and
// return the single text blob the model produced, without interpreting it.
type TextGenerator interface {
	// GenerateText sends the payload to the configured endpoint and returns
	// the text of the first candidate's first content part. A successful
	// response with zero candidates yields an empty string, not an error.
	//
	// Transport or HTTP-level failures are reported as *UpstreamError.
	// The call honors ctx cancellation and deadlines. No retrying happens
	// at this level; retry policy belongs to the caller.
	GenerateText(ctx context.Context, payload Payload) (string, error)
}
