package generation

import (
	"encoding/json"
	"fmt"
	"strings"
)

// CardDraft is an unvalidated front/back pair extracted from generated text,
// prior to becoming a persisted flashcard.
type CardDraft struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// ParseDrafts decodes the text blob returned by the model into a slice of
// validated drafts, preserving the model's order.
//
// The text must be a JSON array of objects carrying non-empty "front" and
// "back" string fields. Anything else - empty input, invalid JSON, a
// non-array shape, or a draft with a missing side - fails the whole call
// with ErrMalformedOutput. There is no partial salvage: silently dropping
// some of the model's cards would be worse than an explicit failure the
// caller can retry.
func ParseDrafts(text string) ([]CardDraft, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: model returned no text", ErrMalformedOutput)
	}

	var drafts []CardDraft
	if err := json.Unmarshal([]byte(text), &drafts); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}

	if len(drafts) == 0 {
		return nil, fmt.Errorf("%w: model returned an empty card list", ErrMalformedOutput)
	}

	for i, draft := range drafts {
		if draft.Front == "" {
			return nil, fmt.Errorf("%w: card %d missing front side", ErrMalformedOutput, i)
		}
		if draft.Back == "" {
			return nil, fmt.Errorf("%w: card %d missing back side", ErrMalformedOutput, i)
		}
	}

	return drafts, nil
}
