package generation

import (
	"fmt"
	"os"
	"strings"
)

// userPromptFormat is the per-call instruction sent alongside the system
// instruction. The note content is appended verbatim after the marker so the
// model can distinguish instructions from source material.
const userPromptFormat = "Generate %d flashcards for the topic '%s'.\n\nSOURCE CONTENT:\n%s"

// jsonResponseMIMEType asks the model for machine-parseable JSON output.
const jsonResponseMIMEType = "application/json"

// PromptBuilder formats a note and a requested card count into a model-ready
// Payload. The system instruction is read once at construction time and held
// immutably; a missing instruction file is a startup failure, not a
// per-request one.
type PromptBuilder struct {
	systemInstruction string
}

// NewPromptBuilder creates a PromptBuilder with the system instruction loaded
// from the given file path. Returns ErrInvalidConfig if the path is empty or
// the file cannot be read.
func NewPromptBuilder(systemInstructionPath string) (*PromptBuilder, error) {
	if systemInstructionPath == "" {
		return nil, fmt.Errorf("%w: system instruction path cannot be empty", ErrInvalidConfig)
	}

	content, err := os.ReadFile(systemInstructionPath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read system instruction from %s: %v",
			ErrInvalidConfig, systemInstructionPath, err)
	}

	return NewPromptBuilderFromInstruction(string(content))
}

// NewPromptBuilderFromInstruction creates a PromptBuilder from an already
// loaded system instruction. Returns ErrInvalidConfig if the instruction is
// blank.
func NewPromptBuilderFromInstruction(systemInstruction string) (*PromptBuilder, error) {
	if strings.TrimSpace(systemInstruction) == "" {
		return nil, fmt.Errorf("%w: system instruction cannot be empty", ErrInvalidConfig)
	}

	return &PromptBuilder{systemInstruction: systemInstruction}, nil
}

// Build produces the payload for one generation call from a note's title and
// content and the number of cards requested. Returns a validation error for
// an empty note or a non-positive count; no I/O happens here.
func (b *PromptBuilder) Build(noteTitle, noteContent string, count int) (Payload, error) {
	if count < 1 {
		return Payload{}, fmt.Errorf("requested card count must be positive, got %d", count)
	}

	if noteTitle == "" {
		return Payload{}, fmt.Errorf("note title cannot be empty")
	}

	if noteContent == "" {
		return Payload{}, fmt.Errorf("note content cannot be empty")
	}

	return Payload{
		SystemInstruction: b.systemInstruction,
		UserPrompt:        fmt.Sprintf(userPromptFormat, count, noteTitle, noteContent),
		ResponseMIMEType:  jsonResponseMIMEType,
	}, nil
}
