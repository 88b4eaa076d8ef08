// Package gemini implements the generation.TextGenerator interface using
// Google's Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/packageIncoming/project-locus-prototype/internal/config"
	"github.com/packageIncoming/project-locus-prototype/internal/generation"
	"google.golang.org/genai"
)

// Client is a generation.TextGenerator backed by the Gemini API. Credentials
// are attached once at construction; individual calls carry only the payload.
type Client struct {
	logger *slog.Logger
	client *genai.Client
	model  string
}

// Ensure Client implements generation.TextGenerator
var _ generation.TextGenerator = (*Client)(nil)

// NewClient creates a Gemini-backed text generator from the LLM configuration.
//
// Returns generation.ErrInvalidConfig if the API key or model name is
// missing, or if the underlying client cannot be constructed. Configuration
// problems surface here, at process start, never per-request.
func NewClient(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return &Client{
		logger: logger.With(slog.String("component", "gemini_client")),
		client: client,
		model:  cfg.ModelName,
	}, nil
}

// GenerateText implements generation.TextGenerator.
//
// It maps the vendor-neutral payload onto the Gemini request envelope
// (contents + systemInstruction + generationConfig) and extracts the text of
// the first candidate's first content part. A successful response with zero
// candidates yields an empty string. Transport and HTTP-level failures are
// reported as *generation.UpstreamError carrying the upstream status and
// body; no retrying happens here.
func (c *Client) GenerateText(ctx context.Context, payload generation.Payload) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: payload.SystemInstruction}},
		},
		ResponseMIMEType: payload.ResponseMIMEType,
	}

	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: payload.UserPrompt}},
		},
	}

	c.logger.DebugContext(ctx, "calling generative endpoint",
		slog.String("model", c.model),
		slog.Int("prompt_length", len(payload.UserPrompt)))

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		upstreamErr := mapUpstreamError(err)
		c.logger.ErrorContext(ctx, "generative endpoint call failed",
			slog.Int("status_code", upstreamErr.StatusCode),
			slog.String("error", err.Error()))
		return "", upstreamErr
	}

	text, ok := extractText(resp)
	if !ok {
		// Zero candidates (or a candidate without content) is a
		// successful-but-empty response, not a failure.
		c.logger.WarnContext(ctx, "generative endpoint returned no usable candidate")
		return "", nil
	}

	c.logger.DebugContext(ctx, "generative endpoint call succeeded",
		slog.Int("response_length", len(text)))

	return text, nil
}

// mapUpstreamError converts a genai call error into a
// *generation.UpstreamError. API-level errors carry the upstream status code
// and message; transport errors carry only the wrapped cause.
func mapUpstreamError(err error) *generation.UpstreamError {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &generation.UpstreamError{
			StatusCode: apiErr.Code,
			Body:       apiErr.Message,
			Err:        err,
		}
	}

	return &generation.UpstreamError{Err: err}
}

// extractText pulls the text of the first candidate's first content part.
// The second return is false when the response has no usable candidate.
func extractText(resp *genai.GenerateContentResponse) (string, bool) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", false
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", false
	}

	return candidate.Content.Parts[0].Text, true
}
