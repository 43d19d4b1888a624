// Package llm wraps the Gemini API behind the kit.Generator interface.
package llm

import (
	"context"
	"os"

	genai "google.golang.org/genai"

	apperrors "github.com/youssefhossamm/cursor-kickstart/internal/errors"
)

// DefaultModel is used when GEMINI_MODEL is unset.
const DefaultModel = "gemini-2.5-flash"

// GeminiClient is a thin wrapper around the official genai client. It
// makes exactly one API call per Generate; the caller decides what a
// failure means, so there is no retry loop here.
type GeminiClient struct {
	cli   *genai.Client
	model string
}

// NewGeminiClient creates a client from the environment. The genai SDK
// reads GEMINI_API_KEY itself; when the key is missing the constructor
// reports GeneratorUnavailable so callers can fall back to
// template-based generation instead of failing mid-build.
func NewGeminiClient(ctx context.Context) (*GeminiClient, error) {
	if os.Getenv("GEMINI_API_KEY") == "" {
		return nil, apperrors.GeneratorUnavailableError("GEMINI_API_KEY is not set")
	}
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{Backend: genai.BackendGeminiAPI})
	if err != nil {
		return nil, apperrors.GeneratorUnavailableError(err.Error())
	}
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = DefaultModel
	}
	return &GeminiClient{cli: cli, model: model}, nil
}

func (g *GeminiClient) Name() string { return "Gemini:" + g.model }

// Generate sends the prompt and returns the model's text.
func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.cli.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
		nil,
	)
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", apperrors.NewAppError(apperrors.ErrCodeGenerationFailed, "model returned no content")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
