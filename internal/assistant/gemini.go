// Package assistant generates text with Google's Gemini API.
package assistant

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.0-flash-001"

// ErrNotConfigured is returned by Disabled.
var ErrNotConfigured = errors.New("text generation is not configured")

// GeminiGenerator implements core.TextGenerator.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator creates a generator for model. baseURL overrides the API
// endpoint and is normally empty.
func NewGeminiGenerator(ctx context.Context, apiKey, model, baseURL string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: gemini API key is required", ErrNotConfigured)
	}
	if model == "" {
		model = DefaultModel
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &GeminiGenerator{client: client, model: model}, nil
}

// GenerateText sends prompt as a single user turn and returns the joined text parts.
func (g *GeminiGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", errors.New("gemini: response contained no text")
	}
	return text, nil
}

// Disabled stands in when no Gemini key is configured.
type Disabled struct{}

func (Disabled) GenerateText(context.Context, string) (string, error) {
	return "", ErrNotConfigured
}
