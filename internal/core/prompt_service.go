package core

import (
	"context"
	"fmt"
	"strings"
)

type promptService struct {
	generator TextGenerator
}

// NewPromptService creates a new PromptService instance.
func NewPromptService(generator TextGenerator) PromptService {
	return &promptService{generator: generator}
}

// Forward rejects blank prompts before the provider is called.
func (s *promptService) Forward(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", ErrPromptRequired
	}
	text, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTextGeneration, err)
	}
	return text, nil
}
