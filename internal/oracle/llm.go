// Package oracle assembles lore-grounded prompts for the Oracle and Keeper
// assistants and sends them to a text-generation backend.
package oracle

import (
	"context"
	"errors"
)

var (
	ErrLLMFailed     = errors.New("LLM request failed")
	ErrInvalidConfig = errors.New("invalid LLM configuration")
	ErrEmptyQuestion = errors.New("question cannot be empty")
)

// LLM generates a reply from a system prompt and a user prompt.
// Implementations must be safe for concurrent use.
type LLM interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
}

// LLMConfig holds options for LLM providers.
type LLMConfig struct {
	// Model is the model identifier, e.g. "gpt-4o-mini".
	Model string

	// Temperature controls randomness; 0 uses the provider default.
	Temperature float64

	// MaxTokens limits the response length; 0 uses the provider default.
	MaxTokens int

	APIKey  string
	BaseURL string
}
