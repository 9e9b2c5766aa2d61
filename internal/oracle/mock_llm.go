package oracle

import (
	"context"
	"strings"
	"sync"
)

// MockLLM is a deterministic LLM for tests and offline use.
type MockLLM struct {
	// Response is returned by Generate. When empty, the reply echoes the
	// titles of any lore entries found in the prompt.
	Response string

	// Error, if set, is returned instead of a response.
	Error error

	mu         sync.Mutex
	lastSystem string
	lastPrompt string
}

// NewMockLLM creates a mock that always answers response.
func NewMockLLM(response string) *MockLLM {
	return &MockLLM{Response: response}
}

func (m *MockLLM) Generate(ctx context.Context, system, prompt string) (string, error) {
	m.mu.Lock()
	m.lastSystem = system
	m.lastPrompt = prompt
	m.mu.Unlock()

	if m.Error != nil {
		return "", m.Error
	}
	if m.Response != "" {
		return m.Response, nil
	}
	return echoTitles(prompt), nil
}

// LastPrompt returns the most recent system and user prompts.
func (m *MockLLM) LastPrompt() (system, prompt string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastSystem, m.lastPrompt
}

// echoTitles answers with the "[n] Title" headers of a context block.
func echoTitles(prompt string) string {
	var titles []string
	for _, line := range strings.Split(prompt, "\n") {
		if strings.HasPrefix(line, "[") {
			if i := strings.Index(line, "] "); i > 0 {
				titles = append(titles, line[i+2:])
			}
		}
	}
	if len(titles) == 0 {
		return "The archive is silent on this matter."
	}
	return "The archive speaks of " + strings.Join(titles, ", ") + "."
}
