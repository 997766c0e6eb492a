package llm

import (
	"context"
	"fmt"
)

// Client is an abstraction over LLM providers
type Client interface {
	// GenerateJSON sends a system instruction and a user message as a single
	// non-streaming chat completion and returns the raw JSON text of the
	// first choice's message content.
	GenerateJSON(ctx context.Context, system, user string) (string, error)
	// Model returns the underlying provider model name (for logging)
	Model() string
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a new LLM client based on configuration
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	case ProviderOpenAI:
		return NewOpenAIClient(config, apiKey)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", config.Provider)
	}
}
