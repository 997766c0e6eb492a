// Package llm provides centralized LLM configuration and client abstractions.
// This package enables switching between chat-completion providers without
// touching the evaluation code.
package llm

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderOpenAI is any OpenAI-compatible chat-completion endpoint
	ProviderOpenAI Provider = "openai"
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// Default model names per provider.
const (
	defaultOpenAIModel = "gpt-4o-mini"
	defaultGeminiModel = "gemini-2.5-flash"
)

// Config holds the model configuration for the application
type Config struct {
	Provider Provider
	Model    string
	// BaseURL overrides the provider endpoint. Only meaningful for
	// OpenAI-compatible providers.
	BaseURL string
}

// DefaultConfig returns the default configuration (OpenAI-compatible)
func DefaultConfig() *Config {
	return &Config{Provider: ProviderOpenAI, Model: defaultOpenAIModel}
}

// GetModel returns the configured model name, falling back to the
// provider default when unset.
func (c *Config) GetModel() string {
	if c.Model != "" {
		return c.Model
	}
	switch c.Provider {
	case ProviderGemini:
		return defaultGeminiModel
	default:
		return defaultOpenAIModel
	}
}
