package llm

import (
	"context"
	"fmt"

	openai "github.com/openai/openai-go"
	openaiopt "github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// OpenAIClient implements Client for any OpenAI-compatible chat-completion endpoint
type OpenAIClient struct {
	client openai.Client
	config *Config
}

// NewOpenAIClient creates a new OpenAI-compatible client
func NewOpenAIClient(config *Config, apiKey string) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	opts := []openaiopt.RequestOption{openaiopt.WithAPIKey(apiKey)}
	if config.BaseURL != "" {
		opts = append(opts, openaiopt.WithBaseURL(config.BaseURL))
	}

	return &OpenAIClient{
		client: openai.NewClient(opts...),
		config: config,
	}, nil
}

// GenerateJSON sends a two-message chat completion requesting a JSON object response
func (c *OpenAIClient) GenerateJSON(ctx context.Context, system, user string) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.config.GetModel()),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
		Temperature: openai.Float(0.1), // Low temperature for consistent grading
	}

	completion, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	content := completion.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("no content in response")
	}

	return CleanJSONBlock(content), nil
}

// Model returns the configured model name
func (c *OpenAIClient) Model() string {
	return c.config.GetModel()
}

// Close releases resources held by the client
func (c *OpenAIClient) Close() error {
	// The underlying HTTP client needs no explicit teardown.
	return nil
}
