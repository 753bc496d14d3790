package llm

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// ClientConfig selects the backend model and endpoint. BaseURL may point at
// any OpenAI-compatible server; the default configuration targets a local
// Ollama instance, which accepts the same chat-completions shape.
type ClientConfig struct {
	Model       string
	BaseURL     string
	APIKey      string
	Temperature float32
	MaxTokens   int
}

// Client is the production Generator backed by an OpenAI-compatible
// chat-completions endpoint.
type Client struct {
	api         *openai.Client
	model       string
	temperature float32
	maxTokens   int
}

// NewClient builds a chat-completions client for the configured endpoint.
func NewClient(cfg ClientConfig) *Client {
	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}
	return &Client{
		api:         openai.NewClientWithConfig(apiCfg),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}
}

// Generate sends one user message and returns the first choice's content,
// trimmed. A response with no choices counts as a failure.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("model %s returned no choices", c.model)
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
