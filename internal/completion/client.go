// Package completion talks to an OpenAI-compatible chat completion endpoint.
package completion

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// MaxTokens caps the length of every generated roast.
const MaxTokens = 500

// NoContentFallback is returned when the service answers without any content.
const NoContentFallback = "No response content received from the completion service."

// Config describes how to reach the completion service.
type Config struct {
	APIKey       string
	BaseURL      string
	Model        string
	Timeout      time.Duration
	SystemPrompt string
}

// Client sends one chat completion request per call. It is immutable after construction.
type Client struct {
	api          *openai.Client
	model        string
	systemPrompt string
	logger       *slog.Logger
}

// NewClient creates a Client from cfg. The API key is only handed to the underlying transport.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	}
	apiCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	model := cfg.Model
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}
	return &Client{
		api:          openai.NewClientWithConfig(apiCfg),
		model:        model,
		systemPrompt: cfg.SystemPrompt,
		logger:       logger,
	}
}

// Complete sends userMessage with the fixed system prompt and returns the trimmed generated text.
// Temperature is passed through as given.
func (c *Client) Complete(ctx context.Context, userMessage string, temperature float64) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: c.systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userMessage},
		},
		MaxTokens:   MaxTokens,
		Temperature: float32(temperature),
	}

	started := time.Now()
	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			c.logger.Warn("Completion service returned an error", "status", apiErr.HTTPStatusCode, "type", apiErr.Type)
		}
		return "", err
	}
	c.logger.Debug("Completion received", "model", resp.Model, "duration", time.Since(started), "completion_tokens", resp.Usage.CompletionTokens)

	if len(resp.Choices) == 0 {
		return NoContentFallback, nil
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return NoContentFallback, nil
	}
	return content, nil
}
