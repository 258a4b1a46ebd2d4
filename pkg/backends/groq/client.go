// Package groq implements the Backend adapter for Groq's hosted inference
// API. Groq speaks the OpenAI chat-completions format: the model's reply is
// a direct string at choices[0].message.content.
package groq

import (
	"context"
	"log/slog"

	"mercator-hq/themis/pkg/backends"
)

// DefaultBaseURL is Groq's OpenAI-compatible API root.
const DefaultBaseURL = "https://api.groq.com/openai/v1"

// Client is the Groq backend adapter.
type Client struct {
	*backends.HTTPBackend
}

// chatRequest is the OpenAI-compatible chat completion request body.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the subset of the chat completion envelope we unwrap.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// New creates a new Groq backend adapter.
func New(cfg backends.Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, &backends.ConfigError{
			Backend: "groq",
			Field:   "api_key",
			Message: "API key is required",
		}
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	c := &Client{
		HTTPBackend: backends.NewHTTPBackend(cfg),
	}

	slog.Info("groq backend initialized",
		"model", cfg.Model,
		"base_url", cfg.BaseURL,
	)

	return c, nil
}

// Invoke sends the prompt as a single user message and returns the model's
// reply text.
func (c *Client) Invoke(ctx context.Context, prompt string) (string, error) {
	cfg := c.Config()

	req := &chatRequest{
		Model: cfg.Model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
		Temperature: cfg.Temperature,
	}

	url := cfg.BaseURL + "/chat/completions"
	headers := map[string]string{
		"Authorization": "Bearer " + cfg.APIKey,
	}

	var resp chatResponse
	if err := c.DoJSONRequest(ctx, "POST", url, req, &resp, headers); err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", &backends.EmptyResponseError{Backend: c.Name()}
	}

	return resp.Choices[0].Message.Content, nil
}
