// Package mistral implements the Backend adapter for Mistral AI's chat
// completions API. Mistral's envelope is close to OpenAI's, but
// message.content may be either a plain string or an array of typed content
// chunks; this adapter handles both shapes.
package mistral

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"mercator-hq/themis/pkg/backends"
)

// DefaultBaseURL is Mistral's hosted API root.
const DefaultBaseURL = "https://api.mistral.ai/v1"

// Client is the Mistral backend adapter.
type Client struct {
	*backends.HTTPBackend
}

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
// Content is kept raw because Mistral returns either a string or an array
// of content chunks depending on the model.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content json.RawMessage `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// contentChunk is one element of the array-shaped content variant.
type contentChunk struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// New creates a new Mistral backend adapter.
func New(cfg backends.Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, &backends.ConfigError{
			Backend: "mistral",
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

	slog.Info("mistral backend initialized",
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

	if len(resp.Choices) == 0 {
		return "", &backends.EmptyResponseError{Backend: c.Name()}
	}

	text, err := unwrapContent(resp.Choices[0].Message.Content)
	if err != nil {
		return "", &backends.ParseError{Backend: c.Name(), Cause: err}
	}
	if text == "" {
		return "", &backends.EmptyResponseError{Backend: c.Name()}
	}

	return text, nil
}

// unwrapContent extracts the reply text from either content shape: a JSON
// string, or an array of chunks whose text parts are concatenated.
func unwrapContent(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}

	var chunks []contentChunk
	if err := json.Unmarshal(raw, &chunks); err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, chunk := range chunks {
		if chunk.Type == "" || chunk.Type == "text" {
			sb.WriteString(chunk.Text)
		}
	}
	return sb.String(), nil
}
