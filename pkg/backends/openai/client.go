// Package openai implements the Backend adapter for OpenAI's Responses API.
// The reply text is nested inside output items: each "message" item carries
// content parts, and the "output_text" parts hold the actual text.
package openai

import (
	"context"
	"log/slog"
	"strings"

	"mercator-hq/themis/pkg/backends"
)

// DefaultBaseURL is OpenAI's hosted API root.
const DefaultBaseURL = "https://api.openai.com/v1"

// Client is the OpenAI backend adapter.
type Client struct {
	*backends.HTTPBackend
}

// responsesRequest is the Responses API request body.
type responsesRequest struct {
	Model       string  `json:"model"`
	Input       string  `json:"input"`
	Temperature float64 `json:"temperature"`
}

// responsesResponse is the subset of the Responses API envelope we unwrap.
type responsesResponse struct {
	Output []outputItem `json:"output"`
}

type outputItem struct {
	Type    string        `json:"type"`
	Content []contentPart `json:"content"`
}

type contentPart struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// New creates a new OpenAI backend adapter.
func New(cfg backends.Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, &backends.ConfigError{
			Backend: "openai",
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

	slog.Info("openai backend initialized",
		"model", cfg.Model,
		"base_url", cfg.BaseURL,
	)

	return c, nil
}

// Invoke sends the prompt through the Responses API and returns the
// concatenated output text.
func (c *Client) Invoke(ctx context.Context, prompt string) (string, error) {
	cfg := c.Config()

	req := &responsesRequest{
		Model:       cfg.Model,
		Input:       prompt,
		Temperature: cfg.Temperature,
	}

	url := cfg.BaseURL + "/responses"
	headers := map[string]string{
		"Authorization": "Bearer " + cfg.APIKey,
	}

	var resp responsesResponse
	if err := c.DoJSONRequest(ctx, "POST", url, req, &resp, headers); err != nil {
		return "", err
	}

	text := unwrapOutput(resp.Output)
	if text == "" {
		return "", &backends.EmptyResponseError{Backend: c.Name()}
	}

	return text, nil
}

// unwrapOutput collects the text of every output_text part across all
// message items. Non-message items (reasoning traces, tool calls) are
// skipped.
func unwrapOutput(items []outputItem) string {
	var sb strings.Builder
	for _, item := range items {
		if item.Type != "message" {
			continue
		}
		for _, part := range item.Content {
			if part.Type == "output_text" {
				sb.WriteString(part.Text)
			}
		}
	}
	return sb.String()
}
