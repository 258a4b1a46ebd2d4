package backends

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// HTTPBackend is the base implementation for HTTP-based backend adapters.
// It provides connection pooling, per-call timeout enforcement, and status
// code mapping to the typed error taxonomy.
//
// Concrete adapters (groq, mistral, openai) embed this struct and implement
// the Backend interface's Invoke method on top of DoJSONRequest.
//
// There is deliberately no retry logic here: a failed call must surface
// immediately so the orchestrator can fall back to the heuristic without
// inflating request latency or cost.
type HTTPBackend struct {
	// cfg contains the adapter configuration
	cfg Config

	// client is the HTTP client with connection pooling
	client *http.Client
}

// NewHTTPBackend creates a new base HTTP backend with connection pooling.
func NewHTTPBackend(cfg Config) *HTTPBackend {
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		ForceAttemptHTTP2:   true,
	}

	return &HTTPBackend{
		cfg: cfg,
		client: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
	}
}

// Name returns the backend's configured name.
func (b *HTTPBackend) Name() string {
	return b.cfg.Name
}

// Model returns the resolved model identifier.
func (b *HTTPBackend) Model() string {
	return b.cfg.Model
}

// Config returns the adapter configuration.
func (b *HTTPBackend) Config() Config {
	return b.cfg
}

// DoJSONRequest performs a single JSON request against the backend and
// decodes the response envelope into respBody. No retries: any failure maps
// to a typed error and returns immediately.
func (b *HTTPBackend) DoJSONRequest(ctx context.Context, method, url string, reqBody, respBody interface{}, headers map[string]string) error {
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	slog.Debug("sending request to backend",
		"backend", b.cfg.Name,
		"model", b.cfg.Model,
		"url", url,
	)

	resp, err := b.client.Do(req)
	if err != nil {
		if ctx.Err() != nil || isTimeout(err) {
			return &TimeoutError{
				Backend: b.cfg.Name,
				Timeout: b.cfg.Timeout,
			}
		}
		return &BackendError{
			Backend: b.cfg.Name,
			Message: "request failed",
			Cause:   err,
		}
	}
	defer resp.Body.Close()

	responseBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return &ParseError{
			Backend: b.cfg.Name,
			Cause:   fmt.Errorf("failed to read response: %w", err),
		}
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Fall through to decode.
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &AuthError{
			Backend: b.cfg.Name,
			Message: string(responseBytes),
		}
	default:
		return &BackendError{
			Backend:    b.cfg.Name,
			StatusCode: resp.StatusCode,
			Message:    string(responseBytes),
		}
	}

	if respBody != nil && len(responseBytes) > 0 {
		if err := json.Unmarshal(responseBytes, respBody); err != nil {
			return &ParseError{
				Backend: b.cfg.Name,
				Cause:   fmt.Errorf("failed to unmarshal response: %w", err),
			}
		}
	}

	return nil
}

// Close closes idle connections held by the adapter.
func (b *HTTPBackend) Close() error {
	b.client.CloseIdleConnections()
	return nil
}

// isTimeout reports whether err is a client-side timeout.
func isTimeout(err error) bool {
	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}
	return errors.Is(err, context.DeadlineExceeded)
}
