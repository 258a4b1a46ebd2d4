// Package backends provides mock HTTP servers and fixtures for testing the
// backend adapters against each service's response envelope.
package backends

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"
)

// MockServer is a mock HTTP server simulating a reasoning backend API.
type MockServer struct {
	server       *httptest.Server
	responses    map[string]MockResponse
	requestCount int
	mu           sync.Mutex
}

// MockResponse defines a mock response configuration.
type MockResponse struct {
	StatusCode int
	Body       interface{}
	RawBody    string
	Delay      time.Duration
}

// NewMockServer creates a new mock server.
func NewMockServer() *MockServer {
	ms := &MockServer{
		responses: make(map[string]MockResponse),
	}
	ms.server = httptest.NewServer(http.HandlerFunc(ms.handler))
	return ms
}

// URL returns the mock server's base URL.
func (ms *MockServer) URL() string {
	return ms.server.URL
}

// Close closes the mock server.
func (ms *MockServer) Close() {
	ms.server.Close()
}

// SetResponse sets a mock response for a specific endpoint path.
func (ms *MockServer) SetResponse(path string, response MockResponse) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.responses[path] = response
}

// RequestCount returns the number of requests received.
func (ms *MockServer) RequestCount() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.requestCount
}

// handler serves the configured response for the request path.
func (ms *MockServer) handler(w http.ResponseWriter, r *http.Request) {
	ms.mu.Lock()
	ms.requestCount++
	resp, ok := ms.responses[r.URL.Path]
	ms.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}

	if resp.Delay > 0 {
		time.Sleep(resp.Delay)
	}

	w.Header().Set("Content-Type", "application/json")
	if resp.StatusCode != 0 {
		w.WriteHeader(resp.StatusCode)
	}

	switch {
	case resp.RawBody != "":
		fmt.Fprint(w, resp.RawBody)
	case resp.Body != nil:
		_ = json.NewEncoder(w).Encode(resp.Body)
	}
}

// ChatCompletionBody builds an OpenAI-compatible chat completion envelope
// whose message content is a direct string (the Groq shape).
func ChatCompletionBody(content string) map[string]any {
	return map[string]any{
		"id":    "chatcmpl-test",
		"model": "test-model",
		"choices": []map[string]any{
			{
				"index": 0,
				"message": map[string]any{
					"role":    "assistant",
					"content": content,
				},
				"finish_reason": "stop",
			},
		},
	}
}

// ChunkedChatCompletionBody builds a chat completion envelope whose message
// content is an array of typed content chunks (the Mistral shape).
func ChunkedChatCompletionBody(texts ...string) map[string]any {
	chunks := make([]map[string]any, len(texts))
	for i, t := range texts {
		chunks[i] = map[string]any{"type": "text", "text": t}
	}
	return map[string]any{
		"id":    "chatcmpl-test",
		"model": "test-model",
		"choices": []map[string]any{
			{
				"index": 0,
				"message": map[string]any{
					"role":    "assistant",
					"content": chunks,
				},
				"finish_reason": "stop",
			},
		},
	}
}

// ResponsesBody builds a Responses API envelope with the reply text nested
// in output items (the OpenAI shape). A non-message reasoning item is
// included so unwrapping has to skip it.
func ResponsesBody(texts ...string) map[string]any {
	parts := make([]map[string]any, len(texts))
	for i, t := range texts {
		parts[i] = map[string]any{"type": "output_text", "text": t}
	}
	return map[string]any{
		"id":    "resp-test",
		"model": "test-model",
		"output": []map[string]any{
			{"type": "reasoning", "content": []map[string]any{}},
			{"type": "message", "content": parts},
		},
	}
}

// VerdictJSON builds a well-formed verdict payload string as a backend
// would ideally return it.
func VerdictJSON(status, evidence, reasoning string, confidence int) string {
	b, _ := json.Marshal(map[string]any{
		"status":     status,
		"evidence":   evidence,
		"reasoning":  reasoning,
		"confidence": confidence,
	})
	return string(b)
}
