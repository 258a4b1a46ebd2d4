package handlers

import (
	"encoding/json"
	"net/http"

	"mercator-hq/themis/pkg/verdict"
)

// EvaluationResponse is the envelope returned by the evaluation endpoint:
// request-level metadata plus exactly one verdict per submitted rule, in the
// caller's order.
type EvaluationResponse struct {
	Meta    Meta             `json:"meta"`
	Results []verdict.Result `json:"results"`
}

// Meta carries request-level metadata so the review UI can display which
// evaluator answered and how much of the document was considered.
type Meta struct {
	// PageCount is the page count of the uploaded PDF; null when the parser
	// could not determine it.
	PageCount *int `json:"page_count"`

	// Backend is the effective backend the request resolved to, including
	// "heuristic".
	Backend string `json:"backend"`

	// Model is the resolved model identifier; omitted for the heuristic.
	Model string `json:"model,omitempty"`

	// TextLength is the length of the normalized document text in
	// characters, after the cap.
	TextLength int `json:"text_length"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status   string   `json:"status"`
	Backends []string `json:"backends"`
	Default  string   `json:"default_backend"`
}

// errorResponse is the error envelope for all non-2xx responses.
type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	// Type is a stable machine-readable error category.
	Type string `json:"type"`

	// Message is a human-readable description.
	Message string `json:"message"`
}

// Error types returned by the API.
const (
	errTypeInvalidRequest = "invalid_request"
	errTypeUnprocessable  = "unprocessable_document"
	errTypeTooLarge       = "payload_too_large"
)

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes an error response in the service's error format.
func writeError(w http.ResponseWriter, status int, errType, message string) {
	writeJSON(w, status, errorResponse{Error: errorBody{Type: errType, Message: message}})
}
