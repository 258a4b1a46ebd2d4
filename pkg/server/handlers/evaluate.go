package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"mercator-hq/themis/pkg/config"
	"mercator-hq/themis/pkg/extract"
	"mercator-hq/themis/pkg/verdict"
)

// ExtractFunc converts uploaded PDF bytes into normalized document text
// capped at maxChars. Injected so tests can evaluate without crafting real
// PDFs; production wires extract.Extract.
type ExtractFunc func(data []byte, maxChars int) (extract.Document, error)

// DocumentObserver records document-level metrics. May be nil.
type DocumentObserver interface {
	ObserveDocument(chars int)
}

// Evaluate handles POST /v1/evaluations: one PDF plus up to max_rules
// free-text rules as multipart form data, answered with one verdict per
// rule.
//
// Only input errors reject a request: a missing file, missing or malformed
// rules, or a document whose text cannot be extracted. Backend failures
// never surface here; the verdict engine absorbs them.
type Evaluate struct {
	orchestrator *verdict.Orchestrator
	extract      ExtractFunc
	observer     DocumentObserver
	cfg          config.EvaluationConfig
	maxUpload    int64
	log          *slog.Logger
}

// NewEvaluate creates the evaluation handler. extractFn defaults to
// extract.Extract when nil; observer and log may be nil.
func NewEvaluate(orchestrator *verdict.Orchestrator, extractFn ExtractFunc, observer DocumentObserver, cfg config.EvaluationConfig, maxUpload int64, log *slog.Logger) *Evaluate {
	if extractFn == nil {
		extractFn = extract.Extract
	}
	if log == nil {
		log = slog.Default()
	}
	return &Evaluate{
		orchestrator: orchestrator,
		extract:      extractFn,
		observer:     observer,
		cfg:          cfg,
		maxUpload:    maxUpload,
		log:          log,
	}
}

// ServeHTTP implements http.Handler.
func (h *Evaluate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)

	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, errTypeTooLarge,
				fmt.Sprintf("upload exceeds the %d byte limit", h.maxUpload))
			return
		}
		writeError(w, http.StatusBadRequest, errTypeInvalidRequest,
			"request must be multipart/form-data with a 'file' field and at least one 'rules' field")
		return
	}
	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	data, err := readUpload(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, errTypeInvalidRequest, err.Error())
		return
	}

	rules, err := parseRules(r.MultipartForm.Value["rules"], h.cfg.MaxRules)
	if err != nil {
		writeError(w, http.StatusBadRequest, errTypeInvalidRequest, err.Error())
		return
	}

	requested := r.FormValue("backend")

	doc, err := h.extract(data, h.cfg.MaxDocumentChars)
	if err != nil {
		h.log.Warn("document extraction failed",
			"error", err,
			"upload_bytes", len(data),
		)
		writeError(w, http.StatusUnprocessableEntity, errTypeUnprocessable,
			"could not extract text from the uploaded document")
		return
	}
	if h.observer != nil {
		h.observer.ObserveDocument(len(doc.Text))
	}

	results := h.orchestrator.EvaluateAll(r.Context(), rules, doc.Text, requested)

	_, kind := h.orchestrator.Registry().Resolve(requested)
	meta := Meta{
		Backend:    string(kind),
		Model:      h.orchestrator.Registry().Model(kind),
		TextLength: len(doc.Text),
	}
	if doc.PageCount > 0 {
		pages := doc.PageCount
		meta.PageCount = &pages
	}

	writeJSON(w, http.StatusOK, EvaluationResponse{Meta: meta, Results: results})
}

// readUpload reads the uploaded PDF bytes from the 'file' field.
func readUpload(r *http.Request) ([]byte, error) {
	file, _, err := r.FormFile("file")
	if err != nil {
		return nil, errors.New("a PDF file is required in the 'file' field")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.New("could not read the uploaded file")
	}
	if len(data) == 0 {
		return nil, errors.New("the uploaded file is empty")
	}
	return data, nil
}

// parseRules extracts the rule list from the form values. Rules arrive
// either as repeated 'rules' fields or as a single field holding a JSON
// array of strings. Rules are trimmed; order is preserved; duplicates are
// allowed.
func parseRules(values []string, maxRules int) ([]string, error) {
	if len(values) == 1 {
		if trimmed := strings.TrimSpace(values[0]); strings.HasPrefix(trimmed, "[") {
			var arr []string
			if err := json.Unmarshal([]byte(trimmed), &arr); err != nil {
				return nil, errors.New("the 'rules' field is not a valid JSON array of strings")
			}
			values = arr
		}
	}

	if len(values) == 0 {
		return nil, errors.New("at least one rule is required in the 'rules' field")
	}
	if len(values) > maxRules {
		return nil, fmt.Errorf("at most %d rules are allowed per request, got %d", maxRules, len(values))
	}

	rules := make([]string, 0, len(values))
	for _, v := range values {
		rule := strings.TrimSpace(v)
		if rule == "" {
			return nil, errors.New("rules must be non-empty strings")
		}
		rules = append(rules, rule)
	}
	return rules, nil
}
