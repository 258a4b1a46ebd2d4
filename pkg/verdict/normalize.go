package verdict

import (
	"encoding/json"
	"math"
	"strings"
)

// Normalize parses a backend's raw reply into a canonical Result. It is a
// total function: whatever the backend returned, the caller gets a fully
// populated verdict, using the precomputed heuristic fallback for anything
// missing or malformed.
//
// Backends routinely wrap their JSON in prose or markdown fences, so this is
// deliberately a brace-scan plus lenient field mapping, not strict schema
// validation. The payload is whatever sits between the first '{' and the
// last '}'; when that is absent or unparseable the fallback is returned
// unchanged, field for field.
func Normalize(raw string, fallback Result, source string) Result {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return fallback
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(raw[start:end+1]), &payload); err != nil {
		return fallback
	}

	out := Result{
		// The rule is never trusted from the backend: a backend must not be
		// able to substitute a different rule string.
		Rule:       fallback.Rule,
		Status:     normalizeStatus(payload["status"]),
		Evidence:   stringField(payload, "evidence", fallback.Evidence),
		Reasoning:  stringField(payload, "reasoning", fallback.Reasoning),
		Confidence: confidenceField(payload, fallback.Confidence),
		Source:     source,
	}
	return out
}

// normalizeStatus maps the parsed status to pass only on a case-insensitive
// "pass". Anything missing or malformed becomes fail, not the fallback's
// status: an unreadable verdict is treated conservatively.
func normalizeStatus(value any) Status {
	if s, ok := value.(string); ok && strings.EqualFold(strings.TrimSpace(s), string(StatusPass)) {
		return StatusPass
	}
	return StatusFail
}

// stringField returns the payload's value for key when it is a non-empty
// string, else the fallback value.
func stringField(payload map[string]any, key, fallback string) string {
	if s, ok := payload[key].(string); ok && s != "" {
		return s
	}
	return fallback
}

// confidenceField returns the payload's confidence rounded and clamped to
// [0, 100] when it is numeric, else the fallback value.
func confidenceField(payload map[string]any, fallback int) int {
	f, ok := payload["confidence"].(float64)
	if !ok {
		return fallback
	}
	c := int(math.Round(f))
	if c < 0 {
		return 0
	}
	if c > 100 {
		return 100
	}
	return c
}
