package verdict

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testFallback() Result {
	return Result{
		Rule:       "The document must name an owner.",
		Status:     StatusFail,
		Evidence:   NoEvidence,
		Reasoning:  "Only 1 of 3 rule keywords appear in the document.",
		Confidence: 35,
		Source:     SourceHeuristic,
	}
}

func TestNormalize_WellFormedPayload(t *testing.T) {
	raw := `{"status":"pass","evidence":"Jane Doe owns delivery.","reasoning":"An owner is named.","confidence":88}`

	result := Normalize(raw, testFallback(), "groq")

	assert.Equal(t, StatusPass, result.Status)
	assert.Equal(t, "Jane Doe owns delivery.", result.Evidence)
	assert.Equal(t, "An owner is named.", result.Reasoning)
	assert.Equal(t, 88, result.Confidence)
	assert.Equal(t, "groq", result.Source)
	assert.Equal(t, testFallback().Rule, result.Rule)
}

func TestNormalize_JSONWrappedInProse(t *testing.T) {
	raw := "Sure, here is the verdict you asked for:\n```json\n" +
		`{"status":"PASS","evidence":"Section 2 names Jane Doe.","reasoning":"Owner present.","confidence":71.6}` +
		"\n```\nLet me know if you need anything else!"

	result := Normalize(raw, testFallback(), "mistral")

	assert.Equal(t, StatusPass, result.Status)
	assert.Equal(t, "Section 2 names Jane Doe.", result.Evidence)
	assert.Equal(t, 72, result.Confidence)
	assert.Equal(t, "mistral", result.Source)
}

func TestNormalize_NoBracesReturnsFallbackUnchanged(t *testing.T) {
	fallback := testFallback()

	for _, raw := range []string{
		"",
		"I could not evaluate this rule.",
		"status: pass, confidence: 90",
		"}{", // braces present but reversed
	} {
		result := Normalize(raw, fallback, "groq")
		assert.Equal(t, fallback, result, "raw=%q", raw)
	}
}

func TestNormalize_UnquotedKeysReturnsFallback(t *testing.T) {
	fallback := testFallback()

	result := Normalize("Sure, here you go: {status: pass, evidence: the owner}", fallback, "openai")

	assert.Equal(t, fallback, result)
}

func TestNormalize_MissingStatusIsFailNotFallbackStatus(t *testing.T) {
	// A fallback that passed heuristically must not leak its status into a
	// backend verdict whose status is unreadable.
	fallback := testFallback()
	fallback.Status = StatusPass

	result := Normalize(`{"evidence":"something","confidence":90}`, fallback, "groq")

	assert.Equal(t, StatusFail, result.Status)
	assert.Equal(t, "something", result.Evidence)
	assert.Equal(t, 90, result.Confidence)
}

func TestNormalize_ConfidenceClampingAndRounding(t *testing.T) {
	tests := []struct {
		confidence string
		want       int
	}{
		{"132.7", 100},
		{"-5", 0},
		{"73.4", 73},
		{"73.5", 74},
		{"0", 0},
		{"100", 100},
	}

	for _, tt := range tests {
		t.Run(tt.confidence, func(t *testing.T) {
			raw := fmt.Sprintf(`{"status":"pass","confidence":%s}`, tt.confidence)
			result := Normalize(raw, testFallback(), "groq")
			assert.Equal(t, tt.want, result.Confidence)
		})
	}
}

func TestNormalize_NonNumericConfidenceUsesFallback(t *testing.T) {
	result := Normalize(`{"status":"pass","confidence":"high"}`, testFallback(), "groq")

	assert.Equal(t, testFallback().Confidence, result.Confidence)
	assert.Equal(t, StatusPass, result.Status)
}

func TestNormalize_EmptyFieldsUseFallback(t *testing.T) {
	fallback := testFallback()

	result := Normalize(`{"status":"fail","evidence":"","reasoning":null}`, fallback, "openai")

	assert.Equal(t, fallback.Evidence, result.Evidence)
	assert.Equal(t, fallback.Reasoning, result.Reasoning)
	assert.Equal(t, fallback.Confidence, result.Confidence)
	assert.Equal(t, "openai", result.Source)
}

func TestNormalize_RuleNeverTrustedFromBackend(t *testing.T) {
	raw := `{"rule":"a different rule entirely","status":"pass","confidence":99}`

	result := Normalize(raw, testFallback(), "groq")

	assert.Equal(t, testFallback().Rule, result.Rule)
}

func TestNormalize_Idempotent(t *testing.T) {
	raw := `{"status":"pass","evidence":"E","reasoning":"R","confidence":64}`

	first := Normalize(raw, testFallback(), "groq")
	second := Normalize(raw, testFallback(), "groq")

	assert.Equal(t, first, second)
}

func TestNormalize_StatusVariants(t *testing.T) {
	tests := []struct {
		status string
		want   Status
	}{
		{`"pass"`, StatusPass},
		{`"Pass"`, StatusPass},
		{`"PASS"`, StatusPass},
		{`" pass "`, StatusPass},
		{`"fail"`, StatusFail},
		{`"passed"`, StatusFail},
		{`"yes"`, StatusFail},
		{`true`, StatusFail},
		{`1`, StatusFail},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			raw := fmt.Sprintf(`{"status":%s}`, tt.status)
			result := Normalize(raw, testFallback(), "groq")
			assert.Equal(t, tt.want, result.Status)
		})
	}
}
