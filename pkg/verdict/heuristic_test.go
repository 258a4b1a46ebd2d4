package verdict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateHeuristic_NoExtractableKeywords(t *testing.T) {
	// Every word is four characters or shorter, so no keywords survive and
	// the rule can never be confirmed.
	result := EvaluateHeuristic("it is as you say", "Any document text at all.")

	assert.Equal(t, StatusFail, result.Status)
	assert.Equal(t, heuristicFailConfidence, result.Confidence)
	assert.Equal(t, NoEvidence, result.Evidence)
	assert.Equal(t, SourceHeuristic, result.Source)
	assert.Equal(t, "it is as you say", result.Rule)
	assert.NotEmpty(t, result.Reasoning)
}

func TestEvaluateHeuristic_DateRuleScenario(t *testing.T) {
	// Keywords are "document", "mention", "least", "concrete": none of them
	// appear literally in the text, so the verdict is a fail even though a
	// human would read "March 2024" as a concrete date. That literalness is
	// the point of the heuristic.
	doc := "This plan starts March 2024. Jane Doe is responsible for delivery."
	rule := "The document must mention at least one concrete date."

	result := EvaluateHeuristic(rule, doc)

	assert.Equal(t, StatusFail, result.Status)
	assert.Equal(t, heuristicFailConfidence, result.Confidence)
	assert.Equal(t, NoEvidence, result.Evidence)
	assert.Equal(t, SourceHeuristic, result.Source)
}

func TestEvaluateHeuristic_PassWithEvidence(t *testing.T) {
	doc := "This plan starts March 2024. Jane Doe is responsible for delivery."
	rule := "Someone responsible for delivery must be named."

	result := EvaluateHeuristic(rule, doc)

	// Keywords: responsible, delivery, named. Two of three appear, clearing
	// the ceil(0.4*3)=2 threshold.
	assert.Equal(t, StatusPass, result.Status)
	assert.Equal(t, heuristicPassConfidence, result.Confidence)
	assert.Equal(t, "Jane Doe is responsible for delivery.", result.Evidence)
}

func TestEvaluateHeuristic_CaseInsensitiveMatching(t *testing.T) {
	result := EvaluateHeuristic("BUDGET must be APPROVED", "The budget was approved yesterday.")

	assert.Equal(t, StatusPass, result.Status)
	assert.Equal(t, "The budget was approved yesterday.", result.Evidence)
}

func TestEvaluateHeuristic_KeywordCap(t *testing.T) {
	// Seven content-bearing words; only the first six participate. The
	// document contains only the seventh, so nothing matches.
	rule := "alpha1 bravo2 charlie3 delta4 echo55 foxtrot6 golfing7"
	doc := "The golfing7 committee met."

	result := EvaluateHeuristic(rule, doc)

	assert.Equal(t, StatusFail, result.Status)
	assert.Equal(t, NoEvidence, result.Evidence)
}

func TestEvaluateHeuristic_TotalOnEmptyInputs(t *testing.T) {
	for _, tc := range []struct{ rule, doc string }{
		{"", ""},
		{"", "some document"},
		{"some meaningful requirement", ""},
	} {
		result := EvaluateHeuristic(tc.rule, tc.doc)
		require.Equal(t, StatusFail, result.Status)
		require.Equal(t, heuristicFailConfidence, result.Confidence)
		require.Equal(t, SourceHeuristic, result.Source)
	}
}

func TestRuleKeywords(t *testing.T) {
	tests := []struct {
		name string
		rule string
		want []string
	}{
		{
			name: "filters short words and lowercases",
			rule: "The Document MUST mention a date",
			want: []string{"document", "mention"},
		},
		{
			name: "splits on punctuation",
			rule: "vendor-supplied invoice/receipt",
			want: []string{"vendor", "supplied", "invoice", "receipt"},
		},
		{
			name: "caps at six",
			rule: "aaaaa bbbbb ccccc ddddd eeeee fffff ggggg",
			want: []string{"aaaaa", "bbbbb", "ccccc", "ddddd", "eeeee", "fffff"},
		},
		{
			name: "digits count as word characters",
			rule: "must reference ISO27001 compliance",
			want: []string{"reference", "iso27001", "compliance"},
		},
		{
			name: "nothing extractable",
			rule: "it is so",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ruleKeywords(tt.rule))
		})
	}
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "splits on terminators followed by space",
			text: "First sentence. Second one! Third one? Fourth",
			want: []string{"First sentence.", "Second one!", "Third one?", "Fourth"},
		},
		{
			name: "keeps decimal points intact",
			text: "The rate is 3.5 percent. Next item.",
			want: []string{"The rate is 3.5 percent.", "Next item."},
		},
		{
			name: "single sentence without terminator",
			text: "no terminator here",
			want: []string{"no terminator here"},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitSentences(tt.text))
		})
	}
}
