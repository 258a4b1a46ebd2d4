package verdict

import (
	"fmt"
	"math"
	"strings"
	"unicode"
)

// Heuristic evaluation constants. The fixed confidence values signal low
// trust to the caller: a heuristic verdict is a degraded-mode answer, not a
// reasoned one.
const (
	// maxKeywords caps how many rule keywords participate in matching.
	maxKeywords = 6

	// minKeywordLen filters out stop-words and short connectives; only words
	// longer than four characters count as content-bearing.
	minKeywordLen = 5

	// matchRatio is the fraction of keywords that must appear in the
	// document for a pass.
	matchRatio = 0.4

	// heuristicPassConfidence is the confidence of a heuristic pass verdict.
	heuristicPassConfidence = 55

	// heuristicFailConfidence is the confidence of a heuristic fail verdict.
	heuristicFailConfidence = 35
)

// EvaluateHeuristic evaluates a rule against a document using keyword
// overlap. It is a total function: any rule and any document yield a fully
// populated Result, which is what makes it a safe fallback for every
// backend failure.
//
// A rule with no extractable keywords always fails: an unparseable rule
// cannot be heuristically confirmed.
func EvaluateHeuristic(rule, document string) Result {
	keywords := ruleKeywords(rule)
	lowerDoc := strings.ToLower(document)

	var matched []string
	for _, kw := range keywords {
		if strings.Contains(lowerDoc, kw) {
			matched = append(matched, kw)
		}
	}

	threshold := int(math.Ceil(matchRatio * float64(len(keywords))))
	if threshold < 1 {
		threshold = 1
	}

	status := StatusFail
	confidence := heuristicFailConfidence
	if len(matched) >= threshold {
		status = StatusPass
		confidence = heuristicPassConfidence
	}

	return Result{
		Rule:       rule,
		Status:     status,
		Evidence:   findEvidence(document, matched),
		Reasoning:  heuristicReasoning(len(matched), len(keywords), status),
		Confidence: confidence,
		Source:     SourceHeuristic,
	}
}

// ruleKeywords tokenizes a rule into its content-bearing keywords: lowercase
// alphanumeric words longer than four characters, capped at six.
func ruleKeywords(rule string) []string {
	words := splitWords(strings.ToLower(rule))

	var keywords []string
	for _, w := range words {
		if len(w) >= minKeywordLen {
			keywords = append(keywords, w)
			if len(keywords) == maxKeywords {
				break
			}
		}
	}
	return keywords
}

// splitWords splits text into maximal runs of letters and digits.
func splitWords(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// findEvidence returns the first document sentence containing any matched
// keyword, or the NoEvidence sentinel.
func findEvidence(document string, matched []string) string {
	if len(matched) == 0 {
		return NoEvidence
	}

	for _, sentence := range splitSentences(normalizeSpace(document)) {
		lower := strings.ToLower(sentence)
		for _, kw := range matched {
			if strings.Contains(lower, kw) {
				return sentence
			}
		}
	}
	return NoEvidence
}

// splitSentences splits text on sentence-ending punctuation followed by
// whitespace, keeping the punctuation with its sentence.
func splitSentences(text string) []string {
	var sentences []string
	start := 0
	runes := []rune(text)

	for i := 0; i < len(runes); i++ {
		if !isSentenceEnd(runes[i]) {
			continue
		}
		if i+1 < len(runes) && !unicode.IsSpace(runes[i+1]) {
			continue
		}
		if s := strings.TrimSpace(string(runes[start : i+1])); s != "" {
			sentences = append(sentences, s)
		}
		start = i + 1
	}

	if s := strings.TrimSpace(string(runes[start:])); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

func isSentenceEnd(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// normalizeSpace collapses all whitespace runs to single spaces.
func normalizeSpace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// heuristicReasoning builds the one-sentence justification for a heuristic
// verdict.
func heuristicReasoning(matched, total int, status Status) string {
	if total == 0 {
		return "No content-bearing keywords could be extracted from the rule."
	}
	if status == StatusPass {
		return fmt.Sprintf("%d of %d rule keywords appear in the document.", matched, total)
	}
	return fmt.Sprintf("Only %d of %d rule keywords appear in the document.", matched, total)
}
