package verdict

// Status is the binary outcome of evaluating a rule against a document.
type Status string

const (
	// StatusPass indicates the document satisfies the rule.
	StatusPass Status = "pass"

	// StatusFail indicates the document does not satisfy the rule, or that
	// the rule could not be confirmed.
	StatusFail Status = "fail"
)

// NoEvidence is the sentinel evidence value used when no supporting excerpt
// could be located in the document.
const NoEvidence = "No direct evidence found."

// SourceHeuristic is the Source tag of verdicts produced by the keyword
// heuristic rather than a reasoning backend.
const SourceHeuristic = "heuristic"

// Result is the canonical verdict for one rule. Every field is always
// populated regardless of backend failure; the service never returns a
// partial verdict.
type Result struct {
	// Rule echoes the caller's rule string.
	Rule string `json:"rule"`

	// Status is the pass/fail outcome.
	Status Status `json:"status"`

	// Evidence is a supporting excerpt from the document, or NoEvidence.
	Evidence string `json:"evidence"`

	// Reasoning is a one-sentence justification for the verdict.
	Reasoning string `json:"reasoning"`

	// Confidence is an integer in [0, 100].
	Confidence int `json:"confidence"`

	// Source identifies the evaluator that produced the verdict: one of the
	// backend names or "heuristic". Callers use it to judge trust level.
	Source string `json:"source"`
}
