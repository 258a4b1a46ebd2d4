package verdict

import "fmt"

// promptTemplate is the fixed instruction prompt sent to every backend. The
// document text embedded here is already normalized and length-capped, so
// the prompt size is bounded.
const promptTemplate = `You are auditing a document against a compliance rule. Return ONLY valid JSON matching this schema:
{
  "status": "pass" or "fail",
  "evidence": "a short verbatim excerpt from the document that supports the verdict, or an empty string",
  "reasoning": "one sentence explaining the verdict",
  "confidence": 0 to 100
}

Rule: %s

Document text:
"""
%s
"""

Judge strictly from the document text above. If the document does not clearly satisfy the rule, the status is "fail".`

// BuildPrompt embeds a rule and the truncated document text into the fixed
// instruction prompt.
func BuildPrompt(rule, document string) string {
	return fmt.Sprintf(promptTemplate, rule, document)
}
