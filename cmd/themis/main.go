// Mercator Themis is a document rule-compliance evaluation service.
//
// It accepts a PDF and up to ten free-text rules per request and returns a
// structured verdict per rule: pass/fail, supporting evidence, reasoning,
// and a confidence score. Verdicts come from a hosted reasoning backend
// (Groq, Mistral, or OpenAI) when one is configured, degrading to a
// deterministic keyword heuristic so every rule always receives a result.
//
// Usage:
//
//	# Start the server with default configuration
//	themis run
//
//	# Start with a custom configuration file
//	themis run --config /path/to/config.yaml
//
//	# Show version information
//	themis version
package main

func main() {
	Execute()
}
