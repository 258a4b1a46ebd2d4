// Package verdict is the rule-evaluation engine: it turns (rule, document
// text) pairs into structured verdicts, independent of which reasoning
// backend produces them.
//
// The engine guarantees total availability. Every rule always receives a
// well-formed verdict through a three-stage degradation path: a backend
// adapter produces raw text, the normalizer repairs it field by field, and
// the deterministic keyword heuristic stands in whenever the backend is
// unavailable, times out, or returns garbage. The verdict's Source field
// tells the caller which stage actually answered.
package verdict
