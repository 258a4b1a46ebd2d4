package verdict

import (
	"context"
	"sync"
)

// EvaluateAll evaluates every rule concurrently against the shared document
// text and returns one verdict per rule, in the caller's order regardless of
// which evaluation finishes first.
//
// Parallelism is bounded by the orchestrator's concurrency cap. The rules
// share only the immutable document and registry, and each goroutine writes
// to its own slot, so no locking is needed. Because Evaluate is total there
// is no partial-failure path: a rule is never silently dropped from the
// result.
func (o *Orchestrator) EvaluateAll(ctx context.Context, rules []string, document, requested string) []Result {
	results := make([]Result, len(rules))

	sem := make(chan struct{}, o.concurrency)
	var wg sync.WaitGroup
	for i, rule := range rules {
		wg.Add(1)
		go func(i int, rule string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[i] = o.Evaluate(ctx, rule, document, requested)
		}(i, rule)
	}
	wg.Wait()

	return results
}
