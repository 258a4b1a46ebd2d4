package verdict

import (
	"context"
	"log/slog"
	"strings"

	"mercator-hq/themis/pkg/backends"
)

// Observer receives evaluation outcomes for metrics. Implementations must be
// safe for concurrent use. A nil Observer is valid and records nothing.
type Observer interface {
	// EvaluationCompleted is called once per rule with the evaluator that
	// produced the final verdict and its status.
	EvaluationCompleted(source string, status Status)

	// BackendFailed is called when a backend call fails and the verdict
	// degrades to the heuristic.
	BackendFailed(backend, reason string)
}

// Orchestrator evaluates rules against a document, degrading through the
// selected backend down to the keyword heuristic. Its Evaluate methods are
// total: they never return an error, because the evaluation endpoint must
// produce a verdict for every rule even when every backend is down.
type Orchestrator struct {
	registry    *backends.Registry
	observer    Observer
	concurrency int
	log         *slog.Logger
}

// NewOrchestrator creates an orchestrator over the given registry.
// concurrency bounds how many rules are evaluated in parallel per request;
// observer may be nil.
func NewOrchestrator(registry *backends.Registry, concurrency int, observer Observer, log *slog.Logger) *Orchestrator {
	if concurrency < 1 {
		concurrency = 1
	}
	if log == nil {
		log = slog.Default()
	}
	return &Orchestrator{
		registry:    registry,
		observer:    observer,
		concurrency: concurrency,
		log:         log,
	}
}

// Evaluate evaluates a single rule. The requested backend selector may be
// empty or invalid; it then resolves to the registry default. Any backend
// failure is logged, recorded, and absorbed by returning the precomputed
// heuristic verdict.
func (o *Orchestrator) Evaluate(ctx context.Context, rule, document, requested string) Result {
	backend, kind := o.registry.Resolve(requested)

	// The fallback is computed eagerly so a verdict is always in hand before
	// anything that can fail.
	fallback := EvaluateHeuristic(rule, document)

	if backend == nil {
		o.recordCompleted(fallback)
		return fallback
	}

	raw, err := backend.Invoke(ctx, BuildPrompt(rule, document))
	if err != nil || strings.TrimSpace(raw) == "" {
		reason := "empty payload"
		if err != nil {
			reason = failureReason(err)
			o.log.Warn("backend call failed, degrading to heuristic",
				"backend", string(kind),
				"reason", reason,
				"error", err,
			)
		} else {
			o.log.Warn("backend returned empty payload, degrading to heuristic",
				"backend", string(kind),
			)
		}
		if o.observer != nil {
			o.observer.BackendFailed(string(kind), reason)
		}
		o.recordCompleted(fallback)
		return fallback
	}

	result := Normalize(raw, fallback, string(kind))
	o.recordCompleted(result)
	return result
}

// Registry returns the backend registry the orchestrator evaluates with.
func (o *Orchestrator) Registry() *backends.Registry {
	return o.registry
}

func (o *Orchestrator) recordCompleted(r Result) {
	if o.observer != nil {
		o.observer.EvaluationCompleted(r.Source, r.Status)
	}
}

// failureReason buckets adapter errors into low-cardinality metric labels.
func failureReason(err error) string {
	switch err.(type) {
	case *backends.AuthError:
		return "auth"
	case *backends.TimeoutError:
		return "timeout"
	case *backends.ParseError:
		return "parse"
	case *backends.EmptyResponseError:
		return "empty payload"
	default:
		return "error"
	}
}
