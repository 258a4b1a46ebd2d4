package backends

import "errors"

// Registry holds the process-wide set of configured backend adapters and the
// resolved default. It is built once at startup from configuration and never
// mutated afterwards, so concurrent requests share it read-only with no
// synchronization.
type Registry struct {
	// entries maps each configured backend kind to its adapter. Kinds with
	// no credential are absent.
	entries map[Kind]Backend

	// def is the backend used when a request does not specify one.
	// KindHeuristic when nothing is configured.
	def Kind
}

// NewRegistry creates a registry over the given adapters. The preferred kind
// becomes the default when it is configured (or is the heuristic); otherwise
// the first configured backend in the fixed order groq, mistral, openai is
// used, falling back to the heuristic.
func NewRegistry(entries map[Kind]Backend, preferred Kind) *Registry {
	if entries == nil {
		entries = map[Kind]Backend{}
	}

	def := KindHeuristic
	if preferred == KindHeuristic || entries[preferred] != nil {
		def = preferred
	} else {
		for _, k := range kindOrder {
			if entries[k] != nil {
				def = k
				break
			}
		}
	}

	return &Registry{entries: entries, def: def}
}

// Resolve maps a caller-supplied backend selector to the effective backend.
// Unknown or unconfigured selectors resolve to the default; KindHeuristic
// resolves to a nil Backend, which callers treat as "evaluate heuristically".
func (r *Registry) Resolve(requested string) (Backend, Kind) {
	kind, ok := ParseKind(requested)
	if !ok || (kind != KindHeuristic && r.entries[kind] == nil) {
		kind = r.def
	}
	if kind == KindHeuristic {
		return nil, KindHeuristic
	}
	return r.entries[kind], kind
}

// Default returns the default backend kind.
func (r *Registry) Default() Kind {
	return r.def
}

// Model returns the resolved model identifier for a backend kind, or the
// empty string for the heuristic and unconfigured kinds.
func (r *Registry) Model(kind Kind) string {
	if be := r.entries[kind]; be != nil {
		return be.Model()
	}
	return ""
}

// Configured returns the configured backend kinds in fixed order.
func (r *Registry) Configured() []Kind {
	var kinds []Kind
	for _, k := range kindOrder {
		if r.entries[k] != nil {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// Close closes all adapters and returns the combined error.
func (r *Registry) Close() error {
	var errs []error
	for _, be := range r.entries {
		if err := be.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
