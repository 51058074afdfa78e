package hull

import (
	"math"

	"github.com/JAPNIT/topology-and-meta-learning/predicate"
)

// Options configures a Peel run. Start from DefaultOptions and apply
// functional Option setters.
type Options struct {
	// Epsilon is the numeric tolerance handed to the predicate Provider
	// that Peel builds when none is injected.
	Epsilon float64

	// Provider, when non-nil, is used as-is and Epsilon is ignored;
	// it carries its own tolerance.
	Provider *predicate.Provider

	// err records the first invalid option; surfaced by Peel.
	err error
}

// Option mutates Options in the functional-options style.
type Option func(*Options)

// DefaultOptions returns the baseline configuration:
// Epsilon = predicate.DefaultEpsilon, no injected Provider.
func DefaultOptions() Options {
	return Options{Epsilon: predicate.DefaultEpsilon}
}

// WithEpsilon overrides the tolerance of the Provider Peel builds.
// The value must be positive and finite; violations are recorded and
// reported by Peel as ErrOptionViolation.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps <= 0 || math.IsInf(eps, 0) || math.IsNaN(eps) {
			o.err = ErrOptionViolation
			return
		}
		o.Epsilon = eps
	}
}

// WithProvider injects an already-built predicate Provider, e.g. to share
// one across many Peel runs. A nil Provider is recorded as ErrOptionViolation.
func WithProvider(p *predicate.Provider) Option {
	return func(o *Options) {
		if p == nil {
			o.err = ErrOptionViolation
			return
		}
		o.Provider = p
	}
}
