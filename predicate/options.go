package predicate

import "math"

// Options configures a Provider. Zero value is not useful; start from
// DefaultOptions and apply functional Option setters.
type Options struct {
	// Epsilon is the numeric tolerance shared by every predicate.
	Epsilon float64

	// err records the first invalid option; surfaced by New.
	err error
}

// Option mutates Options in the functional-options style.
type Option func(*Options)

// DefaultOptions returns the baseline configuration: Epsilon = DefaultEpsilon.
func DefaultOptions() Options {
	return Options{Epsilon: DefaultEpsilon}
}

// WithEpsilon overrides the numeric tolerance.
// The value must be positive and finite; violations are recorded and
// reported by New as ErrOptionViolation.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps <= 0 || math.IsInf(eps, 0) || math.IsNaN(eps) {
			o.err = ErrOptionViolation
			return
		}
		o.Epsilon = eps
	}
}
