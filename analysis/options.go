// Package analysis: functional configuration for GrowthRate.
//
// Design goals:
//   - Deterministic behavior: no global state, no randomness.
//   - Safe by construction: WithX panics only on nonsensical values
//     (programmer error); runtime problems are returned as errors.

package analysis

import "math"

// Defaults (single source of truth).
const (
	// DefaultTolerance bounds the L1 change between successive normalised iterates.
	DefaultTolerance = 1e-12

	// DefaultMaxIterations caps the number of power-iteration steps.
	DefaultMaxIterations = 10000
)

const (
	panicToleranceInvalid = "analysis: WithTolerance: tol must be finite and > 0"
	panicMaxIterInvalid   = "analysis: WithMaxIterations: n must be > 0"
)

// Options holds the resolved configuration. Fields are unexported; build it
// through Option values.
type Options struct {
	tol     float64
	maxIter int
}

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// WithTolerance sets the convergence threshold.
// Panics if tol is not finite or not positive.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithMaxIterations sets the iteration cap. Panics if n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

func defaultOptions() Options {
	return Options{tol: DefaultTolerance, maxIter: DefaultMaxIterations}
}

// gatherOptions applies opts over the defaults in order; nil entries are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
