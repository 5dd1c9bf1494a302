package analysis

import "errors"

var (
	// ErrNotConverged is returned when power iteration exhausts its budget
	// before the normalised vector settles within tolerance.
	ErrNotConverged = errors.New("analysis: power iteration did not converge")

	// ErrDegenerate is returned when the iterate collapses to zero or stops
	// being finite (e.g. an all-zero matrix).
	ErrDegenerate = errors.New("analysis: degenerate iterate (zero or non-finite)")
)
