package analysis

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ecolysis/population"
)

// Growth is the asymptotic behaviour of a projection matrix.
type Growth struct {
	// Lambda is the dominant eigenvalue (finite rate of increase). It is
	// the L1 norm of the projected stable vector, so it is always positive:
	// convergence means Project(m, Stable) = Lambda·Stable. A matrix whose
	// dominant eigenvalue is negative or complex flips or rotates the vector
	// every step and yields ErrNotConverged instead of a magnitude.
	Lambda float64

	// Stable is the stable stage distribution, normalised to sum to 1.
	Stable population.StageVector

	// Iterations is the number of power-iteration steps performed.
	Iterations int
}

// GrowthRate estimates λ and the stable stage distribution of m.
//
// Implementation:
//   - Stage 1: start from the uniform vector 1/n.
//   - Stage 2: w = Project(m, v); s = Σ|w|; v' = w/s.
//   - Stage 3: stop when Σ|v' − v| ≤ tol; λ = s.
//
// Errors:
//   - population.ErrNilMatrix for a nil matrix.
//   - ErrDegenerate when s is zero or not finite.
//   - ErrNotConverged after the iteration cap.
//
// Complexity: O(k·n²) for k iterations.
func GrowthRate(m *population.ProjectionMatrix, opts ...Option) (Growth, error) {
	if m == nil {
		return Growth{}, fmt.Errorf("GrowthRate: %w", population.ErrNilMatrix)
	}
	o := gatherOptions(opts...)

	n := m.StageCount()
	start := make([]float64, n)
	for i := range start {
		start[i] = 1 / float64(n)
	}
	v := population.NewStageVector(start)

	for k := 1; k <= o.maxIter; k++ {
		w, err := population.Project(m, v)
		if err != nil {
			return Growth{}, fmt.Errorf("GrowthRate: %w", err)
		}
		next, s := normalizeL1(w.Values())
		if s == 0 || math.IsNaN(s) || math.IsInf(s, 0) {
			return Growth{}, fmt.Errorf("GrowthRate: step %d: %w", k, ErrDegenerate)
		}
		diff := l1Distance(next, v.Values())
		v = population.NewStageVector(next)
		if diff <= o.tol {
			return Growth{Lambda: s, Stable: v, Iterations: k}, nil
		}
	}

	return Growth{}, fmt.Errorf("GrowthRate: %d iterations, tol %g: %w", o.maxIter, o.tol, ErrNotConverged)
}

// normalizeL1 scales xs in place to unit L1 norm and returns it with the norm.
// A zero norm leaves xs untouched.
func normalizeL1(xs []float64) ([]float64, float64) {
	var s float64
	for _, x := range xs {
		s += math.Abs(x)
	}
	if s == 0 {
		return xs, 0
	}
	for i := range xs {
		xs[i] /= s
	}

	return xs, s
}

func l1Distance(a, b []float64) float64 {
	var d float64
	for i := range a {
		d += math.Abs(a[i] - b[i])
	}

	return d
}
