// SPDX-License-Identifier: MIT

package population

// Project advances v by one time step: out[i] = Σ_j m[i][j] * v[j].
//
// Implementation:
//   - Stage 1: reject a nil matrix and a stage-count mismatch. This is the
//     only guard; the kernel below indexes v by the matrix column index.
//   - Stage 2: one independent dot product per row (row-major, j ascending).
//
// Behavior highlights:
//   - float64 accumulation, left to right; no zero-skipping, so a NaN or Inf
//     rate propagates exactly as IEEE-754 arithmetic dictates.
//   - Neither m nor v is mutated; a new StageVector is returned.
//   - On error no partial output is produced.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Project").
//
// Complexity:
//   - Time O(n^2), Space O(n).
func Project(m *ProjectionMatrix, v StageVector) (StageVector, error) {
	if err := validateNotNil(m); err != nil {
		return StageVector{}, popErrorf(opProject, err)
	}
	if err := validateCompatible(m, v); err != nil {
		return StageVector{}, popErrorf(opProject, err)
	}

	return StageVector{values: project(m, v.values), stageCount: m.n}, nil
}

// project is the unchecked kernel. Callers guarantee len(x) == m.n.
func project(m *ProjectionMatrix, x []float64) []float64 {
	n := m.n
	y := make([]float64, n) // one output per destination stage
	for i := 0; i < n; i++ {
		y[i] = dot(m.data[i*n:(i+1)*n], x)
	}

	return y
}

// dot returns Σ row[j]*x[j] accumulated left to right.
// Assumes len(row) == len(x).
func dot(row, x []float64) float64 {
	var acc float64
	for j, a := range row {
		acc += float64(a * x[j]) // explicit conversion keeps the product rounded (no FMA)
	}

	return acc
}
