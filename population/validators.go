// SPDX-License-Identifier: MIT
// Package: population
//
// Purpose:
//  - Single source of truth for the shape and dimension checks.
//  - Return plain sentinel errors (with positional detail) so call sites can
//    wrap uniformly with their own tag.
//
// Note:
//  - Each validator documents what it assumes (e.g. non-nil arguments).

package population

import "fmt"

// validateRows checks that rows describe an n×n matrix with n > 0.
// The first row's length is the expected column count; empty input is
// reported before any indexing happens.
// Complexity: O(n).
func validateRows(rows [][]float64) error {
	if len(rows) == 0 {
		return ErrEmptyMatrix
	}
	if len(rows) != len(rows[0]) {
		return fmt.Errorf("%d rows, %d columns: %w", len(rows), len(rows[0]), ErrNotSquare)
	}
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != len(rows[i-1]) {
			return fmt.Errorf("row %d has %d values, row %d has %d: %w",
				i, len(rows[i]), i-1, len(rows[i-1]), ErrRaggedRows)
		}
	}

	return nil
}

// validateNotNil rejects a nil matrix.
func validateNotNil(m *ProjectionMatrix) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// validateCompatible checks that v has exactly m.StageCount() stages.
// Assumes m != nil.
// Complexity: O(1).
func validateCompatible(m *ProjectionMatrix, v StageVector) error {
	if m.n != v.stageCount {
		return fmt.Errorf("matrix has %d stages, vector has %d: %w",
			m.n, v.stageCount, ErrDimensionMismatch)
	}

	return nil
}

// validateIterations rejects negative step counts.
func validateIterations(iterations int) error {
	if iterations < 0 {
		return fmt.Errorf("%d: %w", iterations, ErrNegativeIterations)
	}

	return nil
}
