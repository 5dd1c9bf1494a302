// SPDX-License-Identifier: MIT
// Package population: sentinel error set.
// All operations return these sentinels (optionally wrapped with call-site
// context via %w); tests and callers MUST match them with errors.Is.

package population

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "population: " for easy grepping.
//
// ERROR PRIORITY (enforced in tests):
// nil -> empty -> not square -> ragged rows -> dimension mismatch -> mode.
var (
	// ErrEmptyMatrix is returned by Build when no rows are supplied.
	ErrEmptyMatrix = errors.New("population: matrix has no rows")

	// ErrNotSquare is returned by Build when the row count differs from the
	// column count of the first row.
	ErrNotSquare = errors.New("population: matrix is not square")

	// ErrRaggedRows is returned by Build when two consecutive rows differ in length.
	ErrRaggedRows = errors.New("population: matrix rows have inconsistent lengths")

	// ErrDimensionMismatch indicates a stage vector whose stage count
	// disagrees with the projection matrix.
	ErrDimensionMismatch = errors.New("population: stage count mismatch")

	// ErrUnsupportedMode is returned when a projection mode other than
	// Deterministic is requested.
	ErrUnsupportedMode = errors.New("population: projection mode not implemented")

	// ErrNilMatrix indicates a nil *ProjectionMatrix argument.
	ErrNilMatrix = errors.New("population: nil projection matrix")

	// ErrNoMatrices is returned by New when no projection matrix is supplied.
	ErrNoMatrices = errors.New("population: no projection matrix supplied")

	// ErrMatrixCount is returned when the number of matrices does not fit the
	// requested mode (Deterministic uses exactly one).
	ErrMatrixCount = errors.New("population: wrong number of projection matrices for mode")

	// ErrNegativeIterations is returned when a run is asked for fewer than zero steps.
	ErrNegativeIterations = errors.New("population: iteration count must be >= 0")

	// ErrOutOfRange indicates a matrix index outside [0, StageCount).
	ErrOutOfRange = errors.New("population: index out of range")
)

// popErrorf tags err with the operation that detected it.
// err must be non-nil.
func popErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
