// SPDX-License-Identifier: MIT

// Package population - ProjectionMatrix storage (row-major) & safe accessors.
//
// Purpose:
//   - Keep the rates in one flat row-major buffer with the index formula i*n + j.
//   - Validate shape exactly once, in Build; every later consumer may assume n×n.
//   - Never expose the buffer: Rows copies out, At is bounds-checked.
//
// Complexity quicksheet:
//   - Build: O(n^2) copy; At: O(1); Rows: O(n^2); StageCount: O(1).

package population

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxBuild   = "Build"         // ctor tag for ProjectionMatrix
	ctxAt      = "At"            // method tag used in error wrappers
	opProject  = "Project"       // kernel tag
	opNew      = "New"           // Population ctor tag
	opRun      = "Run"           // Population.Run tag
	opRunDeter = "Deterministic" // RunDeterministic tag
)

// ProjectionMatrix is a validated square matrix of transition and
// recruitment rates, one row and one column per life stage.
//
// Entry [i][j] is the rate at which individuals of source stage j contribute
// to destination stage i in one step. Values are not range-checked:
// survival is commonly in [0,1] but fecundity can exceed 1.
//
// A ProjectionMatrix is immutable after Build and may be shared freely
// across projections, populations and goroutines.
type ProjectionMatrix struct {
	n    int       // stage count; rows == cols == n
	data []float64 // row-major storage, len == n*n
}

// Build constructs a ProjectionMatrix from raw rows.
//
// Validation order:
//   - Stage 1: len(rows) == 0                     → ErrEmptyMatrix.
//   - Stage 2: len(rows) != len(rows[0])          → ErrNotSquare.
//   - Stage 3: len(rows[i]) != len(rows[i-1])     → ErrRaggedRows (pairwise).
//
// On success the rows are copied into flat storage; later changes to the
// caller's slices do not affect the matrix.
//
// Complexity: Time O(n^2), Space O(n^2).
func Build(rows [][]float64) (*ProjectionMatrix, error) {
	if err := validateRows(rows); err != nil {
		return nil, popErrorf(ctxBuild, err)
	}

	n := len(rows)
	data := make([]float64, n*n)
	for i, row := range rows {
		copy(data[i*n:(i+1)*n], row) // row i occupies [i*n, (i+1)*n)
	}

	return &ProjectionMatrix{n: n, data: data}, nil
}

// MustBuild is like Build but panics on error.
// Intended for package-level fixtures and tests with literal rows.
func MustBuild(rows [][]float64) *ProjectionMatrix {
	m, err := Build(rows)
	if err != nil {
		panic(err)
	}

	return m
}

// StageCount returns the number of life stages (rows == cols).
// Complexity: O(1).
func (m *ProjectionMatrix) StageCount() int { return m.n }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *ProjectionMatrix) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.n {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.n {
		return 0, ErrOutOfRange
	}

	return row*m.n + col, nil
}

// At returns the rate at (row, col) or ErrOutOfRange.
// Never panics on bad indices.
// Complexity: O(1).
func (m *ProjectionMatrix) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, fmt.Errorf("ProjectionMatrix.%s(%d,%d): %w", ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Rows returns a fresh copy of the matrix as a slice of rows.
// Complexity: Time O(n^2), Space O(n^2).
func (m *ProjectionMatrix) Rows() [][]float64 {
	out := make([][]float64, m.n)
	for i := 0; i < m.n; i++ {
		row := make([]float64, m.n)
		copy(row, m.data[i*m.n:(i+1)*m.n])
		out[i] = row
	}

	return out
}

// Row returns a copy of row i, or false when i is out of range.
func (m *ProjectionMatrix) Row(i int) ([]float64, bool) {
	if i < 0 || i >= m.n {
		return nil, false
	}
	row := make([]float64, m.n)
	copy(row, m.data[i*m.n:(i+1)*m.n])

	return row, true
}

// String renders one bracketed row per line, e.g.
//
//	[0, 0, 0.1]
//	[0.6, 0.8, 0]
//	[0, 0.8, 0.95]
//
// Not for hot paths; intended for logs and debugging.
func (m *ProjectionMatrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.n; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(_fmtRowOpen)
		base := i * m.n
		for j := 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(strconv.FormatFloat(m.data[base+j], 'f', -1, 64))
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
