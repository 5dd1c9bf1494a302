// SPDX-License-Identifier: MIT

package population

import (
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]"
	_fmtSep      = ", "
)

// StageVector holds the population count of every life stage at one point
// in time. Index = stage id (0-based).
//
// A StageVector is immutable: NewStageVector copies its input and Values
// returns a copy, so the zero-cost value copy of the struct is safe to share.
// The zero value is a vector with zero stages.
type StageVector struct {
	values     []float64 // per-stage counts, never exposed directly
	stageCount int       // cached len(values)
}

// NewStageVector returns a StageVector holding a copy of values.
// It always succeeds; no range checking is done, so negative or fractional
// counts are representable.
// Complexity: O(n).
func NewStageVector(values []float64) StageVector {
	cp := make([]float64, len(values))
	copy(cp, values)

	return StageVector{values: cp, stageCount: len(cp)}
}

// StageCount returns the number of life stages.
// Complexity: O(1).
func (v StageVector) StageCount() int { return v.stageCount }

// At returns the count of stage i. The boolean is false when i is outside
// [0, StageCount()); At never panics.
// Complexity: O(1).
func (v StageVector) At(i int) (float64, bool) {
	if i < 0 || i >= v.stageCount {
		return 0, false
	}

	return v.values[i], true
}

// Values returns a copy of the per-stage counts.
// Complexity: O(n).
func (v StageVector) Values() []float64 {
	cp := make([]float64, v.stageCount)
	copy(cp, v.values)

	return cp
}

// Total returns the sum over all stages, accumulated left to right.
// Complexity: O(n).
func (v StageVector) Total() float64 {
	var sum float64
	for _, x := range v.values {
		sum += x
	}

	return sum
}

// Equal reports whether v and w have the same stage count and bitwise-equal values.
func (v StageVector) Equal(w StageVector) bool {
	if v.stageCount != w.stageCount {
		return false
	}
	for i := range v.values {
		if v.values[i] != w.values[i] {
			return false
		}
	}

	return true
}

// String renders the vector as "[a, b, c]" using the shortest float formatting.
func (v StageVector) String() string {
	var sb strings.Builder
	sb.WriteString(_fmtRowOpen)
	for i, x := range v.values {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		sb.WriteString(strconv.FormatFloat(x, 'f', -1, 64))
	}
	sb.WriteString(_fmtRowClose)

	return sb.String()
}
