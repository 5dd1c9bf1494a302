// SPDX-License-Identifier: MIT

package population

import "fmt"

// Series is the ordered output of a run: element k is the state after k+1
// projection steps. The initial vector is not included.
//
// A Series is read-only; accessors return copies or immutable StageVectors.
type Series struct {
	steps      []StageVector
	stageCount int
}

// NewSeries wraps already computed stage vectors into a Series.
// All vectors must share one stage count; ErrDimensionMismatch otherwise.
func NewSeries(steps []StageVector) (Series, error) {
	if len(steps) == 0 {
		return Series{}, nil
	}
	n := steps[0].stageCount
	for k, v := range steps {
		if v.stageCount != n {
			return Series{}, popErrorf("NewSeries",
				fmt.Errorf("step %d has %d stages, want %d: %w", k, v.stageCount, n, ErrDimensionMismatch))
		}
	}
	cp := make([]StageVector, len(steps))
	copy(cp, steps)

	return Series{steps: cp, stageCount: n}, nil
}

// Len returns the number of completed steps.
func (s Series) Len() int { return len(s.steps) }

// StageCount returns the stage count shared by every step.
// It is 0 for a Series built from no vectors.
func (s Series) StageCount() int { return s.stageCount }

// Step returns the state after k+1 steps, or false when k is out of range.
func (s Series) Step(k int) (StageVector, bool) {
	if k < 0 || k >= len(s.steps) {
		return StageVector{}, false
	}

	return s.steps[k], true
}

// Final returns the last state, or false for an empty Series.
func (s Series) Final() (StageVector, bool) {
	return s.Step(len(s.steps) - 1)
}

// Vectors returns a copy of the step slice.
func (s Series) Vectors() []StageVector {
	cp := make([]StageVector, len(s.steps))
	copy(cp, s.steps)

	return cp
}

// Totals returns the total population after every step.
func (s Series) Totals() []float64 {
	out := make([]float64, len(s.steps))
	for k, v := range s.steps {
		out[k] = v.Total()
	}

	return out
}

// Stage returns the trajectory of a single stage across all steps,
// or false when stage is out of range.
func (s Series) Stage(stage int) ([]float64, bool) {
	if stage < 0 || stage >= s.stageCount {
		return nil, false
	}
	out := make([]float64, len(s.steps))
	for k, v := range s.steps {
		out[k] = v.values[stage]
	}

	return out, true
}
