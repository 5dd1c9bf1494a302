// SPDX-License-Identifier: MIT

package population

import "fmt"

// Mode selects how a Population is projected forward.
//
//   - Deterministic: repeated application of a single fixed matrix.
//   - Stochastic: per-step matrix sampling. Declared, not implemented:
//     running it returns ErrUnsupportedMode.
type Mode int

const (
	// Deterministic projects with exactly one matrix and no randomness.
	Deterministic Mode = iota

	// Stochastic is reserved for environmental-stochasticity runs.
	Stochastic
)

// String returns the lowercase mode name.
func (md Mode) String() string {
	switch md {
	case Deterministic:
		return "deterministic"
	case Stochastic:
		return "stochastic"
	default:
		return fmt.Sprintf("mode(%d)", int(md))
	}
}

// Population couples an initial StageVector with one or more projection
// matrices. Compatibility is checked once in New so runs never re-validate.
//
// A Population holds no run state: every Run starts from the initial vector.
type Population struct {
	initial  StageVector
	matrices []*ProjectionMatrix
}

// New validates and returns a Population.
//
// Errors (wrapped with "New"):
//   - ErrNoMatrices when no matrix is given.
//   - ErrNilMatrix when any matrix is nil.
//   - ErrDimensionMismatch when any matrix's stage count differs from initial.
//
// Complexity: O(k) for k matrices.
func New(initial StageVector, matrices ...*ProjectionMatrix) (*Population, error) {
	if len(matrices) == 0 {
		return nil, popErrorf(opNew, ErrNoMatrices)
	}
	for k, m := range matrices {
		if err := validateNotNil(m); err != nil {
			return nil, popErrorf(opNew, fmt.Errorf("matrix %d: %w", k, err))
		}
		if err := validateCompatible(m, initial); err != nil {
			return nil, popErrorf(opNew, fmt.Errorf("matrix %d: %w", k, err))
		}
	}
	ms := make([]*ProjectionMatrix, len(matrices))
	copy(ms, matrices)

	return &Population{initial: initial, matrices: ms}, nil
}

// Initial returns the initial stage vector.
func (p *Population) Initial() StageVector { return p.initial }

// StageCount returns the number of life stages shared by every component.
func (p *Population) StageCount() int { return p.initial.stageCount }

// MatrixCount returns how many projection matrices the population holds.
func (p *Population) MatrixCount() int { return len(p.matrices) }

// Run projects the population forward iterations steps in the given mode.
//
// Behavior:
//   - Deterministic: requires exactly one matrix (ErrMatrixCount otherwise);
//     see RunDeterministic.
//   - Stochastic and unknown modes: ErrUnsupportedMode, no output.
func (p *Population) Run(mode Mode, iterations int) (Series, error) {
	switch mode {
	case Deterministic:
		if len(p.matrices) != 1 {
			return Series{}, popErrorf(opRun,
				fmt.Errorf("%s needs 1 matrix, have %d: %w", mode, len(p.matrices), ErrMatrixCount))
		}

		return p.run(p.matrices[0], iterations)
	default:
		return Series{}, popErrorf(opRun, fmt.Errorf("%s: %w", mode, ErrUnsupportedMode))
	}
}

// Deterministic is shorthand for Run(Deterministic, iterations).
func (p *Population) Deterministic(iterations int) (Series, error) {
	return p.Run(Deterministic, iterations)
}

// RunDeterministic projects initial forward iterations times with m and
// returns one StageVector per completed step. The initial vector itself is
// not part of the result.
//
// Implementation:
//   - Stage 1: validate m, the stage counts and iterations once.
//   - Stage 2: active = Project(m, active), appended after every step.
//     Project keeps its own O(1) dimension guard, so a step can never index
//     out of bounds even if the invariants above were bypassed.
//
// Behavior highlights:
//   - iterations == 0 yields an empty Series and no error.
//   - Step k+1 depends on step k; there is no parallel variant.
//   - Pure: identical inputs always give bitwise-identical output.
//
// Errors (wrapped with "Deterministic"):
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNegativeIterations.
//
// Complexity: Time O(iterations * n^2), Space O(iterations * n).
func RunDeterministic(initial StageVector, m *ProjectionMatrix, iterations int) (Series, error) {
	if err := validateNotNil(m); err != nil {
		return Series{}, popErrorf(opRunDeter, err)
	}
	if err := validateCompatible(m, initial); err != nil {
		return Series{}, popErrorf(opRunDeter, err)
	}
	p := &Population{initial: initial, matrices: []*ProjectionMatrix{m}}

	return p.run(m, iterations)
}

// run is the projection loop. Shapes are already validated by the caller.
func (p *Population) run(m *ProjectionMatrix, iterations int) (Series, error) {
	if err := validateIterations(iterations); err != nil {
		return Series{}, popErrorf(opRunDeter, err)
	}

	steps := make([]StageVector, 0, iterations)
	active := p.initial
	for k := 0; k < iterations; k++ {
		next, err := Project(m, active) // O(1) guard per step, then the kernel
		if err != nil {
			return Series{}, popErrorf(opRunDeter, fmt.Errorf("step %d: %w", k+1, err))
		}
		steps = append(steps, next)
		active = next
	}

	return Series{steps: steps, stageCount: m.n}, nil
}
