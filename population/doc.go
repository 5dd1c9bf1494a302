// Package population implements deterministic, stage-structured population
// projection for Population Viability Analysis (PVA).
//
// 🚀 What is inside?
//
//	• StageVector: immutable counts per life stage (index = stage id)
//	• ProjectionMatrix: validated square matrix of transition/recruitment rates
//	• Project: one time step: n(t+1) = A · n(t)
//	• Population: initial vector + matrix, validated once, run many times
//	• Series: the time series produced by a run (initial vector excluded)
//
// Matrix semantics:
//
//	entry [i][j] is the rate at which individuals of source stage j
//	contribute to destination stage i in one time step.
//
//	[ 40]   [0  , 0  , 0.1 ]   [ 10]
//	[ 20] → [0.6, 0.8, 0   ] = [ 40]
//	[100]   [0  , 0.8, 0.95]   [111]
//
// Determinism & policy:
//   - All values are immutable after construction; inputs are copied in and
//     accessors copy out, so no caller can alter a matrix or vector in place.
//   - Shape is validated at construction (Build, New). The projection kernel
//     runs a single dimension guard at its entry and never re-checks bounds.
//   - Summation is float64, row-major, left to right. No zero-skipping.
//   - Errors are package sentinels wrapped with call-site context; match them
//     with errors.Is. Nothing in this package panics on user input.
//
// Only the deterministic mode is implemented. Stochastic is modelled as a
// Mode value whose run reports ErrUnsupportedMode.
//
// The package performs no I/O and never logs; see csvio and scenario for the
// input/output collaborators and cmd/ecolysis for the command-line tool.
package population
