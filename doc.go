// Package ecolysis is a toolkit for stage-structured Population Viability
// Analysis (PVA): project a population distributed across life stages
// forward in time with a projection matrix and study the result.
//
// 🚀 What is inside?
//
//	• population: StageVector, ProjectionMatrix, Project, Population runs
//	• analysis: growth rate λ, stable stage distribution, run summaries
//	• csvio: CSV vectors/matrices in, delimited series out
//	• scenario: YAML scenario files
//	• config: ECOLYSIS_* environment settings
//	• logging: leveled slog logger for the command layer
//	• cmd/ecolysis: the command-line tool
//
// Quick ASCII example (one step, rows = destination stage):
//
//	[ 40]   [0  , 0  , 0.1 ]   [ 10]
//	[ 20] → [0.6, 0.8, 0   ] = [ 40]
//	[100]   [0  , 0.8, 0.95]   [111]
//
// Only deterministic projection is implemented; a stochastic run is a
// declared mode that reports population.ErrUnsupportedMode.
//
//	go install github.com/katalvlaran/ecolysis/cmd/ecolysis@latest
package ecolysis
