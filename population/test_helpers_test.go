// SPDX-License-Identifier: MIT
// Package population_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the population tests.
//   • Keep all data finite and well-formed unless a test says otherwise.

package population_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ecolysis/population"
	"github.com/stretchr/testify/require"
)

// threeStageRows is the hatchling/juvenile/adult matrix used across tests.
func threeStageRows() [][]float64 {
	return [][]float64{
		{0.0, 0.0, 0.1},
		{0.6, 0.8, 0.0},
		{0.0, 0.8, 0.95},
	}
}

// threeStageInitial is the initial vector paired with threeStageRows.
func threeStageInitial() []float64 { return []float64{40.0, 20.0, 100.0} }

// mustMatrix builds a matrix or fails the test.
func mustMatrix(t testing.TB, rows [][]float64) *population.ProjectionMatrix {
	t.Helper()
	m, err := population.Build(rows)
	require.NoError(t, err)

	return m
}

// round1 rounds every value to one decimal place to absorb float noise.
func round1(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = math.Round(x*10) / 10
	}

	return out
}
