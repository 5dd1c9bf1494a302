package population_test

import (
	"testing"

	"github.com/katalvlaran/ecolysis/population"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuild_ShapeErrors covers every shape sentinel in priority order.
func TestBuild_ShapeErrors(t *testing.T) {
	cases := []struct {
		name string
		rows [][]float64
		want error
	}{
		{"nil", nil, population.ErrEmptyMatrix},
		{"empty", [][]float64{}, population.ErrEmptyMatrix},
		{"two by three", [][]float64{{0.5, 0.7, 0.3}, {0.1, 0.11, 0.6}}, population.ErrNotSquare},
		{"empty first row", [][]float64{{}, {1}}, population.ErrNotSquare},
		{"ragged third row", [][]float64{{0.5, 0.7, 0.3}, {0.1, 0.11, 0.6}, {0.2, 0.91}}, population.ErrRaggedRows},
		{"ragged middle row", [][]float64{{1, 2}, {3}}, population.ErrRaggedRows},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := population.Build(tc.rows)
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, m)
		})
	}
}

// TestBuild_Valid checks stage count, accessors and out-of-range At.
func TestBuild_Valid(t *testing.T) {
	m := mustMatrix(t, threeStageRows())

	require.Equal(t, 3, m.StageCount())
	assert.Equal(t, threeStageRows(), m.Rows())

	x, err := m.At(2, 2)
	require.NoError(t, err)
	assert.Equal(t, 0.95, x)

	_, err = m.At(3, 0)
	require.ErrorIs(t, err, population.ErrOutOfRange)
	_, err = m.At(0, -1)
	require.ErrorIs(t, err, population.ErrOutOfRange)

	row, ok := m.Row(1)
	require.True(t, ok)
	assert.Equal(t, []float64{0.6, 0.8, 0.0}, row)
	_, ok = m.Row(3)
	assert.False(t, ok)
}

// TestBuild_AnyRealValue confirms only shape is validated, not range.
func TestBuild_AnyRealValue(t *testing.T) {
	m, err := population.Build([][]float64{{-2, 12.5}, {0, 1e6}})
	require.NoError(t, err)
	assert.Equal(t, 2, m.StageCount())
}

// TestBuild_CopiesInput ensures later edits to the caller's rows, or to
// the Rows() result, never reach the matrix.
func TestBuild_CopiesInput(t *testing.T) {
	rows := threeStageRows()
	m := mustMatrix(t, rows)

	rows[0][2] = 42
	got := m.Rows()
	got[1][0] = 42

	assert.Equal(t, threeStageRows(), m.Rows())
}

// TestMustBuild_Panics documents the fixture helper.
func TestMustBuild_Panics(t *testing.T) {
	assert.Panics(t, func() { population.MustBuild(nil) })
	assert.NotPanics(t, func() { population.MustBuild([][]float64{{1}}) })
}

// TestProjectionMatrix_String renders one row per line.
func TestProjectionMatrix_String(t *testing.T) {
	m := mustMatrix(t, threeStageRows())
	assert.Equal(t, "[0, 0, 0.1]\n[0.6, 0.8, 0]\n[0, 0.8, 0.95]", m.String())
}
