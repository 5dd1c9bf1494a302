package csvio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/ecolysis/csvio"
	"github.com/katalvlaran/ecolysis/population"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeStage(t *testing.T, steps int) population.Series {
	t.Helper()
	m := population.MustBuild([][]float64{{0, 0, 0.1}, {0.6, 0.8, 0}, {0, 0.8, 0.95}})
	s, err := population.RunDeterministic(population.NewStageVector([]float64{40, 20, 100}), m, steps)
	require.NoError(t, err)

	return s
}

func TestWriteSeries_Default(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, csvio.WriteSeries(&buf, threeStage(t, 1)))
	assert.Equal(t, "10, 40, 111\n", buf.String())
}

func TestWriteSeries_PrecisionHeaderDelimiter(t *testing.T) {
	var buf bytes.Buffer
	err := csvio.WriteSeries(&buf, threeStage(t, 8),
		csvio.WithPrecision(1),
		csvio.WithDelimiter(";"),
		csvio.WithHeader([]string{"hatchling", "juvenile", "adult"}),
	)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "hatchling;juvenile;adult", lines[0])
	assert.Equal(t, "10.0;40.0;111.0", lines[1])
	assert.Equal(t, "24.9;50.8;273.5", lines[8])
}

func TestWriteSeries_OptionsResolvedOnce(t *testing.T) {
	calls := 0
	count := func(*csvio.Options) { calls++ }

	var buf bytes.Buffer
	require.NoError(t, csvio.WriteSeries(&buf, threeStage(t, 8), count, csvio.WithPrecision(1)))
	assert.Equal(t, 1, calls)
	assert.Equal(t, 8, strings.Count(buf.String(), "\n"))
}

func TestWriteSeries_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, csvio.WriteSeries(&buf, threeStage(t, 0)))
	assert.Empty(t, buf.String())
}

func TestWriteMatrix_RoundTrip(t *testing.T) {
	m := population.MustBuild([][]float64{{0, 0, 0.1}, {0.6, 0.8, 0}, {0, 0.8, 0.95}})

	var buf bytes.Buffer
	require.NoError(t, csvio.WriteMatrix(&buf, m))

	rows, err := csvio.ReadMatrix(&buf)
	require.NoError(t, err)
	assert.Equal(t, m.Rows(), rows)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { csvio.WithPrecision(-2) })
	assert.Panics(t, func() { csvio.WithDelimiter("") })
}
