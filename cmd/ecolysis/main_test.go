package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/ecolysis/population"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func testdata(name string) string { return filepath.Join("testdata", name) }

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "ecolysis version "+version+"\n", out)

	out, err = execute(t, "version", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"version": "`+version+`"`)
}

func TestRun_Scenario(t *testing.T) {
	out, err := execute(t, "run", "--scenario", testdata("loggerhead.yaml"), "--precision", "1")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, "10.0, 40.0, 111.0", lines[0])
	assert.Equal(t, "24.9, 50.8, 273.5", lines[7])
}

func TestRun_CSV(t *testing.T) {
	out, err := execute(t, "run",
		"--vector", testdata("initial.csv"),
		"--matrix", testdata("matrix.csv"),
		"--iterations", "1")
	require.NoError(t, err)
	assert.Equal(t, "10, 40, 111\n", out)
}

func TestRun_HeaderDelimiterSummary(t *testing.T) {
	out, err := execute(t, "run", "--scenario", testdata("loggerhead.yaml"),
		"--iterations", "1", "--header", "--delimiter", ";", "--summary")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "hatchling;juvenile;adult\n10;40;111\n"))
	assert.Contains(t, out, "final total: 161")
}

func TestRun_ZeroIterations(t *testing.T) {
	out, err := execute(t, "run", "--scenario", testdata("loggerhead.yaml"), "--iterations", "0")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRun_JSON(t *testing.T) {
	out, err := execute(t, "run", "--scenario", testdata("loggerhead.yaml"), "--json", "--iterations", "1", "--summary")
	require.NoError(t, err)

	var got runOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "loggerhead", got.Name)
	assert.Equal(t, []string{"hatchling", "juvenile", "adult"}, got.Stages)
	require.Len(t, got.Steps, 1)
	assert.InDeltaSlice(t, []float64{10, 40, 111}, got.Steps[0], 1e-9)
	require.NotNil(t, got.Summary)
	assert.InDelta(t, 161.0, got.Summary.FinalTotal, 1e-9)
	require.NotNil(t, got.Summary.Change)
	assert.InDelta(t, 161.0/160.0, *got.Summary.Change, 1e-9)
}

func TestRun_JSONSummaryZeroTotal(t *testing.T) {
	out, err := execute(t, "run",
		"--vector", testdata("zero.csv"),
		"--matrix", testdata("matrix.csv"),
		"--iterations", "1", "--json", "--summary")
	require.NoError(t, err)
	assert.Contains(t, out, `"change": null`)

	var got runOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.NotNil(t, got.Summary)
	assert.Nil(t, got.Summary.Change)
	assert.Zero(t, got.Summary.FinalTotal)
}

func TestRun_Errors(t *testing.T) {
	_, err := execute(t, "run")
	require.Error(t, err)

	_, err = execute(t, "run", "--scenario", testdata("loggerhead.yaml"), "--matrix", testdata("matrix.csv"))
	require.Error(t, err)

	_, err = execute(t, "run", "--vector", testdata("initial.csv"), "--matrix", testdata("not_square.csv"), "--iterations", "1")
	require.ErrorIs(t, err, population.ErrNotSquare)

	_, err = execute(t, "run", "--scenario", testdata("loggerhead.yaml"), "--stochastic")
	require.ErrorIs(t, err, population.ErrUnsupportedMode)

	_, err = execute(t, "run", "--scenario", testdata("loggerhead.yaml"), "--precision", "-5")
	require.Error(t, err)

	out, err := execute(t, "run", "--vector", testdata("initial.csv"), "--matrix", testdata("matrix.csv"))
	require.ErrorContains(t, err, "--iterations is required")
	assert.Empty(t, out)
}

func TestGrowth(t *testing.T) {
	out, err := execute(t, "growth", "--matrix", testdata("matrix.csv"))
	require.NoError(t, err)
	assert.Contains(t, out, "lambda: 1.097200")
	assert.Contains(t, out, "stage2: 0.784227")

	out, err = execute(t, "growth", "--scenario", testdata("loggerhead.yaml"), "--json")
	require.NoError(t, err)
	var got growthOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.InDelta(t, 1.0972, got.Lambda, 1e-4)
	assert.InDelta(t, 0.7842, got.Stable["adult"], 1e-4)
}

func TestGrowth_Errors(t *testing.T) {
	_, err := execute(t, "growth")
	require.Error(t, err)

	for _, tol := range []string{"0", "-1", "NaN", "Inf", "-Inf"} {
		_, err = execute(t, "growth", "--matrix", testdata("matrix.csv"), "--tolerance", tol)
		require.ErrorContains(t, err, "--tolerance must be finite and positive", "tolerance %s", tol)
	}

	_, err = execute(t, "growth", "--matrix", testdata("matrix.csv"), "--max-iterations", "0")
	require.ErrorContains(t, err, "--max-iterations must be positive")
}

func TestLogLevelFlag(t *testing.T) {
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{"run", "--scenario", testdata("loggerhead.yaml"), "--log-level", "debug", "--iterations", "1"})
	require.NoError(t, root.Execute())
	assert.Contains(t, errOut.String(), "projecting population")
	assert.Contains(t, errOut.String(), "projection complete")
}
