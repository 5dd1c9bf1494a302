package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/ecolysis/csvio"
	"github.com/katalvlaran/ecolysis/scenario"
	"github.com/spf13/cobra"
)

// addInputFlags registers the flags shared by run and growth.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().String("scenario", "", "YAML scenario file")
	cmd.Flags().String("vector", "", "CSV file with the initial stage vector")
	cmd.Flags().String("matrix", "", "CSV file with the projection matrix (one row per line)")
	cmd.Flags().Bool("skip-header", false, "Ignore the first line of CSV inputs")
}

// loadScenario builds a scenario from --scenario, or from --vector and
// --matrix. needVector is false for commands that only use the matrix.
func loadScenario(cmd *cobra.Command, needVector bool) (*scenario.Scenario, error) {
	path, _ := cmd.Flags().GetString("scenario")
	vecPath, _ := cmd.Flags().GetString("vector")
	matPath, _ := cmd.Flags().GetString("matrix")

	if path != "" {
		if vecPath != "" || matPath != "" {
			return nil, fmt.Errorf("--scenario cannot be combined with --vector or --matrix")
		}
		return scenario.Load(path)
	}
	if matPath == "" || (needVector && vecPath == "") {
		if needVector {
			return nil, fmt.Errorf("either --scenario or both --vector and --matrix are required")
		}
		return nil, fmt.Errorf("either --scenario or --matrix is required")
	}

	var opts []csvio.Option
	if skip, _ := cmd.Flags().GetBool("skip-header"); skip {
		opts = append(opts, csvio.WithSkipHeader())
	}

	rows, err := readCSV(matPath, func(r io.Reader) ([][]float64, error) { return csvio.ReadMatrix(r, opts...) })
	if err != nil {
		return nil, err
	}
	s := &scenario.Scenario{Name: matPath, Matrix: rows}

	if vecPath != "" {
		v, err := readCSV(vecPath, func(r io.Reader) ([]float64, error) { return csvio.ReadVector(r, opts...) })
		if err != nil {
			return nil, err
		}
		s.Initial = v
	}
	return s, nil
}

func readCSV[T any](path string, read func(io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		return zero, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	out, err := read(f)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
