package main

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ecolysis/analysis"
	"github.com/katalvlaran/ecolysis/population"
	"github.com/spf13/cobra"
)

func newGrowthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "growth",
		Short: "Report the asymptotic growth rate and stable stage distribution",
		Long: `Estimate the dominant eigenvalue (lambda) of the projection matrix by power
iteration, together with the stable stage distribution.

lambda > 1 means long-run growth, lambda < 1 long-run decline.`,
		Args: cobra.NoArgs,
		RunE: runGrowth,
	}

	addInputFlags(cmd)
	cmd.Flags().Float64("tolerance", analysis.DefaultTolerance, "Convergence tolerance")
	cmd.Flags().Int("max-iterations", analysis.DefaultMaxIterations, "Power iteration cap")

	return cmd
}

type growthOutput struct {
	Lambda     float64            `json:"lambda"`
	Stable     map[string]float64 `json:"stable"`
	Iterations int                `json:"iterations"`
}

func runGrowth(cmd *cobra.Command, args []string) error {
	_, log, err := settings(cmd)
	if err != nil {
		return err
	}

	s, err := loadScenario(cmd, false)
	if err != nil {
		return err
	}
	m, err := population.Build(s.Matrix)
	if err != nil {
		return err
	}

	tol, _ := cmd.Flags().GetFloat64("tolerance")
	maxIter, _ := cmd.Flags().GetInt("max-iterations")
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		return fmt.Errorf("--tolerance must be finite and positive, got %g", tol)
	}
	if maxIter <= 0 {
		return fmt.Errorf("--max-iterations must be positive, got %d", maxIter)
	}

	g, err := analysis.GrowthRate(m, analysis.WithTolerance(tol), analysis.WithMaxIterations(maxIter))
	if err != nil {
		return err
	}
	log.Debug("power iteration converged", "iterations", g.Iterations, "lambda", g.Lambda)

	names := stageNames(s.Stages, m.StageCount())
	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		out := growthOutput{Lambda: g.Lambda, Stable: make(map[string]float64, len(names)), Iterations: g.Iterations}
		for i, name := range names {
			out.Stable[name], _ = g.Stable.At(i)
		}
		return writeJSON(cmd, out)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "lambda: %.6f\n", g.Lambda)
	fmt.Fprintln(w, "stable stage distribution:")
	for i, name := range names {
		x, _ := g.Stable.At(i)
		fmt.Fprintf(w, "  %s: %.6f\n", name, x)
	}
	return nil
}

// stageNames returns names when it matches n, otherwise stage0..stageN-1.
func stageNames(names []string, n int) []string {
	if len(names) == n {
		return names
	}
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("stage%d", i)
	}
	return out
}
