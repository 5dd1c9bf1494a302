package main

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ecolysis/analysis"
	"github.com/katalvlaran/ecolysis/csvio"
	"github.com/katalvlaran/ecolysis/population"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Project a population forward and print every step",
		Long: `Project the initial stage vector forward with the projection matrix and
print one line per step (the initial vector is not printed).

Examples:
  ecolysis run --scenario loggerhead.yaml
  ecolysis run --vector initial.csv --matrix matrix.csv --iterations 8
  ecolysis run --scenario loggerhead.yaml --precision 1 --header`,
		Args: cobra.NoArgs,
		RunE: runProjection,
	}

	addInputFlags(cmd)
	cmd.Flags().Int("iterations", 0, "Number of projection steps (required with --vector and --matrix, overrides the scenario)")
	cmd.Flags().Bool("stochastic", false, "Request a stochastic run (not implemented)")
	cmd.Flags().Int("precision", 0, "Decimals per value, -1 for shortest (default $ECOLYSIS_PRECISION or -1)")
	cmd.Flags().String("delimiter", "", "Value separator (default $ECOLYSIS_DELIMITER or \", \")")
	cmd.Flags().Bool("header", false, "Print stage names as the first line")
	cmd.Flags().Bool("summary", false, "Print totals and overall change after the series")

	return cmd
}

// runOutput is the JSON form of a run.
type runOutput struct {
	Name   string      `json:"name,omitempty"`
	Stages []string    `json:"stages"`
	Steps  [][]float64 `json:"steps"`
	// Summary is only set with --summary.
	Summary *summaryOutput `json:"summary,omitempty"`
}

// summaryOutput is analysis.Summary with Change as null when it is not finite.
type summaryOutput struct {
	Steps        int      `json:"steps"`
	InitialTotal float64  `json:"initial_total"`
	FinalTotal   float64  `json:"final_total"`
	MinTotal     float64  `json:"min_total"`
	MaxTotal     float64  `json:"max_total"`
	Change       *float64 `json:"change"`
}

func newSummaryOutput(s analysis.Summary) *summaryOutput {
	out := &summaryOutput{
		Steps:        s.Steps,
		InitialTotal: s.InitialTotal,
		FinalTotal:   s.FinalTotal,
		MinTotal:     s.MinTotal,
		MaxTotal:     s.MaxTotal,
	}
	if !math.IsNaN(s.Change) && !math.IsInf(s.Change, 0) {
		change := s.Change
		out.Change = &change
	}

	return out
}

func runProjection(cmd *cobra.Command, args []string) error {
	cfg, log, err := settings(cmd)
	if err != nil {
		return err
	}

	s, err := loadScenario(cmd, true)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("iterations") {
		s.Iterations, _ = cmd.Flags().GetInt("iterations")
	} else if scenarioPath, _ := cmd.Flags().GetString("scenario"); scenarioPath == "" {
		return fmt.Errorf("--iterations is required with --vector and --matrix")
	}
	if stochastic, _ := cmd.Flags().GetBool("stochastic"); stochastic {
		s.Mode = population.Stochastic.String()
	}
	if err := s.Validate(); err != nil {
		return err
	}

	log.Debug("projecting population",
		"scenario", s.Name,
		"stages", len(s.Initial),
		"iterations", s.Iterations,
		"mode", s.Mode)

	series, err := s.Run()
	if err != nil {
		return fmt.Errorf("run %s: %w", s.Name, err)
	}
	initial := population.NewStageVector(s.Initial)
	summary := analysis.Summarize(initial, series)
	log.Info("projection complete",
		"steps", summary.Steps,
		"initial_total", summary.InitialTotal,
		"final_total", summary.FinalTotal)

	wantSummary, _ := cmd.Flags().GetBool("summary")
	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		out := runOutput{Name: s.Name, Stages: s.StageNames(), Steps: make([][]float64, 0, series.Len())}
		for _, v := range series.Vectors() {
			out.Steps = append(out.Steps, v.Values())
		}
		if wantSummary {
			out.Summary = newSummaryOutput(summary)
		}
		return writeJSON(cmd, out)
	}

	opts := []csvio.Option{csvio.WithPrecision(cfg.Precision), csvio.WithDelimiter(cfg.Delimiter)}
	if cmd.Flags().Changed("precision") {
		p, _ := cmd.Flags().GetInt("precision")
		if p < -1 {
			return fmt.Errorf("--precision must be >= -1, got %d", p)
		}
		opts = append(opts, csvio.WithPrecision(p))
	}
	if d, _ := cmd.Flags().GetString("delimiter"); d != "" {
		opts = append(opts, csvio.WithDelimiter(d))
	}
	if header, _ := cmd.Flags().GetBool("header"); header {
		opts = append(opts, csvio.WithHeader(s.StageNames()))
	}
	if err := csvio.WriteSeries(cmd.OutOrStdout(), series, opts...); err != nil {
		return err
	}

	if wantSummary {
		fmt.Fprintf(cmd.OutOrStdout(), "\nsteps: %d\ninitial total: %g\nfinal total: %g\nmin total: %g\nmax total: %g\nchange: %g\n",
			summary.Steps, summary.InitialTotal, summary.FinalTotal, summary.MinTotal, summary.MaxTotal, summary.Change)
	}
	return nil
}
