package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/katalvlaran/ecolysis/config"
	"github.com/katalvlaran/ecolysis/logging"
	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ecolysis",
		Short: "Stage-structured population viability analysis",
		Long: `ecolysis projects a stage-structured population forward in time
with a projection matrix (deterministic PVA).

Inputs come from a YAML scenario (--scenario) or from CSV files holding the
initial stage vector (--vector) and the projection matrix (--matrix).`,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (default $ECOLYSIS_LOG_LEVEL or info)")
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(),
		newGrowthCmd(),
	)

	return rootCmd
}

// settings merges the environment with the global flags.
func settings(cmd *cobra.Command) (config.Env, *slog.Logger, error) {
	cfg, err := config.LoadEnv()
	if err != nil {
		return config.Env{}, nil, err
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.LogLevel = lvl
	}
	return cfg, logging.NewLogger(cfg.LogLevel, cmd.ErrOrStderr()), nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return writeJSON(cmd, map[string]string{"version": version})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ecolysis version %s\n", version)
			return nil
		},
	}
}
