package main

import (
	"context"
	"fmt"
	"os"

	"benchledger/internal/config"
	"benchledger/internal/telemetry"

	"github.com/spf13/cobra"
)

var exit = os.Exit

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "benchledger <raw-results-dir>",
		Short: "Normalize raw benchmark timings into a ledger and a parameter report",
		Long: `benchledger reads every raw results file in the given directory. Each file is a
JSON object mapping "<benchmark>_mean_<parameter-set>" to a timing in milliseconds.

Every entry is resolved against the parameter registry, converted to nanoseconds
and written to a flat CSV ledger and a structured report. Any malformed entry or
I/O failure aborts the run.

Configuration comes from benchledger.yaml in the current directory, the file named
by BENCHLEDGER_CONFIG, or BENCHLEDGER_* environment variables.`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Get()
			if err != nil {
				return err
			}
			return runIngest(cmd.Context(), settings, args[0], cmd.OutOrStdout())
		},
	}
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() error {
	if err := config.Load(""); err != nil {
		return err
	}
	if err := config.ValidateConfig(); err != nil {
		return err
	}

	settings, err := config.Get()
	if err != nil {
		return err
	}
	telemetry.InitLogger(settings.Verbose, settings.LogFile)
	return nil
}
