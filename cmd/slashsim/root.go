package main

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"cosmossdk.io/log"
)

const (
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"
)

// NewRootCmd creates a new root command for slashsim.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "slashsim",
		Short:         "Replay misconduct reports against an in-memory ledger",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String(flagLogLevel, zerolog.InfoLevel.String(), "The logging level (trace|debug|info|warn|error|fatal|panic|disabled)")
	rootCmd.PersistentFlags().String(flagLogFormat, "plain", "The logging format (json|plain)")

	rootCmd.AddCommand(
		runCmd(),
		initCmd(),
	)

	return rootCmd
}

// newLogger builds the logger selected by the persistent flags.
func newLogger(cmd *cobra.Command, out io.Writer) (log.Logger, error) {
	levelStr, err := cmd.Flags().GetString(flagLogLevel)
	if err != nil {
		return nil, err
	}

	level, err := zerolog.ParseLevel(levelStr)
	if err != nil {
		return nil, err
	}

	format, err := cmd.Flags().GetString(flagLogFormat)
	if err != nil {
		return nil, err
	}

	opts := []log.Option{log.LevelOption(level)}
	if format == "json" {
		opts = append(opts, log.OutputJSONOption())
	}

	return log.NewLogger(out, opts...), nil
}
