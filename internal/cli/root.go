// Package cli provides the command-line interface for shape-dsv.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool

	// Global logger, configured by the root command before any subcommand
	// runs.
	logger = zerolog.Nop()
)

// Version is set by the main package at startup.
var Version = "dev"

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "shape-dsv",
		Short: "Convert and inspect delimiter-separated text",
		Long: `shape-dsv ` + Version + `
Tolerant reader and writer for the many incompatible CSV dialects in the
wild. Parsing never fails: malformed input is resolved deterministically
instead of rejected.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.InfoLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			logger = zerolog.New(zerolog.ConsoleWriter{
				Out:        os.Stderr,
				TimeFormat: "15:04:05",
			}).Level(level).With().Timestamp().Logger()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output (shows debug messages)")
	rootCmd.Version = Version

	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newDetectCmd())

	return rootCmd
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		logger.Error().Err(err).Msg("command failed")
		return 1
	}
	return 0
}
