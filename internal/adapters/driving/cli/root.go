// Package cli is the cobra command surface of shiftsync.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/shiftsync/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	flagVerbose bool
	flagConfig  string
	flagDataDir string
)

var rootCmd = &cobra.Command{
	Use:   "shiftsync",
	Short: "Sync work-schedule notification emails into Google Calendar",
	Long: `shiftsync reads recent work-schedule notification emails, extracts
shifts from the embedded schedule table, and reconciles them into
Google Calendar exactly once. Re-runs are idempotent: events are
addressed by a fingerprint of each shift's date and time boundaries.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(flagVerbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "",
		"path to the settings file (default ~/.shiftsync/config.toml)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "",
		"directory for local run history (default ~/.shiftsync/data)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
