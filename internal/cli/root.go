// Package cli wires the secreport commands.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/codepal/secreport/pkg/logger"
)

var (
	debugMode bool
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "secreport",
	Short: "Consolidate security scan results into a single report",
	Long: `secreport reads the native output files of container vulnerability
scanners, dependency auditors, infrastructure-as-code linters, Kubernetes
posture checkers, SAST and license-compliance tools from a scan-results
directory and consolidates them into one normalized report with summary
counts, recommendations and a compliance verdict, rendered as JSON and
HTML (and PDF when a converter is installed).`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Setup(debugMode, logFormat)
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text or json)")
}
