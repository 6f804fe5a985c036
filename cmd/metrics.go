package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vitalscan/vitalscan/internal/contract"
	"github.com/vitalscan/vitalscan/internal/outwriter"
	"github.com/vitalscan/vitalscan/schema"
)

// metricsCmd prints the static threshold reference table.
var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Show the Core Web Vitals threshold table",
	Long: `Display the per-metric classification thresholds vitalscan rates against.

A value at or below the good boundary rates Good; at or below the poor
boundary rates Needs Improvement; above it rates Poor.

Examples:
  # Print the threshold table
  vitalscan metrics

  # As JSON
  vitalscan metrics -o json`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		// No storage or provider access needed; just output settings.
		if err := loadConfigFile(); err != nil {
			return err
		}
		cfg.Output = schema.OutputMode(viper.GetString("output"))
		cfg.OutputFile = viper.GetString("output-file")
		return nil
	},
	Run: func(_ *cobra.Command, _ []string) {
		if err := outwriter.WriteThresholds(cfg); err != nil {
			contract.LogFatal("Failed to write threshold table", err)
		}
	},
}
