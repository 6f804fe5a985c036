package cmd

import (
	"github.com/spf13/cobra"
	"github.com/vitalscan/vitalscan/core"
	"github.com/vitalscan/vitalscan/internal/contract"
	"github.com/vitalscan/vitalscan/internal/outwriter"
)

// analyzeCmd runs one or more page analyses and renders the comparison set.
var analyzeCmd = &cobra.Command{
	Use:   "analyze [url]...",
	Short: "Analyze one or more pages' Core Web Vitals",
	Long: `Query the PageSpeed Insights API for each URL, rate the Core Web Vitals
metrics against the published thresholds, and print a comparison table.

Field data (real-user measurements) is preferred per metric; lab data from
the synthetic Lighthouse run fills in where field data is unavailable.

Each successful analysis is appended to the durable history, viewable
later with 'vitalscan history'.

Examples:
  # Analyze a single page with the default mobile strategy
  vitalscan analyze example.com

  # Compare several pages for desktop
  vitalscan analyze -s desktop example.com example.org

  # Emit machine-readable JSON
  vitalscan analyze -o json example.com`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, args []string) error {
		urls := make([]string, 0, len(args))
		for _, arg := range args {
			// Empty submissions are silently ignored, not errors.
			if u := core.NormalizeURL(arg); u != "" {
				urls = append(urls, u)
			}
		}
		if len(urls) == 0 {
			return nil
		}

		outcomes := core.RunAnalyses(rootCtx, psiClient, urls, cfg.Strategy, cfg.Workers)
		for _, outcome := range outcomes {
			if outcome.Err != nil {
				// Provider failures are surfaced and skipped; they never
				// touch session or history state.
				contract.LogWarn("analyzing "+outcome.URL, outcome.Err)
				continue
			}
			sessionResults.Add(outcome.Record)
			if err := historyStore.Append(outcome.Record); err != nil {
				contract.LogWarn("persisting record for "+outcome.URL, err)
			}
		}

		if sessionResults.Len() == 0 {
			return nil
		}
		return outwriter.WriteSessionResults(sessionResults.Records(), cfg)
	},
}
