package cmd

import (
	"github.com/huangsam/dietradar/core"
	"github.com/huangsam/dietradar/internal/contract"
	"github.com/spf13/cobra"
)

// metricsCmd displays every radar axis with its maximum and dataset keys.
var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Display the radar axes, their maxima and the dataset keys they read",
	Long: `Show every metric that can appear on the radar.

For each metric this lists:
- The axis label
- The maximum used for normalization (defaults merged with config overrides)
- The dataset keys looked up, per-day key first

No dataset is loaded - this is purely informational.

Examples:
  # Show default maxima
  dietradar metrics

  # View with custom maxima from config file
  dietradar metrics --config .dietradar.yaml`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteMetrics(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot display metrics", err)
		}
	},
}
