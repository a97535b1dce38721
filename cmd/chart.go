package cmd

import (
	"github.com/huangsam/dietradar/core"
	"github.com/huangsam/dietradar/internal/contract"
	"github.com/spf13/cobra"
)

// tableCmd prints the radar coordinates for every metric.
var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Show shifted radar coordinates per metric and diet",
	Long: `Normalize every metric against its maximum and print the radar coordinates.

Each row is one axis of the radar. Each diet column holds the shifted value,
so a zero lands on the inner ring and the maximum lands just short of the edge.

Examples:
  # Built-in sample dataset
  dietradar table

  # Only a few axes, with raw and normalized values
  dietradar table --metrics calories,fiber,iron --detail

  # Your own dataset as CSV
  dietradar table --dataset my-diet.yaml --output csv --output-file radar.csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTable(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot build chart rows", err)
		}
	},
}

// seriesCmd prints the per-diet series with their opacities.
var seriesCmd = &cobra.Command{
	Use:   "series",
	Short: "Show each diet series with its legend and hover state",
	Long: `Print one line per diet with the fill and stroke opacity it would be drawn with.

Use --hide to toggle diets off as if their legend entry had been clicked, and
--hover to focus one diet while dimming the rest.

Examples:
  # Everything visible, nothing hovered
  dietradar series

  # Hover vegan with the carnivore diet hidden
  dietradar series --hover vegan --hide carnivore`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSeries(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot build series", err)
		}
	},
}

// chartCmd renders the diet radar and similarity radar.
var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Render the diet radar chart as HTML or PNG",
	Long: `Render the category radar next to the similarity radar.

Output modes:
- text or html writes an HTML page (stdout unless --output-file is set)
- png captures the page with headless Chrome and needs --output-file
- json dumps the chart model

Examples:
  # Open in a browser
  dietradar chart --output-file radar.html

  # Static image for a report
  dietradar chart --output png --output-file radar.png --hover keto`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteChart(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot render chart", err)
		}
	},
}

// similarityCmd prints the similarity radar points.
var similarityCmd = &cobra.Command{
	Use:   "similarity",
	Short: "Show how similar each diet is to yours",
	Long: `Print the similarity score of every diet against the user's own diet.

The built-in scores are sample values. A dataset may provide its own list
under the "similarity" key.

Examples:
  dietradar similarity
  dietradar similarity --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSimilarity(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot show similarity", err)
		}
	},
}
