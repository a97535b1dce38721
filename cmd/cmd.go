// Package cmd defines the command-line interface for dietradar.
package cmd

import (
	"github.com/huangsam/dietradar/internal/contract"
	"github.com/huangsam/dietradar/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(seriesCmd)
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(similarityCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the runs subcommands to the parent runs command
	runsCmd.AddCommand(runsStatusCmd)
	runsCmd.AddCommand(runsExportCmd)
	runsCmd.AddCommand(runsMigrateCmd)
	runsCmd.AddCommand(runsClearCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("dataset", "", "Path to a JSON, YAML or TOML dataset file (default: built-in sample)")
	rootCmd.PersistentFlags().Bool("detail", false, "Include raw and normalized values next to the radar coordinates")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet or html or png")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Float64("shift-min", schema.ShiftMin, "Radial position of a zero value")
	rootCmd.PersistentFlags().Float64("shift-factor", schema.ShiftFactor, "Scale applied to normalized values before the shift")
	rootCmd.PersistentFlags().String("metrics", "", "Comma-separated metric subset, in axis order (default: all)")
	rootCmd.PersistentFlags().String("hide", "", "Comma-separated diets to toggle off in the legend")
	rootCmd.PersistentFlags().String("hover", "", "Diet to hover, dimming the others")
	rootCmd.PersistentFlags().String("run-backend", string(schema.NoneBackend), "Run log backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("run-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of serveCmd to Viper
	serveCmd.Flags().String("addr", contract.DefaultServerAddr, "Listen address for the view server")
	serveCmd.Flags().Bool("watch", false, "Reload the dataset file when it changes")
	if err := viper.BindPFlags(serveCmd.Flags()); err != nil {
		contract.LogFatal("Error binding serve flags", err)
	}

	// Bind all flags of runsMigrateCmd to Viper
	runsMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(runsMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding runs migrate flags", err)
	}
}
