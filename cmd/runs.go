package cmd

import (
	"fmt"
	"os"

	"github.com/huangsam/dietradar/internal/contract"
	"github.com/huangsam/dietradar/internal/runstore"
	"github.com/huangsam/dietradar/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// runsBackend reads the run log backend and connection string without the
// full shared setup, so no dataset or selection flags get validated.
func runsBackend() (schema.DatabaseBackend, string, error) {
	if err := loadConfigFile(); err != nil {
		return "", "", err
	}
	backend, err := contract.ParseDatabaseBackend(viper.GetString("run-backend"))
	if err != nil {
		return "", "", err
	}
	connStr := viper.GetString("run-db-connect")
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return "", "", err
	}
	return backend, connStr, nil
}

// runsSetup loads minimal configuration and opens the run store.
func runsSetup(_ *cobra.Command, _ []string) error {
	backend, connStr, err := runsBackend()
	if err != nil {
		return err
	}
	if err := runstore.InitStores(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize run log: %w", err)
	}
	cfg.RunBackend = backend
	cfg.RunDBConnect = connStr
	cfg.OutputFile = viper.GetString("output-file")
	return nil
}

// runsMigrateSetup resolves the backend without opening the store, so
// migrations can run against a fresh database.
func runsMigrateSetup(_ *cobra.Command, _ []string) error {
	backend, connStr, err := runsBackend()
	if err != nil {
		return err
	}
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = runstore.GetRunDBFilePath()
	}
	cfg.RunBackend = backend
	cfg.RunDBConnect = connStr
	return nil
}

// runsCmd groups the run log management commands.
//
// Note: runs subcommands use minimal initialization instead of sharedSetup.
var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Manage the run log of past chart computations",
	Long: `Manage the run log that records every table, series and chart computation.

Each run stores:
- Run metadata (command, dataset, shift parameters, duration)
- One point per diet and metric with raw, normalized and shifted values

Supported backends: SQLite, MySQL, PostgreSQL, or None (disabled, the default)

Subcommands:
  status  - Show run log statistics
  export  - Export data to Parquet for analytics
  clear   - Remove all run log data
  migrate - Run database schema migrations

Examples:
  # Record runs locally and check on them
  dietradar table --run-backend sqlite
  dietradar runs status --run-backend sqlite`,
}

// runsStatusCmd shows run log status.
var runsStatusCmd = &cobra.Command{
	Use:     "status",
	Short:   "Display run log statistics and connection details",
	PreRunE: runsSetup,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := runstore.Manager.GetRunStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get run log status", err)
		}
		runstore.PrintRunStatus(os.Stdout, status)
		if cfg.RunBackend == schema.NoneBackend {
			return
		}
		migration, err := runstore.GetMigrationStatus(cfg.RunBackend, cfg.RunDBConnect)
		if err != nil {
			contract.LogWarn("Failed to get migration status", err)
			return
		}
		runstore.PrintMigrationStatus(os.Stdout, migration)
	},
}

// runsExportCmd exports run data to Parquet files.
var runsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the run log to Parquet for BI tools and analytics",
	Long: `Export every stored run and point to two Parquet files.

Requires: --output-file parameter

Examples:
  dietradar runs export --run-backend sqlite --output-file radar
  duckdb -c "SELECT * FROM read_parquet('radar.points.parquet') LIMIT 10"`,
	PreRunE: runsSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := runstore.ExecuteRunsExport(cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export run log", err)
		}
	},
}

// runsMigrateCmd runs database migrations for the run store.
var runsMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the run log.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  dietradar runs migrate --run-backend sqlite

  # Rollback to initial state
  dietradar runs migrate --run-backend sqlite --target-version 0`,
	PreRunE: runsMigrateSetup,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := runstore.MigrateRuns(cfg.RunBackend, cfg.RunDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}

// runsClearCmd clears the run log.
var runsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all run log data",
	Long: `Delete all stored runs and points.

WARNING: This action cannot be undone. Consider exporting data first.`,
	PreRunE: runsMigrateSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := runstore.ClearRuns(cfg.RunBackend, cfg.RunDBConnect, cfg.RunDBConnect); err != nil {
			contract.LogFatal("Failed to clear run log", err)
		}
		fmt.Println("Run log cleared successfully.")
	},
}
