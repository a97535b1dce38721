package runstore

import (
	"errors"
	"fmt"

	"github.com/huangsam/dietradar/internal/contract"
	"github.com/huangsam/dietradar/internal/parquet"
)

// ExecuteRunsExport exports the global run log to Parquet files.
func ExecuteRunsExport(outputFile string) error {
	return ExportRuns(Manager.GetRunStore(), outputFile)
}

// ExportRuns writes every run and point in store to "<outputFile>.runs.parquet"
// and "<outputFile>.points.parquet".
func ExportRuns(store contract.RunStore, outputFile string) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}
	if store == nil {
		return errors.New("run log is not configured")
	}

	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get run log status: %w", err)
	}
	if status.TotalRuns == 0 {
		return errors.New("no run data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total runs: %d\n", status.TotalRuns)
	fmt.Printf("Total points: %d\n", status.TotalPoints)

	runs, err := store.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve runs: %w", err)
	}
	points, err := store.GetAllPoints()
	if err != nil {
		return fmt.Errorf("failed to retrieve points: %w", err)
	}

	runsFile := outputFile + ".runs.parquet"
	if err := parquet.WriteRunsParquet(parquet.ConvertRunRecords(runs), runsFile); err != nil {
		return fmt.Errorf("failed to write runs: %w", err)
	}
	fmt.Printf("Exported %d runs to: %s\n", len(runs), runsFile)

	pointsFile := outputFile + ".points.parquet"
	if err := parquet.WritePointsParquet(parquet.ConvertPointRecords(points), pointsFile); err != nil {
		return fmt.Errorf("failed to write points: %w", err)
	}
	fmt.Printf("Exported %d points to: %s\n", len(points), pointsFile)

	return nil
}
