package schema

import "time"

// RunLogStatus represents the status of the run log store.
type RunLogStatus struct {
	Backend       string           `json:"backend"`
	Connected     bool             `json:"connected"`
	TotalRuns     int              `json:"total_runs"`
	TotalPoints   int              `json:"total_points"`
	LastRunID     int64            `json:"last_run_id"`
	LastRunTime   time.Time        `json:"last_run_time"`
	OldestRunTime time.Time        `json:"oldest_run_time"`
	TableSizes    map[string]int64 `json:"table_sizes"`
}

// MigrationStatus reports the schema version of the run log store.
type MigrationStatus struct {
	Backend string `json:"backend"`
	Version uint   `json:"version"`
	Dirty   bool   `json:"dirty"`
}
