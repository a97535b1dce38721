// Package contract provides interfaces and shared utilities for dietradar's internal architecture.
package contract

import (
	"time"

	"github.com/huangsam/dietradar/schema"
)

// StoreManager defines the interface for managing persistence stores.
// This allows the store layer to be mocked for testing.
type StoreManager interface {
	GetRunStore() RunStore
}

// RunStore defines the interface for logging computed chart runs.
// Only derived rows are stored; interaction state never is.
type RunStore interface {
	// BeginRun creates a new run and returns its unique ID
	BeginRun(run schema.RunRecord) (int64, error)

	// RecordPoints stores computed (metric, diet) coordinates for a run
	RecordPoints(runID int64, points []schema.PointRecord) error

	// EndRun updates the run with completion data
	EndRun(runID int64, endTime time.Time, rowCount int) error

	// GetStatus returns status information about the run store
	GetStatus() (schema.RunLogStatus, error)

	// GetAllRuns retrieves every stored run
	GetAllRuns() ([]schema.RunRecord, error)

	// GetAllPoints retrieves every stored point
	GetAllPoints() ([]schema.PointRecord, error)

	// Close closes the underlying connection
	Close() error
}
