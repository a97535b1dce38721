package schema

import "time"

// RunRecord represents a row from the dietradar_runs table.
type RunRecord struct {
	RunID         int64
	Command       string
	StartTime     time.Time
	EndTime       *time.Time
	RunDurationMs *int32
	DatasetSource string
	ShiftMin      float64
	ShiftFactor   float64
	RowCount      int32
}

// PointRecord represents a row from the dietradar_points table: one computed
// coordinate for a (metric, diet) pair in a run.
type PointRecord struct {
	RunID      int64
	Metric     string
	Diet       string
	RawValue   float64
	Normalized float64
	Shifted    float64
}
