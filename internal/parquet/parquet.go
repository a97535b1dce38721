// Package parquet provides data structures and functions for exporting dietradar
// chart data and run logs to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/huangsam/dietradar/schema"
	"github.com/parquet-go/parquet-go"
)

// ChartPoint is one (metric, diet) coordinate of the radar.
// This struct backs the --output parquet mode of the table command.
type ChartPoint struct {
	// Metric is the metric identifier, e.g. red_meat
	Metric string `parquet:"metric,snappy,dict"`

	// Label is the display name of the metric
	Label string `parquet:"label,snappy,dict"`

	// Diet is the diet identifier, e.g. user_diet
	Diet string `parquet:"diet,snappy,dict"`

	// Value is the shifted radial coordinate
	Value float64 `parquet:"value,snappy"`

	// RawValue is only set when detail output was requested
	RawValue *float64 `parquet:"raw_value,optional,snappy"`

	// Normalized is only set when detail output was requested
	Normalized *float64 `parquet:"normalized,optional,snappy"`
}

// Run represents a single chart run with metadata.
// This struct maps to the dietradar_runs database table.
type Run struct {
	RunID         int64      `parquet:"run_id,snappy"`
	Command       string     `parquet:"command,snappy,dict"`
	StartTime     time.Time  `parquet:"start_time,snappy"`
	EndTime       *time.Time `parquet:"end_time,optional,snappy"`
	RunDurationMs *int32     `parquet:"run_duration_ms,optional,snappy"`
	DatasetSource string     `parquet:"dataset_source,snappy"`
	ShiftMin      float64    `parquet:"shift_min,snappy"`
	ShiftFactor   float64    `parquet:"shift_factor,snappy"`
	RowCount      int32      `parquet:"row_count,snappy"`
}

// Point represents one computed coordinate stored for a run.
// This struct maps to the dietradar_points database table.
type Point struct {
	RunID      int64   `parquet:"run_id,snappy"`
	Metric     string  `parquet:"metric,snappy,dict"`
	Diet       string  `parquet:"diet,snappy,dict"`
	RawValue   float64 `parquet:"raw_value,snappy"`
	Normalized float64 `parquet:"normalized,snappy"`
	Shifted    float64 `parquet:"shifted,snappy"`
}

// writeFile writes rows of any struct type to a Parquet file at outputPath.
// The schema is derived from the struct tags of T.
func writeFile[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// WriteChartPointsParquet writes chart coordinates to a Parquet file.
func WriteChartPointsParquet(data []ChartPoint, outputPath string) error {
	return writeFile(data, outputPath)
}

// WriteRunsParquet writes run metadata to a Parquet file.
func WriteRunsParquet(data []Run, outputPath string) error {
	return writeFile(data, outputPath)
}

// WritePointsParquet writes stored run points to a Parquet file.
func WritePointsParquet(data []Point, outputPath string) error {
	return writeFile(data, outputPath)
}

// ConvertChartRows flattens chart rows into one ChartPoint per (metric, diet),
// in metric order then diet order.
func ConvertChartRows(rows []schema.ChartRow, diets []schema.Diet) []ChartPoint {
	result := make([]ChartPoint, 0, len(rows)*len(diets))
	for _, row := range rows {
		for _, d := range diets {
			v, ok := row.Values[d]
			if !ok {
				continue
			}
			point := ChartPoint{
				Metric: string(row.Metric),
				Label:  row.Label,
				Diet:   string(d),
				Value:  v,
			}
			if raw, ok := row.Raw[d]; ok {
				point.RawValue = &raw
			}
			if n, ok := row.Normalized[d]; ok {
				point.Normalized = &n
			}
			result = append(result, point)
		}
	}
	return result
}

// ConvertRunRecords converts schema.RunRecord to Run for Parquet export.
func ConvertRunRecords(records []schema.RunRecord) []Run {
	result := make([]Run, len(records))
	for i, record := range records {
		result[i] = Run{
			RunID:         record.RunID,
			Command:       record.Command,
			StartTime:     record.StartTime,
			EndTime:       record.EndTime,
			RunDurationMs: record.RunDurationMs,
			DatasetSource: record.DatasetSource,
			ShiftMin:      record.ShiftMin,
			ShiftFactor:   record.ShiftFactor,
			RowCount:      record.RowCount,
		}
	}
	return result
}

// ConvertPointRecords converts schema.PointRecord to Point for Parquet export.
func ConvertPointRecords(records []schema.PointRecord) []Point {
	result := make([]Point, len(records))
	for i, record := range records {
		result[i] = Point(record)
	}
	return result
}
