// Package outwriter has output and writer logic.
package outwriter

import (
	"io"

	"github.com/huangsam/dietradar/internal/contract"
	"github.com/huangsam/dietradar/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteRows prints chart rows using the configured output format.
func (ow *OutWriter) WriteRows(rows []schema.ChartRow, cfg *contract.Config) error {
	return WriteChartRows(rows, cfg)
}

// WriteSeries prints per-diet series descriptors using the configured output format.
func (ow *OutWriter) WriteSeries(series []schema.RadarSeries, cfg *contract.Config) error {
	return WriteSeriesResults(series, cfg)
}

// WriteSimilarity prints similarity points using the configured output format.
func (ow *OutWriter) WriteSimilarity(points []schema.SimilarityPoint, cfg *contract.Config) error {
	return WriteSimilarityPoints(points, cfg)
}

// WriteMetrics prints the metric definitions using the configured output format.
func (ow *OutWriter) WriteMetrics(cfg *contract.Config) error {
	return WriteMetricDefinitions(cfg)
}

// WriteModel prints the full chart model as JSON.
func (ow *OutWriter) WriteModel(model schema.ChartModel, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, model)
	}, "Wrote JSON")
}
