package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/dietradar/internal/contract"
	"github.com/huangsam/dietradar/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// MetricDefinition describes one radar axis for the metrics command.
type MetricDefinition struct {
	Index    int           `json:"index"`
	Metric   schema.Metric `json:"metric"`
	Label    string        `json:"label"`
	MaxValue float64       `json:"max_value"`
	Key      string        `json:"key"` // Preferred dataset field
}

// BuildMetricDefinitions lists the configured metrics with their effective maxima.
func BuildMetricDefinitions(cfg *contract.Config) []MetricDefinition {
	metrics := cfg.Metrics
	if len(metrics) == 0 {
		metrics = schema.AllMetrics
	}
	maxValues := cfg.MaxValues
	if maxValues == nil {
		maxValues = schema.DefaultMaxValues
	}

	defs := make([]MetricDefinition, len(metrics))
	for i, m := range metrics {
		key := schema.GramsPerDayKey(m)
		if isPercentMetric(m) {
			key = string(m)
		}
		defs[i] = MetricDefinition{
			Index:    i + 1,
			Metric:   m,
			Label:    schema.MetricDisplayName(m),
			MaxValue: maxValues[m],
			Key:      key,
		}
	}
	return defs
}

// isPercentMetric reports whether m is a macro share rather than a daily quantity.
func isPercentMetric(m schema.Metric) bool {
	return m == schema.FatPct || m == schema.CarbsPct || m == schema.ProteinPct
}

// WriteMetricDefinitions displays every configured metric with its label and max value.
func WriteMetricDefinitions(cfg *contract.Config) error {
	defs := BuildMetricDefinitions(cfg)
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, defs)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{"index", "metric", "label", "max_value", "key"}, func(cw *csv.Writer) error {
				for _, d := range defs {
					rec := []string{fmt.Sprintf(intFmt, d.Index), string(d.Metric), d.Label, fmtFloat(d.MaxValue), d.Key}
					if err := cw.Write(rec); err != nil {
						return fmt.Errorf("failed to write CSV record: %w", err)
					}
				}
				return nil
			})
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("output %s is not supported for metrics", cfg.Output)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMetricsTable(w, defs, fmtFloat)
		}, "Wrote text")
	}
}

// writeMetricsTable writes the metric definitions with the normalization formula.
func writeMetricsTable(w io.Writer, defs []MetricDefinition, fmtFloat func(float64) string) error {
	if _, err := fmt.Fprintf(w, "🥗 Diet Radar Metrics\n====================\n\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Each value is normalized as value/max*100, then shifted to min + factor*n.\n\n"); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"#", "Metric", "Key", "Max"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, d := range defs {
		data = append(data, []string{strconv.Itoa(d.Index), d.Label, d.Key, fmtFloat(d.MaxValue)})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
