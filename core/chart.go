package core

import "github.com/huangsam/dietradar/schema"

// ChartOptions controls which metrics and diets land in the row table and how
// their values are scaled.
type ChartOptions struct {
	Metrics   []schema.Metric
	Diets     []schema.Diet
	MaxValues map[schema.Metric]float64
	Shifter   Shifter
	Detail    bool // keep raw and normalized values on each row
}

// DefaultChartOptions covers every metric and diet with the built-in maxima.
func DefaultChartOptions() ChartOptions {
	return ChartOptions{
		Metrics:   schema.AllMetrics,
		Diets:     schema.AllDiets,
		MaxValues: schema.DefaultMaxValues,
		Shifter:   DefaultShifter,
	}
}

// withDefaults fills zero-valued fields from DefaultChartOptions.
func (o ChartOptions) withDefaults() ChartOptions {
	def := DefaultChartOptions()
	if len(o.Metrics) == 0 {
		o.Metrics = def.Metrics
	}
	if len(o.Diets) == 0 {
		o.Diets = def.Diets
	}
	if o.MaxValues == nil {
		o.MaxValues = def.MaxValues
	}
	if o.Shifter == (Shifter{}) {
		o.Shifter = def.Shifter
	}
	return o
}

// BuildChartRows turns a dataset into one render-ready row per metric.
// A diet missing from the dataset, or a metric without a max entry, lands on
// Shift(0). The function never fails.
func BuildChartRows(ds *schema.Dataset, opts ChartOptions) []schema.ChartRow {
	opts = opts.withDefaults()
	rows := make([]schema.ChartRow, 0, len(opts.Metrics))

	for _, m := range opts.Metrics {
		row := schema.ChartRow{
			Metric:     m,
			Label:      schema.MetricDisplayName(m),
			Values:     make(map[schema.Diet]float64, len(opts.Diets)),
			CenterFill: schema.CenterFillRadius,
		}
		if opts.Detail {
			row.Raw = make(map[schema.Diet]float64, len(opts.Diets))
			row.Normalized = make(map[schema.Diet]float64, len(opts.Diets))
		}

		// A missing key in MaxValues reads as 0 and normalizes to 0.
		maxValue := opts.MaxValues[m]
		for _, d := range opts.Diets {
			raw, _ := RawValue(ds.Record(d), m)
			n := Normalize(raw, maxValue)
			row.Values[d] = opts.Shifter.Shift(n)
			if opts.Detail {
				row.Raw[d] = raw
				row.Normalized[d] = n
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// MergeMaxValues overlays overrides on top of base and returns a new map.
// Non-positive overrides are ignored.
func MergeMaxValues(base, overrides map[schema.Metric]float64) map[schema.Metric]float64 {
	out := make(map[schema.Metric]float64, len(base)+len(overrides))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overrides {
		if v > 0 && isFinite(v) {
			out[k] = v
		}
	}
	return out
}
