// Package schema has constants, models and defaults for all parts of dietradar.
package schema

// NutrientRecord maps a nutrient field to its raw quantity. Fields are keyed
// either "<metric>_g_day" for daily-gram quantities or "<metric>" for percentages.
type NutrientRecord map[string]float64

// Dataset is the raw input for one radar: a nutrient record per diet plus
// optional overrides that travel with the data.
type Dataset struct {
	Source     string                  `json:"source"`               // File path or "builtin"
	Diets      map[Diet]NutrientRecord `json:"diets"`                // Raw nutrient records
	MaxValues  map[Metric]float64      `json:"max_values,omitempty"` // Per-metric max overrides
	Similarity []SimilarityPoint       `json:"similarity,omitempty"` // Similarity radar points
}

// Record returns the nutrient record for a diet, or nil if the dataset lacks it.
func (d *Dataset) Record(diet Diet) NutrientRecord {
	if d == nil || d.Diets == nil {
		return nil
	}
	return d.Diets[diet]
}

// ChartRow is one render-ready row per metric: a shifted coordinate per diet
// plus the constant center fill marker.
type ChartRow struct {
	Metric     Metric           `json:"metric"`
	Label      string           `json:"label"`
	Values     map[Diet]float64 `json:"values"`
	CenterFill float64          `json:"center_fill"`

	// Raw and Normalized are kept for detail output and the run log.
	Raw        map[Diet]float64 `json:"raw,omitempty"`
	Normalized map[Diet]float64 `json:"normalized,omitempty"`
}

// RadarSeries describes how one diet is drawn on the radar.
type RadarSeries struct {
	Diet          Diet      `json:"diet"`
	Name          string    `json:"name"`
	Color         string    `json:"color"`
	Visible       bool      `json:"visible"`
	Hovered       bool      `json:"hovered"`
	FillOpacity   float64   `json:"fill_opacity"`
	StrokeOpacity float64   `json:"stroke_opacity"`
	Values        []float64 `json:"values"` // Ordered like the chart rows
}

// SimilarityPoint is one spoke of the similarity radar.
type SimilarityPoint struct {
	Name  string  `json:"name" mapstructure:"name"`
	Value float64 `json:"value" mapstructure:"value"`
}
