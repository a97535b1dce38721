package core

import "github.com/huangsam/dietradar/schema"

// BuildSeries produces one render descriptor per diet, in diet order, with the
// diet's values laid out in row order. Diets without a color fall back to the
// built-in palette.
func BuildSeries(rows []schema.ChartRow, diets []schema.Diet, state *InteractionState, colors map[schema.Diet]string) []schema.RadarSeries {
	hovered, _ := state.Hovered()
	series := make([]schema.RadarSeries, 0, len(diets))
	for _, d := range diets {
		values := make([]float64, len(rows))
		for i, r := range rows {
			values[i] = r.Values[d]
		}
		color := colors[d]
		if color == "" {
			color = schema.DefaultColors[d]
		}
		series = append(series, schema.RadarSeries{
			Diet:          d,
			Name:          schema.DietDisplayName(d),
			Color:         color,
			Visible:       state.IsVisible(d),
			Hovered:       hovered != "" && hovered == d,
			FillOpacity:   state.FillOpacity(d),
			StrokeOpacity: state.StrokeOpacity(d),
			Values:        values,
		})
	}
	return series
}

// ApplyEvents replays legend clicks and a hover onto state. Each hidden diet
// is toggled once; an empty hovered clears the hover.
func ApplyEvents(state *InteractionState, hidden []schema.Diet, hovered schema.Diet) {
	for _, d := range hidden {
		state.Toggle(d)
	}
	if hovered == "" {
		state.ClearHovered()
		return
	}
	state.SetHovered(hovered)
}
