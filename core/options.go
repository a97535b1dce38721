package core

import (
	"github.com/huangsam/dietradar/internal/contract"
	"github.com/huangsam/dietradar/schema"
)

// OptionsFromConfig derives chart options from the validated config. Max values
// carried by the dataset are layered on top of the configured ones.
func OptionsFromConfig(cfg *contract.Config, ds *schema.Dataset) ChartOptions {
	opts := ChartOptions{
		Metrics: cfg.Metrics,
		Diets:   schema.AllDiets,
		Shifter: Shifter{Min: cfg.ShiftMin, Factor: cfg.ShiftFactor},
		Detail:  cfg.Detail,
	}
	base := cfg.MaxValues
	if base == nil {
		base = schema.DefaultMaxValues
	}
	if ds != nil && len(ds.MaxValues) > 0 {
		opts.MaxValues = MergeMaxValues(base, ds.MaxValues)
	} else {
		opts.MaxValues = base
	}
	return opts
}

// StateFromConfig builds an interaction state with the configured hide and
// hover events replayed on it.
func StateFromConfig(cfg *contract.Config) *InteractionState {
	state := NewInteractionState(schema.AllDiets)
	ApplyEvents(state, cfg.Hidden, cfg.Hovered)
	return state
}

// Palette returns the configured palette, or the defaults when unset.
func Palette(cfg *contract.Config) map[schema.Diet]string {
	if len(cfg.Colors) == 0 {
		return schema.DefaultColors
	}
	return cfg.Colors
}
