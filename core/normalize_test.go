package core

import (
	"math"
	"testing"

	"github.com/huangsam/dietradar/schema"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		max      float64
		expected float64
	}{
		{"zero value", 0, 100, 0},
		{"half", 50, 100, 50},
		{"at max", 1733, 1733, 100},
		{"above max is not clamped", 150, 100, 150},
		{"zero max", 5, 0, 0},
		{"zero over zero", 0, 0, 0},
		{"NaN value", math.NaN(), 100, 0},
		{"infinite value", math.Inf(1), 100, 0},
		{"negative infinite value", math.Inf(-1), 100, 0},
		{"infinite max", 10, math.Inf(1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Normalize(tt.value, tt.max), 1e-9)
		})
	}
}

func TestNormalizeRangeWithinMax(t *testing.T) {
	for _, m := range schema.AllMetrics {
		maxValue := schema.DefaultMaxValues[m]
		for _, v := range []float64{0, maxValue / 3, maxValue / 2, maxValue} {
			n := Normalize(v, maxValue)
			assert.GreaterOrEqual(t, n, 0.0)
			assert.LessOrEqual(t, n, 100.0+1e-9)
		}
	}
}

func TestShift(t *testing.T) {
	s := DefaultShifter
	assert.InDelta(t, 5.0, s.Shift(0), 1e-9)
	assert.InDelta(t, 95.0, s.Shift(100), 1e-9)
	assert.InDelta(t, 50.0, s.Shift(50), 1e-9)

	// Strictly increasing for a positive factor.
	prev := s.Shift(-10)
	for n := -9.0; n <= 110; n++ {
		cur := s.Shift(n)
		assert.Greater(t, cur, prev)
		prev = cur
	}

	custom := Shifter{Min: 20, Factor: 0.8}
	assert.InDelta(t, 20.0, custom.Shift(0), 1e-9)
	assert.InDelta(t, 100.0, custom.Shift(100), 1e-9)
}

func TestRawValue(t *testing.T) {
	tests := []struct {
		name      string
		record    schema.NutrientRecord
		metric    schema.Metric
		expected  float64
		wantFound bool
	}{
		{"g_day wins", schema.NutrientRecord{"red_meat_g_day": 200, "red_meat": 10}, schema.RedMeat, 200, true},
		{"bare key fallback", schema.NutrientRecord{"fat_pct": 35}, schema.FatPct, 35, true},
		{"zero g_day falls through", schema.NutrientRecord{"fiber_g_day": 0, "fiber": 12}, schema.Fiber, 12, true},
		{"NaN g_day falls through", schema.NutrientRecord{"fiber_g_day": math.NaN(), "fiber": 12}, schema.Fiber, 12, true},
		{"zero g_day without bare key", schema.NutrientRecord{"fiber_g_day": 0}, schema.Fiber, 0, false},
		{"bare zero is a value", schema.NutrientRecord{"carbs_pct": 0}, schema.CarbsPct, 0, true},
		{"missing both", schema.NutrientRecord{"eggs_g_day": 3}, schema.Milk, 0, false},
		{"nil record", nil, schema.Milk, 0, false},
		{"infinite bare value", schema.NutrientRecord{"oils": math.Inf(1)}, schema.Oils, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := RawValue(tt.record, tt.metric)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.wantFound, found)
		})
	}
}
