package core

import (
	"math"
	"testing"

	"github.com/huangsam/dietradar/schema"
)

// FuzzNormalize fuzzes Normalize and Shift with arbitrary inputs.
func FuzzNormalize(f *testing.F) {
	seeds := [][2]float64{
		{0, 100},
		{50, 100},
		{1733, 1733},
		{5, 0},
		{-10, 60},
		{math.MaxFloat64, 1e-300},
	}
	for _, seed := range seeds {
		f.Add(seed[0], seed[1])
	}

	f.Fuzz(func(t *testing.T, value, maxValue float64) {
		n := Normalize(value, maxValue)
		if math.IsNaN(n) || math.IsInf(n, 0) {
			t.Fatalf("Normalize(%v, %v) = %v, want finite", value, maxValue, n)
		}
		_ = DefaultShifter.Shift(n)
	})
}

// FuzzRawValue fuzzes RawValue with random record contents.
func FuzzRawValue(f *testing.F) {
	f.Add("fiber", 30.0, 12.0)
	f.Add("fat_pct", 0.0, 40.0)
	f.Add("", math.Inf(1), math.NaN())

	f.Fuzz(func(t *testing.T, metric string, gramsPerDay, bare float64) {
		m := schema.Metric(metric)
		record := schema.NutrientRecord{
			schema.GramsPerDayKey(m): gramsPerDay,
			metric:                   bare,
		}
		v, ok := RawValue(record, m)
		if !ok && v != 0 {
			t.Fatalf("RawValue returned %v without a match", v)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("RawValue returned non-finite %v", v)
		}
	})
}
