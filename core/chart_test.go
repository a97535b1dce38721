package core

import (
	"testing"

	"github.com/huangsam/dietradar/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset() *schema.Dataset {
	return &schema.Dataset{
		Source: "test",
		Diets: map[schema.Diet]schema.NutrientRecord{
			schema.UserDiet:  {"red_meat_g_day": 1733, "fat_pct": 40, "fiber_g_day": 30},
			schema.Vegan:     {"beans_and_lentils_g_day": 112, "fiber_g_day": 60},
			schema.Carnivore: {"red_meat_g_day": 866.5, "fat_pct": 80},
		},
	}
}

func TestBuildChartRowsDefaults(t *testing.T) {
	rows := BuildChartRows(sampleDataset(), ChartOptions{})
	require.Len(t, rows, len(schema.AllMetrics))

	for i, row := range rows {
		assert.Equal(t, schema.AllMetrics[i], row.Metric)
		assert.Equal(t, schema.MetricDisplayName(row.Metric), row.Label)
		assert.Equal(t, 1.0, row.CenterFill)
		assert.Len(t, row.Values, len(schema.AllDiets))
		assert.Nil(t, row.Raw)
		for _, v := range row.Values {
			assert.GreaterOrEqual(t, v, schema.ShiftMin)
		}
	}

	redMeat := rows[0]
	assert.InDelta(t, 95.0, redMeat.Values[schema.UserDiet], 1e-9)
	assert.InDelta(t, 50.0, redMeat.Values[schema.Carnivore], 1e-9)
	assert.InDelta(t, 5.0, redMeat.Values[schema.Vegan], 1e-9)
}

func TestBuildChartRowsMissingDietLandsOnShiftMin(t *testing.T) {
	rows := BuildChartRows(sampleDataset(), ChartOptions{})
	for _, row := range rows {
		assert.InDelta(t, 5.0, row.Values[schema.Keto], 1e-9, row.Metric)
	}
}

func TestBuildChartRowsNilDataset(t *testing.T) {
	rows := BuildChartRows(nil, ChartOptions{})
	require.Len(t, rows, len(schema.AllMetrics))
	for _, row := range rows {
		for _, v := range row.Values {
			assert.InDelta(t, 5.0, v, 1e-9)
		}
	}
}

func TestBuildChartRowsMetricWithoutMax(t *testing.T) {
	opts := ChartOptions{
		Metrics:   []schema.Metric{schema.RedMeat},
		MaxValues: map[schema.Metric]float64{},
	}
	rows := BuildChartRows(sampleDataset(), opts)
	require.Len(t, rows, 1)
	assert.InDelta(t, 5.0, rows[0].Values[schema.UserDiet], 1e-9)
}

func TestBuildChartRowsSubsetAndDetail(t *testing.T) {
	opts := ChartOptions{
		Metrics: []schema.Metric{schema.Fiber, schema.FatPct},
		Diets:   []schema.Diet{schema.UserDiet, schema.Vegan},
		Shifter: Shifter{Min: 20, Factor: 0.8},
		Detail:  true,
	}
	rows := BuildChartRows(sampleDataset(), opts)
	require.Len(t, rows, 2)

	fiber := rows[0]
	assert.Equal(t, schema.Fiber, fiber.Metric)
	assert.Len(t, fiber.Values, 2)
	assert.Equal(t, 30.0, fiber.Raw[schema.UserDiet])
	assert.InDelta(t, 50.0, fiber.Normalized[schema.UserDiet], 1e-9)
	assert.InDelta(t, 60.0, fiber.Values[schema.UserDiet], 1e-9)
	assert.InDelta(t, 100.0, fiber.Values[schema.Vegan], 1e-9)

	fat := rows[1]
	assert.Equal(t, "Fat Pct", fat.Label)
	assert.InDelta(t, 50.0, fat.Normalized[schema.UserDiet], 1e-9)
}

func TestMergeMaxValues(t *testing.T) {
	merged := MergeMaxValues(schema.DefaultMaxValues, map[schema.Metric]float64{
		schema.Fiber:  80,
		schema.Oils:   0,
		schema.Butter: -1,
	})
	assert.Equal(t, 80.0, merged[schema.Fiber])
	assert.Equal(t, 116.0, merged[schema.Oils])
	assert.Equal(t, 347.0, merged[schema.Butter])
	assert.Equal(t, 60.0, schema.DefaultMaxValues[schema.Fiber])
}
