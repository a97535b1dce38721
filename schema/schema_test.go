package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryMetricHasMaxValue(t *testing.T) {
	require.Len(t, AllMetrics, 29)
	for _, m := range AllMetrics {
		v, ok := DefaultMaxValues[m]
		assert.True(t, ok, "missing max for %s", m)
		assert.Greater(t, v, 0.0)
	}
	assert.Len(t, DefaultMaxValues, len(AllMetrics))
}

func TestEveryDietHasColor(t *testing.T) {
	require.Len(t, AllDiets, 8)
	assert.Equal(t, UserDiet, AllDiets[0])
	for _, d := range AllDiets {
		assert.NotEmpty(t, DefaultColors[d], "missing color for %s", d)
	}
}

func TestDefaultCopiesAreIndependent(t *testing.T) {
	maxes := GetDefaultMaxValues()
	maxes[RedMeat] = 1
	assert.Equal(t, 1733.0, DefaultMaxValues[RedMeat])

	colors := GetDefaultColors()
	colors[Keto] = "blue"
	assert.Equal(t, "red", DefaultColors[Keto])

	sim := GetDefaultSimilarity()
	sim[0].Value = 0
	assert.Equal(t, 0.92, DefaultSimilarity[0].Value)
}

func TestDefaultSimilarity(t *testing.T) {
	require.Len(t, DefaultSimilarity, 7)
	for _, p := range DefaultSimilarity {
		assert.GreaterOrEqual(t, p.Value, 0.0)
		assert.LessOrEqual(t, p.Value, 1.0)
	}
	assert.Equal(t, "Carnivore", DefaultSimilarity[6].Name)
}

func TestIsKnown(t *testing.T) {
	assert.True(t, IsKnownMetric(ProteinPct))
	assert.False(t, IsKnownMetric("sodium"))
	assert.True(t, IsKnownDiet(Keto))
	assert.False(t, IsKnownDiet("raw_vegan"))
}

func TestDatasetRecord(t *testing.T) {
	var nilDS *Dataset
	assert.Nil(t, nilDS.Record(Vegan))

	ds := &Dataset{Diets: map[Diet]NutrientRecord{Vegan: {"fiber": 40}}}
	assert.Equal(t, 40.0, ds.Record(Vegan)["fiber"])
	assert.Nil(t, ds.Record(Keto))
}

func TestGetStateLabel(t *testing.T) {
	assert.Equal(t, "Hidden", GetStateLabel(false, true, true))
	assert.Equal(t, "Focused", GetStateLabel(true, true, true))
	assert.Equal(t, "Dimmed", GetStateLabel(true, false, true))
	assert.Equal(t, "Visible", GetStateLabel(true, false, false))
}
