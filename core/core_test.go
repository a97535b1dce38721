package core

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/dietradar/internal/contract"
	"github.com/huangsam/dietradar/internal/runstore"
	"github.com/huangsam/dietradar/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, output schema.OutputMode) *contract.Config {
	t.Helper()
	return &contract.Config{
		Output:      output,
		Precision:   1,
		Metrics:     schema.AllMetrics,
		ShiftMin:    schema.ShiftMin,
		ShiftFactor: schema.ShiftFactor,
		MaxValues:   schema.GetDefaultMaxValues(),
		Colors:      schema.GetDefaultColors(),
	}
}

func noStoreManager() *runstore.MockStoreManager {
	mgr := &runstore.MockStoreManager{}
	mgr.On("GetRunStore").Return(nil)
	return mgr
}

func managerWith(store contract.RunStore) *runstore.MockStoreManager {
	mgr := &runstore.MockStoreManager{}
	mgr.On("GetRunStore").Return(store)
	return mgr
}

func TestGetChartRowsResults_RecordsRun(t *testing.T) {
	cfg := testConfig(t, schema.TextOut)

	store := &runstore.MockRunStore{}
	store.On("BeginRun", mock.MatchedBy(func(r schema.RunRecord) bool {
		return r.Command == "table" && r.DatasetSource == "builtin" && r.ShiftMin == 5 && r.ShiftFactor == 0.9
	})).Return(int64(7), nil)
	store.On("RecordPoints", int64(7), mock.MatchedBy(func(p []schema.PointRecord) bool {
		return len(p) == len(schema.AllMetrics)*len(schema.AllDiets) && p[0].RunID == 7
	})).Return(nil)
	store.On("EndRun", int64(7), mock.Anything, len(schema.AllMetrics)).Return(nil)

	mgr := managerWith(store)
	rows, ds, err := GetChartRowsResults(context.Background(), cfg, mgr)
	require.NoError(t, err)
	assert.Equal(t, "builtin", ds.Source)
	require.Len(t, rows, len(schema.AllMetrics))

	// Detail values are only kept when asked for
	assert.Nil(t, rows[0].Raw)
	assert.Nil(t, rows[0].Normalized)

	store.AssertExpectations(t)
	mgr.AssertExpectations(t)
}

func TestGetChartRowsResults_DetailKeepsValues(t *testing.T) {
	cfg := testConfig(t, schema.TextOut)
	cfg.Detail = true

	rows, _, err := GetChartRowsResults(context.Background(), cfg, noStoreManager())
	require.NoError(t, err)
	assert.NotNil(t, rows[0].Raw)
	assert.NotNil(t, rows[0].Normalized)
}

func TestGetChartRowsResults_RunLogFailuresAreNotFatal(t *testing.T) {
	cfg := testConfig(t, schema.TextOut)

	t.Run("begin fails", func(t *testing.T) {
		store := &runstore.MockRunStore{}
		store.On("BeginRun", mock.Anything).Return(int64(0), errors.New("db down"))

		rows, _, err := GetChartRowsResults(context.Background(), cfg, managerWith(store))
		require.NoError(t, err)
		assert.Len(t, rows, len(schema.AllMetrics))
		store.AssertNotCalled(t, "RecordPoints", mock.Anything, mock.Anything)
		store.AssertNotCalled(t, "EndRun", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("record fails", func(t *testing.T) {
		store := &runstore.MockRunStore{}
		store.On("BeginRun", mock.Anything).Return(int64(3), nil)
		store.On("RecordPoints", int64(3), mock.Anything).Return(errors.New("duplicate"))
		store.On("EndRun", int64(3), mock.Anything, mock.Anything).Return(nil)

		_, _, err := GetChartRowsResults(context.Background(), cfg, managerWith(store))
		require.NoError(t, err)
		store.AssertExpectations(t)
	})
}

func TestGetChartRowsResults_NilManager(t *testing.T) {
	rows, _, err := GetChartRowsResults(context.Background(), testConfig(t, schema.TextOut), nil)
	require.NoError(t, err)
	assert.Len(t, rows, len(schema.AllMetrics))
}

func TestGetChartRowsResults_MissingDataset(t *testing.T) {
	cfg := testConfig(t, schema.TextOut)
	cfg.DatasetPath = filepath.Join(t.TempDir(), "missing.json")

	_, _, err := GetChartRowsResults(context.Background(), cfg, noStoreManager())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load dataset")
}

func TestGetChartRowsResults_DatasetMaxValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ds.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"diets": {"vegan": {"fiber_g_day": 30}},
		"max_values": {"fiber": 30}
	}`), 0o644))

	cfg := testConfig(t, schema.TextOut)
	cfg.DatasetPath = path
	cfg.Metrics = []schema.Metric{schema.Fiber}

	rows, ds, err := GetChartRowsResults(context.Background(), cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, path, ds.Source)
	require.Len(t, rows, 1)
	assert.InDelta(t, 95.0, rows[0].Values[schema.Vegan], 1e-9)
}

func TestGetSeriesResults(t *testing.T) {
	cfg := testConfig(t, schema.TextOut)
	cfg.Hidden = []schema.Diet{schema.Keto}
	cfg.Hovered = schema.Vegan

	series, _, err := GetSeriesResults(context.Background(), cfg, noStoreManager())
	require.NoError(t, err)
	require.Len(t, series, len(schema.AllDiets))

	byDiet := map[schema.Diet]schema.RadarSeries{}
	for _, s := range series {
		byDiet[s.Diet] = s
		assert.Len(t, s.Values, len(schema.AllMetrics))
	}
	assert.Equal(t, schema.OpacityHidden, byDiet[schema.Keto].FillOpacity)
	assert.Equal(t, schema.FillOpacityFocused, byDiet[schema.Vegan].FillOpacity)
	assert.Equal(t, schema.FillOpacityDimmed, byDiet[schema.Paleo].FillOpacity)
	assert.Equal(t, "Your Diet", byDiet[schema.UserDiet].Name)
}

func TestGetChartModelResults(t *testing.T) {
	store := &runstore.MockRunStore{}
	store.On("BeginRun", mock.MatchedBy(func(r schema.RunRecord) bool { return r.Command == "chart" })).Return(int64(1), nil)
	store.On("RecordPoints", int64(1), mock.Anything).Return(nil)
	store.On("EndRun", int64(1), mock.Anything, mock.Anything).Return(nil)

	model, _, err := GetChartModelResults(context.Background(), testConfig(t, schema.HTMLOut), managerWith(store))
	require.NoError(t, err)
	assert.Equal(t, schema.ChartTitle, model.Title)
	assert.Len(t, model.Rows, len(schema.AllMetrics))
	assert.Len(t, model.Series, len(schema.AllDiets))
	assert.NotEmpty(t, model.Similarity)
	store.AssertExpectations(t)
}

func TestGetSimilarityResults(t *testing.T) {
	points, err := GetSimilarityResults(testConfig(t, schema.TextOut))
	require.NoError(t, err)
	assert.NotEmpty(t, points)
	for _, p := range points {
		assert.GreaterOrEqual(t, p.Value, 0.0)
		assert.LessOrEqual(t, p.Value, 1.0)
	}
}

func TestExecuteTable_JSONFile(t *testing.T) {
	cfg := testConfig(t, schema.JSONOut)
	cfg.OutputFile = filepath.Join(t.TempDir(), "rows.json")

	mgr := noStoreManager()
	require.NoError(t, ExecuteTable(context.Background(), cfg, mgr))
	mgr.AssertExpectations(t)

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	var rows []schema.ChartRow
	require.NoError(t, json.Unmarshal(data, &rows))
	assert.Len(t, rows, len(schema.AllMetrics))
}

func TestExecuteSeries_CSVFile(t *testing.T) {
	cfg := testConfig(t, schema.CSVOut)
	cfg.OutputFile = filepath.Join(t.TempDir(), "series.csv")

	require.NoError(t, ExecuteSeries(context.Background(), cfg, noStoreManager()))
	info, err := os.Stat(cfg.OutputFile)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExecuteChart(t *testing.T) {
	t.Run("html file", func(t *testing.T) {
		cfg := testConfig(t, schema.HTMLOut)
		cfg.OutputFile = filepath.Join(t.TempDir(), "radar.html")
		require.NoError(t, ExecuteChart(context.Background(), cfg, noStoreManager()))

		data, err := os.ReadFile(cfg.OutputFile)
		require.NoError(t, err)
		assert.Contains(t, string(data), schema.ChartTitle)
	})

	t.Run("json file", func(t *testing.T) {
		cfg := testConfig(t, schema.JSONOut)
		cfg.OutputFile = filepath.Join(t.TempDir(), "model.json")
		require.NoError(t, ExecuteChart(context.Background(), cfg, noStoreManager()))

		data, err := os.ReadFile(cfg.OutputFile)
		require.NoError(t, err)
		var model schema.ChartModel
		require.NoError(t, json.Unmarshal(data, &model))
		assert.Equal(t, schema.SimilarityTitle, model.SimilarityTitle)
	})

	t.Run("unsupported output", func(t *testing.T) {
		mgr := &runstore.MockStoreManager{}
		err := ExecuteChart(context.Background(), testConfig(t, schema.CSVOut), mgr)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "chart does not support csv output")
		mgr.AssertNotCalled(t, "GetRunStore")
	})
}

func TestExecuteSimilarityAndMetrics(t *testing.T) {
	cfg := testConfig(t, schema.CSVOut)
	cfg.OutputFile = filepath.Join(t.TempDir(), "similarity.csv")
	require.NoError(t, ExecuteSimilarity(context.Background(), cfg, nil))

	cfg.OutputFile = filepath.Join(t.TempDir(), "metrics.csv")
	require.NoError(t, ExecuteMetrics(context.Background(), cfg, nil))
	_, err := os.Stat(cfg.OutputFile)
	assert.NoError(t, err)
}

func TestPointsFromRows(t *testing.T) {
	rows := []schema.ChartRow{{
		Metric:     schema.Fiber,
		Values:     map[schema.Diet]float64{schema.Vegan: 95, schema.UserDiet: 50},
		Raw:        map[schema.Diet]float64{schema.Vegan: 60, schema.UserDiet: 30},
		Normalized: map[schema.Diet]float64{schema.Vegan: 100, schema.UserDiet: 50},
	}}
	points := pointsFromRows(9, rows)
	require.Len(t, points, 2)
	// Canonical diet order puts the user diet first
	assert.Equal(t, schema.PointRecord{RunID: 9, Metric: "fiber", Diet: "user_diet", RawValue: 30, Normalized: 50, Shifted: 50}, points[0])
	assert.Equal(t, "vegan", points[1].Diet)
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := testConfig(t, schema.TextOut)
	cfg.ShiftMin = 20
	cfg.ShiftFactor = 0.8

	opts := OptionsFromConfig(cfg, nil)
	assert.Equal(t, Shifter{Min: 20, Factor: 0.8}, opts.Shifter)
	assert.Equal(t, schema.AllDiets, opts.Diets)
	assert.Equal(t, 1733.0, opts.MaxValues[schema.RedMeat])

	ds := &schema.Dataset{MaxValues: map[schema.Metric]float64{schema.RedMeat: 100}}
	opts = OptionsFromConfig(cfg, ds)
	assert.Equal(t, 100.0, opts.MaxValues[schema.RedMeat])
	assert.Equal(t, 1733.0, cfg.MaxValues[schema.RedMeat])
}

func TestStateFromConfig(t *testing.T) {
	cfg := testConfig(t, schema.TextOut)
	cfg.Hidden = []schema.Diet{schema.Paleo}
	cfg.Hovered = schema.Keto

	state := StateFromConfig(cfg)
	assert.False(t, state.IsVisible(schema.Paleo))
	hovered, ok := state.Hovered()
	assert.True(t, ok)
	assert.Equal(t, schema.Keto, hovered)
}

func TestPalette(t *testing.T) {
	assert.Equal(t, schema.DefaultColors, Palette(&contract.Config{}))
	custom := map[schema.Diet]string{schema.Keto: "black"}
	assert.Equal(t, custom, Palette(&contract.Config{Colors: custom}))
}
