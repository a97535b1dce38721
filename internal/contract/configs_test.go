package contract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/dietradar/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validInput returns a raw input that passes validation as-is.
func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		Output:      "text",
		Precision:   DefaultPrecision,
		Color:       "yes",
		ShiftMin:    schema.ShiftMin,
		ShiftFactor: schema.ShiftFactor,
		RunBackend:  "none",
	}
}

func TestProcessAndValidate(t *testing.T) {
	tmpDir := t.TempDir()
	datasetPath := filepath.Join(tmpDir, "diets.json")
	require.NoError(t, os.WriteFile(datasetPath, []byte(`{"diets":{}}`), 0o644))

	tests := []struct {
		name        string
		mutate      func(*ConfigRawInput)
		expectError bool
	}{
		{name: "valid minimal config", mutate: func(*ConfigRawInput) {}},
		{name: "invalid output", mutate: func(in *ConfigRawInput) { in.Output = "xml" }, expectError: true},
		{name: "uppercase output", mutate: func(in *ConfigRawInput) { in.Output = "JSON" }},
		{name: "parquet without file", mutate: func(in *ConfigRawInput) { in.Output = "parquet" }, expectError: true},
		{name: "parquet with file", mutate: func(in *ConfigRawInput) { in.Output = "parquet"; in.OutputFile = "rows.parquet" }},
		{name: "png without file", mutate: func(in *ConfigRawInput) { in.Output = "png" }, expectError: true},
		{name: "png with file", mutate: func(in *ConfigRawInput) { in.Output = "png"; in.OutputFile = "radar.png" }},
		{name: "negative precision", mutate: func(in *ConfigRawInput) { in.Precision = -1 }, expectError: true},
		{name: "precision too high", mutate: func(in *ConfigRawInput) { in.Precision = MaxPrecision + 1 }, expectError: true},
		{name: "invalid color", mutate: func(in *ConfigRawInput) { in.Color = "maybe" }, expectError: true},
		{name: "zero shift factor", mutate: func(in *ConfigRawInput) { in.ShiftFactor = 0 }, expectError: true},
		{name: "negative shift min is allowed", mutate: func(in *ConfigRawInput) { in.ShiftMin = -5 }},
		{name: "unknown hidden diet", mutate: func(in *ConfigRawInput) { in.Hide = "vegan,raw_food" }, expectError: true},
		{name: "unknown hovered diet", mutate: func(in *ConfigRawInput) { in.Hover = "fruitarian" }, expectError: true},
		{name: "unknown metric", mutate: func(in *ConfigRawInput) { in.Metrics = "fiber,sodium" }, expectError: true},
		{name: "missing dataset", mutate: func(in *ConfigRawInput) { in.Dataset = filepath.Join(tmpDir, "nope.json") }, expectError: true},
		{name: "dataset is directory", mutate: func(in *ConfigRawInput) { in.Dataset = tmpDir }, expectError: true},
		{name: "existing dataset", mutate: func(in *ConfigRawInput) { in.Dataset = datasetPath }},
		{name: "invalid backend", mutate: func(in *ConfigRawInput) { in.RunBackend = "redis" }, expectError: true},
		{name: "mysql without connect", mutate: func(in *ConfigRawInput) { in.RunBackend = "mysql" }, expectError: true},
		{name: "bad max override", mutate: func(in *ConfigRawInput) { in.MaxValues = map[string]float64{"fiber": 0} }, expectError: true},
		{name: "unknown max override", mutate: func(in *ConfigRawInput) { in.MaxValues = map[string]float64{"sodium": 10} }, expectError: true},
		{name: "unknown color override", mutate: func(in *ConfigRawInput) { in.Colors = map[string]string{"raw": "red"} }, expectError: true},
		{name: "invalid addr", mutate: func(in *ConfigRawInput) { in.Addr = "no-port" }, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)
			cfg := &Config{}
			err := ProcessAndValidate(cfg, input)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProcessAndValidatePopulatesConfig(t *testing.T) {
	input := validInput()
	input.Output = "csv"
	input.Hide = "keto, carnivore"
	input.Hover = "vegan"
	input.Metrics = "fiber,oils"
	input.MaxValues = map[string]float64{"fiber": 75}
	input.Colors = map[string]string{"vegan": "#00ff00"}
	input.Color = "no"

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))

	assert.Equal(t, schema.CSVOut, cfg.Output)
	assert.Equal(t, []schema.Diet{schema.Keto, schema.Carnivore}, cfg.Hidden)
	assert.Equal(t, schema.Vegan, cfg.Hovered)
	assert.Equal(t, []schema.Metric{schema.Fiber, schema.Oils}, cfg.Metrics)
	assert.Equal(t, 75.0, cfg.MaxValues[schema.Fiber])
	assert.Equal(t, 1733.0, cfg.MaxValues[schema.RedMeat])
	assert.Equal(t, "#00ff00", cfg.Colors[schema.Vegan])
	assert.Equal(t, "gold", cfg.Colors[schema.BalancedOmnivore])
	assert.False(t, cfg.UseColors)
	assert.Equal(t, schema.NoneBackend, cfg.RunBackend)
	assert.Equal(t, DefaultServerAddr, cfg.ServerAddr)

	// Defaults must stay untouched by overrides.
	assert.Equal(t, 60.0, schema.DefaultMaxValues[schema.Fiber])
}

func TestProcessAndValidateAllMetricsByDefault(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, validInput()))
	assert.Equal(t, schema.AllMetrics, cfg.Metrics)
	assert.Empty(t, cfg.Hidden)
	assert.Empty(t, cfg.Hovered)
}

func TestValidateDatabaseConnectionString(t *testing.T) {
	tests := []struct {
		name    string
		backend schema.DatabaseBackend
		connStr string
		wantErr bool
	}{
		{"sqlite empty", schema.SQLiteBackend, "", false},
		{"none empty", schema.NoneBackend, "", false},
		{"mysql valid", schema.MySQLBackend, "user:pass@tcp(localhost:3306)/diets", false},
		{"mysql missing tcp", schema.MySQLBackend, "user:pass@localhost/diets", true},
		{"mysql missing db", schema.MySQLBackend, "user:pass@tcp(localhost:3306)", true},
		{"postgres valid", schema.PostgreSQLBackend, "host=localhost user=u dbname=diets", false},
		{"postgres missing host", schema.PostgreSQLBackend, "user=u dbname=diets", true},
		{"postgres missing dbname", schema.PostgreSQLBackend, "host=localhost", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDatabaseConnectionString(tt.backend, tt.connStr)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseDatabaseBackend(t *testing.T) {
	backend, err := ParseDatabaseBackend("")
	require.NoError(t, err)
	assert.Equal(t, schema.NoneBackend, backend)

	backend, err = ParseDatabaseBackend(" SQLite ")
	require.NoError(t, err)
	assert.Equal(t, schema.SQLiteBackend, backend)

	_, err = ParseDatabaseBackend("mongo")
	assert.Error(t, err)
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{
		MaxValues: map[schema.Metric]float64{schema.Fiber: 60},
		Colors:    map[schema.Diet]string{schema.Keto: "red"},
		Metrics:   []schema.Metric{schema.Fiber},
		Hidden:    []schema.Diet{schema.Keto},
	}
	clone := cfg.Clone()
	clone.MaxValues[schema.Fiber] = 1
	clone.Colors[schema.Keto] = "blue"
	clone.Metrics[0] = schema.Oils
	clone.Hidden[0] = schema.Vegan

	assert.Equal(t, 60.0, cfg.MaxValues[schema.Fiber])
	assert.Equal(t, "red", cfg.Colors[schema.Keto])
	assert.Equal(t, schema.Fiber, cfg.Metrics[0])
	assert.Equal(t, schema.Keto, cfg.Hidden[0])
}

func TestProcessProfilingConfig(t *testing.T) {
	profile := &ProfileConfig{}
	require.NoError(t, ProcessProfilingConfig(profile, ""))
	assert.False(t, profile.Enabled)

	require.NoError(t, ProcessProfilingConfig(profile, "radar"))
	assert.True(t, profile.Enabled)
	assert.Equal(t, "radar", profile.Prefix)
}

func TestRevalidateSelections(t *testing.T) {
	cfg := &Config{Metrics: schema.AllMetrics, Hidden: []schema.Diet{schema.Keto}, Hovered: schema.Vegan}

	// Empty arguments keep what is there
	require.NoError(t, RevalidateSelections(cfg, "", "", ""))
	assert.Equal(t, schema.AllMetrics, cfg.Metrics)
	assert.Equal(t, []schema.Diet{schema.Keto}, cfg.Hidden)
	assert.Equal(t, schema.Vegan, cfg.Hovered)

	require.NoError(t, RevalidateSelections(cfg, "fiber,fat_pct", "paleo", "user_diet"))
	assert.Equal(t, []schema.Metric{schema.Fiber, schema.FatPct}, cfg.Metrics)
	assert.Equal(t, []schema.Diet{schema.Paleo}, cfg.Hidden)
	assert.Equal(t, schema.UserDiet, cfg.Hovered)

	assert.ErrorContains(t, RevalidateSelections(cfg, "sodium", "", ""), "unknown metric 'sodium'")
	assert.ErrorContains(t, RevalidateSelections(cfg, "", "raw_vegan", ""), "unknown diet 'raw_vegan' in --hide")
	assert.ErrorContains(t, RevalidateSelections(cfg, "", "", "raw_vegan"), "unknown diet 'raw_vegan' in --hover")
}

func TestRevalidateDataset(t *testing.T) {
	cfg := &Config{}
	path := filepath.Join(t.TempDir(), "diets.yaml")
	require.NoError(t, os.WriteFile(path, []byte("diets: {}\n"), 0o644))

	require.NoError(t, RevalidateDataset(cfg, path))
	assert.Equal(t, path, cfg.DatasetPath)

	assert.ErrorContains(t, RevalidateDataset(cfg, filepath.Dir(path)), "is a directory")
	assert.ErrorContains(t, RevalidateDataset(cfg, path+".missing"), "is not readable")
}
