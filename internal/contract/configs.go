package contract

import (
	"fmt"
	"math"
	"net"
	"os"
	"strings"
	"time"

	"github.com/huangsam/dietradar/schema"
)

// Default values for configuration.
const (
	DefaultPrecision  = 1
	MaxPrecision      = 6
	DefaultServerAddr = "127.0.0.1:8080"
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// Config holds the runtime configuration for chart generation.
// This struct remains the "final, validated" config.
type Config struct {
	DatasetPath string // Empty means the built-in sample dataset
	Output      schema.OutputMode
	OutputFile  string
	Precision   int
	Width       int // Terminal width override (0 = auto-detect)
	Detail      bool
	UseColors   bool // Enable colored labels in table output

	ShiftMin    float64
	ShiftFactor float64

	// MaxValues is the defaults merged with any config file overrides
	MaxValues map[schema.Metric]float64

	// Colors is the default palette merged with any config file overrides
	Colors map[schema.Diet]string

	Metrics []schema.Metric // Radar axes, in order
	Hidden  []schema.Diet   // Diets toggled off before rendering
	Hovered schema.Diet     // Diet hovered before rendering, empty for none

	RunBackend   schema.DatabaseBackend
	RunDBConnect string // Please use env var as this is plaintext

	ServerAddr string
	Watch      bool
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	Dataset      string  `mapstructure:"dataset"`
	Output       string  `mapstructure:"output"`
	OutputFile   string  `mapstructure:"output-file"`
	Precision    int     `mapstructure:"precision"`
	Width        int     `mapstructure:"width"`
	Detail       bool    `mapstructure:"detail"`
	Color        string  `mapstructure:"color"`
	ShiftMin     float64 `mapstructure:"shift-min"`
	ShiftFactor  float64 `mapstructure:"shift-factor"`
	Hide         string  `mapstructure:"hide"`
	Hover        string  `mapstructure:"hover"`
	Metrics      string  `mapstructure:"metrics"`
	RunBackend   string  `mapstructure:"run-backend"`
	RunDBConnect string  `mapstructure:"run-db-connect"`

	// --- Fields from serveCmd.Flags() ---
	Addr  string `mapstructure:"addr"`
	Watch bool   `mapstructure:"watch"`

	// --- Overrides from config file ---
	MaxValues map[string]float64 `mapstructure:"max_values"`
	Colors    map[string]string  `mapstructure:"colors"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.MaxValues != nil {
		clone.MaxValues = make(map[schema.Metric]float64, len(c.MaxValues))
		for k, v := range c.MaxValues {
			clone.MaxValues[k] = v
		}
	}
	if c.Colors != nil {
		clone.Colors = make(map[schema.Diet]string, len(c.Colors))
		for k, v := range c.Colors {
			clone.Colors[k] = v
		}
	}
	if c.Metrics != nil {
		clone.Metrics = append([]schema.Metric(nil), c.Metrics...)
	}
	if c.Hidden != nil {
		clone.Hidden = append([]schema.Diet(nil), c.Hidden...)
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processShift(cfg, input); err != nil {
		return err
	}
	if err := processSelections(cfg, input); err != nil {
		return err
	}
	if err := processOverrides(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfig(cfg, input); err != nil {
		return err
	}
	return processServer(cfg, input)
}

// validateSimpleInputs processes and validates output and dataset fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile
	cfg.Detail = input.Detail
	cfg.Width = input.Width

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if input.Precision < 0 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 0 and %d (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet, html, png", input.Output)
	}
	if (cfg.Output == schema.ParquetOut || cfg.Output == schema.PNGOut) && cfg.OutputFile == "" {
		return fmt.Errorf("--output-file is required for %s output", cfg.Output)
	}

	return setDatasetPath(cfg, input.Dataset)
}

// setDatasetPath checks that path, when given, names a readable file.
func setDatasetPath(cfg *Config, path string) error {
	cfg.DatasetPath = strings.TrimSpace(path)
	if cfg.DatasetPath == "" {
		return nil
	}
	info, err := os.Stat(cfg.DatasetPath)
	if err != nil {
		return fmt.Errorf("dataset file %q is not readable: %w", cfg.DatasetPath, err)
	}
	if info.IsDir() {
		return fmt.Errorf("dataset path %q is a directory", cfg.DatasetPath)
	}
	return nil
}

// RevalidateDataset points a cloned config at another dataset file.
func RevalidateDataset(cfg *Config, path string) error {
	return setDatasetPath(cfg, path)
}

// RevalidateSelections re-parses the metric subset and the hide and hover
// events on a cloned config. Empty arguments keep the current values.
func RevalidateSelections(cfg *Config, metrics, hide, hover string) error {
	prevMetrics, prevHidden, prevHovered := cfg.Metrics, cfg.Hidden, cfg.Hovered
	input := &ConfigRawInput{Metrics: metrics, Hide: hide, Hover: hover}
	if err := processSelections(cfg, input); err != nil {
		return err
	}
	if strings.TrimSpace(metrics) == "" {
		cfg.Metrics = prevMetrics
	}
	if strings.TrimSpace(hide) == "" {
		cfg.Hidden = prevHidden
	}
	if strings.TrimSpace(hover) == "" {
		cfg.Hovered = prevHovered
	}
	return nil
}

// processShift validates the radial shift parameters.
func processShift(cfg *Config, input *ConfigRawInput) error {
	if math.IsNaN(input.ShiftMin) || math.IsInf(input.ShiftMin, 0) {
		return fmt.Errorf("shift-min must be a finite number")
	}
	if !(input.ShiftFactor > 0) || math.IsInf(input.ShiftFactor, 0) {
		return fmt.Errorf("shift-factor must be greater than 0 (received %v)", input.ShiftFactor)
	}
	cfg.ShiftMin = input.ShiftMin
	cfg.ShiftFactor = input.ShiftFactor
	return nil
}

// processSelections parses the metric subset, hidden diets and hovered diet.
func processSelections(cfg *Config, input *ConfigRawInput) error {
	cfg.Metrics = schema.AllMetrics
	if strings.TrimSpace(input.Metrics) != "" {
		metrics := schema.ParseMetricList(input.Metrics)
		for _, m := range metrics {
			if !schema.IsKnownMetric(m) {
				return fmt.Errorf("unknown metric '%s'", m)
			}
		}
		cfg.Metrics = metrics
	}

	cfg.Hidden = nil
	for _, d := range schema.ParseDietList(input.Hide) {
		if !schema.IsKnownDiet(d) {
			return fmt.Errorf("unknown diet '%s' in --hide", d)
		}
		cfg.Hidden = append(cfg.Hidden, d)
	}

	cfg.Hovered = schema.Diet(strings.TrimSpace(input.Hover))
	if cfg.Hovered != "" && !schema.IsKnownDiet(cfg.Hovered) {
		return fmt.Errorf("unknown diet '%s' in --hover", cfg.Hovered)
	}
	return nil
}

// processOverrides merges config file max values and colors over the defaults.
func processOverrides(cfg *Config, input *ConfigRawInput) error {
	cfg.MaxValues = schema.GetDefaultMaxValues()
	for k, v := range input.MaxValues {
		m := schema.Metric(strings.ToLower(k))
		if !schema.IsKnownMetric(m) {
			return fmt.Errorf("unknown metric '%s' in max_values", k)
		}
		if !(v > 0) || math.IsInf(v, 0) {
			return fmt.Errorf("max_values.%s must be a positive number (received %v)", k, v)
		}
		cfg.MaxValues[m] = v
	}

	cfg.Colors = schema.GetDefaultColors()
	for k, v := range input.Colors {
		d := schema.Diet(strings.ToLower(k))
		if !schema.IsKnownDiet(d) {
			return fmt.Errorf("unknown diet '%s' in colors", k)
		}
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("colors.%s cannot be empty", k)
		}
		cfg.Colors[d] = strings.TrimSpace(v)
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("run-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("run-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// ParseDatabaseBackend normalizes a backend name. Empty means NoneBackend.
func ParseDatabaseBackend(raw string) (schema.DatabaseBackend, error) {
	if strings.TrimSpace(raw) == "" {
		return schema.NoneBackend, nil
	}
	backend := schema.DatabaseBackend(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := schema.ValidDatabaseBackends[backend]; !ok {
		return "", fmt.Errorf("invalid run backend '%s'. must be sqlite, mysql, postgresql, none", raw)
	}
	return backend, nil
}

// validateBackendConfig validates the run log backend configuration.
func validateBackendConfig(cfg *Config, input *ConfigRawInput) error {
	backend, err := ParseDatabaseBackend(input.RunBackend)
	if err != nil {
		return err
	}
	cfg.RunBackend = backend
	cfg.RunDBConnect = input.RunDBConnect
	return ValidateDatabaseConnectionString(cfg.RunBackend, cfg.RunDBConnect)
}

// processServer validates the view server settings.
func processServer(cfg *Config, input *ConfigRawInput) error {
	cfg.Watch = input.Watch
	cfg.ServerAddr = strings.TrimSpace(input.Addr)
	if cfg.ServerAddr == "" {
		cfg.ServerAddr = DefaultServerAddr
	}
	if _, _, err := net.SplitHostPort(cfg.ServerAddr); err != nil {
		return fmt.Errorf("invalid server address '%s': %w", cfg.ServerAddr, err)
	}
	return nil
}

// ProcessProfilingConfig sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix == "" {
		profile.Enabled = false
		return nil
	}
	profile.Enabled = true
	profile.Prefix = profilePrefix
	return nil
}
