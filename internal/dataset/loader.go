// Package dataset loads nutrient datasets from JSON, YAML or TOML files.
package dataset

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/huangsam/dietradar/schema"
	"github.com/mitchellh/mapstructure"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// Top-level dataset keys.
const (
	dietsKey      = "diets"
	maxValuesKey  = "max_values"
	similarityKey = "similarity"
)

// Load returns the dataset at path, or the built-in sample when path is empty.
func Load(path string) (*schema.Dataset, error) {
	if strings.TrimSpace(path) == "" {
		return LoadBuiltin()
	}
	return LoadFile(path)
}

// LoadFile reads a dataset file, picking the parser from its extension.
func LoadFile(path string) (*schema.Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}
	ds, err := Parse(raw, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataset %s: %w", path, err)
	}
	ds.Source = path
	return ds, nil
}

// Parse decodes raw bytes in the format named by ext (".json", ".yaml", ".yml" or ".toml").
func Parse(raw []byte, ext string) (*schema.Dataset, error) {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "json":
		return parseJSON(raw)
	case "yaml", "yml":
		var doc map[string]any
		if err := yaml.NewDecoder(bytes.NewReader(raw)).Decode(&doc); err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
		return fromGeneric(doc)
	case "toml":
		var doc map[string]any
		if _, err := toml.Decode(string(raw), &doc); err != nil {
			return nil, fmt.Errorf("invalid TOML: %w", err)
		}
		return fromGeneric(doc)
	default:
		return nil, fmt.Errorf("unsupported dataset format %q (expected json, yaml, yml, toml)", ext)
	}
}

// parseJSON walks the document with gjson so that non-numeric fields can be
// dropped without a schema.
func parseJSON(raw []byte) (*schema.Dataset, error) {
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("invalid JSON")
	}
	doc := gjson.ParseBytes(raw)
	diets := doc.Get(dietsKey)
	if !diets.IsObject() {
		return nil, fmt.Errorf("missing %q object", dietsKey)
	}

	ds := &schema.Dataset{Diets: make(map[schema.Diet]schema.NutrientRecord)}
	diets.ForEach(func(key, value gjson.Result) bool {
		record := make(schema.NutrientRecord)
		value.ForEach(func(field, v gjson.Result) bool {
			if v.Type == gjson.Number {
				record[field.String()] = v.Float()
			}
			return true
		})
		ds.Diets[schema.Diet(key.String())] = record
		return true
	})

	if maxValues := doc.Get(maxValuesKey); maxValues.IsObject() {
		ds.MaxValues = make(map[schema.Metric]float64)
		maxValues.ForEach(func(key, v gjson.Result) bool {
			if v.Type == gjson.Number {
				ds.MaxValues[schema.Metric(key.String())] = v.Float()
			}
			return true
		})
	}

	if sim := doc.Get(similarityKey); sim.IsArray() {
		points, err := decodeSimilarity(sim.Value())
		if err != nil {
			return nil, err
		}
		ds.Similarity = points
	}
	return ds, nil
}

// fromGeneric converts a decoded YAML/TOML document into a dataset.
func fromGeneric(doc map[string]any) (*schema.Dataset, error) {
	dietsRaw, ok := asMap(doc[dietsKey])
	if !ok {
		return nil, fmt.Errorf("missing %q table", dietsKey)
	}

	ds := &schema.Dataset{Diets: make(map[schema.Diet]schema.NutrientRecord, len(dietsRaw))}
	for name, fieldsRaw := range dietsRaw {
		record := make(schema.NutrientRecord)
		if fields, ok := asMap(fieldsRaw); ok {
			for field, v := range fields {
				if f, ok := asFloat(v); ok {
					record[field] = f
				}
			}
		}
		ds.Diets[schema.Diet(name)] = record
	}

	if maxRaw, ok := asMap(doc[maxValuesKey]); ok {
		ds.MaxValues = make(map[schema.Metric]float64, len(maxRaw))
		for k, v := range maxRaw {
			if f, ok := asFloat(v); ok {
				ds.MaxValues[schema.Metric(k)] = f
			}
		}
	}

	if simRaw, ok := doc[similarityKey]; ok && simRaw != nil {
		points, err := decodeSimilarity(simRaw)
		if err != nil {
			return nil, err
		}
		ds.Similarity = points
	}
	return ds, nil
}

// decodeSimilarity maps a list of {name, value} tables onto similarity points.
func decodeSimilarity(raw any) ([]schema.SimilarityPoint, error) {
	var points []schema.SimilarityPoint
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &points,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build similarity decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("invalid %q section: %w", similarityKey, err)
	}
	return points, nil
}

// asMap accepts both map[string]any and the map[any]any some decoders produce.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	default:
		return nil, false
	}
}

// asFloat accepts any numeric type. Strings and other values are dropped.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint:
		return float64(n), true
	default:
		return 0, false
	}
}

// Describe returns a one-line summary of a dataset for headers and logs.
func Describe(ds *schema.Dataset) string {
	if ds == nil {
		return "none"
	}
	return ds.Source + " (" + strconv.Itoa(len(ds.Diets)) + " diets)"
}
