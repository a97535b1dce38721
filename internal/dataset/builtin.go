package dataset

import (
	_ "embed"
	"fmt"

	"github.com/huangsam/dietradar/schema"
)

// BuiltinSource labels the embedded sample dataset.
const BuiltinSource = "builtin"

//go:embed data/sample.json
var sampleJSON []byte

// LoadBuiltin parses the embedded sample dataset. The numbers are illustrative
// and are not taken from any real survey.
func LoadBuiltin() (*schema.Dataset, error) {
	ds, err := parseJSON(sampleJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to parse built-in dataset: %w", err)
	}
	ds.Source = BuiltinSource
	return ds, nil
}
