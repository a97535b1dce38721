package core

import (
	"math"

	"github.com/huangsam/dietradar/schema"
)

// Normalize maps value onto a 0-100 scale against maxValue. Any non-finite result
// (zero max, NaN or infinite input) yields 0. Values above maxValue are not clamped.
func Normalize(value, maxValue float64) float64 {
	n := value / maxValue * 100
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}

// Shifter moves normalized values off the center of the radar so that a zero
// reading is still drawn as a visible ring.
type Shifter struct {
	Min    float64
	Factor float64
}

// DefaultShifter maps 0 to 5 and 100 to 95.
var DefaultShifter = Shifter{Min: schema.ShiftMin, Factor: schema.ShiftFactor}

// Shift returns Min + Factor*n.
func (s Shifter) Shift(n float64) float64 {
	return s.Min + s.Factor*n
}

// RawValue reads a metric from a nutrient record. The "<metric>_g_day" key
// wins when it holds a non-zero finite number; otherwise the bare "<metric>"
// key is used. The boolean reports whether either key produced the value.
func RawValue(record schema.NutrientRecord, m schema.Metric) (float64, bool) {
	if record == nil {
		return 0, false
	}
	if v, ok := record[schema.GramsPerDayKey(m)]; ok && usable(v) {
		return v, true
	}
	if v, ok := record[string(m)]; ok && isFinite(v) {
		return v, true
	}
	return 0, false
}

// usable treats zero the same as missing for daily-gram keys.
func usable(v float64) bool {
	return v != 0 && isFinite(v)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
