package schema

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// titleWords splits an identifier on underscores and capitalizes each word.
// Empty segments are kept so that "a__b" still yields two spaces.
func titleWords(id string) string {
	parts := strings.Split(id, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(p)
		parts[i] = string(unicode.ToUpper(r)) + p[size:]
	}
	return strings.Join(parts, " ")
}

// MetricDisplayName formats "red_and_orange_vegetables" to "Red And Orange Vegetables".
func MetricDisplayName(m Metric) string {
	return titleWords(string(m))
}

// DietDisplayName formats a diet identifier for legends and tables.
// The user's own diet always reads "Your Diet".
func DietDisplayName(d Diet) string {
	if d == UserDiet {
		return "Your Diet"
	}
	return titleWords(string(d))
}

// ParseDietList splits a comma-separated list of diet identifiers.
// Blank entries are skipped and duplicates collapse to the first occurrence.
func ParseDietList(raw string) []Diet {
	var out []Diet
	seen := make(map[Diet]struct{})
	for _, part := range strings.Split(raw, ",") {
		d := Diet(strings.TrimSpace(part))
		if d == "" {
			continue
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	return out
}

// ParseMetricList splits a comma-separated list of metric identifiers.
// Blank entries are skipped and duplicates collapse to the first occurrence.
func ParseMetricList(raw string) []Metric {
	var out []Metric
	seen := make(map[Metric]struct{})
	for _, part := range strings.Split(raw, ",") {
		m := Metric(strings.TrimSpace(part))
		if m == "" {
			continue
		}
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}

// GramsPerDayKey returns the "<metric>_g_day" record key for m.
func GramsPerDayKey(m Metric) string {
	return string(m) + GramsPerDaySuffix
}
