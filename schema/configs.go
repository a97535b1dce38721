package schema

// Chart geometry constants. Values land on a 0-100 radial axis.
const (
	// ShiftMin is where a zero-normalized value lands after the shift.
	ShiftMin = 5.0

	// ShiftFactor scales normalized values after the shift (100 lands on 95).
	ShiftFactor = 0.9

	// CenterFillRadius marks the inner background ring. Not tied to any diet.
	CenterFillRadius = 1.0

	// RadialMax is the upper bound of the radial axis.
	RadialMax = 100.0

	// RadialSplits is the number of concentric grid rings.
	RadialSplits = 5
)

// Series styling constants.
const (
	CenterFillColor   = "#eeeeee"
	SimilarityColor   = "#8884d8"
	SimilarityOpacity = 0.6
)

// Opacity levels derived from the interaction state.
const (
	FillOpacityIdle    = 0.1
	FillOpacityFocused = 0.3
	FillOpacityDimmed  = 0.05

	StrokeOpacityIdle    = 1.0
	StrokeOpacityFocused = 1.0
	StrokeOpacityDimmed  = 0.2

	OpacityHidden = 0.0
)

// GramsPerDaySuffix is appended to a metric name for daily-gram quantities.
const GramsPerDaySuffix = "_g_day"

// DefaultMaxValues holds the normalization denominator per metric: the highest
// value observed for that metric across all diets.
var DefaultMaxValues = map[Metric]float64{
	RedMeat:                1733,
	Poultry:                347,
	Seafood:                347,
	Eggs:                   246,
	Milk:                   347,
	Cheese:                 347,
	Yogurt:                 347,
	Cream:                  347,
	Butter:                 347,
	WholeFruits:            805,
	Juices:                 146,
	Leaves:                 302,
	Flowers:                302,
	RedAndOrangeVegetables: 302,
	StarchyVegetables:      302,
	Stems:                  201,
	OtherVegetables:        201,
	Mushrooms:              101,
	BeansAndLentils:        224,
	SoyProducts:            79,
	NutsAndSeeds:           83,
	Oils:                   116,
	RefinedSugar:           36,
	WholeGrains:            402,
	RefinedGrains:          146,
	Fiber:                  60,
	FatPct:                 80,
	CarbsPct:               65,
	ProteinPct:             45,
}

// DefaultColors holds the radar fill/stroke color token per diet.
var DefaultColors = map[Diet]string{
	UserDiet:         "#2196F3", // bright blue
	BalancedOmnivore: "gold",
	Pescatarian:      "violet",
	Vegetarian:       "#66BB6A", // medium green
	Vegan:            "teal",
	Paleo:            "#F57C00", // medium orange
	Keto:             "red",
	Carnivore:        "maroon",
}

// GetDefaultMaxValues returns a copy of DefaultMaxValues that callers may mutate.
func GetDefaultMaxValues() map[Metric]float64 {
	out := make(map[Metric]float64, len(DefaultMaxValues))
	for k, v := range DefaultMaxValues {
		out[k] = v
	}
	return out
}

// GetDefaultColors returns a copy of DefaultColors that callers may mutate.
func GetDefaultColors() map[Diet]string {
	out := make(map[Diet]string, len(DefaultColors))
	for k, v := range DefaultColors {
		out[k] = v
	}
	return out
}
