package schema

// Custom string types for type safety.
type (
	// Metric identifies a nutritional dimension tracked per diet.
	Metric string

	// Diet identifies one of the compared diet archetypes.
	Diet string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for the run log.
	DatabaseBackend string
)

// All metrics, in display order around the radar.
const (
	RedMeat                Metric = "red_meat"
	Poultry                Metric = "poultry"
	Seafood                Metric = "seafood"
	Eggs                   Metric = "eggs"
	Milk                   Metric = "milk"
	Cheese                 Metric = "cheese"
	Yogurt                 Metric = "yogurt"
	Cream                  Metric = "cream"
	Butter                 Metric = "butter"
	WholeFruits            Metric = "whole_fruits"
	Juices                 Metric = "juices"
	Leaves                 Metric = "leaves"
	Flowers                Metric = "flowers"
	RedAndOrangeVegetables Metric = "red_and_orange_vegetables"
	StarchyVegetables      Metric = "starchy_vegetables"
	Stems                  Metric = "stems"
	OtherVegetables        Metric = "other_vegetables"
	Mushrooms              Metric = "mushrooms"
	BeansAndLentils        Metric = "beans_and_lentils"
	SoyProducts            Metric = "soy_products"
	NutsAndSeeds           Metric = "nuts_and_seeds"
	Oils                   Metric = "oils"
	RefinedSugar           Metric = "refined_sugar"
	WholeGrains            Metric = "whole_grains"
	RefinedGrains          Metric = "refined_grains"
	Fiber                  Metric = "fiber"
	FatPct                 Metric = "fat_pct"
	CarbsPct               Metric = "carbs_pct"
	ProteinPct             Metric = "protein_pct"
)

// All diets supported. UserDiet is always first.
const (
	UserDiet         Diet = "user_diet"
	BalancedOmnivore Diet = "balanced_omnivore"
	Pescatarian      Diet = "pescatarian"
	Vegetarian       Diet = "vegetarian"
	Vegan            Diet = "vegan"
	Paleo            Diet = "paleo"
	Keto             Diet = "keto"
	Carnivore        Diet = "carnivore"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
	HTMLOut    OutputMode = "html"
	PNGOut     OutputMode = "png"
)

// All run log backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite"
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none" // default
)

// AllMetrics lists every metric in radar order.
var AllMetrics = []Metric{
	RedMeat, Poultry, Seafood, Eggs, Milk, Cheese, Yogurt, Cream, Butter,
	WholeFruits, Juices, Leaves, Flowers, RedAndOrangeVegetables, StarchyVegetables,
	Stems, OtherVegetables, Mushrooms, BeansAndLentils, SoyProducts, NutsAndSeeds,
	Oils, RefinedSugar, WholeGrains, RefinedGrains, Fiber, FatPct, CarbsPct, ProteinPct,
}

// AllDiets lists every diet in series order.
var AllDiets = []Diet{
	UserDiet, BalancedOmnivore, Pescatarian, Vegetarian, Vegan, Paleo, Keto, Carnivore,
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
	HTMLOut:    {},
	PNGOut:     {},
}

// ValidDatabaseBackends lists all valid run log backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// IsKnownMetric reports whether m is one of AllMetrics.
func IsKnownMetric(m Metric) bool {
	for _, known := range AllMetrics {
		if known == m {
			return true
		}
	}
	return false
}

// IsKnownDiet reports whether d is one of AllDiets.
func IsKnownDiet(d Diet) bool {
	for _, known := range AllDiets {
		if known == d {
			return true
		}
	}
	return false
}
