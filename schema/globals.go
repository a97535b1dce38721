package schema

// DefaultSimilarity is placeholder data for the similarity radar. Values are
// sample scores in [0, 1] and are not derived from the nutrient dataset.
var DefaultSimilarity = []SimilarityPoint{
	{Name: "Balanced Omnivore", Value: 0.92},
	{Name: "Pescatarian", Value: 0.81},
	{Name: "Vegetarian", Value: 0.30},
	{Name: "Vegan", Value: 0.15},
	{Name: "Paleo", Value: 0.55},
	{Name: "Keto", Value: 0.25},
	{Name: "Carnivore", Value: 0.10},
}

// GetDefaultSimilarity returns a copy of DefaultSimilarity.
func GetDefaultSimilarity() []SimilarityPoint {
	out := make([]SimilarityPoint, len(DefaultSimilarity))
	copy(out, DefaultSimilarity)
	return out
}
