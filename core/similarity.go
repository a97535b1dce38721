package core

import "github.com/huangsam/dietradar/schema"

// SimilarityPoints returns the dataset's similarity section, or the built-in
// placeholder points when the dataset has none.
func SimilarityPoints(ds *schema.Dataset) []schema.SimilarityPoint {
	if ds != nil && len(ds.Similarity) > 0 {
		out := make([]schema.SimilarityPoint, len(ds.Similarity))
		copy(out, ds.Similarity)
		return out
	}
	return schema.GetDefaultSimilarity()
}

// BuildChartModel bundles rows, series and similarity points for a renderer.
func BuildChartModel(rows []schema.ChartRow, series []schema.RadarSeries, similarity []schema.SimilarityPoint) schema.ChartModel {
	return schema.ChartModel{
		Title:           schema.ChartTitle,
		Rows:            rows,
		Series:          series,
		Similarity:      similarity,
		SimilarityTitle: schema.SimilarityTitle,
	}
}
