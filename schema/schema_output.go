package schema

// ChartModel bundles everything a renderer needs for one page.
type ChartModel struct {
	Title           string            `json:"title"`
	Rows            []ChartRow        `json:"rows"`
	Series          []RadarSeries     `json:"series"`
	Similarity      []SimilarityPoint `json:"similarity"`
	SimilarityTitle string            `json:"similarity_title"`
}

// Page titles.
const (
	ChartTitle      = "Diet Category Radar Chart"
	SimilarityTitle = "Diet Similarity"
	CenterFillName  = "centerFill"
)

// GetStateLabel returns a plain text label for a diet's interaction state.
func GetStateLabel(visible, hovered, anyHovered bool) string {
	switch {
	case !visible:
		return "Hidden"
	case hovered:
		return "Focused"
	case anyHovered:
		return "Dimmed"
	default:
		return "Visible"
	}
}
