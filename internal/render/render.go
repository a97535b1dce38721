// Package render draws the diet radar and the similarity radar with go-echarts.
package render

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/huangsam/dietradar/schema"
)

const (
	colorTextPrimary   = "#333333"
	colorTextSecondary = "#666666"

	chartWidthPx       = 960
	radarHeightPx      = 720
	similarityHeightPx = 480
)

// BuildRadar builds the main radar: one axis per row, the center fill ring
// first, then one series per diet styled by its opacities.
func BuildRadar(model schema.ChartModel) *charts.Radar {
	indicators := make([]*opts.Indicator, 0, len(model.Rows))
	center := make([]float64, 0, len(model.Rows))
	for _, r := range model.Rows {
		indicators = append(indicators, &opts.Indicator{Name: r.Label, Min: 0, Max: float32(schema.RadialMax)})
		center = append(center, r.CenterFill)
	}

	radar := charts.NewRadar()
	radar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  fmt.Sprintf("%dpx", chartWidthPx),
			Height: fmt.Sprintf("%dpx", radarHeightPx),
		}),
		charts.WithTitleOpts(opts.Title{
			Title:      titleOr(model.Title, schema.ChartTitle),
			Left:       "center",
			TitleStyle: &opts.TextStyle{Color: colorTextPrimary, FontSize: 18},
		}),
		charts.WithLegendOpts(opts.Legend{
			Show:      opts.Bool(true),
			Bottom:    "0",
			Data:      legendNames(model),
			TextStyle: &opts.TextStyle{Color: colorTextSecondary},
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithRadarComponentOpts(opts.RadarComponent{
			Indicator:   indicators,
			Shape:       "polygon",
			SplitNumber: schema.RadialSplits,
			SplitLine:   &opts.SplitLine{Show: opts.Bool(true), LineStyle: &opts.LineStyle{Color: colorTextSecondary, Opacity: opts.Float(0.3)}},
			SplitArea:   &opts.SplitArea{Show: opts.Bool(false)},
		}),
	)

	radar.AddSeries(schema.CenterFillName, []opts.RadarData{{Name: schema.CenterFillName, Value: center}},
		charts.WithItemStyleOpts(opts.ItemStyle{Color: schema.CenterFillColor}),
		charts.WithAreaStyleOpts(opts.AreaStyle{Color: schema.CenterFillColor, Opacity: opts.Float(1)}),
		charts.WithLineStyleOpts(opts.LineStyle{Color: schema.CenterFillColor, Width: 0, Opacity: opts.Float(0)}),
	)

	for _, s := range model.Series {
		radar.AddSeries(s.Name, []opts.RadarData{{Name: s.Name, Value: s.Values}},
			charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color, Opacity: opts.Float(float32(s.StrokeOpacity))}),
			charts.WithAreaStyleOpts(opts.AreaStyle{Color: s.Color, Opacity: opts.Float(float32(s.FillOpacity))}),
			charts.WithLineStyleOpts(opts.LineStyle{Color: s.Color, Width: 2, Opacity: opts.Float(float32(s.StrokeOpacity))}),
		)
	}
	return radar
}

// legendNames lists the diet series only. The center fill ring is not a diet
// and must not be clickable.
func legendNames(model schema.ChartModel) []string {
	names := make([]string, 0, len(model.Series))
	for _, s := range model.Series {
		names = append(names, s.Name)
	}
	return names
}

// BuildSimilarityRadar builds the single-series similarity radar on a 0-1 axis.
func BuildSimilarityRadar(title string, points []schema.SimilarityPoint) *charts.Radar {
	indicators := make([]*opts.Indicator, 0, len(points))
	values := make([]float64, 0, len(points))
	for _, p := range points {
		indicators = append(indicators, &opts.Indicator{Name: p.Name, Min: 0, Max: 1})
		values = append(values, p.Value)
	}

	radar := charts.NewRadar()
	radar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  fmt.Sprintf("%dpx", chartWidthPx),
			Height: fmt.Sprintf("%dpx", similarityHeightPx),
		}),
		charts.WithTitleOpts(opts.Title{
			Title:      titleOr(title, schema.SimilarityTitle),
			Left:       "center",
			TitleStyle: &opts.TextStyle{Color: colorTextPrimary, FontSize: 16},
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithRadarComponentOpts(opts.RadarComponent{
			Indicator:   indicators,
			Shape:       "polygon",
			SplitNumber: schema.RadialSplits,
		}),
	)
	radar.AddSeries(schema.SimilarityTitle, []opts.RadarData{{Name: schema.SimilarityTitle, Value: values}},
		charts.WithItemStyleOpts(opts.ItemStyle{Color: schema.SimilarityColor}),
		charts.WithAreaStyleOpts(opts.AreaStyle{Color: schema.SimilarityColor, Opacity: opts.Float(schema.SimilarityOpacity)}),
		charts.WithLineStyleOpts(opts.LineStyle{Color: schema.SimilarityColor}),
	)
	return radar
}

// BuildPage lays out the main radar above the similarity radar.
func BuildPage(model schema.ChartModel) *components.Page {
	page := components.NewPage()
	page.PageTitle = titleOr(model.Title, schema.ChartTitle)
	page.SetLayout(components.PageFlexLayout)
	radar := BuildRadar(model)
	page.AddCharts(radar)
	// AddCharts validates the radar, which resets the legend to every series name
	radar.Legend.Data = legendNames(model)
	if len(model.Similarity) > 0 {
		page.AddCharts(BuildSimilarityRadar(model.SimilarityTitle, model.Similarity))
	}
	return page
}

// RenderHTML writes the chart page for model to w.
func RenderHTML(w io.Writer, model schema.ChartModel) error {
	if len(model.Rows) == 0 {
		return fmt.Errorf("no chart rows to render")
	}
	if err := BuildPage(model).Render(w); err != nil {
		return fmt.Errorf("failed to render chart page: %w", err)
	}
	return nil
}

// HTMLBytes renders the chart page into memory.
func HTMLBytes(model schema.ChartModel) ([]byte, error) {
	var buf bytes.Buffer
	if err := RenderHTML(&buf, model); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteHTMLFile renders the chart page to path.
func WriteHTMLFile(model schema.ChartModel, path string) error {
	html, err := HTMLBytes(model)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, html, 0o644); err != nil {
		return fmt.Errorf("failed to write chart page %s: %w", path, err)
	}
	return nil
}

func titleOr(title, fallback string) string {
	if title == "" {
		return fallback
	}
	return title
}
