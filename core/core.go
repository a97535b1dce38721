// Package core has core logic for normalization, interaction state and chart assembly.
package core

import (
	"context"
	"fmt"
	"os"

	"github.com/huangsam/dietradar/internal/contract"
	"github.com/huangsam/dietradar/internal/dataset"
	"github.com/huangsam/dietradar/internal/outwriter"
	"github.com/huangsam/dietradar/internal/render"
	"github.com/huangsam/dietradar/schema"
)

// ExecutorFunc defines the function signature for executing the chart commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error

// WithSuppressHeader marks ctx so the Execute functions skip the text header.
func WithSuppressHeader(ctx context.Context) context.Context {
	return withSuppressHeader(ctx)
}

// loadDataset loads the configured dataset file or the built-in sample.
func loadDataset(cfg *contract.Config) (*schema.Dataset, error) {
	ds, err := dataset.Load(cfg.DatasetPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	return ds, nil
}

// printHeader prints the chart header for text output unless suppressed.
func printHeader(ctx context.Context, cfg *contract.Config, ds *schema.Dataset) {
	if shouldSuppressHeader(ctx) || cfg.Output != schema.TextOut {
		return
	}
	contract.LogChartHeader(os.Stdout, cfg, dataset.Describe(ds))
}

// computeRows builds chart rows and records them in the run log under command.
// Detail values are always computed for the run log and dropped afterwards
// unless the config asks for them.
func computeRows(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, command string, ds *schema.Dataset) []schema.ChartRow {
	ctx, store := beginRun(ctx, mgr, command, cfg, ds)

	opts := OptionsFromConfig(cfg, ds)
	opts.Detail = true
	rows := BuildChartRows(ds, opts)

	finishRun(ctx, store, rows)

	if !cfg.Detail {
		for i := range rows {
			rows[i].Raw = nil
			rows[i].Normalized = nil
		}
	}
	return rows
}

// GetChartRowsResults loads the dataset and returns its chart rows.
func GetChartRowsResults(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) ([]schema.ChartRow, *schema.Dataset, error) {
	ds, err := loadDataset(cfg)
	if err != nil {
		return nil, nil, err
	}
	return computeRows(ctx, cfg, mgr, "table", ds), ds, nil
}

// GetSeriesResults returns one series per diet after replaying the configured
// hide and hover events.
func GetSeriesResults(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) ([]schema.RadarSeries, *schema.Dataset, error) {
	ds, err := loadDataset(cfg)
	if err != nil {
		return nil, nil, err
	}
	rows := computeRows(ctx, cfg, mgr, "series", ds)
	return BuildSeries(rows, schema.AllDiets, StateFromConfig(cfg), Palette(cfg)), ds, nil
}

// GetChartModelResults returns everything a renderer needs for one page.
func GetChartModelResults(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) (schema.ChartModel, *schema.Dataset, error) {
	ds, err := loadDataset(cfg)
	if err != nil {
		return schema.ChartModel{}, nil, err
	}
	rows := computeRows(ctx, cfg, mgr, "chart", ds)
	series := BuildSeries(rows, schema.AllDiets, StateFromConfig(cfg), Palette(cfg))
	return BuildChartModel(rows, series, SimilarityPoints(ds)), ds, nil
}

// GetSimilarityResults returns the similarity radar points for the dataset.
func GetSimilarityResults(cfg *contract.Config) ([]schema.SimilarityPoint, error) {
	ds, err := loadDataset(cfg)
	if err != nil {
		return nil, err
	}
	return SimilarityPoints(ds), nil
}

// ExecuteTable prints the chart rows.
func ExecuteTable(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	rows, ds, err := GetChartRowsResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	printHeader(ctx, cfg, ds)
	return outwriter.NewOutWriter().WriteRows(rows, cfg)
}

// ExecuteSeries prints one descriptor per diet with its opacities.
func ExecuteSeries(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	series, ds, err := GetSeriesResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	printHeader(ctx, cfg, ds)
	return outwriter.NewOutWriter().WriteSeries(series, cfg)
}

// ExecuteChart renders the radar page. Text and html output produce HTML,
// png captures it with headless Chrome and json dumps the chart model.
func ExecuteChart(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	switch cfg.Output {
	case schema.TextOut, schema.HTMLOut, schema.PNGOut, schema.JSONOut:
	default:
		return fmt.Errorf("chart does not support %s output. use html, png or json", cfg.Output)
	}

	model, _, err := GetChartModelResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}

	switch cfg.Output {
	case schema.JSONOut:
		return outwriter.NewOutWriter().WriteModel(model, cfg)
	case schema.PNGOut:
		if err := render.WritePNGFile(ctx, model, cfg.OutputFile); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stderr, "💾 Wrote chart to %s\n", cfg.OutputFile)
		return nil
	default:
		if cfg.OutputFile == "" {
			return render.RenderHTML(os.Stdout, model)
		}
		if err := render.WriteHTMLFile(model, cfg.OutputFile); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stderr, "💾 Wrote chart to %s\n", cfg.OutputFile)
		return nil
	}
}

// ExecuteSimilarity prints the similarity radar points.
func ExecuteSimilarity(_ context.Context, cfg *contract.Config, _ contract.StoreManager) error {
	points, err := GetSimilarityResults(cfg)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteSimilarity(points, cfg)
}

// ExecuteMetrics prints the metric definitions.
func ExecuteMetrics(_ context.Context, cfg *contract.Config, _ contract.StoreManager) error {
	return outwriter.NewOutWriter().WriteMetrics(cfg)
}
