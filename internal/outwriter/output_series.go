package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/huangsam/dietradar/internal/contract"
	"github.com/huangsam/dietradar/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteSeriesResults outputs series descriptors, dispatching based on the output format configured.
func WriteSeriesResults(series []schema.RadarSeries, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONSeries(w, series)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVSeries(w, series, fmtFloat)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return fmt.Errorf("output %s is not supported for series", cfg.Output)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSeriesTable(w, series, fmtFloat)
		}, "Wrote table")
	}
	return nil
}

// seriesLabel derives the plain state label for one series.
func seriesLabel(s schema.RadarSeries, anyHovered bool) string {
	return schema.GetStateLabel(s.Visible, s.Hovered, anyHovered)
}

// anyHovered reports whether one of the series is hovered.
func anyHovered(series []schema.RadarSeries) bool {
	for _, s := range series {
		if s.Hovered {
			return true
		}
	}
	return false
}

// seriesMean averages the radial coordinates of one series.
func seriesMean(s schema.RadarSeries) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range s.Values {
		sum += v
	}
	return sum / float64(len(s.Values))
}

// writeSeriesTable generates and writes the human-readable table.
func writeSeriesTable(w io.Writer, series []schema.RadarSeries, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Diet", "Color", "State", "Fill", "Stroke", "Mean"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	hovered := anyHovered(series)
	visible := 0
	var data [][]string
	for _, s := range series {
		if s.Visible {
			visible++
		}
		data = append(data, []string{
			s.Name,
			s.Color,
			contract.GetColorLabel(seriesLabel(s, hovered)),
			fmtFloat(s.FillOpacity),
			fmtFloat(s.StrokeOpacity),
			fmtFloat(seriesMean(s)),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Showing %d series (%d visible)\n", len(series), visible)
	return err
}

// writeCSVSeries writes one record per series. Values are joined with "|".
func writeCSVSeries(w io.Writer, series []schema.RadarSeries, fmtFloat func(float64) string) error {
	header := []string{"diet", "name", "color", "state", "fill_opacity", "stroke_opacity", "values"}
	hovered := anyHovered(series)
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, s := range series {
			values := make([]string, len(s.Values))
			for i, v := range s.Values {
				values[i] = fmtFloat(v)
			}
			rec := []string{
				string(s.Diet),
				s.Name,
				s.Color,
				seriesLabel(s, hovered),
				fmtFloat(s.FillOpacity),
				fmtFloat(s.StrokeOpacity),
				strings.Join(values, "|"),
			}
			if err := cw.Write(rec); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}

// writeJSONSeries writes the series with the plain state label added.
func writeJSONSeries(w io.Writer, series []schema.RadarSeries) error {
	type JSONSeries struct {
		State string `json:"state"`
		schema.RadarSeries
	}

	hovered := anyHovered(series)
	output := make([]JSONSeries, len(series))
	for i, s := range series {
		output[i] = JSONSeries{State: seriesLabel(s, hovered), RadarSeries: s}
	}
	return writeJSON(w, output)
}
