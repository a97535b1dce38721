package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/huangsam/dietradar/internal/contract"
	"github.com/huangsam/dietradar/internal/parquet"
	"github.com/huangsam/dietradar/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteChartRows outputs chart rows, dispatching based on the output format configured.
func WriteChartRows(rows []schema.ChartRow, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)
	diets := rowDiets(rows)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, rows)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVRows(w, rows, diets, cfg.Detail, fmtFloat)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeParquetRows(rows, diets, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			if cfg.Detail {
				return writeDetailTable(w, rows, diets, fmtFloat)
			}
			return writeRowTable(w, rows, diets, cfg, fmtFloat)
		}, "Wrote table")
	}
	return nil
}

// rowDiets returns the diets present in the rows, in canonical diet order
// followed by any other diets sorted by name.
func rowDiets(rows []schema.ChartRow) []schema.Diet {
	if len(rows) == 0 {
		return nil
	}
	seen := make(map[schema.Diet]bool)
	var diets []schema.Diet
	for _, d := range schema.AllDiets {
		if _, ok := rows[0].Values[d]; ok {
			diets = append(diets, d)
			seen[d] = true
		}
	}
	var extra []schema.Diet
	for _, row := range rows {
		for d := range row.Values {
			if !seen[d] {
				extra = append(extra, d)
				seen[d] = true
			}
		}
	}
	slices.Sort(extra)
	return append(diets, extra...)
}

// writeRowTable writes one row per metric and one column per diet.
func writeRowTable(w io.Writer, rows []schema.ChartRow, diets []schema.Diet, cfg *contract.Config, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(w)

	headers := []string{"Metric"}
	for _, d := range diets {
		headers = append(headers, schema.DietDisplayName(d))
	}
	table.Header(headers)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	labelWidth := getMaxTableLabelWidth(cfg, len(diets))
	var data [][]string
	for _, row := range rows {
		line := []string{contract.TruncateLabel(row.Label, labelWidth)}
		for _, d := range diets {
			line = append(line, fmtFloat(row.Values[d]))
		}
		data = append(data, line)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Showing %d metrics across %d diets (center fill %g)\n", len(rows), len(diets), schema.CenterFillRadius)
	return err
}

// writeDetailTable writes the long form: one line per (metric, diet) with the
// raw, normalized and shifted values.
func writeDetailTable(w io.Writer, rows []schema.ChartRow, diets []schema.Diet, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Metric", "Diet", "Raw", "Normalized", "Shifted"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, row := range rows {
		for _, d := range diets {
			data = append(data, []string{
				row.Label,
				schema.DietDisplayName(d),
				fmtFloat(row.Raw[d]),
				fmtFloat(row.Normalized[d]),
				fmtFloat(row.Values[d]),
			})
		}
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Showing %d points\n", len(data))
	return err
}

// writeCSVRows writes the long form as CSV. Detail adds raw and normalized columns.
func writeCSVRows(w io.Writer, rows []schema.ChartRow, diets []schema.Diet, detail bool, fmtFloat func(float64) string) error {
	header := []string{"metric", "label", "diet", "value"}
	if detail {
		header = append(header, "raw", "normalized")
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, row := range rows {
			for _, d := range diets {
				rec := []string{string(row.Metric), row.Label, string(d), fmtFloat(row.Values[d])}
				if detail {
					rec = append(rec, fmtFloat(row.Raw[d]), fmtFloat(row.Normalized[d]))
				}
				if err := cw.Write(rec); err != nil {
					return fmt.Errorf("failed to write CSV record: %w", err)
				}
			}
		}
		return nil
	})
}

// writeParquetRows writes the flattened rows to a Parquet file.
func writeParquetRows(rows []schema.ChartRow, diets []schema.Diet, outputFile string) error {
	if outputFile == "" {
		return errors.New("parquet output requires --output-file")
	}
	points := parquet.ConvertChartRows(rows, diets)
	if err := parquet.WriteChartPointsParquet(points, outputFile); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote %d points to %s\n", len(points), outputFile)
	return nil
}
