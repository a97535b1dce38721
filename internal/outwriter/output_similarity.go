package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/huangsam/dietradar/internal/contract"
	"github.com/huangsam/dietradar/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteSimilarityPoints outputs similarity points, dispatching based on the output format configured.
func WriteSimilarityPoints(points []schema.SimilarityPoint, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, points)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{"name", "value"}, func(cw *csv.Writer) error {
				for _, p := range points {
					if err := cw.Write([]string{p.Name, fmtFloat(p.Value)}); err != nil {
						return fmt.Errorf("failed to write CSV record: %w", err)
					}
				}
				return nil
			})
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return fmt.Errorf("output %s is not supported for similarity", cfg.Output)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSimilarityTable(w, points, getMaxBarWidth(cfg), fmtFloat)
		}, "Wrote table")
	}
	return nil
}

// similarityBar draws a value on the 0-1 axis as a run of block characters.
func similarityBar(value float64, width int) string {
	if math.IsNaN(value) || value <= 0 {
		return ""
	}
	n := int(math.Round(math.Min(value, 1) * float64(width)))
	return strings.Repeat("█", n)
}

// writeSimilarityTable writes one line per point with a bar scaled to the terminal.
func writeSimilarityTable(w io.Writer, points []schema.SimilarityPoint, barWidth int, fmtFloat func(float64) string) error {
	if _, err := fmt.Fprintf(w, "%s\n", schema.SimilarityTitle); err != nil {
		return err
	}
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Diet", "Value", "Bar"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	var data [][]string
	for _, p := range points {
		data = append(data, []string{p.Name, fmtFloat(p.Value), similarityBar(p.Value, barWidth)})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
