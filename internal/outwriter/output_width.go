package outwriter

import (
	"os"

	"github.com/huangsam/dietradar/internal/contract"
	"golang.org/x/term"
)

// getTermWidth returns the width override from config, else the detected
// terminal width, else a conservative 80 columns.
func getTermWidth(cfg *contract.Config) int {
	if cfg.Width > 0 {
		return cfg.Width
	}
	detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detectedWidth <= 0 {
		return 80 // Conservative default for narrow terminals and CI
	}
	return detectedWidth
}

// getMaxTableLabelWidth calculates the maximum width for metric labels in the
// wide row table, leaving room for one numeric column per diet.
func getMaxTableLabelWidth(cfg *contract.Config, numDiets int) int {
	baseWidth := numDiets * 9 // Value columns with borders/padding
	baseWidth += 10           // Table borders and separators

	available := getTermWidth(cfg) - baseWidth
	if available < 12 {
		return 12
	}
	if available > 40 {
		return 40
	}
	return available
}

// getMaxBarWidth returns how many cells a similarity bar may span.
func getMaxBarWidth(cfg *contract.Config) int {
	available := getTermWidth(cfg) - 40 // Name + value columns with borders
	if available < 10 {
		return 10
	}
	if available > 50 {
		return 50
	}
	return available
}
