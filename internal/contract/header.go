package contract

import (
	"fmt"
	"io"
)

// LogChartHeader prints a concise, 2-line header before chart output.
func LogChartHeader(w io.Writer, cfg *Config, source string) {
	_, _ = fmt.Fprintf(w, "🥗 Dataset: %s (%d metrics)\n", source, len(cfg.Metrics))
	_, _ = fmt.Fprintf(w, "📐 Shift: %g + %g*n\n", cfg.ShiftMin, cfg.ShiftFactor)
}
