package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Interaction state label constants.
const (
	VisibleValue = "Visible" // Drawn, nothing hovered
	HiddenValue  = "Hidden"  // Toggled off in the legend
	FocusedValue = "Focused" // The hovered diet
	DimmedValue  = "Dimmed"  // Drawn while another diet is hovered
)

// Color variables for console output.
var (
	VisibleColor = color.New(color.FgGreen)               // VisibleColor represents a normally drawn series.
	HiddenColor  = color.New(color.FgHiBlack)             // HiddenColor represents a toggled-off series.
	FocusedColor = color.New(color.FgMagenta, color.Bold) // FocusedColor represents the hovered series.
	DimmedColor  = color.New(color.FgYellow)              // DimmedColor represents a series pushed back by a hover.
)

// GetColorLabel returns a colored state label for console output (table).
// Unknown labels are returned unchanged.
func GetColorLabel(label string) string {
	switch label {
	case VisibleValue:
		return VisibleColor.Sprint(label)
	case HiddenValue:
		return HiddenColor.Sprint(label)
	case FocusedValue:
		return FocusedColor.Sprint(label)
	case DimmedValue:
		return DimmedColor.Sprint(label)
	default:
		return label
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. It falls back to os.Stdout when the path is empty.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// LogInfo logs an informational message to stderr.
func LogInfo(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "Info "+format+"\n", args...)
}

// GetRunDBFilePath returns the path to the SQLite DB file for the run log.
func GetRunDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".dietradar_runs.db"
	}
	return filepath.Join(homeDir, ".dietradar_runs.db")
}

// TruncateLabel truncates a label to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 so there is room for the "..." and at least one character.
func TruncateLabel(label string, maxWidth int) string {
	runes := []rune(label)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return label
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
