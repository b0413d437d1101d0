package contract

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Gap severity labels for the verify report.
const (
	FullValue    = "Full"    // Window reported from its far edge
	PartialValue = "Partial" // Window truncated by sparse traffic
)

// Color variables for console output.
var (
	FullColor    = color.New(color.FgCyan)            // fullColor marks complete windows.
	PartialColor = color.New(color.FgYellow)          // partialColor marks truncated windows.
	BadColor     = color.New(color.FgRed, color.Bold) // badColor marks invariant violations.
)

// GetPlainGapLabel returns a plain text label for a window gap, based on
// whether the snapshot's daily lists reached the far edge of the window.
func GetPlainGapLabel(gapDays float64) string {
	if gapDays >= 13 {
		return FullValue
	}
	return PartialValue
}

// GetColorGapLabel returns a colored label for console output.
func GetColorGapLabel(gapDays float64) string {
	text := GetPlainGapLabel(gapDays)
	if text == FullValue {
		return FullColor.Sprint(text)
	}
	return PartialColor.Sprint(text)
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
