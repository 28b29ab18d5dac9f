// Package ui provides terminal output helpers for the flipbook CLI.
package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	sectionColor = color.New(color.FgCyan, color.Bold)
)

// Init configures terminal output. Call once before printing.
func Init(noColor bool) {
	color.NoColor = noColor || color.NoColor
}

// Section prints a section heading.
func Section(title string) {
	fmt.Fprintln(os.Stderr)
	sectionColor.Fprintf(os.Stderr, "== %s ==\n", title)
}

// Success prints a success line.
func Success(format string, args ...interface{}) {
	successColor.Fprint(os.Stderr, "✓ ")
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// Error prints an error line.
func Error(format string, args ...interface{}) {
	errorColor.Fprint(os.Stderr, "✗ ")
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// Info prints a plain informational line.
func Info(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// Spinner returns an indeterminate progress indicator for a long-running
// step. Call Finish when the step completes.
func Spinner(description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
	)
}
