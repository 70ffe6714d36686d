// Package display provides user-facing console output: warnings and the
// color scheme shared by commands. Colors are disabled automatically when
// output is not a terminal, so piped output stays clean.
package display

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Scheme defines consistent colors for console output.
// Green: success, red: failure, yellow: warnings, cyan: labels,
// gray: timestamps and secondary detail.
type Scheme struct {
	Success *color.Color
	Fail    *color.Color
	Warn    *color.Color
	Label   *color.Color
	Muted   *color.Color
}

// NewScheme creates the standard color scheme.
func NewScheme() *Scheme {
	return &Scheme{
		Success: color.New(color.FgGreen),
		Fail:    color.New(color.FgRed),
		Warn:    color.New(color.FgYellow),
		Label:   color.New(color.FgCyan, color.Bold),
		Muted:   color.New(color.FgHiBlack),
	}
}

// AutoDisableColor turns color output off when stdout is not a terminal or
// the NO_COLOR convention is in effect. Called once at startup.
func AutoDisableColor() {
	if os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
		return
	}
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		color.NoColor = true
	}
}
