package display

import (
	"fmt"
	"io"
	"strings"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Tokens     []string // Related placeholder tokens (optional)
	Suggestion string   // Action to take (optional)
}

// Display shows a formatted warning in yellow
func (w Warning) Display(out io.Writer) {
	warn := NewScheme().Warn

	var b strings.Builder
	b.WriteString("⚠️  Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if len(w.Tokens) > 0 {
		if len(w.Tokens) == 1 {
			b.WriteString("    Affected token:\n")
		} else {
			b.WriteString("    Affected tokens:\n")
		}
		for i, token := range w.Tokens {
			fmt.Fprintf(&b, "      %d. %s\n", i+1, token)
		}
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	warn.Fprint(out, b.String())
}
