package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

// disableColor keeps assertions independent of the test environment's TTY.
func disableColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestDisplayWarning_TitleOnly(t *testing.T) {
	disableColor(t)

	var buf bytes.Buffer
	w := Warning{
		Title: "Anchor heading not found",
	}

	w.Display(&buf)

	output := buf.String()
	if !strings.Contains(output, "⚠️") {
		t.Error("Expected warning emoji in output")
	}
	if !strings.Contains(output, "Warning: Anchor heading not found") {
		t.Error("Expected title in output")
	}
}

func TestDisplayWarning_WithMessageAndSuggestion(t *testing.T) {
	disableColor(t)

	var buf bytes.Buffer
	w := Warning{
		Title:      "Template is missing placeholder tokens",
		Message:    "Sections without a token are skipped.",
		Suggestion: "Add the missing tokens to the template.",
	}

	w.Display(&buf)

	output := buf.String()
	if !strings.Contains(output, "    Sections without a token are skipped.") {
		t.Error("Expected indented message in output")
	}
	if !strings.Contains(output, "Suggestion:") {
		t.Error("Expected suggestion label in output")
	}
	if !strings.Contains(output, "    Add the missing tokens to the template.") {
		t.Error("Expected indented suggestion in output")
	}
}

func TestDisplayWarning_TokenPluralization(t *testing.T) {
	disableColor(t)

	tests := []struct {
		name     string
		tokens   []string
		wantText string
	}{
		{
			name:     "single token",
			tokens:   []string{"CONCLUSION_PLACEHOLDER"},
			wantText: "Affected token:",
		},
		{
			name:     "multiple tokens",
			tokens:   []string{"RESULTS_PLACEHOLDER", "CONCLUSION_PLACEHOLDER"},
			wantText: "Affected tokens:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := Warning{
				Title:  "Missing tokens",
				Tokens: tt.tokens,
			}

			w.Display(&buf)

			output := buf.String()
			if !strings.Contains(output, tt.wantText) {
				t.Errorf("Expected %q in output, got: %s", tt.wantText, output)
			}
			for i, token := range tt.tokens {
				if !strings.Contains(output, strings.Repeat(" ", 6)+string(rune('1'+i))+". "+token) {
					t.Errorf("Expected numbered entry for %s in output: %s", token, output)
				}
			}
		})
	}
}

func TestNewScheme(t *testing.T) {
	scheme := NewScheme()

	if scheme.Success == nil || scheme.Fail == nil || scheme.Warn == nil ||
		scheme.Label == nil || scheme.Muted == nil {
		t.Fatal("scheme colors must all be set")
	}
}
