package report

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Heading is one heading found in a template's Markdown outline.
type Heading struct {
	Level int
	Text  string
}

// Outline extracts the headings of a Markdown template in document order.
func Outline(source []byte) []Heading {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(source))

	var headings []Heading
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			headings = append(headings, Heading{
				Level: h.Level,
				Text:  extractText(h, source),
			})
		}
		return ast.WalkContinue, nil
	})

	return headings
}

// HasAnchorHeading reports whether the template contains the anchor heading.
// The heading parameter is the raw template line, e.g. "### 目標達成状況";
// matching goes through the Markdown outline so trailing whitespace or
// setext-style equivalents in the template do not cause false negatives.
func HasAnchorHeading(source []byte, heading string) bool {
	level, want := splitHeadingLine(heading)
	if want == "" {
		return false
	}

	for _, h := range Outline(source) {
		if h.Text != want {
			continue
		}
		if level == 0 || h.Level == level {
			return true
		}
	}
	return false
}

// splitHeadingLine splits an ATX heading line into its level and text.
// A line with no leading '#' yields level 0 and the trimmed text.
func splitHeadingLine(line string) (int, string) {
	trimmed := strings.TrimSpace(line)
	level := 0
	for level < len(trimmed) && trimmed[level] == '#' {
		level++
	}
	return level, strings.TrimSpace(trimmed[level:])
}

func extractText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Segment.Value(source))
		}
	}
	return buf.String()
}
