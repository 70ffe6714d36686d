package report

import (
	"math"
	"strconv"
	"strings"
)

// Metrics holds the achievement figures derived from a results listing.
type Metrics struct {
	// Achieved is the number of success markers found in the results text
	Achieved int

	// Total is the number of result lines, i.e. the number of tests
	Total int

	// Rate is the achievement percentage rounded to one decimal place
	Rate float64
}

// AllPassed reports whether every test met its target.
func (m Metrics) AllPassed() bool {
	return m.Achieved == m.Total
}

// CountMarker returns the number of occurrences of marker anywhere in text.
// The count is a plain substring count, not line-based: a line carrying two
// markers contributes two.
func CountMarker(text, marker string) int {
	if marker == "" {
		return 0
	}
	return strings.Count(text, marker)
}

// CountLines returns the number of newline-delimited segments in text after
// trimming leading and trailing whitespace from the whole text. A fully empty
// text still yields one (empty) segment; callers treat that segment as a test
// line, matching the split-trimmed-text-on-newlines contract.
func CountLines(text string) int {
	return len(strings.Split(strings.TrimSpace(text), "\n"))
}

// Rate returns the achievement percentage rounded to one decimal place.
// A zero total yields 0 rather than dividing by zero.
func Rate(achieved, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(achieved)*100/float64(total)*10) / 10
}

// FormatRate renders a rate with exactly one decimal place, e.g. "50.0".
func FormatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', 1, 64)
}

// ComputeMetrics derives achievement metrics from a results listing.
// Markers in excess of the line count are not rejected; the resulting rate
// simply exceeds 100.
func ComputeMetrics(results, marker string) Metrics {
	achieved := CountMarker(results, marker)
	total := CountLines(results)
	return Metrics{
		Achieved: achieved,
		Total:    total,
		Rate:     Rate(achieved, total),
	}
}
