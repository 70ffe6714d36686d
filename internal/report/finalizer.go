// Package report implements the core report-finalization transformation:
// deriving achievement metrics from a results listing, selecting prose
// sections, and substituting them into a report template. Everything in this
// package is string-in/string-out so the branching logic is testable without
// touching a filesystem.
package report

// Result is the outcome of finalizing a report template in memory.
type Result struct {
	// Report is the fully substituted report text
	Report string

	// Metrics are the achievement figures derived from the results listing
	Metrics Metrics
}

// Finalize runs the whole transformation over in-memory text: compute
// metrics from results, select sections, substitute the placeholder tokens,
// then insert the analysis fragment after the anchor heading. It performs no
// I/O and never fails; a template without tokens or anchor simply passes
// through with fewer changes.
func Finalize(template, results, analysis, marker, heading string) Result {
	m := ComputeMetrics(results, marker)
	s := BuildSections(m)

	out := Substitute(template, results, s)
	out = InsertAfterHeading(out, heading, analysis)

	return Result{
		Report:  out,
		Metrics: m,
	}
}
