package report

import "strings"

// Placeholder tokens recognized in report templates. Each is replaced
// wholesale by computed or loaded content during finalization.
const (
	ResultsPlaceholder               = "RESULTS_PLACEHOLDER"
	AchievementAnalysisPlaceholder   = "ACHIEVEMENT_ANALYSIS_PLACEHOLDER"
	PerformanceEvaluationPlaceholder = "PERFORMANCE_EVALUATION_PLACEHOLDER"
	RecommendationsPlaceholder       = "RECOMMENDATIONS_PLACEHOLDER"
	ConclusionPlaceholder            = "CONCLUSION_PLACEHOLDER"
)

// Placeholders lists every recognized token in substitution order.
var Placeholders = []string{
	ResultsPlaceholder,
	AchievementAnalysisPlaceholder,
	PerformanceEvaluationPlaceholder,
	RecommendationsPlaceholder,
	ConclusionPlaceholder,
}

// Substitute replaces each placeholder token in template with its
// corresponding content. Replacement is literal (no regex) and covers every
// occurrence of a token. Tokens absent from the template are skipped without
// error, so running substitution over an already-finalized report changes
// nothing.
func Substitute(template, results string, s Sections) string {
	out := template
	out = strings.ReplaceAll(out, ResultsPlaceholder, results)
	out = strings.ReplaceAll(out, AchievementAnalysisPlaceholder, s.AchievementAnalysis)
	out = strings.ReplaceAll(out, PerformanceEvaluationPlaceholder, s.PerformanceEvaluation)
	out = strings.ReplaceAll(out, RecommendationsPlaceholder, s.Recommendations)
	out = strings.ReplaceAll(out, ConclusionPlaceholder, s.Conclusion)
	return out
}

// InsertAfterHeading inserts fragment as a new line immediately after the
// first line of text exactly equal to heading. A heading appearing mid-line
// does not match. When no line matches, text is returned unchanged; a
// missing anchor is tolerated, not an error.
func InsertAfterHeading(text, heading, fragment string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != heading {
			continue
		}
		out := make([]string, 0, len(lines)+1)
		out = append(out, lines[:i+1]...)
		out = append(out, fragment)
		out = append(out, lines[i+1:]...)
		return strings.Join(out, "\n")
	}
	return text
}

// FoundPlaceholders returns the recognized tokens present in text, in
// substitution order.
func FoundPlaceholders(text string) []string {
	var found []string
	for _, token := range Placeholders {
		if strings.Contains(text, token) {
			found = append(found, token)
		}
	}
	return found
}

// MissingPlaceholders returns the recognized tokens absent from text, in
// substitution order.
func MissingPlaceholders(text string) []string {
	var missing []string
	for _, token := range Placeholders {
		if !strings.Contains(text, token) {
			missing = append(missing, token)
		}
	}
	return missing
}
