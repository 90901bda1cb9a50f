// Package grader scores student answers. Formula and truth-table answers
// are graded mechanically by the logic engine; free-text answers go to an
// LLM with an offline keyword heuristic as fallback.
package grader

// Result is the verdict for one graded answer.
type Result struct {
	Score      int
	MaxScore   int
	Correct    bool
	FeedbackEN string
	FeedbackHU string
}

// Feedback returns the feedback in the given language code ("en" or "hu").
func (r Result) Feedback(lang string) string {
	if lang == "hu" && r.FeedbackHU != "" {
		return r.FeedbackHU
	}
	return r.FeedbackEN
}
