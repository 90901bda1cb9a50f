package grader

import (
	"strings"

	"github.com/bvarga/petralog/internal/assignment"
)

// minFreeTextLength is the shortest answer that can earn any credit.
// Anything shorter is treated as a non-answer.
const minFreeTextLength = 20

// gradeFreeTextHeuristic scores a free-text answer offline by keyword
// coverage. It is deliberately generous: the point is to reward effort
// when no LLM is configured, not to replace real grading.
func gradeFreeTextHeuristic(q assignment.Question, answer string) Result {
	trimmed := strings.TrimSpace(answer)
	if len(trimmed) < minFreeTextLength {
		return Result{
			MaxScore:   q.MaxScore,
			FeedbackEN: "Your answer is too short. Explain your reasoning in a sentence or two.",
			FeedbackHU: "A válaszod túl rövid. Fejtsd ki a gondolatmeneted egy-két mondatban.",
		}
	}

	lower := strings.ToLower(trimmed)
	hits := 0
	for _, kw := range q.Keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			hits++
		}
	}

	score := q.MaxScore
	if len(q.Keywords) > 0 {
		// Round half up so covering most keywords earns most points.
		score = (hits*q.MaxScore + len(q.Keywords)/2) / len(q.Keywords)
	}

	res := Result{
		Score:    score,
		MaxScore: q.MaxScore,
		Correct:  score == q.MaxScore,
	}
	switch {
	case res.Correct:
		res.FeedbackEN = "Your answer covers the key ideas."
		res.FeedbackHU = "A válaszod lefedi a lényeges gondolatokat."
	case score > 0:
		res.FeedbackEN = "Partially correct. Some key ideas are missing from your explanation."
		res.FeedbackHU = "Részben helyes. Néhány lényeges gondolat hiányzik a magyarázatodból."
	default:
		res.FeedbackEN = "Your answer misses the point of the question. Revisit the relevant definition."
		res.FeedbackHU = "A válaszod elkerüli a kérdés lényegét. Nézd át újra a vonatkozó definíciót."
	}
	return res
}
