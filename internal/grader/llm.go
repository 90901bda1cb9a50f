package grader

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/bvarga/petralog/internal/assignment"
	"github.com/bvarga/petralog/internal/llm"
)

const gradingSystemPrompt = `You grade short written answers for an introductory
propositional logic course taught to geology students. Grade strictly but
fairly against the rubric. Never reveal the model answer or solve the
question for the student; point at what is missing instead. Feedback is
one or two sentences, in both English and Hungarian.`

// gradeFreeTextLLM asks the configured LLM for a rubric-based verdict.
func (g *Grader) gradeFreeTextLLM(ctx context.Context, q assignment.Question, answer string) (Result, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Question: %s\n\n", q.PromptEN)
	fmt.Fprintf(&b, "Model answer (rubric anchor, never to be quoted): %s\n\n", q.ModelAnswer)
	fmt.Fprintf(&b, "Key ideas to look for: %s\n\n", strings.Join(q.Keywords, ", "))
	fmt.Fprintf(&b, "Maximum score: %d\n\n", q.MaxScore)
	fmt.Fprintf(&b, "Student answer: %s\n", answer)

	ctx = llm.WithPurpose(ctx, llm.PurposeGrading)
	resp, err := g.provider.Generate(ctx, llm.Request{
		System:    gradingSystemPrompt,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: b.String()}},
		Schema:    freeTextGradeSchema(q.MaxScore),
		MaxTokens: 512,
	})
	if err != nil {
		return Result{}, err
	}

	var verdict struct {
		Score      int    `json:"score"`
		FeedbackEN string `json:"feedback_en"`
		FeedbackHU string `json:"feedback_hu"`
	}
	if err := json.Unmarshal(resp.Content, &verdict); err != nil {
		return Result{}, fmt.Errorf("decode grading verdict: %w", err)
	}

	// The schema bounds the score, but clamp anyway.
	if verdict.Score < 0 {
		verdict.Score = 0
	}
	if verdict.Score > q.MaxScore {
		verdict.Score = q.MaxScore
	}

	return Result{
		Score:      verdict.Score,
		MaxScore:   q.MaxScore,
		Correct:    verdict.Score == q.MaxScore,
		FeedbackEN: verdict.FeedbackEN,
		FeedbackHU: verdict.FeedbackHU,
	}, nil
}

// gradeFreeText prefers the LLM and falls back to the keyword heuristic
// when no provider is configured or the provider fails.
func (g *Grader) gradeFreeText(ctx context.Context, q assignment.Question, answer string) (Result, error) {
	if g.provider == nil {
		return gradeFreeTextHeuristic(q, answer), nil
	}

	res, err := g.gradeFreeTextLLM(ctx, q, answer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: LLM grading failed, using offline heuristic: %v\n", err)
		return gradeFreeTextHeuristic(q, answer), nil
	}
	return res, nil
}
