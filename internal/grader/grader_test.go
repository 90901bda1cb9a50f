package grader

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/bvarga/petralog/internal/assignment"
	"github.com/bvarga/petralog/internal/llm"
	"github.com/bvarga/petralog/internal/logic"
)

func formulaQuestion(expected string) assignment.Question {
	return assignment.Question{
		ID:       "q01",
		Kind:     assignment.KindFormula,
		Expected: expected,
		MaxScore: 2,
	}
}

func TestGradeFormula_EquivalentFullCredit(t *testing.T) {
	g := New(logic.Default(), nil)
	ctx := context.Background()

	tests := []struct {
		desc     string
		expected string
		answer   string
	}{
		{"identical", "¬p ∨ q", "¬p ∨ q"},
		{"de morgan pushed inward", "¬(o ∧ y)", "¬o ∨ ¬y"},
		{"implication rewritten", "p → q", "¬p ∨ q"},
		{"ascii aliases", "¬(o ∧ y)", ",o ~ ,y"},
		{"digraph arrow", "p → q", "p -> q"},
		{"double negation", "p", "¬¬p"},
	}

	for _, tt := range tests {
		res, err := g.Grade(ctx, formulaQuestion(tt.expected), tt.answer)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.desc, err)
			continue
		}
		if !res.Correct || res.Score != 2 {
			t.Errorf("%s: got score %d correct=%v, want full credit", tt.desc, res.Score, res.Correct)
		}
	}
}

func TestGradeFormula_NotEquivalent(t *testing.T) {
	g := New(logic.Default(), nil)

	res, err := g.Grade(context.Background(), formulaQuestion("p ∧ q"), "p ∨ q")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Correct || res.Score != 0 {
		t.Fatalf("got score %d correct=%v, want zero", res.Score, res.Correct)
	}
	if !strings.Contains(res.FeedbackEN, "behaves differently when") {
		t.Errorf("feedback should name the disagreeing assignment, got %q", res.FeedbackEN)
	}
	// AND and OR first disagree at p=true, q=false with true-first ordering.
	if !strings.Contains(res.FeedbackEN, "p=true, q=false") {
		t.Errorf("feedback should mention p=true, q=false, got %q", res.FeedbackEN)
	}
	// The reference formula must stay hidden.
	if strings.Contains(res.FeedbackEN, "p ∧ q") {
		t.Errorf("feedback should not reveal the reference formula, got %q", res.FeedbackEN)
	}
}

func TestGradeFormula_SyntaxErrorZeroCredit(t *testing.T) {
	g := New(logic.Default(), nil)

	res, err := g.Grade(context.Background(), formulaQuestion("p → q"), "p & q")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Score != 0 || res.Correct {
		t.Fatalf("got score %d correct=%v, want zero", res.Score, res.Correct)
	}
	if !strings.Contains(res.FeedbackEN, "could not be read") {
		t.Errorf("feedback should explain the syntax problem, got %q", res.FeedbackEN)
	}
}

func TestGradeFormula_IncompleteFormula(t *testing.T) {
	g := New(logic.Default(), nil)

	res, err := g.Grade(context.Background(), formulaQuestion("p ∧ q"), "p q")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Score != 0 {
		t.Fatalf("got score %d, want 0", res.Score)
	}
	if !strings.Contains(res.FeedbackEN, "incomplete") {
		t.Errorf("feedback should flag the incomplete formula, got %q", res.FeedbackEN)
	}
}

func TestGradeFormula_BrokenReferenceIsAnError(t *testing.T) {
	g := New(logic.Default(), nil)

	_, err := g.Grade(context.Background(), formulaQuestion("p &&& q"), "p ∧ q")
	if err == nil {
		t.Fatal("expected error for a broken reference answer")
	}
	if !strings.Contains(err.Error(), "reference answer") {
		t.Errorf("error should name the reference answer, got %v", err)
	}
}

func TestGradeTruthValue(t *testing.T) {
	g := New(logic.Default(), nil)
	q := assignment.Question{
		ID:       "q04",
		Kind:     assignment.KindTruthTable,
		Expected: "T",
		MaxScore: 1,
	}

	tests := []struct {
		answer  string
		correct bool
	}{
		{"T", true},
		{"t", true},
		{"true", true},
		{"igaz", true},
		{"I", true},
		{"F", false},
		{"hamis", false},
		{"maybe", false},
		{"", false},
	}

	for _, tt := range tests {
		res, err := g.Grade(context.Background(), q, tt.answer)
		if err != nil {
			t.Errorf("answer %q: unexpected error: %v", tt.answer, err)
			continue
		}
		if res.Correct != tt.correct {
			t.Errorf("answer %q: correct=%v, want %v", tt.answer, res.Correct, tt.correct)
		}
	}
}

func freeTextQuestion() assignment.Question {
	return assignment.Question{
		ID:          "q05",
		Kind:        assignment.KindFreeText,
		PromptEN:    "What does it mean for two formulas to be logically equivalent?",
		Keywords:    []string{"truth", "value", "same", "every", "assignment"},
		ModelAnswer: "They take the same truth value under every assignment.",
		MaxScore:    3,
	}
}

func TestGradeFreeText_HeuristicFullCredit(t *testing.T) {
	g := New(logic.Default(), nil)

	answer := "Two formulas are equivalent when they have the same truth value under every assignment of their variables."
	res, err := g.Grade(context.Background(), freeTextQuestion(), answer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Correct || res.Score != 3 {
		t.Fatalf("got score %d correct=%v, want full credit", res.Score, res.Correct)
	}
}

func TestGradeFreeText_HeuristicTooShort(t *testing.T) {
	g := New(logic.Default(), nil)

	res, err := g.Grade(context.Background(), freeTextQuestion(), "same")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Score != 0 {
		t.Fatalf("got score %d, want 0 for a too-short answer", res.Score)
	}
	if !strings.Contains(res.FeedbackEN, "too short") {
		t.Errorf("feedback should mention length, got %q", res.FeedbackEN)
	}
}

func TestGradeFreeText_HeuristicPartial(t *testing.T) {
	g := New(logic.Default(), nil)

	answer := "It means they always have the same truth value I think."
	res, err := g.Grade(context.Background(), freeTextQuestion(), answer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Score <= 0 || res.Score >= 3 {
		t.Fatalf("got score %d, want partial credit", res.Score)
	}
}

func TestGradeFreeText_LLMVerdict(t *testing.T) {
	verdict, _ := json.Marshal(map[string]any{
		"score":       2,
		"feedback_en": "Good, but say what 'every case' means.",
		"feedback_hu": "Jó, de fejtsd ki, mit jelent a 'minden eset'.",
	})
	mock := llm.NewMockProvider(llm.MockResponse{Content: verdict})
	g := New(logic.Default(), mock)

	res, err := g.Grade(context.Background(), freeTextQuestion(), "They agree in every case.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Score != 2 || res.Correct {
		t.Fatalf("got score %d correct=%v, want 2 and not correct", res.Score, res.Correct)
	}
	if res.FeedbackHU == "" {
		t.Error("expected Hungarian feedback from the verdict")
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 LLM call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "free-text-grade" {
		t.Errorf("expected the free-text-grade schema on the request")
	}
	if !strings.Contains(req.Messages[0].Content, "Student answer:") {
		t.Errorf("request should carry the student answer, got %q", req.Messages[0].Content)
	}
}

func TestGradeFreeText_LLMFailureFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	g := New(logic.Default(), mock)

	answer := "Two formulas are equivalent when they have the same truth value under every assignment."
	res, err := g.Grade(context.Background(), freeTextQuestion(), answer)
	if err != nil {
		t.Fatalf("fallback should not surface the provider error, got: %v", err)
	}
	if res.Score == 0 {
		t.Error("heuristic fallback should still award credit for a good answer")
	}
}

func TestGrade_UnknownKind(t *testing.T) {
	g := New(logic.Default(), nil)
	_, err := g.Grade(context.Background(), assignment.Question{Kind: "essay"}, "x")
	if err == nil {
		t.Fatal("expected error for unknown kind")
	}
}
