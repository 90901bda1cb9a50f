package quiz

import (
	"context"
	"testing"

	"github.com/bvarga/petralog/internal/assignment"
	"github.com/bvarga/petralog/internal/grader"
	"github.com/bvarga/petralog/internal/logic"
	"github.com/bvarga/petralog/internal/phrase"
	"github.com/bvarga/petralog/internal/store"
)

// memRepo records appended events in memory.
type memRepo struct {
	attempts    []store.AttemptEventData
	assignments []store.AssignmentEventData
}

func (r *memRepo) AppendAttempt(_ context.Context, d store.AttemptEventData) error {
	r.attempts = append(r.attempts, d)
	return nil
}
func (r *memRepo) ListAttempts(context.Context, store.QueryOpts) ([]store.Attempt, error) {
	return nil, nil
}
func (r *memRepo) AppendAssignment(_ context.Context, d store.AssignmentEventData) error {
	r.assignments = append(r.assignments, d)
	return nil
}
func (r *memRepo) AppendLLMRequest(context.Context, store.LLMRequestEventData) error { return nil }
func (r *memRepo) ListLLMRequests(context.Context, store.QueryOpts) ([]store.LLMRequest, error) {
	return nil, nil
}
func (r *memRepo) GetLLMRequest(context.Context, int64) (*store.LLMRequest, error) {
	return nil, nil
}
func (r *memRepo) LLMUsageByPurpose(context.Context) ([]store.UsageStat, error) { return nil, nil }
func (r *memRepo) LLMUsageByModel(context.Context) ([]store.UsageStat, error)  { return nil, nil }
func (r *memRepo) PurgeAll(context.Context) error                              { return nil }

func testQuiz(repo *memRepo) *QuizScreen {
	engine := logic.Default()
	return New(assignment.NewGenerator(engine), grader.New(engine, nil), repo)
}

func TestSetupRequiresIdentity(t *testing.T) {
	q := testQuiz(&memRepo{})

	if cmd := q.startSet(); cmd != nil {
		t.Error("expected no command without name and code")
	}
	if q.errMsg == "" {
		t.Error("expected an error message")
	}
}

func TestStartSetRecordsAssignment(t *testing.T) {
	repo := &memRepo{}
	q := testQuiz(repo)
	q.nameInput.Model.SetValue("Kovacs Anna")
	q.codeInput.Model.SetValue("ABC123")

	cmd := q.startSet()
	if cmd == nil {
		t.Fatal("expected a command")
	}

	msg, ok := cmd().(setReadyMsg)
	if !ok {
		t.Fatalf("expected setReadyMsg, got %T", cmd())
	}
	if msg.Err != nil {
		t.Fatalf("unexpected error: %v", msg.Err)
	}
	if len(msg.Set.Questions) != assignment.DefaultQuestionCount {
		t.Errorf("question count = %d, want %d", len(msg.Set.Questions), assignment.DefaultQuestionCount)
	}
	if len(repo.assignments) != 1 {
		t.Fatalf("expected 1 assignment event, got %d", len(repo.assignments))
	}
	if repo.assignments[0].SetID != msg.Set.ID {
		t.Error("assignment event set ID does not match the set")
	}
}

func TestGradedAnswerIsRecorded(t *testing.T) {
	repo := &memRepo{}
	q := testQuiz(repo)
	q.nameInput.Model.SetValue("Kovacs Anna")
	q.codeInput.Model.SetValue("ABC123")

	updated, _ := q.Update(q.startSet()())
	q = updated.(*QuizScreen)
	if q.state != stateQuestion {
		t.Fatalf("state = %v, want stateQuestion", q.state)
	}

	// Answer with the expected solution so grading succeeds offline.
	q.input.Model.SetValue(q.set.Questions[0].Expected)
	cmd := q.submitAnswer()
	if cmd == nil {
		t.Fatal("expected a grading command")
	}

	updated, _ = q.Update(cmd())
	q = updated.(*QuizScreen)
	if q.state != stateFeedback {
		t.Fatalf("state = %v, want stateFeedback", q.state)
	}
	if !q.lastResult.Correct {
		t.Errorf("expected a correct verdict, feedback: %s", q.lastResult.FeedbackEN)
	}
	if len(repo.attempts) != 1 {
		t.Fatalf("expected 1 attempt event, got %d", len(repo.attempts))
	}
	if repo.attempts[0].SessionID != q.set.ID {
		t.Error("attempt event session does not match the set ID")
	}
}

func TestAdvanceThroughSetReachesSummary(t *testing.T) {
	q := testQuiz(&memRepo{})
	q.set = &assignment.Set{
		ID:       "set",
		Language: phrase.LangEN,
		Questions: []assignment.Question{
			{ID: "q01", MaxScore: 2},
			{ID: "q02", MaxScore: 2},
		},
	}
	q.state = stateFeedback
	q.idx = 0

	q.advance()
	if q.state != stateQuestion {
		t.Fatalf("state = %v, want stateQuestion", q.state)
	}
	q.advance()
	if q.state != stateSummary {
		t.Errorf("state = %v, want stateSummary", q.state)
	}
}

func TestLanguageToggle(t *testing.T) {
	q := testQuiz(&memRepo{})

	q.toggleLang()
	if q.lang != phrase.LangHU {
		t.Errorf("lang = %s, want hu", q.lang)
	}
	q.toggleLang()
	if q.lang != phrase.LangEN {
		t.Errorf("lang = %s, want en", q.lang)
	}
}
