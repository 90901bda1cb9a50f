package history

import (
	"testing"
	"time"

	"github.com/bvarga/petralog/internal/store"
)

func attempt(seq int64, session, qid string, score, max int, correct bool) store.Attempt {
	return store.Attempt{
		Sequence:  seq,
		Timestamp: time.Date(2026, 3, 2, 10, 0, int(seq), 0, time.UTC),
		AttemptEventData: store.AttemptEventData{
			SessionID:  session,
			QuestionID: qid,
			Score:      score,
			MaxScore:   max,
			Correct:    correct,
		},
	}
}

func TestSummarizeGroupsBySession(t *testing.T) {
	attempts := []store.Attempt{
		attempt(1, "set-a", "q01", 2, 2, true),
		attempt(2, "set-a", "q02", 0, 2, false),
		attempt(3, "set-b", "q01", 2, 2, true),
	}

	sessions := summarize(attempts)
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}

	// Newest set first.
	if sessions[0].SessionID != "set-b" {
		t.Errorf("expected set-b first, got %s", sessions[0].SessionID)
	}

	a := sessions[1]
	if a.SessionID != "set-a" {
		t.Fatalf("expected set-a second, got %s", a.SessionID)
	}
	if a.Score != 2 || a.MaxScore != 4 {
		t.Errorf("set-a score = %d/%d, want 2/4", a.Score, a.MaxScore)
	}
	if a.Correct != 1 {
		t.Errorf("set-a correct = %d, want 1", a.Correct)
	}
	if len(a.Attempts) != 2 {
		t.Errorf("set-a attempts = %d, want 2", len(a.Attempts))
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if got := summarize(nil); len(got) != 0 {
		t.Errorf("expected no sessions, got %d", len(got))
	}
}
