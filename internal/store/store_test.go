package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAppendAndListAttempts(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendAttempt(ctx, AttemptEventData{
			SessionID:  "sess-1",
			QuestionID: "q1",
			Kind:       "formula",
			Prompt:     "rewrite without implication",
			Answer:     "¬p ∨ q",
			Score:      1,
			MaxScore:   1,
			Correct:    i != 1,
			Feedback:   "ok",
			TimeMs:     1200,
		})
		if err != nil {
			t.Fatalf("append attempt %d: %v", i, err)
		}
	}

	attempts, err := repo.ListAttempts(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("list attempts: %v", err)
	}
	if len(attempts) != 3 {
		t.Fatalf("got %d attempts, want 3", len(attempts))
	}

	// Sequences are strictly increasing.
	for i := 1; i < len(attempts); i++ {
		if attempts[i].Sequence <= attempts[i-1].Sequence {
			t.Errorf("sequence not increasing: %d then %d",
				attempts[i-1].Sequence, attempts[i].Sequence)
		}
	}
	if attempts[0].SessionID != "sess-1" {
		t.Errorf("session_id = %q, want sess-1", attempts[0].SessionID)
	}
	if attempts[1].Correct {
		t.Error("attempt 1 should be incorrect")
	}
}

func TestListAttemptsLimitAndAfter(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		err := repo.AppendAttempt(ctx, AttemptEventData{
			SessionID: "sess-2",
			Kind:      "truthtable",
			MaxScore:  1,
		})
		if err != nil {
			t.Fatalf("append attempt %d: %v", i, err)
		}
	}

	limited, err := repo.ListAttempts(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("list limited: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("got %d attempts with limit 2, want 2", len(limited))
	}

	after, err := repo.ListAttempts(ctx, QueryOpts{After: limited[1].Sequence})
	if err != nil {
		t.Fatalf("list after: %v", err)
	}
	if len(after) != 3 {
		t.Fatalf("got %d attempts after seq %d, want 3", len(after), limited[1].Sequence)
	}
	if after[0].Sequence <= limited[1].Sequence {
		t.Errorf("first after-sequence %d not past %d", after[0].Sequence, limited[1].Sequence)
	}
}

func TestGlobalSequenceSpansEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendAttempt(ctx, AttemptEventData{SessionID: "s", Kind: "formula", MaxScore: 1}); err != nil {
		t.Fatalf("append attempt: %v", err)
	}
	if err := repo.AppendAssignment(ctx, AssignmentEventData{
		SetID:         "set-1",
		StudentName:   "Kiss Anna",
		StudentCode:   "ABC123",
		Language:      "hu",
		Seed:          42,
		QuestionCount: 5,
	}); err != nil {
		t.Fatalf("append assignment: %v", err)
	}
	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock",
		Model:    "mock-model",
		Purpose:  "grading",
		Success:  true,
	}); err != nil {
		t.Fatalf("append llm request: %v", err)
	}

	attempts, err := repo.ListAttempts(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("list attempts: %v", err)
	}
	requests, err := repo.ListLLMRequests(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("list llm requests: %v", err)
	}
	if len(attempts) != 1 || len(requests) != 1 {
		t.Fatalf("got %d attempts, %d requests; want 1 and 1", len(attempts), len(requests))
	}
	if requests[0].Sequence <= attempts[0].Sequence {
		t.Errorf("llm sequence %d should come after attempt sequence %d",
			requests[0].Sequence, attempts[0].Sequence)
	}
}

func TestPurgeAll(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendAttempt(ctx, AttemptEventData{SessionID: "s", Kind: "formula", MaxScore: 1}); err != nil {
		t.Fatalf("append attempt: %v", err)
	}
	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "m", Purpose: "explain", Success: true}); err != nil {
		t.Fatalf("append llm request: %v", err)
	}

	if err := repo.PurgeAll(ctx); err != nil {
		t.Fatalf("purge: %v", err)
	}

	attempts, err := repo.ListAttempts(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("list attempts: %v", err)
	}
	if len(attempts) != 0 {
		t.Errorf("got %d attempts after purge, want 0", len(attempts))
	}

	// Sequence restarts at 1.
	if err := repo.AppendAttempt(ctx, AttemptEventData{SessionID: "s2", Kind: "formula", MaxScore: 1}); err != nil {
		t.Fatalf("append after purge: %v", err)
	}
	attempts, err = repo.ListAttempts(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("list after purge: %v", err)
	}
	if len(attempts) != 1 || attempts[0].Sequence != 1 {
		t.Errorf("after purge got %d attempts (first seq %d), want 1 with seq 1",
			len(attempts), attempts[0].Sequence)
	}
}
