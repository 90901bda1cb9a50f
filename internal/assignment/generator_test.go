package assignment

import (
	"testing"
	"time"

	"github.com/bvarga/petralog/internal/logic"
	"github.com/bvarga/petralog/internal/phrase"
)

var testDate = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func testParams() Params {
	return Params{
		Name:     "Kiss Anna",
		Code:     "GEO042",
		Language: phrase.LangEN,
		Count:    5,
		Date:     testDate,
	}
}

func TestSeedDeterministic(t *testing.T) {
	a := Seed("Kiss Anna", "GEO042", testDate)
	b := Seed("Kiss Anna", "GEO042", testDate)
	if a != b {
		t.Fatalf("same inputs gave different seeds: %d vs %d", a, b)
	}
	if a < 0 {
		t.Fatalf("seed should be non-negative, got %d", a)
	}
}

func TestSeedNormalization(t *testing.T) {
	base := Seed("Kiss Anna", "GEO042", testDate)

	tests := []struct {
		desc string
		name string
		code string
	}{
		{"lowercase name", "kiss anna", "GEO042"},
		{"extra spaces", "  Kiss   Anna ", "GEO042"},
		{"lowercase code", "Kiss Anna", "geo042"},
		{"padded code", "Kiss Anna", " GEO042 "},
	}
	for _, tt := range tests {
		if got := Seed(tt.name, tt.code, testDate); got != base {
			t.Errorf("%s: seed %d, want %d", tt.desc, got, base)
		}
	}
}

func TestSeedVariesByStudentAndDate(t *testing.T) {
	base := Seed("Kiss Anna", "GEO042", testDate)

	if got := Seed("Kiss Anna", "GEO043", testDate); got == base {
		t.Error("different code should give a different seed")
	}
	if got := Seed("Nagy Bence", "GEO042", testDate); got == base {
		t.Error("different name should give a different seed")
	}
	if got := Seed("Kiss Anna", "GEO042", testDate.AddDate(0, 0, 1)); got == base {
		t.Error("different date should give a different seed")
	}
}

func TestGenerateDeterministicQuestions(t *testing.T) {
	g := NewGenerator(logic.Default())

	a, err := g.Generate(testParams())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	b, err := g.Generate(testParams())
	if err != nil {
		t.Fatalf("generate again: %v", err)
	}

	if len(a.Questions) != len(b.Questions) {
		t.Fatalf("question counts differ: %d vs %d", len(a.Questions), len(b.Questions))
	}
	for i := range a.Questions {
		qa, qb := a.Questions[i], b.Questions[i]
		if qa.PromptEN != qb.PromptEN || qa.Expected != qb.Expected {
			t.Errorf("question %d differs between runs:\n  %+v\n  %+v", i, qa, qb)
		}
	}

	// Set IDs are fresh even when the questions repeat.
	if a.ID == b.ID {
		t.Error("set IDs should differ between runs")
	}
}

func TestGenerateKindCycle(t *testing.T) {
	g := NewGenerator(logic.Default())

	set, err := g.Generate(testParams())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	want := []Kind{KindFormula, KindFormula, KindFormula, KindTruthTable, KindFreeText}
	if len(set.Questions) != len(want) {
		t.Fatalf("got %d questions, want %d", len(set.Questions), len(want))
	}
	for i, q := range set.Questions {
		if q.Kind != want[i] {
			t.Errorf("question %d kind = %s, want %s", i, q.Kind, want[i])
		}
		if q.MaxScore <= 0 {
			t.Errorf("question %d has non-positive max score", i)
		}
		if q.PromptEN == "" || q.PromptHU == "" {
			t.Errorf("question %d is missing a prompt", i)
		}
	}
}

func TestGenerateExpectedAnswersAreValid(t *testing.T) {
	engine := logic.Default()
	g := NewGenerator(engine)

	p := testParams()
	p.Count = 10
	set, err := g.Generate(p)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	for _, q := range set.Questions {
		switch q.Kind {
		case KindFormula:
			if _, err := engine.Compile(q.Expected); err != nil {
				t.Errorf("%s: expected answer %q does not compile: %v", q.ID, q.Expected, err)
			}
		case KindTruthTable:
			if q.Expected != "T" && q.Expected != "F" {
				t.Errorf("%s: expected %q, want T or F", q.ID, q.Expected)
			}
		case KindFreeText:
			if len(q.Keywords) == 0 {
				t.Errorf("%s: free-text question has no keywords", q.ID)
			}
			if q.ModelAnswer == "" {
				t.Errorf("%s: free-text question has no model answer", q.ID)
			}
		}
	}
}

func TestGenerateDefaults(t *testing.T) {
	g := NewGenerator(logic.Default())

	set, err := g.Generate(Params{Name: "Kiss Anna", Code: "GEO042", Date: testDate})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(set.Questions) != DefaultQuestionCount {
		t.Errorf("got %d questions, want default %d", len(set.Questions), DefaultQuestionCount)
	}
	if set.Language != phrase.LangEN {
		t.Errorf("language = %s, want en default", set.Language)
	}
}

func TestGenerateRequiresIdentity(t *testing.T) {
	g := NewGenerator(logic.Default())

	if _, err := g.Generate(Params{Code: "GEO042", Date: testDate}); err == nil {
		t.Error("expected error for missing name")
	}
	if _, err := g.Generate(Params{Name: "Kiss Anna", Date: testDate}); err == nil {
		t.Error("expected error for missing code")
	}
}

func TestSetMaxScore(t *testing.T) {
	set := &Set{Questions: []Question{
		{MaxScore: 2}, {MaxScore: 1}, {MaxScore: 3},
	}}
	if got := set.MaxScore(); got != 6 {
		t.Errorf("max score = %d, want 6", got)
	}
}
