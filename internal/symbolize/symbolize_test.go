package symbolize

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/bvarga/petralog/internal/llm"
	"github.com/bvarga/petralog/internal/logic"
	"github.com/bvarga/petralog/internal/phrase"
)

// roundTrip phrases a formula and symbolizes the sentence back.
func roundTrip(t *testing.T, raw string, lang phrase.Lang) string {
	t.Helper()
	engine := logic.Default()

	prog, err := engine.Compile(raw)
	if err != nil {
		t.Fatalf("compile %q: %v", raw, err)
	}
	tree, err := logic.ASTFromProgram(prog)
	if err != nil {
		t.Fatalf("ast %q: %v", raw, err)
	}
	sentence := phrase.Formula(tree, phrase.DefaultVars(lang), lang)

	s := New(engine, nil)
	res, err := s.Symbolize(context.Background(), sentence, lang)
	if err != nil {
		t.Fatalf("symbolize %q (from %q): %v", sentence, raw, err)
	}
	if res.Source != "heuristic" {
		t.Errorf("source = %q, want heuristic with nil provider", res.Source)
	}
	return res.Formula
}

func assertEquivalent(t *testing.T, raw, got string) {
	t.Helper()
	engine := logic.Default()

	a, err := engine.Compile(raw)
	if err != nil {
		t.Fatalf("compile %q: %v", raw, err)
	}
	b, err := engine.Compile(got)
	if err != nil {
		t.Fatalf("compile result %q: %v", got, err)
	}

	vars := a.Vars()
	equal, witness, err := engine.Equivalent(a, b, vars)
	if err != nil {
		t.Fatalf("equivalence check: %v", err)
	}
	if !equal {
		t.Errorf("%q symbolized to %q, not equivalent (differs at %s)",
			raw, got, logic.FormatEnv(witness))
	}
}

func TestHeuristicRoundTripEN(t *testing.T) {
	formulas := []string{
		"p",
		"¬p",
		"p ∧ q",
		"p ∨ i",
		"p → q",
		"q ↔ r",
		"¬(o ∧ y)",
		"(o ∨ y) → i",
		"p → (q ∨ r)",
	}
	for _, raw := range formulas {
		got := roundTrip(t, raw, phrase.LangEN)
		assertEquivalent(t, raw, got)
	}
}

func TestHeuristicRoundTripHU(t *testing.T) {
	formulas := []string{
		"¬p",
		"p ∧ q",
		"p → q",
		"q ↔ r",
		"¬(o ∧ y)",
	}
	for _, raw := range formulas {
		got := roundTrip(t, raw, phrase.LangHU)
		assertEquivalent(t, raw, got)
	}
}

func TestHeuristicUnknownSentence(t *testing.T) {
	s := New(logic.Default(), nil)
	_, err := s.Symbolize(context.Background(), "the moon is made of basalt", phrase.LangEN)
	if err == nil {
		t.Fatal("expected error for a sentence outside the variable meanings")
	}
}

func TestSymbolizeEmptySentence(t *testing.T) {
	s := New(logic.Default(), nil)
	if _, err := s.Symbolize(context.Background(), "   ", phrase.LangEN); err == nil {
		t.Fatal("expected error for empty sentence")
	}
}

func TestSymbolizeLLM(t *testing.T) {
	content, _ := json.Marshal(map[string]string{
		"formula":     "p -> q",
		"explanation": "A conditional from sandstone to fossils.",
	})
	mock := llm.NewMockProvider(llm.MockResponse{Content: content})
	s := New(logic.Default(), mock)

	res, err := s.Symbolize(context.Background(), "if the rock is sandstone, then it contains fossils", phrase.LangEN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Source != "llm" {
		t.Fatalf("source = %q, want llm", res.Source)
	}
	// ASCII digraphs are canonicalized on the way out.
	if res.Formula != "p → q" {
		t.Errorf("formula = %q, want %q", res.Formula, "p → q")
	}
	if res.Explanation == "" {
		t.Error("expected the explanation to be carried through")
	}
}

func TestUserPromptVariableOrderIsStable(t *testing.T) {
	defs := phrase.DefaultVars(phrase.LangEN)
	prompt := userPrompt(defs, "if the rock is sandstone, then it contains fossils")

	// Variable lines come out alphabetically regardless of map order.
	var prev int
	for _, letter := range []string{"i", "o", "p", "q", "r", "y"} {
		idx := strings.Index(prompt, "  "+letter+" = ")
		if idx < 0 {
			t.Fatalf("variable %q missing from prompt:\n%s", letter, prompt)
		}
		if idx < prev {
			t.Fatalf("variable %q out of order in prompt:\n%s", letter, prompt)
		}
		prev = idx
	}

	for i := 0; i < 10; i++ {
		if again := userPrompt(defs, "if the rock is sandstone, then it contains fossils"); again != prompt {
			t.Fatalf("prompt changed between calls:\n%s\n---\n%s", prompt, again)
		}
	}
}

func TestSymbolizeLLMPromptListsVariables(t *testing.T) {
	content, _ := json.Marshal(map[string]string{"formula": "p → q"})
	mock := llm.NewMockProvider(llm.MockResponse{Content: content})
	s := New(logic.Default(), mock)

	if _, err := s.Symbolize(context.Background(), "if the rock is sandstone, then it contains fossils", phrase.LangEN); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 LLM call, got %d", mock.CallCount())
	}

	sent := mock.Calls[0].Messages[0].Content
	want := userPrompt(phrase.DefaultVars(phrase.LangEN), "if the rock is sandstone, then it contains fossils")
	if sent != want {
		t.Errorf("prompt sent to the provider differs from userPrompt:\n%s\n---\n%s", sent, want)
	}
	if !strings.Contains(sent, "Statement: if the rock is sandstone") {
		t.Errorf("prompt missing the statement line:\n%s", sent)
	}
}

func TestSymbolizeLLMInvalidFormulaFallsBack(t *testing.T) {
	content, _ := json.Marshal(map[string]string{"formula": "p -> -> q"})
	mock := llm.NewMockProvider(llm.MockResponse{Content: content})
	s := New(logic.Default(), mock)

	res, err := s.Symbolize(context.Background(), "if the rock is sandstone, then it contains fossils", phrase.LangEN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Source != "heuristic" {
		t.Fatalf("source = %q, want heuristic fallback after invalid LLM formula", res.Source)
	}
	assertEquivalent(t, "p → q", res.Formula)
}
