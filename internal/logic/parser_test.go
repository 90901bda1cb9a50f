package logic

import (
	"errors"
	"testing"
)

func mustCompile(t *testing.T, e *Engine, raw string) Program {
	t.Helper()
	p, err := e.Compile(raw)
	if err != nil {
		t.Fatalf("compile %q: %v", raw, err)
	}
	return p
}

func TestParse_Postfix(t *testing.T) {
	e := Default()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"single var", "p", "p"},
		{"negation", ",p", "p ¬"},
		{"and binds tighter than or", "p ~ q ` r", "p q r ∧ ∨"},
		{"not binds tighter than and", ",p ` q", "p ¬ q ∧"},
		{"parens override", "(p ~ q) ` r", "p q ∨ r ∧"},
		{"iff weakest", "p ` q <-> q ` p", "p q ∧ q p ∧ ↔"},
		{"left assoc and", "p ` q ` r", "p q ∧ r ∧"},
		{"right assoc implies", "p -> q -> r", "p q r → →"},
		{"double negation", ",,p", "p ¬ ¬"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustCompile(t, e, tt.raw)
			if got := p.Symbols(); got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParse_NoParensInProgram(t *testing.T) {
	e := Default()
	p := mustCompile(t, e, "((p ` (q ~ r)))")
	for _, tok := range p {
		if tok.Kind == KindLParen || tok.Kind == KindRParen {
			t.Fatalf("parenthesis token leaked into program: %v", p)
		}
	}
}

func TestParse_MismatchedParentheses(t *testing.T) {
	e := Default()

	for _, raw := range []string{"(p ` q", "p ` q)", "((p)", "p)("} {
		t.Run(raw, func(t *testing.T) {
			_, err := e.Compile(raw)
			var serr *SyntaxError
			if !errors.As(err, &serr) {
				t.Fatalf("expected SyntaxError, got %v", err)
			}
			if serr.Code != MismatchedParentheses {
				t.Errorf("expected MismatchedParentheses, got %v", serr.Code)
			}
		})
	}
}

func TestParse_EmptyStream(t *testing.T) {
	e := Default()
	p, err := e.Parse(nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(p) != 0 {
		t.Errorf("expected empty program, got %v", p)
	}
}

func TestProgram_Vars(t *testing.T) {
	e := Default()
	p := mustCompile(t, e, "y ` o -> i ~ o")
	got := p.Vars()
	want := []string{"i", "o", "y"}
	if len(got) != len(want) {
		t.Fatalf("Vars() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Vars()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
