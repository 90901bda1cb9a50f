package logic

import (
	"errors"
	"testing"
)

func TestTokenize_AliasRoundTrip(t *testing.T) {
	e := Default()

	tests := []struct {
		name  string
		ascii string
		sym   string
	}{
		{"not and", ",p ` q", "¬p ∧ q"},
		{"or", "p ~ q", "p ∨ q"},
		{"implies digraph", "p -> q", "p → q"},
		{"iff digraph", "p <-> q", "p ↔ q"},
		{"mixed notation", ",(p ~ q) -> r", "¬(p ∨ q) → r"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := e.Tokenize(tt.ascii)
			if err != nil {
				t.Fatalf("tokenize ascii: %v", err)
			}
			b, err := e.Tokenize(tt.sym)
			if err != nil {
				t.Fatalf("tokenize unicode: %v", err)
			}
			if len(a) != len(b) {
				t.Fatalf("token counts differ: %d vs %d", len(a), len(b))
			}
			for i := range a {
				if a[i] != b[i] {
					t.Errorf("token %d: %v vs %v", i, a[i], b[i])
				}
			}
		})
	}
}

func TestTokenize_CaseInsensitiveVariables(t *testing.T) {
	e := Default()
	upper, err := e.Tokenize("P ` Q")
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	lower, err := e.Tokenize("p ` q")
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	for i := range upper {
		if upper[i] != lower[i] {
			t.Errorf("token %d: %v vs %v", i, upper[i], lower[i])
		}
	}
}

func TestTokenize_EmptyInput(t *testing.T) {
	e := Default()
	for _, raw := range []string{"", "   ", "\t\n"} {
		tokens, err := e.Tokenize(raw)
		if err != nil {
			t.Fatalf("tokenize %q: %v", raw, err)
		}
		if len(tokens) != 0 {
			t.Errorf("tokenize %q: expected no tokens, got %d", raw, len(tokens))
		}
	}
}

func TestTokenize_InvalidCharacter(t *testing.T) {
	e := Default()

	tests := []struct {
		name string
		raw  string
		char rune
	}{
		{"digit", "p ` 1", '1'},
		{"letter outside alphabet", "p ` z", 'z'},
		{"ampersand", "p & q", '&'},
		{"multi-letter variable", "pq ` xy", 'x'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Tokenize(tt.raw)
			var serr *SyntaxError
			if !errors.As(err, &serr) {
				t.Fatalf("expected SyntaxError, got %v", err)
			}
			if serr.Code != InvalidCharacter {
				t.Errorf("expected InvalidCharacter, got %v", serr.Code)
			}
			if serr.Char != tt.char {
				t.Errorf("expected offending char %q, got %q", tt.char, serr.Char)
			}
		})
	}
}

func TestNormalize_DigraphsBeforeAliases(t *testing.T) {
	e := Default()
	// "<->" must win over "->"; a bare "<" is invalid afterwards.
	s, err := e.Normalize("p <-> q")
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if s != "p↔q" {
		t.Errorf("normalize = %q, want %q", s, "p↔q")
	}

	if _, err := e.Normalize("p < q"); err == nil {
		t.Error("expected error for stray '<'")
	}
}

func TestEngine_CustomAlphabet(t *testing.T) {
	e := New(Config{
		Alphabet:     []rune("abc"),
		Aliases:      map[rune]rune{'!': symNot},
		MaxVariables: 3,
	})

	if _, err := e.Tokenize("!a ∧ b"); err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	if _, err := e.Tokenize("p"); err == nil {
		t.Error("expected p to be rejected outside the custom alphabet")
	}
}
