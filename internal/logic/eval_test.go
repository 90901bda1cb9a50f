package logic

import (
	"errors"
	"testing"
)

func TestEvaluate_TruthRules(t *testing.T) {
	e := Default()

	tests := []struct {
		name string
		raw  string
		env  Env
		want bool
	}{
		{"var true", "p", Env{"p": true}, true},
		{"var false", "p", Env{"p": false}, false},
		{"not", ",p", Env{"p": true}, false},
		{"and both", "p ` q", Env{"p": true, "q": true}, true},
		{"and one", "p ` q", Env{"p": true, "q": false}, false},
		{"or one", "p ~ q", Env{"p": false, "q": true}, true},
		{"or neither", "p ~ q", Env{"p": false, "q": false}, false},
		{"implies vacuous", "p -> q", Env{"p": false, "q": false}, true},
		{"implies broken", "p -> q", Env{"p": true, "q": false}, false},
		{"iff both true", "p <-> q", Env{"p": true, "q": true}, true},
		{"iff both false", "p <-> q", Env{"p": false, "q": false}, true},
		{"iff mixed", "p <-> q", Env{"p": true, "q": false}, false},
		{"field rule holds", ",(o ~ y) ~ i", Env{"o": true, "y": false, "i": true}, true},
		{"field rule violated", ",(o ~ y) ~ i", Env{"o": true, "y": false, "i": false}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustCompile(t, e, tt.raw)
			got, err := e.Evaluate(p, tt.env)
			if err != nil {
				t.Fatalf("evaluate: %v", err)
			}
			if got != tt.want {
				t.Errorf("Evaluate(%q, %v) = %t, want %t", tt.raw, tt.env, got, tt.want)
			}
		})
	}
}

func TestEvaluate_Precedence(t *testing.T) {
	e := Default()
	// AND binds tighter than OR: p ~ q ` r must equal p ~ (q ` r) on all
	// eight assignments.
	a := mustCompile(t, e, "p ~ q ` r")
	b := mustCompile(t, e, "p ~ (q ` r)")

	for _, env := range assignments([]string{"p", "q", "r"}) {
		va, err := e.Evaluate(a, env)
		if err != nil {
			t.Fatalf("evaluate a: %v", err)
		}
		vb, err := e.Evaluate(b, env)
		if err != nil {
			t.Fatalf("evaluate b: %v", err)
		}
		if va != vb {
			t.Errorf("disagreement under %v: %t vs %t", env, va, vb)
		}
	}
}

func TestEvaluate_UnboundVariable(t *testing.T) {
	e := Default()
	p := mustCompile(t, e, "p ` q")

	_, err := e.Evaluate(p, Env{"p": true})
	var eerr *EvalError
	if !errors.As(err, &eerr) {
		t.Fatalf("expected EvalError, got %v", err)
	}
	if eerr.Code != UnboundVariable {
		t.Errorf("expected UnboundVariable, got %v", eerr.Code)
	}
	if eerr.Var != "q" {
		t.Errorf("expected variable q, got %q", eerr.Var)
	}
}

func TestEvaluate_Malformed(t *testing.T) {
	e := Default()

	tests := []struct {
		name string
		raw  string
	}{
		{"double binary operator", "p ` ` q"},
		{"leading binary operator", "` p"},
		{"trailing operator", "p `"},
		{"dangling operand", "p q"},
		{"lone not", ","},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustCompile(t, e, tt.raw)
			_, err := e.Evaluate(p, Env{"p": true, "q": true})
			var eerr *EvalError
			if !errors.As(err, &eerr) {
				t.Fatalf("expected EvalError, got %v", err)
			}
			if eerr.Code != MalformedExpression {
				t.Errorf("expected MalformedExpression, got %v", eerr.Code)
			}
		})
	}
}

func TestEvaluate_EmptyProgram(t *testing.T) {
	e := Default()
	_, err := e.Evaluate(Program{}, Env{})
	var eerr *EvalError
	if !errors.As(err, &eerr) || eerr.Code != MalformedExpression {
		t.Fatalf("expected MalformedExpression for empty program, got %v", err)
	}
}
