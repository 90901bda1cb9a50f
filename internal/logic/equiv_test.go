package logic

import (
	"errors"
	"testing"
)

func TestEquivalent_Laws(t *testing.T) {
	e := Default()

	tests := []struct {
		name string
		a    string
		b    string
		vars []string
	}{
		{"de morgan", ",(p ~ q)", ",p ` ,q", []string{"p", "q"}},
		{"implication rewrite", "p -> q", ",p ~ q", []string{"p", "q"}},
		{"double negation", ",,p", "p", []string{"p"}},
		{"commutativity", "p ` q", "q ` p", []string{"p", "q"}},
		{"distribution", "p ` (q ~ r)", "(p ` q) ~ (p ` r)", []string{"p", "q", "r"}},
		{"iff expansion", "p <-> q", "(p -> q) ` (q -> p)", []string{"p", "q"}},
		{"field rule decomposition", ",(o ~ y) ~ i", "(,o ~ i) ` (,y ~ i)", []string{"o", "y", "i"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustCompile(t, e, tt.a)
			b := mustCompile(t, e, tt.b)
			ok, cex, err := e.Equivalent(a, b, tt.vars)
			if err != nil {
				t.Fatalf("equivalent: %v", err)
			}
			if !ok {
				t.Errorf("%q and %q should be equivalent, differ under %v", tt.a, tt.b, cex)
			}
			if cex != nil {
				t.Errorf("equivalent formulas must not carry a counterexample, got %v", cex)
			}
		})
	}
}

func TestEquivalent_Counterexample(t *testing.T) {
	e := Default()
	a := mustCompile(t, e, "p ` q")
	b := mustCompile(t, e, "p ~ q")

	ok, cex, err := e.Equivalent(a, b, []string{"p", "q"})
	if err != nil {
		t.Fatalf("equivalent: %v", err)
	}
	if ok {
		t.Fatal("AND and OR must not be equivalent")
	}
	if cex == nil {
		t.Fatal("expected a counterexample")
	}

	// The counterexample must actually separate the two formulas.
	va, err := e.Evaluate(a, cex)
	if err != nil {
		t.Fatalf("evaluate a under counterexample: %v", err)
	}
	vb, err := e.Evaluate(b, cex)
	if err != nil {
		t.Fatalf("evaluate b under counterexample: %v", err)
	}
	if va == vb {
		t.Errorf("counterexample %v does not separate the formulas", cex)
	}
}

func TestEquivalent_DeterministicFirstDisagreement(t *testing.T) {
	e := Default()
	// p vs q first disagree on the second row of the fixed enumeration:
	// rows run all-true first, each variable true before false.
	a := mustCompile(t, e, "p")
	b := mustCompile(t, e, "q")

	_, cex, err := e.Equivalent(a, b, []string{"p", "q"})
	if err != nil {
		t.Fatalf("equivalent: %v", err)
	}
	if cex == nil {
		t.Fatal("expected a counterexample")
	}
	if !cex["p"] || cex["q"] {
		t.Errorf("expected first disagreement p=true, q=false, got %v", cex)
	}
}

func TestEquivalent_MalformedCountsAsDisagreement(t *testing.T) {
	e := Default()
	good := mustCompile(t, e, "p")
	bad := mustCompile(t, e, "p `") // missing right operand

	ok, cex, err := e.Equivalent(good, bad, []string{"p"})
	if err != nil {
		t.Fatalf("equivalent: %v", err)
	}
	if ok {
		t.Fatal("a malformed program must never be equivalent")
	}
	if cex == nil {
		t.Fatal("expected a counterexample-shaped environment")
	}
}

func TestEquivalent_VariableCap(t *testing.T) {
	e := Default()
	p := mustCompile(t, e, "p")

	_, _, err := e.Equivalent(p, p, []string{"p", "q", "r", "o", "i", "y"})
	var lerr *VarLimitError
	if !errors.As(err, &lerr) {
		t.Fatalf("expected VarLimitError above the cap, got %v", err)
	}
	if lerr.Max != e.MaxVariables() {
		t.Errorf("error reports max %d, engine says %d", lerr.Max, e.MaxVariables())
	}
}

func TestTruthTable(t *testing.T) {
	e := Default()
	p := mustCompile(t, e, "p ` q")

	table, err := e.TruthTable(p)
	if err != nil {
		t.Fatalf("truth table: %v", err)
	}
	if len(table.Rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(table.Rows))
	}
	// First row is all-true, so AND is T there; last row is all-false.
	if table.Rows[0].Value != "T" {
		t.Errorf("first row = %s, want T", table.Rows[0].Value)
	}
	if table.Rows[3].Value != "F" {
		t.Errorf("last row = %s, want F", table.Rows[3].Value)
	}
}

func TestTruthTable_MalformedRows(t *testing.T) {
	e := Default()
	p := mustCompile(t, e, "p q") // two dangling operands

	table, err := e.TruthTable(p)
	if err != nil {
		t.Fatalf("truth table: %v", err)
	}
	for _, row := range table.Rows {
		if row.Value != "?" {
			t.Errorf("malformed program must yield ?, got %s", row.Value)
		}
	}
}
