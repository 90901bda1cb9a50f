package phrase

import (
	"testing"

	"github.com/bvarga/petralog/internal/logic"
)

func mustAST(t *testing.T, raw string) *logic.Node {
	t.Helper()
	prog, err := logic.Default().Compile(raw)
	if err != nil {
		t.Fatalf("compile %q: %v", raw, err)
	}
	n, err := logic.ASTFromProgram(prog)
	if err != nil {
		t.Fatalf("ast %q: %v", raw, err)
	}
	return n
}

func TestFormula_English(t *testing.T) {
	defs := DefaultVars(LangEN)

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			"variable",
			"p",
			"the rock is sandstone",
		},
		{
			"negation",
			",q",
			"not it contains fossils",
		},
		{
			"conjunction",
			"p ` q",
			"the rock is sandstone and it contains fossils",
		},
		{
			"implication",
			"o -> i",
			"if the sample contains olivine, then the rock is igneous",
		},
		{
			"weaker child parenthesized",
			"(p ~ q) ` r",
			"(the rock is sandstone or it contains fossils) and it formed in a shallow marine environment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Formula(mustAST(t, tt.raw), defs, LangEN)
			if got != tt.want {
				t.Errorf("Formula(%q)\n got: %s\nwant: %s", tt.raw, got, tt.want)
			}
		})
	}
}

func TestFormula_Hungarian(t *testing.T) {
	defs := DefaultVars(LangHU)
	got := Formula(mustAST(t, "o -> i"), defs, LangHU)
	want := "ha a minta olivint tartalmaz, akkor a kőzet magmás"
	if got != want {
		t.Errorf("Formula = %q, want %q", got, want)
	}
}

func TestFormula_UnknownVariableFallsBack(t *testing.T) {
	got := Formula(mustAST(t, "p ` q"), VarDefs{}, LangEN)
	if got != "p and q" {
		t.Errorf("Formula = %q, want %q", got, "p and q")
	}
}
