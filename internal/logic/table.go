package logic

import (
	"fmt"
	"strings"
)

// Table is a full truth table for one formula.
type Table struct {
	Vars []string
	Rows []TableRow
}

// TableRow is one assignment and the formula's value under it. Value is
// "T" or "F", or "?" when evaluation failed for that row.
type TableRow struct {
	Env   Env
	Value string
}

// TruthTable enumerates p over its own variables, in the same row order
// the equivalence checker uses.
func (e *Engine) TruthTable(p Program) (*Table, error) {
	vars := p.Vars()
	if len(vars) > e.maxVars {
		return nil, &VarLimitError{Count: len(vars), Max: e.maxVars}
	}

	t := &Table{Vars: vars}
	for _, env := range assignments(vars) {
		value := "?"
		if v, err := e.Evaluate(p, env); err == nil {
			if v {
				value = "T"
			} else {
				value = "F"
			}
		}
		t.Rows = append(t.Rows, TableRow{Env: env, Value: value})
	}
	return t, nil
}

// String renders the table as fixed-width ASCII for terminal output.
func (t *Table) String() string {
	var b strings.Builder
	for _, v := range t.Vars {
		fmt.Fprintf(&b, "%s  ", v)
	}
	b.WriteString("| result\n")
	b.WriteString(strings.Repeat("-", 3*len(t.Vars)) + "+-------\n")
	for _, row := range t.Rows {
		for _, v := range t.Vars {
			if row.Env[v] {
				b.WriteString("T  ")
			} else {
				b.WriteString("F  ")
			}
		}
		fmt.Fprintf(&b, "|   %s\n", row.Value)
	}
	return b.String()
}

// FormatEnv renders an assignment as "p=true, q=false" with variables in
// sorted order. Used for counterexample feedback.
func FormatEnv(env Env) string {
	names := make([]string, 0, len(env))
	for name := range env {
		names = append(names, name)
	}
	names = sortedNames(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s=%t", name, env[name])
	}
	return strings.Join(parts, ", ")
}
