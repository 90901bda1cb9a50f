package logic

// Equivalent reports whether a and b agree on every truth assignment over
// vars. On disagreement it returns the first differing assignment (rows
// are enumerated with variables sorted ascending and true before false, so
// the all-true row comes first) as a counterexample for feedback.
//
// An evaluation error under some assignment, such as a malformed student
// program, counts as a disagreement under that assignment rather than
// aborting the check. Grading callers want a counterexample-shaped answer,
// not a crash.
//
// The check costs O(2^n · len(program)) and refuses to run past the
// engine's variable cap.
func (e *Engine) Equivalent(a, b Program, vars []string) (bool, Env, error) {
	if len(vars) > e.maxVars {
		return false, nil, &VarLimitError{Count: len(vars), Max: e.maxVars}
	}

	names := sortedNames(vars)
	for _, env := range assignments(names) {
		va, errA := e.Evaluate(a, env)
		vb, errB := e.Evaluate(b, env)
		if errA != nil || errB != nil || va != vb {
			return false, env, nil
		}
	}
	return true, nil, nil
}

// assignments enumerates every total Env over names. Row 0 assigns true to
// every variable; the last row assigns false to every variable.
func assignments(names []string) []Env {
	n := len(names)
	rows := make([]Env, 0, 1<<n)
	for i := 0; i < 1<<n; i++ {
		env := make(Env, n)
		for j, name := range names {
			env[name] = (i>>(n-1-j))&1 == 0
		}
		rows = append(rows, env)
	}
	return rows
}

func sortedNames(vars []string) []string {
	names := make([]string, len(vars))
	copy(names, vars)
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
	return names
}
