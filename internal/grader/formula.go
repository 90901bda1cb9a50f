package grader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bvarga/petralog/internal/assignment"
	"github.com/bvarga/petralog/internal/logic"
)

// gradeFormula grades a formula answer by logical equivalence with the
// reference. Any equivalent formula earns full credit; the shape of the
// answer is never compared.
func (g *Grader) gradeFormula(q assignment.Question, answer string) (Result, error) {
	expected, err := g.engine.Compile(q.Expected)
	if err != nil {
		// The reference answer comes from the question template. A broken
		// reference is an authoring bug, not a student mistake.
		return Result{}, fmt.Errorf("reference answer %q for %s: %w", q.Expected, q.ID, err)
	}

	student, err := g.engine.Compile(answer)
	if err != nil {
		var synErr *logic.SyntaxError
		if errors.As(err, &synErr) {
			return Result{
				MaxScore:   q.MaxScore,
				FeedbackEN: fmt.Sprintf("Your answer could not be read: %v", synErr),
				FeedbackHU: "A válaszod nem értelmezhető formula. Használható jelek: ¬ ∧ ∨ → ↔ és a , ` ~ -> <-> rövidítések.",
			}, nil
		}
		return Result{}, fmt.Errorf("compile answer: %w", err)
	}

	// Catch incomplete formulas like "p q" before the equivalence sweep so
	// the student gets a syntax-flavored message instead of a counterexample.
	if _, evalErr := g.engine.Evaluate(student, allTrue(student.Vars())); evalErr != nil {
		var ee *logic.EvalError
		if errors.As(evalErr, &ee) && ee.Code == logic.MalformedExpression {
			return Result{
				MaxScore:   q.MaxScore,
				FeedbackEN: "Your formula is incomplete. Check that every connective has its operands.",
				FeedbackHU: "A formulád hiányos. Ellenőrizd, hogy minden műveletnek megvan-e mindkét oldala.",
			}, nil
		}
	}

	vars := unionVars(expected.Vars(), student.Vars())
	equal, witness, err := g.engine.Equivalent(expected, student, vars)
	if err != nil {
		var limErr *logic.VarLimitError
		if errors.As(err, &limErr) {
			return Result{
				MaxScore:   q.MaxScore,
				FeedbackEN: fmt.Sprintf("Your answer uses too many variables (%d, limit %d).", limErr.Count, limErr.Max),
				FeedbackHU: fmt.Sprintf("A válaszod túl sok változót használ (%d, a határ %d).", limErr.Count, limErr.Max),
			}, nil
		}
		return Result{}, err
	}

	if equal {
		return Result{
			Score:      q.MaxScore,
			MaxScore:   q.MaxScore,
			Correct:    true,
			FeedbackEN: "Correct.",
			FeedbackHU: "Helyes.",
		}, nil
	}

	// Name the disagreeing assignment but not the values the formulas take
	// there, so the student still has to work the case out.
	return Result{
		MaxScore:   q.MaxScore,
		FeedbackEN: fmt.Sprintf("Not equivalent: your answer behaves differently when %s.", logic.FormatEnv(witness)),
		FeedbackHU: fmt.Sprintf("Nem ekvivalens: a válaszod másképp viselkedik, amikor %s.", logic.FormatEnv(witness)),
	}, nil
}

// gradeTruthValue grades a single T/F answer. Hungarian spellings are
// accepted alongside the English ones.
func (g *Grader) gradeTruthValue(q assignment.Question, answer string) (Result, error) {
	norm := normalizeTruthValue(answer)
	if norm == "" {
		return Result{
			MaxScore:   q.MaxScore,
			FeedbackEN: "Answer with T or F.",
			FeedbackHU: "T vagy F betűvel válaszolj (igaz/hamis).",
		}, nil
	}

	if norm == q.Expected {
		return Result{
			Score:      q.MaxScore,
			MaxScore:   q.MaxScore,
			Correct:    true,
			FeedbackEN: "Correct.",
			FeedbackHU: "Helyes.",
		}, nil
	}

	return Result{
		MaxScore:   q.MaxScore,
		FeedbackEN: "Incorrect. Work through the formula with the given values again.",
		FeedbackHU: "Helytelen. Számold végig újra a formulát a megadott értékekkel.",
	}, nil
}

func normalizeTruthValue(answer string) string {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "t", "true", "i", "igaz", "1":
		return "T"
	case "f", "false", "h", "hamis", "0":
		return "F"
	}
	return ""
}

func allTrue(vars []string) logic.Env {
	env := make(logic.Env, len(vars))
	for _, v := range vars {
		env[v] = true
	}
	return env
}

func unionVars(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	var out []string
	for _, v := range a {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	for _, v := range b {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
