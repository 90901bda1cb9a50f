package logic

// Env assigns a truth value to each variable of a formula. Lookups of
// unbound variables are an error, not a silent false.
type Env map[string]bool

// Evaluate executes a postfix program against env with an explicit boolean
// stack. Binary operators pop the right operand first, then the left.
// IMPLIES is material implication (¬a ∨ b, vacuously true when a is
// false); IFF is (a ∧ b) ∨ (¬a ∧ ¬b).
func (e *Engine) Evaluate(p Program, env Env) (bool, error) {
	var stack []bool

	pop := func() (bool, bool) {
		if len(stack) == 0 {
			return false, false
		}
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return v, true
	}

	for _, tok := range p {
		switch tok.Kind {
		case KindVar:
			v, ok := env[tok.Text]
			if !ok {
				return false, &EvalError{Code: UnboundVariable, Var: tok.Text}
			}
			stack = append(stack, v)

		case KindNot:
			a, ok := pop()
			if !ok {
				return false, &EvalError{Code: MalformedExpression}
			}
			stack = append(stack, !a)

		case KindAnd, KindOr, KindImplies, KindIff:
			b, okB := pop()
			a, okA := pop()
			if !okA || !okB {
				return false, &EvalError{Code: MalformedExpression}
			}
			var v bool
			switch tok.Kind {
			case KindAnd:
				v = a && b
			case KindOr:
				v = a || b
			case KindImplies:
				v = !a || b
			case KindIff:
				v = (a && b) || (!a && !b)
			}
			stack = append(stack, v)

		default:
			// Parentheses are consumed by the parser and never reach here.
			return false, &EvalError{Code: MalformedExpression}
		}
	}

	if len(stack) != 1 {
		return false, &EvalError{Code: MalformedExpression}
	}
	return stack[0], nil
}
