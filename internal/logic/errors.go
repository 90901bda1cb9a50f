package logic

import "fmt"

// SyntaxCode classifies lexing and parsing failures.
type SyntaxCode int

const (
	// InvalidCharacter means the input contains a symbol outside the
	// engine's alphabet and operator set.
	InvalidCharacter SyntaxCode = iota

	// MismatchedParentheses means grouping does not balance.
	MismatchedParentheses
)

// SyntaxError reports a lexing or parsing failure. It is returned, never
// panicked, and the same input always fails the same way.
type SyntaxError struct {
	Code SyntaxCode

	// Pos is the rune offset in the normalized input where lexing stopped.
	// Only meaningful for InvalidCharacter.
	Pos int

	// Char is the offending rune for InvalidCharacter.
	Char rune
}

func (e *SyntaxError) Error() string {
	switch e.Code {
	case InvalidCharacter:
		return fmt.Sprintf("invalid character %q at position %d: use variables, parentheses and the operators ¬ ∧ ∨ → ↔ (or , ` ~ -> <->)", e.Char, e.Pos)
	case MismatchedParentheses:
		return "mismatched parentheses"
	default:
		return "syntax error"
	}
}

// EvalCode classifies evaluation failures.
type EvalCode int

const (
	// UnboundVariable means the environment has no value for a variable
	// the program references.
	UnboundVariable EvalCode = iota

	// MalformedExpression means an operator was missing operands, or the
	// program left more or fewer than one value on the stack.
	MalformedExpression
)

// EvalError reports an evaluation failure.
type EvalError struct {
	Code EvalCode

	// Var is the unbound variable name for UnboundVariable.
	Var string
}

func (e *EvalError) Error() string {
	switch e.Code {
	case UnboundVariable:
		return fmt.Sprintf("variable %q has no assigned value", e.Var)
	case MalformedExpression:
		return "incomplete expression"
	default:
		return "evaluation error"
	}
}

// VarLimitError reports an equivalence check or truth table over more
// variables than the engine allows. The cost of enumeration is 2^n, so the
// cap keeps untrusted input from stalling the caller.
type VarLimitError struct {
	Count int
	Max   int
}

func (e *VarLimitError) Error() string {
	return fmt.Sprintf("formula uses %d variables, at most %d are supported", e.Count, e.Max)
}
