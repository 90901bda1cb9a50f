package logic

// Kind identifies the lexical class of a token.
type Kind int

const (
	KindVar Kind = iota
	KindNot
	KindAnd
	KindOr
	KindImplies
	KindIff
	KindLParen
	KindRParen
)

func (k Kind) String() string {
	switch k {
	case KindVar:
		return "VAR"
	case KindNot:
		return "NOT"
	case KindAnd:
		return "AND"
	case KindOr:
		return "OR"
	case KindImplies:
		return "IMPLIES"
	case KindIff:
		return "IFF"
	case KindLParen:
		return "LPAREN"
	case KindRParen:
		return "RPAREN"
	default:
		return "UNKNOWN"
	}
}

// Token is a single lexical unit of a formula. For KindVar, Text holds the
// one-letter variable name; for operators it holds the normalized Unicode
// symbol. Tokens are produced once per parse and never mutated.
type Token struct {
	Kind Kind
	Text string
}

// Program is a formula compiled to postfix (RPN) order. A well-formed
// Program leaves exactly one boolean on the stack when executed left to
// right; parenthesis tokens never appear in it.
type Program []Token

// Symbols renders the program's tokens in postfix order, separated by
// spaces. Useful for debugging and error messages.
func (p Program) Symbols() string {
	s := ""
	for i, t := range p {
		if i > 0 {
			s += " "
		}
		s += t.Text
	}
	return s
}
