package logic

// Operator precedence, highest binds tightest.
var precedence = map[Kind]int{
	KindIff:     1,
	KindImplies: 2,
	KindOr:      3,
	KindAnd:     4,
	KindNot:     5,
}

// rightAssoc marks right-associative operators. AND and OR associate left;
// NOT, IMPLIES and IFF associate right, matching the course material.
var rightAssoc = map[Kind]bool{
	KindNot:     true,
	KindImplies: true,
	KindIff:     true,
}

// Parse converts an infix token stream to a postfix Program using the
// shunting-yard algorithm. Unbalanced parentheses fail here; an operator
// missing its operands is only detected when the program is evaluated.
func (e *Engine) Parse(tokens []Token) (Program, error) {
	var output Program
	var ops []Token

	for _, tok := range tokens {
		switch tok.Kind {
		case KindVar:
			output = append(output, tok)

		case KindNot:
			ops = append(ops, tok)

		case KindAnd, KindOr, KindImplies, KindIff:
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.Kind == KindLParen {
					break
				}
				if rightAssoc[tok.Kind] {
					if precedence[top.Kind] <= precedence[tok.Kind] {
						break
					}
				} else if precedence[top.Kind] < precedence[tok.Kind] {
					break
				}
				output = append(output, top)
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, tok)

		case KindLParen:
			ops = append(ops, tok)

		case KindRParen:
			for len(ops) > 0 && ops[len(ops)-1].Kind != KindLParen {
				output = append(output, ops[len(ops)-1])
				ops = ops[:len(ops)-1]
			}
			if len(ops) == 0 {
				return nil, &SyntaxError{Code: MismatchedParentheses}
			}
			ops = ops[:len(ops)-1]
		}
	}

	for len(ops) > 0 {
		top := ops[len(ops)-1]
		if top.Kind == KindLParen || top.Kind == KindRParen {
			return nil, &SyntaxError{Code: MismatchedParentheses}
		}
		output = append(output, top)
		ops = ops[:len(ops)-1]
	}

	return output, nil
}

// Vars returns the distinct variable names referenced by p, sorted
// ascending.
func (p Program) Vars() []string {
	seen := make(map[string]bool)
	var names []string
	for _, tok := range p {
		if tok.Kind == KindVar && !seen[tok.Text] {
			seen[tok.Text] = true
			names = append(names, tok.Text)
		}
	}
	// Insertion sort; the alphabet is tiny.
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
	return names
}
