package logic

import "strings"

// Node is one vertex of a formula tree: a variable leaf (KindVar, Name
// set), a negation (KindNot, Left set), or a binary connective (Left and
// Right set). Each node exclusively owns its children; the builder only
// ever creates downward references, so the tree is acyclic by
// construction.
type Node struct {
	Kind  Kind
	Name  string
	Left  *Node
	Right *Node
}

// ASTFromProgram rebuilds the formula tree from a postfix program. The
// phrasing code and the TUI consume the tree; evaluation stays on the
// program form.
func ASTFromProgram(p Program) (*Node, error) {
	var stack []*Node

	for _, tok := range p {
		switch tok.Kind {
		case KindVar:
			stack = append(stack, &Node{Kind: KindVar, Name: tok.Text})

		case KindNot:
			if len(stack) < 1 {
				return nil, &EvalError{Code: MalformedExpression}
			}
			child := stack[len(stack)-1]
			stack[len(stack)-1] = &Node{Kind: KindNot, Left: child}

		case KindAnd, KindOr, KindImplies, KindIff:
			if len(stack) < 2 {
				return nil, &EvalError{Code: MalformedExpression}
			}
			right := stack[len(stack)-1]
			left := stack[len(stack)-2]
			stack = stack[:len(stack)-1]
			stack[len(stack)-1] = &Node{Kind: tok.Kind, Left: left, Right: right}

		default:
			return nil, &EvalError{Code: MalformedExpression}
		}
	}

	if len(stack) != 1 {
		return nil, &EvalError{Code: MalformedExpression}
	}
	return stack[0], nil
}

var kindSymbol = map[Kind]string{
	KindNot:     string(symNot),
	KindAnd:     string(symAnd),
	KindOr:      string(symOr),
	KindImplies: string(symImplies),
	KindIff:     string(symIff),
}

// asciiSymbol maps operators back to the course's on-screen ASCII
// notation. The arrows have no single-character alias and keep their
// digraph form.
var asciiSymbol = map[Kind]string{
	KindNot:     ",",
	KindAnd:     "`",
	KindOr:      "~",
	KindImplies: "->",
	KindIff:     "<->",
}

// Symbols renders the tree in infix Unicode notation, inserting
// parentheses only where a child binds more weakly than its parent.
func (n *Node) Symbols() string {
	return n.render(kindSymbol)
}

// ASCII renders the tree in the course's ASCII notation.
func (n *Node) ASCII() string {
	return n.render(asciiSymbol)
}

func (n *Node) render(symbols map[Kind]string) string {
	switch n.Kind {
	case KindVar:
		return n.Name

	case KindNot:
		child := n.Left.render(symbols)
		if n.Left.Kind != KindVar && n.Left.Kind != KindNot {
			child = "(" + child + ")"
		}
		return symbols[KindNot] + child

	default:
		left := n.Left.render(symbols)
		if parenNeeded(n.Left, n.Kind) {
			left = "(" + left + ")"
		}
		right := n.Right.render(symbols)
		if parenNeeded(n.Right, n.Kind) {
			right = "(" + right + ")"
		}
		var b strings.Builder
		b.WriteString(left)
		b.WriteString(" ")
		b.WriteString(symbols[n.Kind])
		b.WriteString(" ")
		b.WriteString(right)
		return b.String()
	}
}

// parenNeeded reports whether a binary child must be parenthesized under
// parent. Children of equal precedence keep their parentheses too; the
// rendering is for students, and explicit grouping reads better than
// relying on associativity conventions.
func parenNeeded(child *Node, parent Kind) bool {
	if child.Kind == KindVar || child.Kind == KindNot {
		return false
	}
	return precedence[child.Kind] <= precedence[parent]
}
