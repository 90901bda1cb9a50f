package logic

import (
	"strings"
	"unicode"
)

// Canonical operator symbols. ASCII aliases and digraphs are rewritten to
// these before tokenization.
const (
	symNot     = '¬'
	symAnd     = '∧'
	symOr      = '∨'
	symImplies = '→'
	symIff     = '↔'
)

// Normalize strips whitespace, rewrites the arrow digraphs (longest match
// first, since "<->" contains "->"), lowercases variable letters, and maps
// the ASCII course aliases to the canonical Unicode operators. It fails
// with an InvalidCharacter SyntaxError when any residual rune is neither a
// variable from the alphabet nor an operator or parenthesis.
func (e *Engine) Normalize(raw string) (string, error) {
	s := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)

	s = strings.ReplaceAll(s, "<->", string(symIff))
	s = strings.ReplaceAll(s, "->", string(symImplies))
	s = strings.ToLower(s)

	var b strings.Builder
	for pos, r := range []rune(s) {
		if mapped, ok := e.aliases[r]; ok {
			r = mapped
		}
		switch {
		case e.alphabet[r]:
		case r == symNot || r == symAnd || r == symOr || r == symImplies || r == symIff:
		case r == '(' || r == ')':
		default:
			return "", &SyntaxError{Code: InvalidCharacter, Pos: pos, Char: r}
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}

// Tokenize normalizes raw and emits one token per rune, left to right.
// Empty input yields an empty token slice and no error: the caller decides
// whether "no formula" is acceptable (an unanswered quiz item is, a truth
// table request is not).
func (e *Engine) Tokenize(raw string) ([]Token, error) {
	s, err := e.Normalize(raw)
	if err != nil {
		return nil, err
	}

	var tokens []Token
	for _, r := range s {
		var kind Kind
		switch r {
		case symNot:
			kind = KindNot
		case symAnd:
			kind = KindAnd
		case symOr:
			kind = KindOr
		case symImplies:
			kind = KindImplies
		case symIff:
			kind = KindIff
		case '(':
			kind = KindLParen
		case ')':
			kind = KindRParen
		default:
			kind = KindVar
		}
		tokens = append(tokens, Token{Kind: kind, Text: string(r)})
	}
	return tokens, nil
}
