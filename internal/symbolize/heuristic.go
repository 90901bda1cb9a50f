package symbolize

import (
	"fmt"
	"strings"

	"github.com/bvarga/petralog/internal/phrase"
)

// connective split patterns per language, tried outermost-first. The
// weakest binder is split first so "if p then q or r" reads as
// p → (q ∨ r), matching how the phrasing side parenthesizes.
type splitRule struct {
	sep    string
	symbol string
}

var splitEN = []splitRule{
	{" if and only if ", "↔"},
	{" or ", "∨"},
	{" and ", "∧"},
}

var splitHU = []splitRule{
	{" akkor és csak akkor, ha ", "↔"},
	{" vagy ", "∨"},
	{" és ", "∧"},
}

// symbolizeHeuristic handles the stock sentence shapes the phrasing side
// produces: conditionals, biconditionals, conjunction, disjunction and
// negation over the standing variable meanings.
func (s *Symbolizer) symbolizeHeuristic(sentence string, lang phrase.Lang) (string, error) {
	defs := phrase.DefaultVars(lang)
	norm := strings.ToLower(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(sentence), ".")))

	formula, ok := s.translate(norm, defs, lang)
	if !ok {
		return "", fmt.Errorf("could not match the sentence against the known variable meanings")
	}

	// Prove the result before handing it back.
	return s.dryRun(formula)
}

func (s *Symbolizer) translate(frag string, defs phrase.VarDefs, lang phrase.Lang) (string, bool) {
	frag = strings.TrimSpace(frag)

	// A parenthesized fragment is one unit. The phrasing side only wraps
	// a negation in parens when it scopes over a compound, so inside the
	// parens the negation is tried before any binary split.
	if strings.HasPrefix(frag, "(") && strings.HasSuffix(frag, ")") {
		inner := frag[1 : len(frag)-1]
		negPrefix := "not "
		if lang == phrase.LangHU {
			negPrefix = "nem "
		}
		if rest, found := strings.CutPrefix(inner, negPrefix); found {
			if f, ok := s.translate(rest, defs, lang); ok {
				if len([]rune(f)) > 1 {
					f = "(" + f + ")"
				}
				return "¬" + f, true
			}
		}
		if f, ok := s.translate(inner, defs, lang); ok {
			return f, true
		}
	}

	// Conditional first: it is the weakest stock binder after the
	// biconditional and has a two-part marker.
	if lang == phrase.LangHU {
		if rest, found := strings.CutPrefix(frag, "ha "); found {
			if left, right, ok := strings.Cut(rest, ", akkor "); ok {
				return s.binary(left, right, "→", defs, lang)
			}
		}
	} else {
		if rest, found := strings.CutPrefix(frag, "if "); found {
			if left, right, ok := strings.Cut(rest, ", then "); ok {
				return s.binary(left, right, "→", defs, lang)
			}
		}
	}

	rules := splitEN
	if lang == phrase.LangHU {
		rules = splitHU
	}
	for _, rule := range rules {
		if left, right, ok := cutTopLevel(frag, rule.sep); ok {
			if f, ok := s.binary(left, right, rule.symbol, defs, lang); ok {
				return f, true
			}
		}
	}

	// Negation.
	negPrefix := "not "
	if lang == phrase.LangHU {
		negPrefix = "nem "
	}
	if rest, found := strings.CutPrefix(frag, negPrefix); found {
		if inner, ok := s.translate(rest, defs, lang); ok {
			if len([]rune(inner)) > 1 {
				inner = "(" + inner + ")"
			}
			return "¬" + inner, true
		}
	}

	// Atom: match a variable meaning.
	for letter, meaning := range defs {
		if frag == strings.ToLower(meaning) {
			return letter, true
		}
	}

	// Loose match: the fragment may drop a leading pronoun or article.
	for letter, meaning := range defs {
		m := strings.ToLower(meaning)
		if strings.HasSuffix(m, frag) || strings.HasSuffix(frag, m) {
			return letter, true
		}
	}

	return "", false
}

func (s *Symbolizer) binary(left, right, symbol string, defs phrase.VarDefs, lang phrase.Lang) (string, bool) {
	l, ok := s.translate(left, defs, lang)
	if !ok {
		return "", false
	}
	r, ok := s.translate(right, defs, lang)
	if !ok {
		return "", false
	}
	if len([]rune(l)) > 1 && !strings.HasPrefix(l, "(") {
		l = "(" + l + ")"
	}
	if len([]rune(r)) > 1 && !strings.HasPrefix(r, "(") {
		r = "(" + r + ")"
	}
	return l + " " + symbol + " " + r, true
}

// cutTopLevel splits on the first separator occurrence that is not
// inside parentheses.
func cutTopLevel(frag, sep string) (string, string, bool) {
	depth := 0
	for i := 0; i+len(sep) <= len(frag); i++ {
		switch frag[i] {
		case '(':
			depth++
		case ')':
			depth--
		}
		if depth == 0 && strings.HasPrefix(frag[i:], sep) {
			return frag[:i], frag[i+len(sep):], true
		}
	}
	return "", "", false
}
