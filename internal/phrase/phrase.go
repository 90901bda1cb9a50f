// Package phrase turns formula trees into readable sentences using the
// course's variable meanings. Output is bilingual: the class is taught in
// English and Hungarian.
package phrase

import (
	"fmt"

	"github.com/bvarga/petralog/internal/logic"
)

// Lang selects the sentence language.
type Lang string

const (
	LangEN Lang = "en"
	LangHU Lang = "hu"
)

// VarDefs maps variable letters to their meaning in the current exercise.
// Letters without a meaning fall back to the bare letter.
type VarDefs map[string]string

// DefaultVars returns the standing geology meanings for the course
// alphabet.
func DefaultVars(lang Lang) VarDefs {
	if lang == LangHU {
		return VarDefs{
			"p": "a kőzet homokkő",
			"q": "fossziliákat tartalmaz",
			"r": "sekély tengeri környezetben képződött",
			"o": "a minta olivint tartalmaz",
			"y": "a minta piroxént tartalmaz",
			"i": "a kőzet magmás",
		}
	}
	return VarDefs{
		"p": "the rock is sandstone",
		"q": "it contains fossils",
		"r": "it formed in a shallow marine environment",
		"o": "the sample contains olivine",
		"y": "the sample contains pyroxene",
		"i": "the rock is igneous",
	}
}

type connectives struct {
	not string
	and string
	or  string
	imp string
	iff string
}

var connEN = connectives{
	not: "not %s",
	and: "%s and %s",
	or:  "%s or %s",
	imp: "if %s, then %s",
	iff: "%s if and only if %s",
}

var connHU = connectives{
	not: "nem %s",
	and: "%s és %s",
	or:  "%s vagy %s",
	imp: "ha %s, akkor %s",
	iff: "%s akkor és csak akkor, ha %s",
}

// Formula renders the tree as one sentence. Fragments are parenthesized
// where a child binds more weakly than its parent, which keeps nested
// sentences unambiguous without drowning them in brackets.
func Formula(n *logic.Node, defs VarDefs, lang Lang) string {
	conn := connEN
	if lang == LangHU {
		conn = connHU
	}
	return render(n, defs, conn)
}

func render(n *logic.Node, defs VarDefs, conn connectives) string {
	switch n.Kind {
	case logic.KindVar:
		if meaning, ok := defs[n.Name]; ok && meaning != "" {
			return meaning
		}
		return n.Name

	case logic.KindNot:
		s := fmt.Sprintf(conn.not, render(n.Left, defs, conn))
		if n.Left.Kind != logic.KindVar {
			s = "(" + s + ")"
		}
		return s

	default:
		left := maybeParen(n.Left, n.Kind, render(n.Left, defs, conn))
		right := maybeParen(n.Right, n.Kind, render(n.Right, defs, conn))
		switch n.Kind {
		case logic.KindAnd:
			return fmt.Sprintf(conn.and, left, right)
		case logic.KindOr:
			return fmt.Sprintf(conn.or, left, right)
		case logic.KindImplies:
			return fmt.Sprintf(conn.imp, left, right)
		default:
			return fmt.Sprintf(conn.iff, left, right)
		}
	}
}

var phrasePrec = map[logic.Kind]int{
	logic.KindVar:     6,
	logic.KindNot:     5,
	logic.KindAnd:     4,
	logic.KindOr:      3,
	logic.KindImplies: 2,
	logic.KindIff:     1,
}

func maybeParen(child *logic.Node, parent logic.Kind, frag string) string {
	if child.Kind == logic.KindVar {
		return frag
	}
	if phrasePrec[child.Kind] < phrasePrec[parent] {
		return "(" + frag + ")"
	}
	return frag
}
