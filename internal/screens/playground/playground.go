package playground

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/bvarga/petralog/internal/logic"
	"github.com/bvarga/petralog/internal/phrase"
	"github.com/bvarga/petralog/internal/screen"
	"github.com/bvarga/petralog/internal/symbolize"
	"github.com/bvarga/petralog/internal/ui/components"
	"github.com/bvarga/petralog/internal/ui/layout"
	"github.com/bvarga/petralog/internal/ui/theme"
)

// symbolizedMsg carries the result of an async sentence translation.
type symbolizedMsg struct {
	Result symbolize.Result
	Err    error
}

type mode int

const (
	modeFormula mode = iota
	modeSentence
	modeCompare
)

// PlaygroundScreen lets the student explore formulas freely: parse,
// truth-table, read back as a sentence, and probe equivalence against a
// second formula.
type PlaygroundScreen struct {
	engine *logic.Engine
	sym    *symbolize.Symbolizer

	mode     mode
	input    components.TextInput
	compare  components.TextInput
	analysis string
	errMsg   string
	waiting  bool
}

var _ screen.Screen = (*PlaygroundScreen)(nil)
var _ screen.KeyHintProvider = (*PlaygroundScreen)(nil)

// New creates the playground.
func New(engine *logic.Engine, sym *symbolize.Symbolizer) *PlaygroundScreen {
	return &PlaygroundScreen{
		engine:  engine,
		sym:     sym,
		input:   components.NewTextInput("p -> (q ~ r)", 60),
		compare: components.NewTextInput(",q ` ,r -> ,p", 60),
	}
}

func (p *PlaygroundScreen) Init() tea.Cmd {
	return p.input.Init()
}

func (p *PlaygroundScreen) Title() string {
	return "Playground"
}

func (p *PlaygroundScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Analyze"},
		{Key: "Tab", Description: "Mode"},
		{Key: "Esc", Description: "Back"},
	}
}

func (p *PlaygroundScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case symbolizedMsg:
		p.waiting = false
		if msg.Err != nil {
			p.errMsg = msg.Err.Error()
			return p, nil
		}
		p.analyze(msg.Result.Formula)
		if msg.Result.Explanation != "" && p.errMsg == "" {
			p.analysis += "\n" + theme.Hint.Render(msg.Result.Explanation)
		}
		return p, nil

	case tea.KeyMsg:
		if p.waiting {
			return p, nil
		}
		switch msg.String() {
		case "tab":
			p.mode = (p.mode + 1) % 3
			p.errMsg = ""
			return p, nil
		case "enter":
			return p, p.submit()
		}
	}

	var cmd tea.Cmd
	if p.mode == modeCompare {
		p.compare, cmd = p.compare.Update(msg)
	} else {
		p.input, cmd = p.input.Update(msg)
	}
	return p, cmd
}

func (p *PlaygroundScreen) submit() tea.Cmd {
	p.errMsg = ""

	switch p.mode {
	case modeSentence:
		sentence := strings.TrimSpace(p.input.Value())
		if sentence == "" {
			return nil
		}
		p.waiting = true
		sym := p.sym
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			res, err := sym.Symbolize(ctx, sentence, phrase.LangEN)
			return symbolizedMsg{Result: res, Err: err}
		}

	case modeCompare:
		p.probeEquivalence()
		return nil

	default:
		p.analyze(p.input.Value())
		return nil
	}
}

// analyze fills p.analysis with canonical form, truth table and both
// sentence readings, or sets errMsg.
func (p *PlaygroundScreen) analyze(raw string) {
	p.analysis = ""

	prog, err := p.engine.Compile(raw)
	if err != nil {
		p.errMsg = err.Error()
		return
	}
	tree, err := logic.ASTFromProgram(prog)
	if err != nil {
		p.errMsg = err.Error()
		return
	}

	var b strings.Builder
	b.WriteString(theme.Formula.Render(tree.Symbols()) + "\n\n")

	tbl, err := p.engine.TruthTable(prog)
	if err != nil {
		p.errMsg = err.Error()
		return
	}
	b.WriteString(tbl.String() + "\n")

	en := phrase.Formula(tree, phrase.DefaultVars(phrase.LangEN), phrase.LangEN)
	hu := phrase.Formula(tree, phrase.DefaultVars(phrase.LangHU), phrase.LangHU)
	b.WriteString(theme.Body.Render("EN: "+en) + "\n")
	b.WriteString(theme.Body.Render("HU: " + hu))

	p.analysis = b.String()
}

func (p *PlaygroundScreen) probeEquivalence() {
	a, err := p.engine.Compile(p.input.Value())
	if err != nil {
		p.errMsg = fmt.Sprintf("first formula: %v", err)
		return
	}
	b, err := p.engine.Compile(p.compare.Value())
	if err != nil {
		p.errMsg = fmt.Sprintf("second formula: %v", err)
		return
	}

	vars := unionVars(a.Vars(), b.Vars())
	equal, witness, err := p.engine.Equivalent(a, b, vars)
	if err != nil {
		p.errMsg = err.Error()
		return
	}

	if equal {
		p.analysis = theme.Correct.Render("Equivalent.")
		return
	}
	p.analysis = theme.Incorrect.Render("Not equivalent.") + "\n" +
		theme.Body.Render("They differ when "+logic.FormatEnv(witness)+".")
}

func unionVars(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	var out []string
	for _, lists := range [][]string{a, b} {
		for _, v := range lists {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out
}

var modeLabels = map[mode]string{
	modeFormula:  "FORMULA",
	modeSentence: "SENTENCE",
	modeCompare:  "COMPARE",
}

func (p *PlaygroundScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Subtitle.Render("mode: "+modeLabels[p.mode]))
	sections = append(sections, theme.Card.Render(p.input.View()))
	if p.mode == modeCompare {
		sections = append(sections, theme.Card.Render(p.compare.View()))
	}

	switch {
	case p.waiting:
		sections = append(sections, theme.Hint.Render("translating..."))
	case p.errMsg != "":
		sections = append(sections, theme.Incorrect.Render(p.errMsg))
	case p.analysis != "":
		sections = append(sections, theme.Card.Render(p.analysis))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
