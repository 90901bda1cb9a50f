package assignment

import (
	"fmt"
	"math/rand/v2"

	"github.com/bvarga/petralog/internal/logic"
	"github.com/bvarga/petralog/internal/phrase"
)

// formulaPool holds the formulas symbolization and rewrite questions draw
// from. All variables carry standing geology meanings, so every formula
// phrases into a sensible sentence.
var formulaPool = []string{
	"p → q",
	"q ∧ r",
	"p ∨ i",
	"¬(o ∧ y)",
	"¬i → p",
	"(o ∨ y) → i",
	"¬(p ∨ q)",
	"q ↔ r",
	"(p ∧ q) → r",
	"o ∧ ¬y",
}

// deMorganPool holds negated compounds for rewrite questions. Any
// equivalent answer earns credit; students are expected to push the
// negation inward.
var deMorganPool = []string{
	"¬(o ∧ y)",
	"¬(p ∨ q)",
	"¬(q ∧ r)",
	"¬(p ∨ i)",
}

// implicationPool holds conditionals to rewrite without the arrow.
var implicationPool = []string{
	"p → q",
	"i → ¬o",
	"(o ∧ y) → i",
	"q → r",
}

type freeTextEntry struct {
	promptEN    string
	promptHU    string
	keywords    []string
	modelAnswer string
}

var freeTextPool = []freeTextEntry{
	{
		promptEN: "Explain why an if-then statement counts as true whenever its first part is false.",
		promptHU: "Magyarázd meg, miért igaz egy ha-akkor állítás mindig, amikor az első fele hamis.",
		keywords: []string{"false", "promise", "broken", "true", "condition"},
		modelAnswer: "An implication only makes a claim about cases where the condition holds. " +
			"If the condition is false, the statement promises nothing, so it cannot be broken and counts as true.",
	},
	{
		promptEN: "State De Morgan's law for 'and' in your own words, using a rock example.",
		promptHU: "Fogalmazd meg saját szavaiddal a De Morgan-szabályt az 'és' kapcsolatra, kőzetes példával.",
		keywords: []string{"not", "and", "or", "negation", "both"},
		modelAnswer: "Saying a sample does not contain both olivine and pyroxene is the same as saying " +
			"it lacks olivine or lacks pyroxene. Negating an 'and' gives an 'or' of the negations.",
	},
	{
		promptEN: "What does it mean for two formulas to be logically equivalent?",
		promptHU: "Mit jelent az, hogy két formula logikailag ekvivalens?",
		keywords: []string{"truth", "value", "same", "every", "assignment"},
		modelAnswer: "Two formulas are equivalent when they take the same truth value under every " +
			"assignment of their variables, so no case can tell them apart.",
	},
	{
		promptEN: "Give a biconditional statement about rocks and describe a situation where it is false.",
		promptHU: "Mondj egy akkor-és-csak-akkor állítást kőzetekről, és írj le egy helyzetet, amikor hamis.",
		keywords: []string{"if and only if", "both", "differ", "false", "one"},
		modelAnswer: "'A rock is sandstone if and only if it contains fossils' is false whenever exactly " +
			"one side holds, for example a fossil-free sandstone.",
	},
}

// buildSymbolize asks the student to translate a sentence into symbols.
func (g *Generator) buildSymbolize(rng *rand.Rand, id string) (Question, error) {
	raw := formulaPool[rng.IntN(len(formulaPool))]

	prog, err := g.engine.Compile(raw)
	if err != nil {
		return Question{}, fmt.Errorf("template formula %q: %w", raw, err)
	}
	tree, err := logic.ASTFromProgram(prog)
	if err != nil {
		return Question{}, fmt.Errorf("template formula %q: %w", raw, err)
	}

	sentEN := phrase.Formula(tree, phrase.DefaultVars(phrase.LangEN), phrase.LangEN)
	sentHU := phrase.Formula(tree, phrase.DefaultVars(phrase.LangHU), phrase.LangHU)

	return Question{
		ID:       id,
		Kind:     KindFormula,
		PromptEN: fmt.Sprintf("Write the formula for: %q.", sentEN),
		PromptHU: fmt.Sprintf("Írd fel a formulát: %q.", sentHU),
		Expected: tree.Symbols(),
		MaxScore: 2,
	}, nil
}

// buildDeMorgan asks for a negated compound pushed inward.
func (g *Generator) buildDeMorgan(rng *rand.Rand, id string) (Question, error) {
	raw := deMorganPool[rng.IntN(len(deMorganPool))]
	if _, err := g.engine.Compile(raw); err != nil {
		return Question{}, fmt.Errorf("template formula %q: %w", raw, err)
	}

	return Question{
		ID:       id,
		Kind:     KindFormula,
		PromptEN: fmt.Sprintf("Rewrite %s so the negation applies only to single variables.", raw),
		PromptHU: fmt.Sprintf("Írd át úgy a %s formulát, hogy a tagadás csak egyes változókra vonatkozzon.", raw),
		Expected: raw,
		MaxScore: 2,
	}, nil
}

// buildImplicationRewrite asks for a conditional expressed without the arrow.
func (g *Generator) buildImplicationRewrite(rng *rand.Rand, id string) (Question, error) {
	raw := implicationPool[rng.IntN(len(implicationPool))]
	if _, err := g.engine.Compile(raw); err != nil {
		return Question{}, fmt.Errorf("template formula %q: %w", raw, err)
	}

	return Question{
		ID:       id,
		Kind:     KindFormula,
		PromptEN: fmt.Sprintf("Rewrite %s using only ¬, ∧ and ∨.", raw),
		PromptHU: fmt.Sprintf("Írd át a %s formulát csak ¬, ∧ és ∨ használatával.", raw),
		Expected: raw,
		MaxScore: 2,
	}, nil
}

// buildTruthTableRow asks for the value of a formula under one assignment.
func (g *Generator) buildTruthTableRow(rng *rand.Rand, id string) (Question, error) {
	raw := formulaPool[rng.IntN(len(formulaPool))]

	prog, err := g.engine.Compile(raw)
	if err != nil {
		return Question{}, fmt.Errorf("template formula %q: %w", raw, err)
	}

	env := logic.Env{}
	for _, v := range prog.Vars() {
		env[v] = rng.IntN(2) == 0
	}

	val, err := g.engine.Evaluate(prog, env)
	if err != nil {
		return Question{}, fmt.Errorf("template formula %q: %w", raw, err)
	}
	expected := "F"
	if val {
		expected = "T"
	}

	return Question{
		ID:       id,
		Kind:     KindTruthTable,
		PromptEN: fmt.Sprintf("What is the value of %s when %s? Answer T or F.", raw, logic.FormatEnv(env)),
		PromptHU: fmt.Sprintf("Mi a %s formula értéke, ha %s? Válaszolj T vagy F betűvel.", raw, logic.FormatEnv(env)),
		Expected: expected,
		MaxScore: 1,
	}, nil
}

// buildFreeText picks a conceptual question from the pool.
func (g *Generator) buildFreeText(rng *rand.Rand, id string) (Question, error) {
	entry := freeTextPool[rng.IntN(len(freeTextPool))]

	return Question{
		ID:          id,
		Kind:        KindFreeText,
		PromptEN:    entry.promptEN,
		PromptHU:    entry.promptHU,
		Keywords:    entry.keywords,
		ModelAnswer: entry.modelAnswer,
		MaxScore:    3,
	}, nil
}
