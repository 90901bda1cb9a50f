// Package symbolize turns natural-language statements into formulas over
// the course alphabet. An LLM does the heavy lifting when configured; a
// pattern-matching fallback handles the stock sentence shapes offline.
package symbolize

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/bvarga/petralog/internal/llm"
	"github.com/bvarga/petralog/internal/logic"
	"github.com/bvarga/petralog/internal/phrase"
)

// Result is a symbolization outcome.
type Result struct {
	// Formula is the translation in canonical symbols.
	Formula string

	// Source reports which path produced the formula: "llm" or "heuristic".
	Source string

	// Explanation is a short account of the reading, when the LLM offers one.
	Explanation string
}

// Symbolizer translates sentences. The provider may be nil, in which
// case only the offline patterns are available.
type Symbolizer struct {
	engine   *logic.Engine
	provider llm.Provider
}

// New creates a Symbolizer.
func New(engine *logic.Engine, provider llm.Provider) *Symbolizer {
	return &Symbolizer{engine: engine, provider: provider}
}

// Symbolize translates one sentence. LLM output is dry-run through the
// engine before it is trusted; a formula that fails to compile or
// evaluate falls back to the offline patterns.
func (s *Symbolizer) Symbolize(ctx context.Context, sentence string, lang phrase.Lang) (Result, error) {
	if strings.TrimSpace(sentence) == "" {
		return Result{}, fmt.Errorf("empty sentence")
	}

	if s.provider != nil {
		res, err := s.symbolizeLLM(ctx, sentence, lang)
		if err == nil {
			return res, nil
		}
	}

	formula, err := s.symbolizeHeuristic(sentence, lang)
	if err != nil {
		return Result{}, err
	}
	return Result{Formula: formula, Source: "heuristic"}, nil
}

const symbolizeSystemPrompt = `You translate statements about rocks into
propositional logic formulas for an introductory course. Use only the
symbols ¬ ∧ ∨ → ↔, parentheses, and the given single-letter variables.
Translate the logical structure exactly; do not add or drop conditions.`

// symbolizeLLM asks the provider for a translation and validates it.
func (s *Symbolizer) symbolizeLLM(ctx context.Context, sentence string, lang phrase.Lang) (Result, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeSymbolize)
	resp, err := s.provider.Generate(ctx, llm.Request{
		System:    symbolizeSystemPrompt,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: userPrompt(phrase.DefaultVars(lang), sentence)}},
		Schema:    symbolizeSchema(),
		MaxTokens: 256,
	})
	if err != nil {
		return Result{}, err
	}

	var out struct {
		Formula     string `json:"formula"`
		Explanation string `json:"explanation"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return Result{}, fmt.Errorf("decode symbolization: %w", err)
	}

	canonical, err := s.dryRun(out.Formula)
	if err != nil {
		return Result{}, fmt.Errorf("LLM formula %q: %w", out.Formula, err)
	}

	return Result{
		Formula:     canonical,
		Source:      "llm",
		Explanation: out.Explanation,
	}, nil
}

// userPrompt lists the variables in sorted order so the same sentence
// always produces the same prompt.
func userPrompt(defs phrase.VarDefs, sentence string) string {
	letters := make([]string, 0, len(defs))
	for letter := range defs {
		letters = append(letters, letter)
	}
	sort.Strings(letters)

	var b strings.Builder
	b.WriteString("Variables:\n")
	for _, letter := range letters {
		fmt.Fprintf(&b, "  %s = %s\n", letter, defs[letter])
	}
	fmt.Fprintf(&b, "\nStatement: %s\n", sentence)
	return b.String()
}

// dryRun compiles and evaluates a candidate formula to prove it is
// well-formed, and returns it in canonical symbols.
func (s *Symbolizer) dryRun(formula string) (string, error) {
	prog, err := s.engine.Compile(formula)
	if err != nil {
		return "", err
	}

	env := logic.Env{}
	for _, v := range prog.Vars() {
		env[v] = true
	}
	if _, err := s.engine.Evaluate(prog, env); err != nil {
		return "", err
	}

	tree, err := logic.ASTFromProgram(prog)
	if err != nil {
		return "", err
	}
	return tree.Symbols(), nil
}

func symbolizeSchema() *llm.Schema {
	return &llm.Schema{
		Name:        "symbolization",
		Description: "A propositional logic translation of one sentence",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"formula": map[string]any{
					"type":        "string",
					"description": "The formula using ¬ ∧ ∨ → ↔ and the given variables",
				},
				"explanation": map[string]any{
					"type":        "string",
					"description": "One sentence on how the statement was read",
				},
			},
			"required":             []any{"formula"},
			"additionalProperties": false,
		},
	}
}
