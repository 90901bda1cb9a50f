// Package logic implements the propositional logic engine behind Petralog:
// a normalizing lexer, a shunting-yard parser to postfix programs, a stack
// evaluator, and a brute-force semantic equivalence checker.
//
// The engine accepts the course's ASCII notation (`,` for ¬, a backtick for
// ∧, `~` for ∨, `->` and `<->` for the arrows) as well as the standard
// Unicode symbols, mixed freely within one formula. Everything is
// normalized to the Unicode form before tokenization.
//
// All operations are pure functions of their inputs; an Engine is immutable
// after construction and safe for concurrent use.
package logic

// Config fixes the variable alphabet, the ASCII alias table, and the
// enumeration cap for one Engine. Engines with different alphabets can
// coexist; nothing here is process-global.
type Config struct {
	// Alphabet lists the allowed single-letter variable names.
	Alphabet []rune

	// Aliases maps ASCII course symbols to the canonical Unicode
	// operators, e.g. ',' to '¬'.
	Aliases map[rune]rune

	// MaxVariables caps the variable count for truth tables and
	// equivalence checks. Enumeration is exponential in this number.
	MaxVariables int
}

// DefaultConfig returns the geology course configuration: variables
// p, q, r, o, i, y and the on-screen ASCII aliases.
func DefaultConfig() Config {
	return Config{
		Alphabet: []rune("pqroiy"),
		Aliases: map[rune]rune{
			',': symNot,
			'`': symAnd,
			'~': symOr,
		},
		MaxVariables: 5,
	}
}

// Engine parses and evaluates formulas over one fixed alphabet.
type Engine struct {
	alphabet map[rune]bool
	aliases  map[rune]rune
	maxVars  int
}

// New builds an Engine from cfg. The config is copied; later mutation of
// cfg has no effect on the engine.
func New(cfg Config) *Engine {
	e := &Engine{
		alphabet: make(map[rune]bool, len(cfg.Alphabet)),
		aliases:  make(map[rune]rune, len(cfg.Aliases)),
		maxVars:  cfg.MaxVariables,
	}
	for _, r := range cfg.Alphabet {
		e.alphabet[r] = true
	}
	for from, to := range cfg.Aliases {
		e.aliases[from] = to
	}
	return e
}

// Default returns an Engine with DefaultConfig.
func Default() *Engine {
	return New(DefaultConfig())
}

// MaxVariables reports the engine's enumeration cap.
func (e *Engine) MaxVariables() int {
	return e.maxVars
}

// Compile is the common lex-then-parse path: raw text to Program.
func (e *Engine) Compile(raw string) (Program, error) {
	tokens, err := e.Tokenize(raw)
	if err != nil {
		return nil, err
	}
	return e.Parse(tokens)
}
