// Package assignment generates per-student question sets. Generation is
// deterministic for a given student and date, so a set can be regenerated
// for grading without storing the questions themselves.
package assignment

import "github.com/bvarga/petralog/internal/phrase"

// Kind classifies how a question is answered and graded.
type Kind string

const (
	// KindFormula expects a formula, graded by logical equivalence.
	KindFormula Kind = "formula"

	// KindTruthTable expects a single truth value, T or F.
	KindTruthTable Kind = "truthtable"

	// KindFreeText expects a short written explanation.
	KindFreeText Kind = "freetext"
)

// Question is one item in a generated set.
type Question struct {
	ID       string
	Kind     Kind
	PromptEN string
	PromptHU string

	// Expected is the reference answer. For KindFormula it is a formula
	// in canonical symbols; any logically equivalent answer earns full
	// credit. For KindTruthTable it is "T" or "F".
	Expected string

	// Keywords guide offline free-text grading. Empty for other kinds.
	Keywords []string

	// ModelAnswer is a sample full-credit answer for free-text questions,
	// shown to the LLM grader as a rubric anchor.
	ModelAnswer string

	MaxScore int
}

// Prompt returns the prompt in the given language.
func (q Question) Prompt(lang phrase.Lang) string {
	if lang == phrase.LangHU {
		return q.PromptHU
	}
	return q.PromptEN
}

// Set is a generated assignment for one student.
type Set struct {
	ID          string
	StudentName string
	StudentCode string
	Language    phrase.Lang
	Date        string // YYYY-MM-DD
	Seed        int64
	Questions   []Question
}

// MaxScore returns the total points available in the set.
func (s *Set) MaxScore() int {
	total := 0
	for _, q := range s.Questions {
		total += q.MaxScore
	}
	return total
}
