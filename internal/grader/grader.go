package grader

import (
	"context"
	"fmt"

	"github.com/bvarga/petralog/internal/assignment"
	"github.com/bvarga/petralog/internal/llm"
	"github.com/bvarga/petralog/internal/logic"
)

// Grader scores answers for all question kinds. The provider may be nil,
// in which case free-text answers are graded by the offline heuristic.
type Grader struct {
	engine   *logic.Engine
	provider llm.Provider
}

// New creates a Grader.
func New(engine *logic.Engine, provider llm.Provider) *Grader {
	return &Grader{engine: engine, provider: provider}
}

// Grade dispatches on the question kind. An error return signals a
// problem with the question or the infrastructure; a wrong answer is a
// zero-score Result, not an error.
func (g *Grader) Grade(ctx context.Context, q assignment.Question, answer string) (Result, error) {
	switch q.Kind {
	case assignment.KindFormula:
		return g.gradeFormula(q, answer)
	case assignment.KindTruthTable:
		return g.gradeTruthValue(q, answer)
	case assignment.KindFreeText:
		return g.gradeFreeText(ctx, q, answer)
	default:
		return Result{}, fmt.Errorf("unknown question kind %q", q.Kind)
	}
}
