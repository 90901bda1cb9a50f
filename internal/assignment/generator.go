package assignment

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/bvarga/petralog/internal/logic"
	"github.com/bvarga/petralog/internal/phrase"
)

// Params describes the set to generate.
type Params struct {
	Name     string
	Code     string
	Language phrase.Lang
	Count    int
	Date     time.Time
}

// DefaultQuestionCount is used when Params.Count is zero.
const DefaultQuestionCount = 5

// Generator builds assignment sets from the question templates.
type Generator struct {
	engine *logic.Engine
}

// NewGenerator creates a Generator backed by the given engine.
func NewGenerator(engine *logic.Engine) *Generator {
	return &Generator{engine: engine}
}

type builder func(g *Generator, rng *rand.Rand, id string) (Question, error)

// builderCycle fixes the kind mix of a set. The cycle repeats for larger
// sets, so every 5 questions cover symbolization, both rewrites, a
// truth-table row and a free-text explanation.
var builderCycle = []builder{
	(*Generator).buildSymbolize,
	(*Generator).buildDeMorgan,
	(*Generator).buildImplicationRewrite,
	(*Generator).buildTruthTableRow,
	(*Generator).buildFreeText,
}

// Generate builds the question set for the given student and date.
// The questions are a pure function of (name, code, date); only the set
// ID is fresh on each call.
func (g *Generator) Generate(p Params) (*Set, error) {
	if p.Name == "" || p.Code == "" {
		return nil, fmt.Errorf("student name and code are required")
	}
	if p.Language == "" {
		p.Language = phrase.LangEN
	}
	count := p.Count
	if count <= 0 {
		count = DefaultQuestionCount
	}

	seed := Seed(p.Name, p.Code, p.Date)
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))

	set := &Set{
		ID:          uuid.NewString(),
		StudentName: p.Name,
		StudentCode: p.Code,
		Language:    p.Language,
		Date:        p.Date.Format("2006-01-02"),
		Seed:        seed,
		Questions:   make([]Question, 0, count),
	}

	for i := range count {
		build := builderCycle[i%len(builderCycle)]
		id := fmt.Sprintf("q%02d", i+1)

		q, err := build(g, rng, id)
		if err != nil {
			return nil, fmt.Errorf("generate question %s: %w", id, err)
		}
		set.Questions = append(set.Questions, q)
	}

	return set, nil
}
