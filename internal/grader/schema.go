package grader

import "github.com/bvarga/petralog/internal/llm"

// freeTextGradeSchema constrains the LLM grading verdict.
func freeTextGradeSchema(maxScore int) *llm.Schema {
	return &llm.Schema{
		Name:        "free-text-grade",
		Description: "Grading verdict for a free-text logic answer",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"score": map[string]any{
					"type":        "integer",
					"minimum":     0,
					"maximum":     maxScore,
					"description": "Points earned",
				},
				"feedback_en": map[string]any{
					"type":        "string",
					"description": "One or two sentences of feedback in English",
				},
				"feedback_hu": map[string]any{
					"type":        "string",
					"description": "The same feedback in Hungarian",
				},
			},
			"required":             []any{"score", "feedback_en", "feedback_hu"},
			"additionalProperties": false,
		},
	}
}
