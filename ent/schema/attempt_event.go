package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records one graded answer, from the quiz screen or the
// assignment grader.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping attempts in one sitting"),
		field.String("question_id").
			NotEmpty().
			Comment("Question identifier within its set, e.g. Q03"),
		field.String("kind").
			NotEmpty().
			Comment("formula, truthtable or freetext"),
		field.String("prompt").
			NotEmpty().
			Comment("The question shown to the student"),
		field.String("answer").
			Default("").
			Comment("The student's raw answer text"),
		field.Int("score").
			Comment("Points awarded"),
		field.Int("max_score").
			Comment("Points available"),
		field.Bool("correct").
			Comment("Whether full credit was awarded"),
		field.String("feedback").
			Default("").
			Comment("Feedback shown to the student"),
		field.Int("time_ms").
			Default(0).
			Comment("Milliseconds from display to submission, 0 if unknown"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("kind"),
		index.Fields("correct"),
	}
}
