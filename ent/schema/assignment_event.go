package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AssignmentEvent records the generation of a personalized question set,
// so a set can be regenerated and regraded from its seed later.
type AssignmentEvent struct {
	ent.Schema
}

func (AssignmentEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AssignmentEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("set_id").
			NotEmpty().
			Comment("UUID of the generated set"),
		field.String("student_name").
			NotEmpty(),
		field.String("student_code").
			NotEmpty().
			Comment("University registration code"),
		field.String("language").
			NotEmpty().
			Comment("en or hu"),
		field.Int64("seed").
			Comment("RNG seed the set was built from"),
		field.Int("question_count"),
	}
}

func (AssignmentEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("set_id"),
		index.Fields("student_code"),
	}
}
