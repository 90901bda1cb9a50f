// Code generated by ent, DO NOT EDIT.

package assignmentevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/bvarga/petralog/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SetID applies equality check predicate on the "set_id" field. It's identical to SetIDEQ.
func SetID(v string) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldEQ(FieldSetID, v))
}

// StudentName applies equality check predicate on the "student_name" field. It's identical to StudentNameEQ.
func StudentName(v string) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldEQ(FieldStudentName, v))
}

// StudentCode applies equality check predicate on the "student_code" field. It's identical to StudentCodeEQ.
func StudentCode(v string) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldEQ(FieldStudentCode, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldEQ(FieldLanguage, v))
}

// Seed applies equality check predicate on the "seed" field. It's identical to SeedEQ.
func Seed(v int64) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldEQ(FieldSeed, v))
}

// QuestionCount applies equality check predicate on the "question_count" field. It's identical to QuestionCountEQ.
func QuestionCount(v int) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldEQ(FieldQuestionCount, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SetIDEQ applies the EQ predicate on the "set_id" field.
func SetIDEQ(v string) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldEQ(FieldSetID, v))
}

// SetIDNEQ applies the NEQ predicate on the "set_id" field.
func SetIDNEQ(v string) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldNEQ(FieldSetID, v))
}

// SetIDIn applies the In predicate on the "set_id" field.
func SetIDIn(vs ...string) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldIn(FieldSetID, vs...))
}

// SetIDNotIn applies the NotIn predicate on the "set_id" field.
func SetIDNotIn(vs ...string) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldNotIn(FieldSetID, vs...))
}

// SetIDGT applies the GT predicate on the "set_id" field.
func SetIDGT(v string) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldGT(FieldSetID, v))
}

// SetIDGTE applies the GTE predicate on the "set_id" field.
func SetIDGTE(v string) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldGTE(FieldSetID, v))
}

// SetIDLT applies the LT predicate on the "set_id" field.
func SetIDLT(v string) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldLT(FieldSetID, v))
}

// SetIDLTE applies the LTE predicate on the "set_id" field.
func SetIDLTE(v string) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldLTE(FieldSetID, v))
}

// SetIDContains applies the Contains predicate on the "set_id" field.
func SetIDContains(v string) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldContains(FieldSetID, v))
}

// SetIDHasPrefix applies the HasPrefix predicate on the "set_id" field.
func SetIDHasPrefix(v string) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldHasPrefix(FieldSetID, v))
}

// SetIDHasSuffix applies the HasSuffix predicate on the "set_id" field.
func SetIDHasSuffix(v string) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldHasSuffix(FieldSetID, v))
}

// SetIDEqualFold applies the EqualFold predicate on the "set_id" field.
func SetIDEqualFold(v string) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldEqualFold(FieldSetID, v))
}

// SetIDContainsFold applies the ContainsFold predicate on the "set_id" field.
func SetIDContainsFold(v string) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldContainsFold(FieldSetID, v))
}

// StudentNameEQ applies the EQ predicate on the "student_name" field.
func StudentNameEQ(v string) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldEQ(FieldStudentName, v))
}

// StudentNameNEQ applies the NEQ predicate on the "student_name" field.
func StudentNameNEQ(v string) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldNEQ(FieldStudentName, v))
}

// StudentNameIn applies the In predicate on the "student_name" field.
func StudentNameIn(vs ...string) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldIn(FieldStudentName, vs...))
}

// StudentNameNotIn applies the NotIn predicate on the "student_name" field.
func StudentNameNotIn(vs ...string) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldNotIn(FieldStudentName, vs...))
}

// StudentNameGT applies the GT predicate on the "student_name" field.
func StudentNameGT(v string) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldGT(FieldStudentName, v))
}

// StudentNameGTE applies the GTE predicate on the "student_name" field.
func StudentNameGTE(v string) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldGTE(FieldStudentName, v))
}

// StudentNameLT applies the LT predicate on the "student_name" field.
func StudentNameLT(v string) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldLT(FieldStudentName, v))
}

// StudentNameLTE applies the LTE predicate on the "student_name" field.
func StudentNameLTE(v string) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldLTE(FieldStudentName, v))
}

// StudentNameContains applies the Contains predicate on the "student_name" field.
func StudentNameContains(v string) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldContains(FieldStudentName, v))
}

// StudentNameHasPrefix applies the HasPrefix predicate on the "student_name" field.
func StudentNameHasPrefix(v string) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldHasPrefix(FieldStudentName, v))
}

// StudentNameHasSuffix applies the HasSuffix predicate on the "student_name" field.
func StudentNameHasSuffix(v string) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldHasSuffix(FieldStudentName, v))
}

// StudentNameEqualFold applies the EqualFold predicate on the "student_name" field.
func StudentNameEqualFold(v string) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldEqualFold(FieldStudentName, v))
}

// StudentNameContainsFold applies the ContainsFold predicate on the "student_name" field.
func StudentNameContainsFold(v string) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldContainsFold(FieldStudentName, v))
}

// StudentCodeEQ applies the EQ predicate on the "student_code" field.
func StudentCodeEQ(v string) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldEQ(FieldStudentCode, v))
}

// StudentCodeNEQ applies the NEQ predicate on the "student_code" field.
func StudentCodeNEQ(v string) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldNEQ(FieldStudentCode, v))
}

// StudentCodeIn applies the In predicate on the "student_code" field.
func StudentCodeIn(vs ...string) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldIn(FieldStudentCode, vs...))
}

// StudentCodeNotIn applies the NotIn predicate on the "student_code" field.
func StudentCodeNotIn(vs ...string) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldNotIn(FieldStudentCode, vs...))
}

// StudentCodeGT applies the GT predicate on the "student_code" field.
func StudentCodeGT(v string) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldGT(FieldStudentCode, v))
}

// StudentCodeGTE applies the GTE predicate on the "student_code" field.
func StudentCodeGTE(v string) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldGTE(FieldStudentCode, v))
}

// StudentCodeLT applies the LT predicate on the "student_code" field.
func StudentCodeLT(v string) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldLT(FieldStudentCode, v))
}

// StudentCodeLTE applies the LTE predicate on the "student_code" field.
func StudentCodeLTE(v string) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldLTE(FieldStudentCode, v))
}

// StudentCodeContains applies the Contains predicate on the "student_code" field.
func StudentCodeContains(v string) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldContains(FieldStudentCode, v))
}

// StudentCodeHasPrefix applies the HasPrefix predicate on the "student_code" field.
func StudentCodeHasPrefix(v string) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldHasPrefix(FieldStudentCode, v))
}

// StudentCodeHasSuffix applies the HasSuffix predicate on the "student_code" field.
func StudentCodeHasSuffix(v string) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldHasSuffix(FieldStudentCode, v))
}

// StudentCodeEqualFold applies the EqualFold predicate on the "student_code" field.
func StudentCodeEqualFold(v string) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldEqualFold(FieldStudentCode, v))
}

// StudentCodeContainsFold applies the ContainsFold predicate on the "student_code" field.
func StudentCodeContainsFold(v string) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldContainsFold(FieldStudentCode, v))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldContainsFold(FieldLanguage, v))
}

// SeedEQ applies the EQ predicate on the "seed" field.
func SeedEQ(v int64) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldEQ(FieldSeed, v))
}

// SeedNEQ applies the NEQ predicate on the "seed" field.
func SeedNEQ(v int64) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldNEQ(FieldSeed, v))
}

// SeedIn applies the In predicate on the "seed" field.
func SeedIn(vs ...int64) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldIn(FieldSeed, vs...))
}

// SeedNotIn applies the NotIn predicate on the "seed" field.
func SeedNotIn(vs ...int64) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldNotIn(FieldSeed, vs...))
}

// SeedGT applies the GT predicate on the "seed" field.
func SeedGT(v int64) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldGT(FieldSeed, v))
}

// SeedGTE applies the GTE predicate on the "seed" field.
func SeedGTE(v int64) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldGTE(FieldSeed, v))
}

// SeedLT applies the LT predicate on the "seed" field.
func SeedLT(v int64) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldLT(FieldSeed, v))
}

// SeedLTE applies the LTE predicate on the "seed" field.
func SeedLTE(v int64) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldLTE(FieldSeed, v))
}

// QuestionCountEQ applies the EQ predicate on the "question_count" field.
func QuestionCountEQ(v int) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldEQ(FieldQuestionCount, v))
}

// QuestionCountNEQ applies the NEQ predicate on the "question_count" field.
func QuestionCountNEQ(v int) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldNEQ(FieldQuestionCount, v))
}

// QuestionCountIn applies the In predicate on the "question_count" field.
func QuestionCountIn(vs ...int) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldIn(FieldQuestionCount, vs...))
}

// QuestionCountNotIn applies the NotIn predicate on the "question_count" field.
func QuestionCountNotIn(vs ...int) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldNotIn(FieldQuestionCount, vs...))
}

// QuestionCountGT applies the GT predicate on the "question_count" field.
func QuestionCountGT(v int) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldGT(FieldQuestionCount, v))
}

// QuestionCountGTE applies the GTE predicate on the "question_count" field.
func QuestionCountGTE(v int) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldGTE(FieldQuestionCount, v))
}

// QuestionCountLT applies the LT predicate on the "question_count" field.
func QuestionCountLT(v int) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldLT(FieldQuestionCount, v))
}

// QuestionCountLTE applies the LTE predicate on the "question_count" field.
func QuestionCountLTE(v int) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.FieldLTE(FieldQuestionCount, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AssignmentEvent) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AssignmentEvent) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AssignmentEvent) predicate.AssignmentEvent {
	return predicate.AssignmentEvent(sql.NotPredicates(p))
}
