// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bvarga/petralog/ent/assignmentevent"
	"github.com/bvarga/petralog/ent/predicate"
)

// AssignmentEventUpdate is the builder for updating AssignmentEvent entities.
type AssignmentEventUpdate struct {
	config
	hooks    []Hook
	mutation *AssignmentEventMutation
}

// Where appends a list predicates to the AssignmentEventUpdate builder.
func (_u *AssignmentEventUpdate) Where(ps ...predicate.AssignmentEvent) *AssignmentEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSetID sets the "set_id" field.
func (_u *AssignmentEventUpdate) SetSetID(v string) *AssignmentEventUpdate {
	_u.mutation.SetSetID(v)
	return _u
}

// SetNillableSetID sets the "set_id" field if the given value is not nil.
func (_u *AssignmentEventUpdate) SetNillableSetID(v *string) *AssignmentEventUpdate {
	if v != nil {
		_u.SetSetID(*v)
	}
	return _u
}

// SetStudentName sets the "student_name" field.
func (_u *AssignmentEventUpdate) SetStudentName(v string) *AssignmentEventUpdate {
	_u.mutation.SetStudentName(v)
	return _u
}

// SetNillableStudentName sets the "student_name" field if the given value is not nil.
func (_u *AssignmentEventUpdate) SetNillableStudentName(v *string) *AssignmentEventUpdate {
	if v != nil {
		_u.SetStudentName(*v)
	}
	return _u
}

// SetStudentCode sets the "student_code" field.
func (_u *AssignmentEventUpdate) SetStudentCode(v string) *AssignmentEventUpdate {
	_u.mutation.SetStudentCode(v)
	return _u
}

// SetNillableStudentCode sets the "student_code" field if the given value is not nil.
func (_u *AssignmentEventUpdate) SetNillableStudentCode(v *string) *AssignmentEventUpdate {
	if v != nil {
		_u.SetStudentCode(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *AssignmentEventUpdate) SetLanguage(v string) *AssignmentEventUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *AssignmentEventUpdate) SetNillableLanguage(v *string) *AssignmentEventUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetSeed sets the "seed" field.
func (_u *AssignmentEventUpdate) SetSeed(v int64) *AssignmentEventUpdate {
	_u.mutation.ResetSeed()
	_u.mutation.SetSeed(v)
	return _u
}

// SetNillableSeed sets the "seed" field if the given value is not nil.
func (_u *AssignmentEventUpdate) SetNillableSeed(v *int64) *AssignmentEventUpdate {
	if v != nil {
		_u.SetSeed(*v)
	}
	return _u
}

// AddSeed adds value to the "seed" field.
func (_u *AssignmentEventUpdate) AddSeed(v int64) *AssignmentEventUpdate {
	_u.mutation.AddSeed(v)
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *AssignmentEventUpdate) SetQuestionCount(v int) *AssignmentEventUpdate {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *AssignmentEventUpdate) SetNillableQuestionCount(v *int) *AssignmentEventUpdate {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *AssignmentEventUpdate) AddQuestionCount(v int) *AssignmentEventUpdate {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// Mutation returns the AssignmentEventMutation object of the builder.
func (_u *AssignmentEventUpdate) Mutation() *AssignmentEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssignmentEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssignmentEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssignmentEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssignmentEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssignmentEventUpdate) check() error {
	if v, ok := _u.mutation.SetID(); ok {
		if err := assignmentevent.SetIDValidator(v); err != nil {
			return &ValidationError{Name: "set_id", err: fmt.Errorf(`ent: validator failed for field "AssignmentEvent.set_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StudentName(); ok {
		if err := assignmentevent.StudentNameValidator(v); err != nil {
			return &ValidationError{Name: "student_name", err: fmt.Errorf(`ent: validator failed for field "AssignmentEvent.student_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StudentCode(); ok {
		if err := assignmentevent.StudentCodeValidator(v); err != nil {
			return &ValidationError{Name: "student_code", err: fmt.Errorf(`ent: validator failed for field "AssignmentEvent.student_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Language(); ok {
		if err := assignmentevent.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "AssignmentEvent.language": %w`, err)}
		}
	}
	return nil
}

func (_u *AssignmentEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assignmentevent.Table, assignmentevent.Columns, sqlgraph.NewFieldSpec(assignmentevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SetID(); ok {
		_spec.SetField(assignmentevent.FieldSetID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentName(); ok {
		_spec.SetField(assignmentevent.FieldStudentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentCode(); ok {
		_spec.SetField(assignmentevent.FieldStudentCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(assignmentevent.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Seed(); ok {
		_spec.SetField(assignmentevent.FieldSeed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSeed(); ok {
		_spec.AddField(assignmentevent.FieldSeed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(assignmentevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(assignmentevent.FieldQuestionCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assignmentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssignmentEventUpdateOne is the builder for updating a single AssignmentEvent entity.
type AssignmentEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssignmentEventMutation
}

// SetSetID sets the "set_id" field.
func (_u *AssignmentEventUpdateOne) SetSetID(v string) *AssignmentEventUpdateOne {
	_u.mutation.SetSetID(v)
	return _u
}

// SetNillableSetID sets the "set_id" field if the given value is not nil.
func (_u *AssignmentEventUpdateOne) SetNillableSetID(v *string) *AssignmentEventUpdateOne {
	if v != nil {
		_u.SetSetID(*v)
	}
	return _u
}

// SetStudentName sets the "student_name" field.
func (_u *AssignmentEventUpdateOne) SetStudentName(v string) *AssignmentEventUpdateOne {
	_u.mutation.SetStudentName(v)
	return _u
}

// SetNillableStudentName sets the "student_name" field if the given value is not nil.
func (_u *AssignmentEventUpdateOne) SetNillableStudentName(v *string) *AssignmentEventUpdateOne {
	if v != nil {
		_u.SetStudentName(*v)
	}
	return _u
}

// SetStudentCode sets the "student_code" field.
func (_u *AssignmentEventUpdateOne) SetStudentCode(v string) *AssignmentEventUpdateOne {
	_u.mutation.SetStudentCode(v)
	return _u
}

// SetNillableStudentCode sets the "student_code" field if the given value is not nil.
func (_u *AssignmentEventUpdateOne) SetNillableStudentCode(v *string) *AssignmentEventUpdateOne {
	if v != nil {
		_u.SetStudentCode(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *AssignmentEventUpdateOne) SetLanguage(v string) *AssignmentEventUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *AssignmentEventUpdateOne) SetNillableLanguage(v *string) *AssignmentEventUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetSeed sets the "seed" field.
func (_u *AssignmentEventUpdateOne) SetSeed(v int64) *AssignmentEventUpdateOne {
	_u.mutation.ResetSeed()
	_u.mutation.SetSeed(v)
	return _u
}

// SetNillableSeed sets the "seed" field if the given value is not nil.
func (_u *AssignmentEventUpdateOne) SetNillableSeed(v *int64) *AssignmentEventUpdateOne {
	if v != nil {
		_u.SetSeed(*v)
	}
	return _u
}

// AddSeed adds value to the "seed" field.
func (_u *AssignmentEventUpdateOne) AddSeed(v int64) *AssignmentEventUpdateOne {
	_u.mutation.AddSeed(v)
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *AssignmentEventUpdateOne) SetQuestionCount(v int) *AssignmentEventUpdateOne {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *AssignmentEventUpdateOne) SetNillableQuestionCount(v *int) *AssignmentEventUpdateOne {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *AssignmentEventUpdateOne) AddQuestionCount(v int) *AssignmentEventUpdateOne {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// Mutation returns the AssignmentEventMutation object of the builder.
func (_u *AssignmentEventUpdateOne) Mutation() *AssignmentEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssignmentEventUpdate builder.
func (_u *AssignmentEventUpdateOne) Where(ps ...predicate.AssignmentEvent) *AssignmentEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssignmentEventUpdateOne) Select(field string, fields ...string) *AssignmentEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AssignmentEvent entity.
func (_u *AssignmentEventUpdateOne) Save(ctx context.Context) (*AssignmentEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssignmentEventUpdateOne) SaveX(ctx context.Context) *AssignmentEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssignmentEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssignmentEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssignmentEventUpdateOne) check() error {
	if v, ok := _u.mutation.SetID(); ok {
		if err := assignmentevent.SetIDValidator(v); err != nil {
			return &ValidationError{Name: "set_id", err: fmt.Errorf(`ent: validator failed for field "AssignmentEvent.set_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StudentName(); ok {
		if err := assignmentevent.StudentNameValidator(v); err != nil {
			return &ValidationError{Name: "student_name", err: fmt.Errorf(`ent: validator failed for field "AssignmentEvent.student_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StudentCode(); ok {
		if err := assignmentevent.StudentCodeValidator(v); err != nil {
			return &ValidationError{Name: "student_code", err: fmt.Errorf(`ent: validator failed for field "AssignmentEvent.student_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Language(); ok {
		if err := assignmentevent.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "AssignmentEvent.language": %w`, err)}
		}
	}
	return nil
}

func (_u *AssignmentEventUpdateOne) sqlSave(ctx context.Context) (_node *AssignmentEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assignmentevent.Table, assignmentevent.Columns, sqlgraph.NewFieldSpec(assignmentevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AssignmentEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assignmentevent.FieldID)
		for _, f := range fields {
			if !assignmentevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assignmentevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SetID(); ok {
		_spec.SetField(assignmentevent.FieldSetID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentName(); ok {
		_spec.SetField(assignmentevent.FieldStudentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentCode(); ok {
		_spec.SetField(assignmentevent.FieldStudentCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(assignmentevent.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Seed(); ok {
		_spec.SetField(assignmentevent.FieldSeed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSeed(); ok {
		_spec.AddField(assignmentevent.FieldSeed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(assignmentevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(assignmentevent.FieldQuestionCount, field.TypeInt, value)
	}
	_node = &AssignmentEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assignmentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
