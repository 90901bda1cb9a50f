// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bvarga/petralog/ent/assignmentevent"
)

// AssignmentEventCreate is the builder for creating a AssignmentEvent entity.
type AssignmentEventCreate struct {
	config
	mutation *AssignmentEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AssignmentEventCreate) SetSequence(v int64) *AssignmentEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AssignmentEventCreate) SetTimestamp(v time.Time) *AssignmentEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AssignmentEventCreate) SetNillableTimestamp(v *time.Time) *AssignmentEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSetID sets the "set_id" field.
func (_c *AssignmentEventCreate) SetSetID(v string) *AssignmentEventCreate {
	_c.mutation.SetSetID(v)
	return _c
}

// SetStudentName sets the "student_name" field.
func (_c *AssignmentEventCreate) SetStudentName(v string) *AssignmentEventCreate {
	_c.mutation.SetStudentName(v)
	return _c
}

// SetStudentCode sets the "student_code" field.
func (_c *AssignmentEventCreate) SetStudentCode(v string) *AssignmentEventCreate {
	_c.mutation.SetStudentCode(v)
	return _c
}

// SetLanguage sets the "language" field.
func (_c *AssignmentEventCreate) SetLanguage(v string) *AssignmentEventCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetSeed sets the "seed" field.
func (_c *AssignmentEventCreate) SetSeed(v int64) *AssignmentEventCreate {
	_c.mutation.SetSeed(v)
	return _c
}

// SetQuestionCount sets the "question_count" field.
func (_c *AssignmentEventCreate) SetQuestionCount(v int) *AssignmentEventCreate {
	_c.mutation.SetQuestionCount(v)
	return _c
}

// Mutation returns the AssignmentEventMutation object of the builder.
func (_c *AssignmentEventCreate) Mutation() *AssignmentEventMutation {
	return _c.mutation
}

// Save creates the AssignmentEvent in the database.
func (_c *AssignmentEventCreate) Save(ctx context.Context) (*AssignmentEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssignmentEventCreate) SaveX(ctx context.Context) *AssignmentEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssignmentEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssignmentEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssignmentEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := assignmentevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssignmentEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AssignmentEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AssignmentEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SetID(); !ok {
		return &ValidationError{Name: "set_id", err: errors.New(`ent: missing required field "AssignmentEvent.set_id"`)}
	}
	if v, ok := _c.mutation.SetID(); ok {
		if err := assignmentevent.SetIDValidator(v); err != nil {
			return &ValidationError{Name: "set_id", err: fmt.Errorf(`ent: validator failed for field "AssignmentEvent.set_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StudentName(); !ok {
		return &ValidationError{Name: "student_name", err: errors.New(`ent: missing required field "AssignmentEvent.student_name"`)}
	}
	if v, ok := _c.mutation.StudentName(); ok {
		if err := assignmentevent.StudentNameValidator(v); err != nil {
			return &ValidationError{Name: "student_name", err: fmt.Errorf(`ent: validator failed for field "AssignmentEvent.student_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StudentCode(); !ok {
		return &ValidationError{Name: "student_code", err: errors.New(`ent: missing required field "AssignmentEvent.student_code"`)}
	}
	if v, ok := _c.mutation.StudentCode(); ok {
		if err := assignmentevent.StudentCodeValidator(v); err != nil {
			return &ValidationError{Name: "student_code", err: fmt.Errorf(`ent: validator failed for field "AssignmentEvent.student_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "AssignmentEvent.language"`)}
	}
	if v, ok := _c.mutation.Language(); ok {
		if err := assignmentevent.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "AssignmentEvent.language": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Seed(); !ok {
		return &ValidationError{Name: "seed", err: errors.New(`ent: missing required field "AssignmentEvent.seed"`)}
	}
	if _, ok := _c.mutation.QuestionCount(); !ok {
		return &ValidationError{Name: "question_count", err: errors.New(`ent: missing required field "AssignmentEvent.question_count"`)}
	}
	return nil
}

func (_c *AssignmentEventCreate) sqlSave(ctx context.Context) (*AssignmentEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AssignmentEventCreate) createSpec() (*AssignmentEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AssignmentEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assignmentevent.Table, sqlgraph.NewFieldSpec(assignmentevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(assignmentevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(assignmentevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SetID(); ok {
		_spec.SetField(assignmentevent.FieldSetID, field.TypeString, value)
		_node.SetID = value
	}
	if value, ok := _c.mutation.StudentName(); ok {
		_spec.SetField(assignmentevent.FieldStudentName, field.TypeString, value)
		_node.StudentName = value
	}
	if value, ok := _c.mutation.StudentCode(); ok {
		_spec.SetField(assignmentevent.FieldStudentCode, field.TypeString, value)
		_node.StudentCode = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(assignmentevent.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.Seed(); ok {
		_spec.SetField(assignmentevent.FieldSeed, field.TypeInt64, value)
		_node.Seed = value
	}
	if value, ok := _c.mutation.QuestionCount(); ok {
		_spec.SetField(assignmentevent.FieldQuestionCount, field.TypeInt, value)
		_node.QuestionCount = value
	}
	return _node, _spec
}

// AssignmentEventCreateBulk is the builder for creating many AssignmentEvent entities in bulk.
type AssignmentEventCreateBulk struct {
	config
	err      error
	builders []*AssignmentEventCreate
}

// Save creates the AssignmentEvent entities in the database.
func (_c *AssignmentEventCreateBulk) Save(ctx context.Context) ([]*AssignmentEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AssignmentEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssignmentEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AssignmentEventCreateBulk) SaveX(ctx context.Context) []*AssignmentEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssignmentEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssignmentEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
