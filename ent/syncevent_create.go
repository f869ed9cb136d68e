// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/prepdeck/prepdeck/ent/syncevent"
)

// SyncEventCreate is the builder for creating a SyncEvent entity.
type SyncEventCreate struct {
	config
	mutation *SyncEventMutation
	hooks    []Hook
}

// SetRequestID sets the "request_id" field.
func (_c *SyncEventCreate) SetRequestID(v string) *SyncEventCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetCourseID sets the "course_id" field.
func (_c *SyncEventCreate) SetCourseID(v int) *SyncEventCreate {
	_c.mutation.SetCourseID(v)
	return _c
}

// SetSurface sets the "surface" field.
func (_c *SyncEventCreate) SetSurface(v string) *SyncEventCreate {
	_c.mutation.SetSurface(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *SyncEventCreate) SetQuestionID(v int) *SyncEventCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *SyncEventCreate) SetAction(v string) *SyncEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetSelectedOption sets the "selected_option" field.
func (_c *SyncEventCreate) SetSelectedOption(v int) *SyncEventCreate {
	_c.mutation.SetSelectedOption(v)
	return _c
}

// SetNillableSelectedOption sets the "selected_option" field if the given value is not nil.
func (_c *SyncEventCreate) SetNillableSelectedOption(v *int) *SyncEventCreate {
	if v != nil {
		_c.SetSelectedOption(*v)
	}
	return _c
}

// SetFlagged sets the "flagged" field.
func (_c *SyncEventCreate) SetFlagged(v bool) *SyncEventCreate {
	_c.mutation.SetFlagged(v)
	return _c
}

// SetNillableFlagged sets the "flagged" field if the given value is not nil.
func (_c *SyncEventCreate) SetNillableFlagged(v *bool) *SyncEventCreate {
	if v != nil {
		_c.SetFlagged(*v)
	}
	return _c
}

// SetOk sets the "ok" field.
func (_c *SyncEventCreate) SetOk(v bool) *SyncEventCreate {
	_c.mutation.SetOk(v)
	return _c
}

// SetError sets the "error" field.
func (_c *SyncEventCreate) SetError(v string) *SyncEventCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *SyncEventCreate) SetNillableError(v *string) *SyncEventCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *SyncEventCreate) SetTimestamp(v time.Time) *SyncEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *SyncEventCreate) SetNillableTimestamp(v *time.Time) *SyncEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// Mutation returns the SyncEventMutation object of the builder.
func (_c *SyncEventCreate) Mutation() *SyncEventMutation {
	return _c.mutation
}

// Save creates the SyncEvent in the database.
func (_c *SyncEventCreate) Save(ctx context.Context) (*SyncEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SyncEventCreate) SaveX(ctx context.Context) *SyncEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SyncEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SyncEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SyncEventCreate) defaults() {
	if _, ok := _c.mutation.SelectedOption(); !ok {
		v := syncevent.DefaultSelectedOption
		_c.mutation.SetSelectedOption(v)
	}
	if _, ok := _c.mutation.Flagged(); !ok {
		v := syncevent.DefaultFlagged
		_c.mutation.SetFlagged(v)
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := syncevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SyncEventCreate) check() error {
	if _, ok := _c.mutation.RequestID(); !ok {
		return &ValidationError{Name: "request_id", err: errors.New(`ent: missing required field "SyncEvent.request_id"`)}
	}
	if v, ok := _c.mutation.RequestID(); ok {
		if err := syncevent.RequestIDValidator(v); err != nil {
			return &ValidationError{Name: "request_id", err: fmt.Errorf(`ent: validator failed for field "SyncEvent.request_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CourseID(); !ok {
		return &ValidationError{Name: "course_id", err: errors.New(`ent: missing required field "SyncEvent.course_id"`)}
	}
	if _, ok := _c.mutation.Surface(); !ok {
		return &ValidationError{Name: "surface", err: errors.New(`ent: missing required field "SyncEvent.surface"`)}
	}
	if v, ok := _c.mutation.Surface(); ok {
		if err := syncevent.SurfaceValidator(v); err != nil {
			return &ValidationError{Name: "surface", err: fmt.Errorf(`ent: validator failed for field "SyncEvent.surface": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "SyncEvent.question_id"`)}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "SyncEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := syncevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SyncEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SelectedOption(); !ok {
		return &ValidationError{Name: "selected_option", err: errors.New(`ent: missing required field "SyncEvent.selected_option"`)}
	}
	if _, ok := _c.mutation.Flagged(); !ok {
		return &ValidationError{Name: "flagged", err: errors.New(`ent: missing required field "SyncEvent.flagged"`)}
	}
	if _, ok := _c.mutation.Ok(); !ok {
		return &ValidationError{Name: "ok", err: errors.New(`ent: missing required field "SyncEvent.ok"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "SyncEvent.timestamp"`)}
	}
	return nil
}

func (_c *SyncEventCreate) sqlSave(ctx context.Context) (*SyncEvent, error) {
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

func (_c *SyncEventCreate) createSpec() (*SyncEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &SyncEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(syncevent.Table, sqlgraph.NewFieldSpec(syncevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.RequestID(); ok {
		_spec.SetField(syncevent.FieldRequestID, field.TypeString, value)
		_node.RequestID = value
	}
	if value, ok := _c.mutation.CourseID(); ok {
		_spec.SetField(syncevent.FieldCourseID, field.TypeInt, value)
		_node.CourseID = value
	}
	if value, ok := _c.mutation.Surface(); ok {
		_spec.SetField(syncevent.FieldSurface, field.TypeString, value)
		_node.Surface = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(syncevent.FieldQuestionID, field.TypeInt, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(syncevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.SelectedOption(); ok {
		_spec.SetField(syncevent.FieldSelectedOption, field.TypeInt, value)
		_node.SelectedOption = value
	}
	if value, ok := _c.mutation.Flagged(); ok {
		_spec.SetField(syncevent.FieldFlagged, field.TypeBool, value)
		_node.Flagged = value
	}
	if value, ok := _c.mutation.Ok(); ok {
		_spec.SetField(syncevent.FieldOk, field.TypeBool, value)
		_node.Ok = value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(syncevent.FieldError, field.TypeString, value)
		_node.Error = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(syncevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	return _node, _spec
}

// SyncEventCreateBulk is the builder for creating many SyncEvent entities in bulk.
type SyncEventCreateBulk struct {
	config
	err      error
	builders []*SyncEventCreate
}

// Save creates the SyncEvent entities in the database.
func (_c *SyncEventCreateBulk) Save(ctx context.Context) ([]*SyncEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SyncEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SyncEventMutation)
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
func (_c *SyncEventCreateBulk) SaveX(ctx context.Context) []*SyncEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SyncEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SyncEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
