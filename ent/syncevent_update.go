// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/prepdeck/prepdeck/ent/predicate"
	"github.com/prepdeck/prepdeck/ent/syncevent"
)

// SyncEventUpdate is the builder for updating SyncEvent entities.
type SyncEventUpdate struct {
	config
	hooks    []Hook
	mutation *SyncEventMutation
}

// Where appends a list predicates to the SyncEventUpdate builder.
func (_u *SyncEventUpdate) Where(ps ...predicate.SyncEvent) *SyncEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRequestID sets the "request_id" field.
func (_u *SyncEventUpdate) SetRequestID(v string) *SyncEventUpdate {
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *SyncEventUpdate) SetNillableRequestID(v *string) *SyncEventUpdate {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *SyncEventUpdate) SetCourseID(v int) *SyncEventUpdate {
	_u.mutation.ResetCourseID()
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *SyncEventUpdate) SetNillableCourseID(v *int) *SyncEventUpdate {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// AddCourseID adds value to the "course_id" field.
func (_u *SyncEventUpdate) AddCourseID(v int) *SyncEventUpdate {
	_u.mutation.AddCourseID(v)
	return _u
}

// SetSurface sets the "surface" field.
func (_u *SyncEventUpdate) SetSurface(v string) *SyncEventUpdate {
	_u.mutation.SetSurface(v)
	return _u
}

// SetNillableSurface sets the "surface" field if the given value is not nil.
func (_u *SyncEventUpdate) SetNillableSurface(v *string) *SyncEventUpdate {
	if v != nil {
		_u.SetSurface(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *SyncEventUpdate) SetQuestionID(v int) *SyncEventUpdate {
	_u.mutation.ResetQuestionID()
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *SyncEventUpdate) SetNillableQuestionID(v *int) *SyncEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// AddQuestionID adds value to the "question_id" field.
func (_u *SyncEventUpdate) AddQuestionID(v int) *SyncEventUpdate {
	_u.mutation.AddQuestionID(v)
	return _u
}

// SetAction sets the "action" field.
func (_u *SyncEventUpdate) SetAction(v string) *SyncEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SyncEventUpdate) SetNillableAction(v *string) *SyncEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetSelectedOption sets the "selected_option" field.
func (_u *SyncEventUpdate) SetSelectedOption(v int) *SyncEventUpdate {
	_u.mutation.ResetSelectedOption()
	_u.mutation.SetSelectedOption(v)
	return _u
}

// SetNillableSelectedOption sets the "selected_option" field if the given value is not nil.
func (_u *SyncEventUpdate) SetNillableSelectedOption(v *int) *SyncEventUpdate {
	if v != nil {
		_u.SetSelectedOption(*v)
	}
	return _u
}

// AddSelectedOption adds value to the "selected_option" field.
func (_u *SyncEventUpdate) AddSelectedOption(v int) *SyncEventUpdate {
	_u.mutation.AddSelectedOption(v)
	return _u
}

// SetFlagged sets the "flagged" field.
func (_u *SyncEventUpdate) SetFlagged(v bool) *SyncEventUpdate {
	_u.mutation.SetFlagged(v)
	return _u
}

// SetNillableFlagged sets the "flagged" field if the given value is not nil.
func (_u *SyncEventUpdate) SetNillableFlagged(v *bool) *SyncEventUpdate {
	if v != nil {
		_u.SetFlagged(*v)
	}
	return _u
}

// SetOk sets the "ok" field.
func (_u *SyncEventUpdate) SetOk(v bool) *SyncEventUpdate {
	_u.mutation.SetOk(v)
	return _u
}

// SetNillableOk sets the "ok" field if the given value is not nil.
func (_u *SyncEventUpdate) SetNillableOk(v *bool) *SyncEventUpdate {
	if v != nil {
		_u.SetOk(*v)
	}
	return _u
}

// SetError sets the "error" field.
func (_u *SyncEventUpdate) SetError(v string) *SyncEventUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *SyncEventUpdate) SetNillableError(v *string) *SyncEventUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *SyncEventUpdate) ClearError() *SyncEventUpdate {
	_u.mutation.ClearError()
	return _u
}

// Mutation returns the SyncEventMutation object of the builder.
func (_u *SyncEventUpdate) Mutation() *SyncEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SyncEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SyncEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SyncEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SyncEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SyncEventUpdate) check() error {
	if v, ok := _u.mutation.RequestID(); ok {
		if err := syncevent.RequestIDValidator(v); err != nil {
			return &ValidationError{Name: "request_id", err: fmt.Errorf(`ent: validator failed for field "SyncEvent.request_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Surface(); ok {
		if err := syncevent.SurfaceValidator(v); err != nil {
			return &ValidationError{Name: "surface", err: fmt.Errorf(`ent: validator failed for field "SyncEvent.surface": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := syncevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SyncEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *SyncEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(syncevent.Table, syncevent.Columns, sqlgraph.NewFieldSpec(syncevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RequestID(); ok {
		_spec.SetField(syncevent.FieldRequestID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(syncevent.FieldCourseID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCourseID(); ok {
		_spec.AddField(syncevent.FieldCourseID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Surface(); ok {
		_spec.SetField(syncevent.FieldSurface, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(syncevent.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionID(); ok {
		_spec.AddField(syncevent.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(syncevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.SelectedOption(); ok {
		_spec.SetField(syncevent.FieldSelectedOption, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSelectedOption(); ok {
		_spec.AddField(syncevent.FieldSelectedOption, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Flagged(); ok {
		_spec.SetField(syncevent.FieldFlagged, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Ok(); ok {
		_spec.SetField(syncevent.FieldOk, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(syncevent.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(syncevent.FieldError, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{syncevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SyncEventUpdateOne is the builder for updating a single SyncEvent entity.
type SyncEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SyncEventMutation
}

// SetRequestID sets the "request_id" field.
func (_u *SyncEventUpdateOne) SetRequestID(v string) *SyncEventUpdateOne {
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *SyncEventUpdateOne) SetNillableRequestID(v *string) *SyncEventUpdateOne {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *SyncEventUpdateOne) SetCourseID(v int) *SyncEventUpdateOne {
	_u.mutation.ResetCourseID()
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *SyncEventUpdateOne) SetNillableCourseID(v *int) *SyncEventUpdateOne {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// AddCourseID adds value to the "course_id" field.
func (_u *SyncEventUpdateOne) AddCourseID(v int) *SyncEventUpdateOne {
	_u.mutation.AddCourseID(v)
	return _u
}

// SetSurface sets the "surface" field.
func (_u *SyncEventUpdateOne) SetSurface(v string) *SyncEventUpdateOne {
	_u.mutation.SetSurface(v)
	return _u
}

// SetNillableSurface sets the "surface" field if the given value is not nil.
func (_u *SyncEventUpdateOne) SetNillableSurface(v *string) *SyncEventUpdateOne {
	if v != nil {
		_u.SetSurface(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *SyncEventUpdateOne) SetQuestionID(v int) *SyncEventUpdateOne {
	_u.mutation.ResetQuestionID()
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *SyncEventUpdateOne) SetNillableQuestionID(v *int) *SyncEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// AddQuestionID adds value to the "question_id" field.
func (_u *SyncEventUpdateOne) AddQuestionID(v int) *SyncEventUpdateOne {
	_u.mutation.AddQuestionID(v)
	return _u
}

// SetAction sets the "action" field.
func (_u *SyncEventUpdateOne) SetAction(v string) *SyncEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SyncEventUpdateOne) SetNillableAction(v *string) *SyncEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetSelectedOption sets the "selected_option" field.
func (_u *SyncEventUpdateOne) SetSelectedOption(v int) *SyncEventUpdateOne {
	_u.mutation.ResetSelectedOption()
	_u.mutation.SetSelectedOption(v)
	return _u
}

// SetNillableSelectedOption sets the "selected_option" field if the given value is not nil.
func (_u *SyncEventUpdateOne) SetNillableSelectedOption(v *int) *SyncEventUpdateOne {
	if v != nil {
		_u.SetSelectedOption(*v)
	}
	return _u
}

// AddSelectedOption adds value to the "selected_option" field.
func (_u *SyncEventUpdateOne) AddSelectedOption(v int) *SyncEventUpdateOne {
	_u.mutation.AddSelectedOption(v)
	return _u
}

// SetFlagged sets the "flagged" field.
func (_u *SyncEventUpdateOne) SetFlagged(v bool) *SyncEventUpdateOne {
	_u.mutation.SetFlagged(v)
	return _u
}

// SetNillableFlagged sets the "flagged" field if the given value is not nil.
func (_u *SyncEventUpdateOne) SetNillableFlagged(v *bool) *SyncEventUpdateOne {
	if v != nil {
		_u.SetFlagged(*v)
	}
	return _u
}

// SetOk sets the "ok" field.
func (_u *SyncEventUpdateOne) SetOk(v bool) *SyncEventUpdateOne {
	_u.mutation.SetOk(v)
	return _u
}

// SetNillableOk sets the "ok" field if the given value is not nil.
func (_u *SyncEventUpdateOne) SetNillableOk(v *bool) *SyncEventUpdateOne {
	if v != nil {
		_u.SetOk(*v)
	}
	return _u
}

// SetError sets the "error" field.
func (_u *SyncEventUpdateOne) SetError(v string) *SyncEventUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *SyncEventUpdateOne) SetNillableError(v *string) *SyncEventUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *SyncEventUpdateOne) ClearError() *SyncEventUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// Mutation returns the SyncEventMutation object of the builder.
func (_u *SyncEventUpdateOne) Mutation() *SyncEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SyncEventUpdate builder.
func (_u *SyncEventUpdateOne) Where(ps ...predicate.SyncEvent) *SyncEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SyncEventUpdateOne) Select(field string, fields ...string) *SyncEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SyncEvent entity.
func (_u *SyncEventUpdateOne) Save(ctx context.Context) (*SyncEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SyncEventUpdateOne) SaveX(ctx context.Context) *SyncEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SyncEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SyncEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SyncEventUpdateOne) check() error {
	if v, ok := _u.mutation.RequestID(); ok {
		if err := syncevent.RequestIDValidator(v); err != nil {
			return &ValidationError{Name: "request_id", err: fmt.Errorf(`ent: validator failed for field "SyncEvent.request_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Surface(); ok {
		if err := syncevent.SurfaceValidator(v); err != nil {
			return &ValidationError{Name: "surface", err: fmt.Errorf(`ent: validator failed for field "SyncEvent.surface": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := syncevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SyncEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *SyncEventUpdateOne) sqlSave(ctx context.Context) (_node *SyncEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(syncevent.Table, syncevent.Columns, sqlgraph.NewFieldSpec(syncevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SyncEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, syncevent.FieldID)
		for _, f := range fields {
			if !syncevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != syncevent.FieldID {
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
	if value, ok := _u.mutation.RequestID(); ok {
		_spec.SetField(syncevent.FieldRequestID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(syncevent.FieldCourseID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCourseID(); ok {
		_spec.AddField(syncevent.FieldCourseID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Surface(); ok {
		_spec.SetField(syncevent.FieldSurface, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(syncevent.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionID(); ok {
		_spec.AddField(syncevent.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(syncevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.SelectedOption(); ok {
		_spec.SetField(syncevent.FieldSelectedOption, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSelectedOption(); ok {
		_spec.AddField(syncevent.FieldSelectedOption, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Flagged(); ok {
		_spec.SetField(syncevent.FieldFlagged, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Ok(); ok {
		_spec.SetField(syncevent.FieldOk, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(syncevent.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(syncevent.FieldError, field.TypeString)
	}
	_node = &SyncEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{syncevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
