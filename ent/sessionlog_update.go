// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/topspinhq/topspin/ent/predicate"
	"github.com/topspinhq/topspin/ent/sessionlog"
)

// SessionLogUpdate is the builder for updating SessionLog entities.
type SessionLogUpdate struct {
	config
	hooks    []Hook
	mutation *SessionLogMutation
}

// Where appends a list predicates to the SessionLogUpdate builder.
func (_u *SessionLogUpdate) Where(ps ...predicate.SessionLog) *SessionLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPlayerID sets the "player_id" field.
func (_u *SessionLogUpdate) SetPlayerID(v string) *SessionLogUpdate {
	_u.mutation.SetPlayerID(v)
	return _u
}

// SetNillablePlayerID sets the "player_id" field if the given value is not nil.
func (_u *SessionLogUpdate) SetNillablePlayerID(v *string) *SessionLogUpdate {
	if v != nil {
		_u.SetPlayerID(*v)
	}
	return _u
}

// SetProgramID sets the "program_id" field.
func (_u *SessionLogUpdate) SetProgramID(v string) *SessionLogUpdate {
	_u.mutation.SetProgramID(v)
	return _u
}

// SetNillableProgramID sets the "program_id" field if the given value is not nil.
func (_u *SessionLogUpdate) SetNillableProgramID(v *string) *SessionLogUpdate {
	if v != nil {
		_u.SetProgramID(*v)
	}
	return _u
}

// SetDateCompleted sets the "date_completed" field.
func (_u *SessionLogUpdate) SetDateCompleted(v time.Time) *SessionLogUpdate {
	_u.mutation.SetDateCompleted(v)
	return _u
}

// SetNillableDateCompleted sets the "date_completed" field if the given value is not nil.
func (_u *SessionLogUpdate) SetNillableDateCompleted(v *time.Time) *SessionLogUpdate {
	if v != nil {
		_u.SetDateCompleted(*v)
	}
	return _u
}

// SetDurationMin sets the "duration_min" field.
func (_u *SessionLogUpdate) SetDurationMin(v int) *SessionLogUpdate {
	_u.mutation.ResetDurationMin()
	_u.mutation.SetDurationMin(v)
	return _u
}

// SetNillableDurationMin sets the "duration_min" field if the given value is not nil.
func (_u *SessionLogUpdate) SetNillableDurationMin(v *int) *SessionLogUpdate {
	if v != nil {
		_u.SetDurationMin(*v)
	}
	return _u
}

// AddDurationMin adds value to the "duration_min" field.
func (_u *SessionLogUpdate) AddDurationMin(v int) *SessionLogUpdate {
	_u.mutation.AddDurationMin(v)
	return _u
}

// SetRpe sets the "rpe" field.
func (_u *SessionLogUpdate) SetRpe(v int) *SessionLogUpdate {
	_u.mutation.ResetRpe()
	_u.mutation.SetRpe(v)
	return _u
}

// SetNillableRpe sets the "rpe" field if the given value is not nil.
func (_u *SessionLogUpdate) SetNillableRpe(v *int) *SessionLogUpdate {
	if v != nil {
		_u.SetRpe(*v)
	}
	return _u
}

// AddRpe adds value to the "rpe" field.
func (_u *SessionLogUpdate) AddRpe(v int) *SessionLogUpdate {
	_u.mutation.AddRpe(v)
	return _u
}

// SetNotes sets the "notes" field.
func (_u *SessionLogUpdate) SetNotes(v string) *SessionLogUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *SessionLogUpdate) SetNillableNotes(v *string) *SessionLogUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// SetPerformance sets the "performance" field.
func (_u *SessionLogUpdate) SetPerformance(v json.RawMessage) *SessionLogUpdate {
	_u.mutation.SetPerformance(v)
	return _u
}

// AppendPerformance appends value to the "performance" field.
func (_u *SessionLogUpdate) AppendPerformance(v json.RawMessage) *SessionLogUpdate {
	_u.mutation.AppendPerformance(v)
	return _u
}

// Mutation returns the SessionLogMutation object of the builder.
func (_u *SessionLogUpdate) Mutation() *SessionLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionLogUpdate) check() error {
	if v, ok := _u.mutation.DurationMin(); ok {
		if err := sessionlog.DurationMinValidator(v); err != nil {
			return &ValidationError{Name: "duration_min", err: fmt.Errorf(`ent: validator failed for field "SessionLog.duration_min": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rpe(); ok {
		if err := sessionlog.RpeValidator(v); err != nil {
			return &ValidationError{Name: "rpe", err: fmt.Errorf(`ent: validator failed for field "SessionLog.rpe": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionlog.Table, sessionlog.Columns, sqlgraph.NewFieldSpec(sessionlog.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PlayerID(); ok {
		_spec.SetField(sessionlog.FieldPlayerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProgramID(); ok {
		_spec.SetField(sessionlog.FieldProgramID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DateCompleted(); ok {
		_spec.SetField(sessionlog.FieldDateCompleted, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DurationMin(); ok {
		_spec.SetField(sessionlog.FieldDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMin(); ok {
		_spec.AddField(sessionlog.FieldDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Rpe(); ok {
		_spec.SetField(sessionlog.FieldRpe, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRpe(); ok {
		_spec.AddField(sessionlog.FieldRpe, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(sessionlog.FieldNotes, field.TypeString, value)
	}
	if value, ok := _u.mutation.Performance(); ok {
		_spec.SetField(sessionlog.FieldPerformance, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPerformance(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionlog.FieldPerformance, value)
		})
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionLogUpdateOne is the builder for updating a single SessionLog entity.
type SessionLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionLogMutation
}

// SetPlayerID sets the "player_id" field.
func (_u *SessionLogUpdateOne) SetPlayerID(v string) *SessionLogUpdateOne {
	_u.mutation.SetPlayerID(v)
	return _u
}

// SetNillablePlayerID sets the "player_id" field if the given value is not nil.
func (_u *SessionLogUpdateOne) SetNillablePlayerID(v *string) *SessionLogUpdateOne {
	if v != nil {
		_u.SetPlayerID(*v)
	}
	return _u
}

// SetProgramID sets the "program_id" field.
func (_u *SessionLogUpdateOne) SetProgramID(v string) *SessionLogUpdateOne {
	_u.mutation.SetProgramID(v)
	return _u
}

// SetNillableProgramID sets the "program_id" field if the given value is not nil.
func (_u *SessionLogUpdateOne) SetNillableProgramID(v *string) *SessionLogUpdateOne {
	if v != nil {
		_u.SetProgramID(*v)
	}
	return _u
}

// SetDateCompleted sets the "date_completed" field.
func (_u *SessionLogUpdateOne) SetDateCompleted(v time.Time) *SessionLogUpdateOne {
	_u.mutation.SetDateCompleted(v)
	return _u
}

// SetNillableDateCompleted sets the "date_completed" field if the given value is not nil.
func (_u *SessionLogUpdateOne) SetNillableDateCompleted(v *time.Time) *SessionLogUpdateOne {
	if v != nil {
		_u.SetDateCompleted(*v)
	}
	return _u
}

// SetDurationMin sets the "duration_min" field.
func (_u *SessionLogUpdateOne) SetDurationMin(v int) *SessionLogUpdateOne {
	_u.mutation.ResetDurationMin()
	_u.mutation.SetDurationMin(v)
	return _u
}

// SetNillableDurationMin sets the "duration_min" field if the given value is not nil.
func (_u *SessionLogUpdateOne) SetNillableDurationMin(v *int) *SessionLogUpdateOne {
	if v != nil {
		_u.SetDurationMin(*v)
	}
	return _u
}

// AddDurationMin adds value to the "duration_min" field.
func (_u *SessionLogUpdateOne) AddDurationMin(v int) *SessionLogUpdateOne {
	_u.mutation.AddDurationMin(v)
	return _u
}

// SetRpe sets the "rpe" field.
func (_u *SessionLogUpdateOne) SetRpe(v int) *SessionLogUpdateOne {
	_u.mutation.ResetRpe()
	_u.mutation.SetRpe(v)
	return _u
}

// SetNillableRpe sets the "rpe" field if the given value is not nil.
func (_u *SessionLogUpdateOne) SetNillableRpe(v *int) *SessionLogUpdateOne {
	if v != nil {
		_u.SetRpe(*v)
	}
	return _u
}

// AddRpe adds value to the "rpe" field.
func (_u *SessionLogUpdateOne) AddRpe(v int) *SessionLogUpdateOne {
	_u.mutation.AddRpe(v)
	return _u
}

// SetNotes sets the "notes" field.
func (_u *SessionLogUpdateOne) SetNotes(v string) *SessionLogUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *SessionLogUpdateOne) SetNillableNotes(v *string) *SessionLogUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// SetPerformance sets the "performance" field.
func (_u *SessionLogUpdateOne) SetPerformance(v json.RawMessage) *SessionLogUpdateOne {
	_u.mutation.SetPerformance(v)
	return _u
}

// AppendPerformance appends value to the "performance" field.
func (_u *SessionLogUpdateOne) AppendPerformance(v json.RawMessage) *SessionLogUpdateOne {
	_u.mutation.AppendPerformance(v)
	return _u
}

// Mutation returns the SessionLogMutation object of the builder.
func (_u *SessionLogUpdateOne) Mutation() *SessionLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionLogUpdate builder.
func (_u *SessionLogUpdateOne) Where(ps ...predicate.SessionLog) *SessionLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionLogUpdateOne) Select(field string, fields ...string) *SessionLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionLog entity.
func (_u *SessionLogUpdateOne) Save(ctx context.Context) (*SessionLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionLogUpdateOne) SaveX(ctx context.Context) *SessionLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionLogUpdateOne) check() error {
	if v, ok := _u.mutation.DurationMin(); ok {
		if err := sessionlog.DurationMinValidator(v); err != nil {
			return &ValidationError{Name: "duration_min", err: fmt.Errorf(`ent: validator failed for field "SessionLog.duration_min": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rpe(); ok {
		if err := sessionlog.RpeValidator(v); err != nil {
			return &ValidationError{Name: "rpe", err: fmt.Errorf(`ent: validator failed for field "SessionLog.rpe": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionLogUpdateOne) sqlSave(ctx context.Context) (_node *SessionLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionlog.Table, sessionlog.Columns, sqlgraph.NewFieldSpec(sessionlog.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionlog.FieldID)
		for _, f := range fields {
			if !sessionlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionlog.FieldID {
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
	if value, ok := _u.mutation.PlayerID(); ok {
		_spec.SetField(sessionlog.FieldPlayerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProgramID(); ok {
		_spec.SetField(sessionlog.FieldProgramID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DateCompleted(); ok {
		_spec.SetField(sessionlog.FieldDateCompleted, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DurationMin(); ok {
		_spec.SetField(sessionlog.FieldDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMin(); ok {
		_spec.AddField(sessionlog.FieldDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Rpe(); ok {
		_spec.SetField(sessionlog.FieldRpe, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRpe(); ok {
		_spec.AddField(sessionlog.FieldRpe, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(sessionlog.FieldNotes, field.TypeString, value)
	}
	if value, ok := _u.mutation.Performance(); ok {
		_spec.SetField(sessionlog.FieldPerformance, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPerformance(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionlog.FieldPerformance, value)
		})
	}
	_node = &SessionLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
