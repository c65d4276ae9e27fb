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
	"github.com/topspinhq/topspin/ent/program"
)

// ProgramUpdate is the builder for updating Program entities.
type ProgramUpdate struct {
	config
	hooks    []Hook
	mutation *ProgramMutation
}

// Where appends a list predicates to the ProgramUpdate builder.
func (_u *ProgramUpdate) Where(ps ...predicate.Program) *ProgramUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ProgramUpdate) SetTitle(v string) *ProgramUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ProgramUpdate) SetNillableTitle(v *string) *ProgramUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ProgramUpdate) SetDescription(v string) *ProgramUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ProgramUpdate) SetNillableDescription(v *string) *ProgramUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetAssignedBy sets the "assigned_by" field.
func (_u *ProgramUpdate) SetAssignedBy(v string) *ProgramUpdate {
	_u.mutation.SetAssignedBy(v)
	return _u
}

// SetNillableAssignedBy sets the "assigned_by" field if the given value is not nil.
func (_u *ProgramUpdate) SetNillableAssignedBy(v *string) *ProgramUpdate {
	if v != nil {
		_u.SetAssignedBy(*v)
	}
	return _u
}

// SetAssignedTo sets the "assigned_to" field.
func (_u *ProgramUpdate) SetAssignedTo(v string) *ProgramUpdate {
	_u.mutation.SetAssignedTo(v)
	return _u
}

// SetNillableAssignedTo sets the "assigned_to" field if the given value is not nil.
func (_u *ProgramUpdate) SetNillableAssignedTo(v *string) *ProgramUpdate {
	if v != nil {
		_u.SetAssignedTo(*v)
	}
	return _u
}

// SetSessions sets the "sessions" field.
func (_u *ProgramUpdate) SetSessions(v json.RawMessage) *ProgramUpdate {
	_u.mutation.SetSessions(v)
	return _u
}

// AppendSessions appends value to the "sessions" field.
func (_u *ProgramUpdate) AppendSessions(v json.RawMessage) *ProgramUpdate {
	_u.mutation.AppendSessions(v)
	return _u
}

// SetConfig sets the "config" field.
func (_u *ProgramUpdate) SetConfig(v json.RawMessage) *ProgramUpdate {
	_u.mutation.SetConfig(v)
	return _u
}

// AppendConfig appends value to the "config" field.
func (_u *ProgramUpdate) AppendConfig(v json.RawMessage) *ProgramUpdate {
	_u.mutation.AppendConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *ProgramUpdate) ClearConfig() *ProgramUpdate {
	_u.mutation.ClearConfig()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProgramUpdate) SetStatus(v string) *ProgramUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProgramUpdate) SetNillableStatus(v *string) *ProgramUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *ProgramUpdate) SetCompleted(v bool) *ProgramUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *ProgramUpdate) SetNillableCompleted(v *bool) *ProgramUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ProgramUpdate) SetCreatedAt(v time.Time) *ProgramUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ProgramUpdate) SetNillableCreatedAt(v *time.Time) *ProgramUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the ProgramMutation object of the builder.
func (_u *ProgramUpdate) Mutation() *ProgramMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProgramUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgramUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProgramUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgramUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProgramUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(program.Table, program.Columns, sqlgraph.NewFieldSpec(program.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(program.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(program.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssignedBy(); ok {
		_spec.SetField(program.FieldAssignedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssignedTo(); ok {
		_spec.SetField(program.FieldAssignedTo, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sessions(); ok {
		_spec.SetField(program.FieldSessions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSessions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, program.FieldSessions, value)
		})
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(program.FieldConfig, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConfig(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, program.FieldConfig, value)
		})
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(program.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(program.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(program.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(program.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{program.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProgramUpdateOne is the builder for updating a single Program entity.
type ProgramUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProgramMutation
}

// SetTitle sets the "title" field.
func (_u *ProgramUpdateOne) SetTitle(v string) *ProgramUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ProgramUpdateOne) SetNillableTitle(v *string) *ProgramUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ProgramUpdateOne) SetDescription(v string) *ProgramUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ProgramUpdateOne) SetNillableDescription(v *string) *ProgramUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetAssignedBy sets the "assigned_by" field.
func (_u *ProgramUpdateOne) SetAssignedBy(v string) *ProgramUpdateOne {
	_u.mutation.SetAssignedBy(v)
	return _u
}

// SetNillableAssignedBy sets the "assigned_by" field if the given value is not nil.
func (_u *ProgramUpdateOne) SetNillableAssignedBy(v *string) *ProgramUpdateOne {
	if v != nil {
		_u.SetAssignedBy(*v)
	}
	return _u
}

// SetAssignedTo sets the "assigned_to" field.
func (_u *ProgramUpdateOne) SetAssignedTo(v string) *ProgramUpdateOne {
	_u.mutation.SetAssignedTo(v)
	return _u
}

// SetNillableAssignedTo sets the "assigned_to" field if the given value is not nil.
func (_u *ProgramUpdateOne) SetNillableAssignedTo(v *string) *ProgramUpdateOne {
	if v != nil {
		_u.SetAssignedTo(*v)
	}
	return _u
}

// SetSessions sets the "sessions" field.
func (_u *ProgramUpdateOne) SetSessions(v json.RawMessage) *ProgramUpdateOne {
	_u.mutation.SetSessions(v)
	return _u
}

// AppendSessions appends value to the "sessions" field.
func (_u *ProgramUpdateOne) AppendSessions(v json.RawMessage) *ProgramUpdateOne {
	_u.mutation.AppendSessions(v)
	return _u
}

// SetConfig sets the "config" field.
func (_u *ProgramUpdateOne) SetConfig(v json.RawMessage) *ProgramUpdateOne {
	_u.mutation.SetConfig(v)
	return _u
}

// AppendConfig appends value to the "config" field.
func (_u *ProgramUpdateOne) AppendConfig(v json.RawMessage) *ProgramUpdateOne {
	_u.mutation.AppendConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *ProgramUpdateOne) ClearConfig() *ProgramUpdateOne {
	_u.mutation.ClearConfig()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProgramUpdateOne) SetStatus(v string) *ProgramUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProgramUpdateOne) SetNillableStatus(v *string) *ProgramUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *ProgramUpdateOne) SetCompleted(v bool) *ProgramUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *ProgramUpdateOne) SetNillableCompleted(v *bool) *ProgramUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ProgramUpdateOne) SetCreatedAt(v time.Time) *ProgramUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ProgramUpdateOne) SetNillableCreatedAt(v *time.Time) *ProgramUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the ProgramMutation object of the builder.
func (_u *ProgramUpdateOne) Mutation() *ProgramMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProgramUpdate builder.
func (_u *ProgramUpdateOne) Where(ps ...predicate.Program) *ProgramUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProgramUpdateOne) Select(field string, fields ...string) *ProgramUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Program entity.
func (_u *ProgramUpdateOne) Save(ctx context.Context) (*Program, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgramUpdateOne) SaveX(ctx context.Context) *Program {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProgramUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgramUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProgramUpdateOne) sqlSave(ctx context.Context) (_node *Program, err error) {
	_spec := sqlgraph.NewUpdateSpec(program.Table, program.Columns, sqlgraph.NewFieldSpec(program.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Program.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, program.FieldID)
		for _, f := range fields {
			if !program.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != program.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(program.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(program.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssignedBy(); ok {
		_spec.SetField(program.FieldAssignedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssignedTo(); ok {
		_spec.SetField(program.FieldAssignedTo, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sessions(); ok {
		_spec.SetField(program.FieldSessions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSessions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, program.FieldSessions, value)
		})
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(program.FieldConfig, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConfig(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, program.FieldConfig, value)
		})
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(program.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(program.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(program.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(program.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &Program{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{program.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
