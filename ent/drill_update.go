// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/topspinhq/topspin/ent/drill"
	"github.com/topspinhq/topspin/ent/predicate"
)

// DrillUpdate is the builder for updating Drill entities.
type DrillUpdate struct {
	config
	hooks    []Hook
	mutation *DrillMutation
}

// Where appends a list predicates to the DrillUpdate builder.
func (_u *DrillUpdate) Where(ps ...predicate.Drill) *DrillUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *DrillUpdate) SetName(v string) *DrillUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DrillUpdate) SetNillableName(v *string) *DrillUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *DrillUpdate) SetCategory(v string) *DrillUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *DrillUpdate) SetNillableCategory(v *string) *DrillUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *DrillUpdate) SetDifficulty(v string) *DrillUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *DrillUpdate) SetNillableDifficulty(v *string) *DrillUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *DrillUpdate) SetDescription(v string) *DrillUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *DrillUpdate) SetNillableDescription(v *string) *DrillUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetDefaultDurationMin sets the "default_duration_min" field.
func (_u *DrillUpdate) SetDefaultDurationMin(v int) *DrillUpdate {
	_u.mutation.ResetDefaultDurationMin()
	_u.mutation.SetDefaultDurationMin(v)
	return _u
}

// SetNillableDefaultDurationMin sets the "default_duration_min" field if the given value is not nil.
func (_u *DrillUpdate) SetNillableDefaultDurationMin(v *int) *DrillUpdate {
	if v != nil {
		_u.SetDefaultDurationMin(*v)
	}
	return _u
}

// AddDefaultDurationMin adds value to the "default_duration_min" field.
func (_u *DrillUpdate) AddDefaultDurationMin(v int) *DrillUpdate {
	_u.mutation.AddDefaultDurationMin(v)
	return _u
}

// Mutation returns the DrillMutation object of the builder.
func (_u *DrillUpdate) Mutation() *DrillMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DrillUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DrillUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DrillUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DrillUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DrillUpdate) check() error {
	if v, ok := _u.mutation.DefaultDurationMin(); ok {
		if err := drill.DefaultDurationMinValidator(v); err != nil {
			return &ValidationError{Name: "default_duration_min", err: fmt.Errorf(`ent: validator failed for field "Drill.default_duration_min": %w`, err)}
		}
	}
	return nil
}

func (_u *DrillUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(drill.Table, drill.Columns, sqlgraph.NewFieldSpec(drill.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(drill.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(drill.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(drill.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(drill.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.DefaultDurationMin(); ok {
		_spec.SetField(drill.FieldDefaultDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDefaultDurationMin(); ok {
		_spec.AddField(drill.FieldDefaultDurationMin, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{drill.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DrillUpdateOne is the builder for updating a single Drill entity.
type DrillUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DrillMutation
}

// SetName sets the "name" field.
func (_u *DrillUpdateOne) SetName(v string) *DrillUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DrillUpdateOne) SetNillableName(v *string) *DrillUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *DrillUpdateOne) SetCategory(v string) *DrillUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *DrillUpdateOne) SetNillableCategory(v *string) *DrillUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *DrillUpdateOne) SetDifficulty(v string) *DrillUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *DrillUpdateOne) SetNillableDifficulty(v *string) *DrillUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *DrillUpdateOne) SetDescription(v string) *DrillUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *DrillUpdateOne) SetNillableDescription(v *string) *DrillUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetDefaultDurationMin sets the "default_duration_min" field.
func (_u *DrillUpdateOne) SetDefaultDurationMin(v int) *DrillUpdateOne {
	_u.mutation.ResetDefaultDurationMin()
	_u.mutation.SetDefaultDurationMin(v)
	return _u
}

// SetNillableDefaultDurationMin sets the "default_duration_min" field if the given value is not nil.
func (_u *DrillUpdateOne) SetNillableDefaultDurationMin(v *int) *DrillUpdateOne {
	if v != nil {
		_u.SetDefaultDurationMin(*v)
	}
	return _u
}

// AddDefaultDurationMin adds value to the "default_duration_min" field.
func (_u *DrillUpdateOne) AddDefaultDurationMin(v int) *DrillUpdateOne {
	_u.mutation.AddDefaultDurationMin(v)
	return _u
}

// Mutation returns the DrillMutation object of the builder.
func (_u *DrillUpdateOne) Mutation() *DrillMutation {
	return _u.mutation
}

// Where appends a list predicates to the DrillUpdate builder.
func (_u *DrillUpdateOne) Where(ps ...predicate.Drill) *DrillUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DrillUpdateOne) Select(field string, fields ...string) *DrillUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Drill entity.
func (_u *DrillUpdateOne) Save(ctx context.Context) (*Drill, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DrillUpdateOne) SaveX(ctx context.Context) *Drill {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DrillUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DrillUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DrillUpdateOne) check() error {
	if v, ok := _u.mutation.DefaultDurationMin(); ok {
		if err := drill.DefaultDurationMinValidator(v); err != nil {
			return &ValidationError{Name: "default_duration_min", err: fmt.Errorf(`ent: validator failed for field "Drill.default_duration_min": %w`, err)}
		}
	}
	return nil
}

func (_u *DrillUpdateOne) sqlSave(ctx context.Context) (_node *Drill, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(drill.Table, drill.Columns, sqlgraph.NewFieldSpec(drill.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Drill.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, drill.FieldID)
		for _, f := range fields {
			if !drill.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != drill.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(drill.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(drill.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(drill.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(drill.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.DefaultDurationMin(); ok {
		_spec.SetField(drill.FieldDefaultDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDefaultDurationMin(); ok {
		_spec.AddField(drill.FieldDefaultDurationMin, field.TypeInt, value)
	}
	_node = &Drill{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{drill.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
