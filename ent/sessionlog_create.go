// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/topspinhq/topspin/ent/sessionlog"
)

// SessionLogCreate is the builder for creating a SessionLog entity.
type SessionLogCreate struct {
	config
	mutation *SessionLogMutation
	hooks    []Hook
}

// SetLogID sets the "log_id" field.
func (_c *SessionLogCreate) SetLogID(v string) *SessionLogCreate {
	_c.mutation.SetLogID(v)
	return _c
}

// SetPlayerID sets the "player_id" field.
func (_c *SessionLogCreate) SetPlayerID(v string) *SessionLogCreate {
	_c.mutation.SetPlayerID(v)
	return _c
}

// SetProgramID sets the "program_id" field.
func (_c *SessionLogCreate) SetProgramID(v string) *SessionLogCreate {
	_c.mutation.SetProgramID(v)
	return _c
}

// SetNillableProgramID sets the "program_id" field if the given value is not nil.
func (_c *SessionLogCreate) SetNillableProgramID(v *string) *SessionLogCreate {
	if v != nil {
		_c.SetProgramID(*v)
	}
	return _c
}

// SetDateCompleted sets the "date_completed" field.
func (_c *SessionLogCreate) SetDateCompleted(v time.Time) *SessionLogCreate {
	_c.mutation.SetDateCompleted(v)
	return _c
}

// SetDurationMin sets the "duration_min" field.
func (_c *SessionLogCreate) SetDurationMin(v int) *SessionLogCreate {
	_c.mutation.SetDurationMin(v)
	return _c
}

// SetRpe sets the "rpe" field.
func (_c *SessionLogCreate) SetRpe(v int) *SessionLogCreate {
	_c.mutation.SetRpe(v)
	return _c
}

// SetNotes sets the "notes" field.
func (_c *SessionLogCreate) SetNotes(v string) *SessionLogCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *SessionLogCreate) SetNillableNotes(v *string) *SessionLogCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetPerformance sets the "performance" field.
func (_c *SessionLogCreate) SetPerformance(v json.RawMessage) *SessionLogCreate {
	_c.mutation.SetPerformance(v)
	return _c
}

// Mutation returns the SessionLogMutation object of the builder.
func (_c *SessionLogCreate) Mutation() *SessionLogMutation {
	return _c.mutation
}

// Save creates the SessionLog in the database.
func (_c *SessionLogCreate) Save(ctx context.Context) (*SessionLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionLogCreate) SaveX(ctx context.Context) *SessionLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionLogCreate) defaults() {
	if _, ok := _c.mutation.ProgramID(); !ok {
		v := sessionlog.DefaultProgramID
		_c.mutation.SetProgramID(v)
	}
	if _, ok := _c.mutation.Notes(); !ok {
		v := sessionlog.DefaultNotes
		_c.mutation.SetNotes(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionLogCreate) check() error {
	if _, ok := _c.mutation.LogID(); !ok {
		return &ValidationError{Name: "log_id", err: errors.New(`ent: missing required field "SessionLog.log_id"`)}
	}
	if _, ok := _c.mutation.PlayerID(); !ok {
		return &ValidationError{Name: "player_id", err: errors.New(`ent: missing required field "SessionLog.player_id"`)}
	}
	if _, ok := _c.mutation.ProgramID(); !ok {
		return &ValidationError{Name: "program_id", err: errors.New(`ent: missing required field "SessionLog.program_id"`)}
	}
	if _, ok := _c.mutation.DateCompleted(); !ok {
		return &ValidationError{Name: "date_completed", err: errors.New(`ent: missing required field "SessionLog.date_completed"`)}
	}
	if _, ok := _c.mutation.DurationMin(); !ok {
		return &ValidationError{Name: "duration_min", err: errors.New(`ent: missing required field "SessionLog.duration_min"`)}
	}
	if v, ok := _c.mutation.DurationMin(); ok {
		if err := sessionlog.DurationMinValidator(v); err != nil {
			return &ValidationError{Name: "duration_min", err: fmt.Errorf(`ent: validator failed for field "SessionLog.duration_min": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Rpe(); !ok {
		return &ValidationError{Name: "rpe", err: errors.New(`ent: missing required field "SessionLog.rpe"`)}
	}
	if v, ok := _c.mutation.Rpe(); ok {
		if err := sessionlog.RpeValidator(v); err != nil {
			return &ValidationError{Name: "rpe", err: fmt.Errorf(`ent: validator failed for field "SessionLog.rpe": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Notes(); !ok {
		return &ValidationError{Name: "notes", err: errors.New(`ent: missing required field "SessionLog.notes"`)}
	}
	if _, ok := _c.mutation.Performance(); !ok {
		return &ValidationError{Name: "performance", err: errors.New(`ent: missing required field "SessionLog.performance"`)}
	}
	return nil
}

func (_c *SessionLogCreate) sqlSave(ctx context.Context) (*SessionLog, error) {
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

func (_c *SessionLogCreate) createSpec() (*SessionLog, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionlog.Table, sqlgraph.NewFieldSpec(sessionlog.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LogID(); ok {
		_spec.SetField(sessionlog.FieldLogID, field.TypeString, value)
		_node.LogID = value
	}
	if value, ok := _c.mutation.PlayerID(); ok {
		_spec.SetField(sessionlog.FieldPlayerID, field.TypeString, value)
		_node.PlayerID = value
	}
	if value, ok := _c.mutation.ProgramID(); ok {
		_spec.SetField(sessionlog.FieldProgramID, field.TypeString, value)
		_node.ProgramID = value
	}
	if value, ok := _c.mutation.DateCompleted(); ok {
		_spec.SetField(sessionlog.FieldDateCompleted, field.TypeTime, value)
		_node.DateCompleted = value
	}
	if value, ok := _c.mutation.DurationMin(); ok {
		_spec.SetField(sessionlog.FieldDurationMin, field.TypeInt, value)
		_node.DurationMin = value
	}
	if value, ok := _c.mutation.Rpe(); ok {
		_spec.SetField(sessionlog.FieldRpe, field.TypeInt, value)
		_node.Rpe = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(sessionlog.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := _c.mutation.Performance(); ok {
		_spec.SetField(sessionlog.FieldPerformance, field.TypeJSON, value)
		_node.Performance = value
	}
	return _node, _spec
}

// SessionLogCreateBulk is the builder for creating many SessionLog entities in bulk.
type SessionLogCreateBulk struct {
	config
	err      error
	builders []*SessionLogCreate
}

// Save creates the SessionLog entities in the database.
func (_c *SessionLogCreateBulk) Save(ctx context.Context) ([]*SessionLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionLogMutation)
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
func (_c *SessionLogCreateBulk) SaveX(ctx context.Context) []*SessionLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
