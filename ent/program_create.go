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
	"github.com/topspinhq/topspin/ent/program"
)

// ProgramCreate is the builder for creating a Program entity.
type ProgramCreate struct {
	config
	mutation *ProgramMutation
	hooks    []Hook
}

// SetProgramID sets the "program_id" field.
func (_c *ProgramCreate) SetProgramID(v string) *ProgramCreate {
	_c.mutation.SetProgramID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *ProgramCreate) SetTitle(v string) *ProgramCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ProgramCreate) SetDescription(v string) *ProgramCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetAssignedBy sets the "assigned_by" field.
func (_c *ProgramCreate) SetAssignedBy(v string) *ProgramCreate {
	_c.mutation.SetAssignedBy(v)
	return _c
}

// SetAssignedTo sets the "assigned_to" field.
func (_c *ProgramCreate) SetAssignedTo(v string) *ProgramCreate {
	_c.mutation.SetAssignedTo(v)
	return _c
}

// SetSessions sets the "sessions" field.
func (_c *ProgramCreate) SetSessions(v json.RawMessage) *ProgramCreate {
	_c.mutation.SetSessions(v)
	return _c
}

// SetConfig sets the "config" field.
func (_c *ProgramCreate) SetConfig(v json.RawMessage) *ProgramCreate {
	_c.mutation.SetConfig(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ProgramCreate) SetStatus(v string) *ProgramCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ProgramCreate) SetNillableStatus(v *string) *ProgramCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCompleted sets the "completed" field.
func (_c *ProgramCreate) SetCompleted(v bool) *ProgramCreate {
	_c.mutation.SetCompleted(v)
	return _c
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_c *ProgramCreate) SetNillableCompleted(v *bool) *ProgramCreate {
	if v != nil {
		_c.SetCompleted(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProgramCreate) SetCreatedAt(v time.Time) *ProgramCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// Mutation returns the ProgramMutation object of the builder.
func (_c *ProgramCreate) Mutation() *ProgramMutation {
	return _c.mutation
}

// Save creates the Program in the database.
func (_c *ProgramCreate) Save(ctx context.Context) (*Program, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProgramCreate) SaveX(ctx context.Context) *Program {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgramCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgramCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProgramCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := program.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Completed(); !ok {
		v := program.DefaultCompleted
		_c.mutation.SetCompleted(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProgramCreate) check() error {
	if _, ok := _c.mutation.ProgramID(); !ok {
		return &ValidationError{Name: "program_id", err: errors.New(`ent: missing required field "Program.program_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Program.title"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Program.description"`)}
	}
	if _, ok := _c.mutation.AssignedBy(); !ok {
		return &ValidationError{Name: "assigned_by", err: errors.New(`ent: missing required field "Program.assigned_by"`)}
	}
	if _, ok := _c.mutation.AssignedTo(); !ok {
		return &ValidationError{Name: "assigned_to", err: errors.New(`ent: missing required field "Program.assigned_to"`)}
	}
	if _, ok := _c.mutation.Sessions(); !ok {
		return &ValidationError{Name: "sessions", err: errors.New(`ent: missing required field "Program.sessions"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Program.status"`)}
	}
	if _, ok := _c.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`ent: missing required field "Program.completed"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Program.created_at"`)}
	}
	return nil
}

func (_c *ProgramCreate) sqlSave(ctx context.Context) (*Program, error) {
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

func (_c *ProgramCreate) createSpec() (*Program, *sqlgraph.CreateSpec) {
	var (
		_node = &Program{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(program.Table, sqlgraph.NewFieldSpec(program.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ProgramID(); ok {
		_spec.SetField(program.FieldProgramID, field.TypeString, value)
		_node.ProgramID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(program.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(program.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.AssignedBy(); ok {
		_spec.SetField(program.FieldAssignedBy, field.TypeString, value)
		_node.AssignedBy = value
	}
	if value, ok := _c.mutation.AssignedTo(); ok {
		_spec.SetField(program.FieldAssignedTo, field.TypeString, value)
		_node.AssignedTo = value
	}
	if value, ok := _c.mutation.Sessions(); ok {
		_spec.SetField(program.FieldSessions, field.TypeJSON, value)
		_node.Sessions = value
	}
	if value, ok := _c.mutation.Config(); ok {
		_spec.SetField(program.FieldConfig, field.TypeJSON, value)
		_node.Config = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(program.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Completed(); ok {
		_spec.SetField(program.FieldCompleted, field.TypeBool, value)
		_node.Completed = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(program.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ProgramCreateBulk is the builder for creating many Program entities in bulk.
type ProgramCreateBulk struct {
	config
	err      error
	builders []*ProgramCreate
}

// Save creates the Program entities in the database.
func (_c *ProgramCreateBulk) Save(ctx context.Context) ([]*Program, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Program, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProgramMutation)
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
func (_c *ProgramCreateBulk) SaveX(ctx context.Context) []*Program {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgramCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgramCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
