// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/topspinhq/topspin/ent/drill"
)

// DrillCreate is the builder for creating a Drill entity.
type DrillCreate struct {
	config
	mutation *DrillMutation
	hooks    []Hook
}

// SetDrillID sets the "drill_id" field.
func (_c *DrillCreate) SetDrillID(v string) *DrillCreate {
	_c.mutation.SetDrillID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *DrillCreate) SetName(v string) *DrillCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *DrillCreate) SetCategory(v string) *DrillCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *DrillCreate) SetDifficulty(v string) *DrillCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *DrillCreate) SetDescription(v string) *DrillCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetDefaultDurationMin sets the "default_duration_min" field.
func (_c *DrillCreate) SetDefaultDurationMin(v int) *DrillCreate {
	_c.mutation.SetDefaultDurationMin(v)
	return _c
}

// Mutation returns the DrillMutation object of the builder.
func (_c *DrillCreate) Mutation() *DrillMutation {
	return _c.mutation
}

// Save creates the Drill in the database.
func (_c *DrillCreate) Save(ctx context.Context) (*Drill, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DrillCreate) SaveX(ctx context.Context) *Drill {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DrillCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DrillCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DrillCreate) check() error {
	if _, ok := _c.mutation.DrillID(); !ok {
		return &ValidationError{Name: "drill_id", err: errors.New(`ent: missing required field "Drill.drill_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Drill.name"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "Drill.category"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "Drill.difficulty"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Drill.description"`)}
	}
	if _, ok := _c.mutation.DefaultDurationMin(); !ok {
		return &ValidationError{Name: "default_duration_min", err: errors.New(`ent: missing required field "Drill.default_duration_min"`)}
	}
	if v, ok := _c.mutation.DefaultDurationMin(); ok {
		if err := drill.DefaultDurationMinValidator(v); err != nil {
			return &ValidationError{Name: "default_duration_min", err: fmt.Errorf(`ent: validator failed for field "Drill.default_duration_min": %w`, err)}
		}
	}
	return nil
}

func (_c *DrillCreate) sqlSave(ctx context.Context) (*Drill, error) {
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

func (_c *DrillCreate) createSpec() (*Drill, *sqlgraph.CreateSpec) {
	var (
		_node = &Drill{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(drill.Table, sqlgraph.NewFieldSpec(drill.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.DrillID(); ok {
		_spec.SetField(drill.FieldDrillID, field.TypeString, value)
		_node.DrillID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(drill.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(drill.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(drill.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(drill.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.DefaultDurationMin(); ok {
		_spec.SetField(drill.FieldDefaultDurationMin, field.TypeInt, value)
		_node.DefaultDurationMin = value
	}
	return _node, _spec
}

// DrillCreateBulk is the builder for creating many Drill entities in bulk.
type DrillCreateBulk struct {
	config
	err      error
	builders []*DrillCreate
}

// Save creates the Drill entities in the database.
func (_c *DrillCreateBulk) Save(ctx context.Context) ([]*Drill, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Drill, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DrillMutation)
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
func (_c *DrillCreateBulk) SaveX(ctx context.Context) []*Drill {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DrillCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DrillCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
