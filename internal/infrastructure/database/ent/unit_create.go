// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/unit"
)

// UnitCreate is the builder for creating a Unit entity.
type UnitCreate struct {
	config
	mutation *UnitMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (uc *UnitCreate) SetName(s string) *UnitCreate {
	uc.mutation.SetName(s)
	return uc
}

// SetActivityID sets the "activity_id" field.
func (uc *UnitCreate) SetActivityID(i int32) *UnitCreate {
	uc.mutation.SetActivityID(i)
	return uc
}

// SetLanguageCode sets the "language_code" field.
func (uc *UnitCreate) SetLanguageCode(s string) *UnitCreate {
	uc.mutation.SetLanguageCode(s)
	return uc
}

// SetNillableLanguageCode sets the "language_code" field if the given value is not nil.
func (uc *UnitCreate) SetNillableLanguageCode(s *string) *UnitCreate {
	if s != nil {
		uc.SetLanguageCode(*s)
	}
	return uc
}

// SetModifier sets the "modifier" field.
func (uc *UnitCreate) SetModifier(f float64) *UnitCreate {
	uc.mutation.SetModifier(f)
	return uc
}

// SetID sets the "id" field.
func (uc *UnitCreate) SetID(u uuid.UUID) *UnitCreate {
	uc.mutation.SetID(u)
	return uc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (uc *UnitCreate) SetNillableID(u *uuid.UUID) *UnitCreate {
	if u != nil {
		uc.SetID(*u)
	}
	return uc
}

// Mutation returns the UnitMutation object of the builder.
func (uc *UnitCreate) Mutation() *UnitMutation {
	return uc.mutation
}

// Save creates the Unit in the database.
func (uc *UnitCreate) Save(ctx context.Context) (*Unit, error) {
	uc.defaults()
	return withHooks(ctx, uc.sqlSave, uc.mutation, uc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (uc *UnitCreate) SaveX(ctx context.Context) *Unit {
	v, err := uc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (uc *UnitCreate) Exec(ctx context.Context) error {
	_, err := uc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (uc *UnitCreate) ExecX(ctx context.Context) {
	if err := uc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (uc *UnitCreate) defaults() {
	if _, ok := uc.mutation.ID(); !ok {
		v := unit.DefaultID()
		uc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (uc *UnitCreate) check() error {
	if _, ok := uc.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Unit.name"`)}
	}
	if v, ok := uc.mutation.Name(); ok {
		if err := unit.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Unit.name": %w`, err)}
		}
	}
	if _, ok := uc.mutation.ActivityID(); !ok {
		return &ValidationError{Name: "activity_id", err: errors.New(`ent: missing required field "Unit.activity_id"`)}
	}
	if v, ok := uc.mutation.LanguageCode(); ok {
		if err := unit.LanguageCodeValidator(v); err != nil {
			return &ValidationError{Name: "language_code", err: fmt.Errorf(`ent: validator failed for field "Unit.language_code": %w`, err)}
		}
	}
	if _, ok := uc.mutation.Modifier(); !ok {
		return &ValidationError{Name: "modifier", err: errors.New(`ent: missing required field "Unit.modifier"`)}
	}
	return nil
}

func (uc *UnitCreate) sqlSave(ctx context.Context) (*Unit, error) {
	if err := uc.check(); err != nil {
		return nil, err
	}
	_node, _spec := uc.createSpec()
	if err := sqlgraph.CreateNode(ctx, uc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	uc.mutation.id = &_node.ID
	uc.mutation.done = true
	return _node, nil
}

func (uc *UnitCreate) createSpec() (*Unit, *sqlgraph.CreateSpec) {
	var (
		_node = &Unit{config: uc.config}
		_spec = sqlgraph.NewCreateSpec(unit.Table, sqlgraph.NewFieldSpec(unit.FieldID, field.TypeUUID))
	)
	if id, ok := uc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := uc.mutation.Name(); ok {
		_spec.SetField(unit.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := uc.mutation.ActivityID(); ok {
		_spec.SetField(unit.FieldActivityID, field.TypeInt32, value)
		_node.ActivityID = value
	}
	if value, ok := uc.mutation.LanguageCode(); ok {
		_spec.SetField(unit.FieldLanguageCode, field.TypeString, value)
		_node.LanguageCode = &value
	}
	if value, ok := uc.mutation.Modifier(); ok {
		_spec.SetField(unit.FieldModifier, field.TypeFloat64, value)
		_node.Modifier = value
	}
	return _node, _spec
}

// UnitCreateBulk is the builder for creating many Unit entities in bulk.
type UnitCreateBulk struct {
	config
	err      error
	builders []*UnitCreate
}

// Save creates the Unit entities in the database.
func (ucb *UnitCreateBulk) Save(ctx context.Context) ([]*Unit, error) {
	if ucb.err != nil {
		return nil, ucb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(ucb.builders))
	nodes := make([]*Unit, len(ucb.builders))
	mutators := make([]Mutator, len(ucb.builders))
	for i := range ucb.builders {
		func(i int, root context.Context) {
			builder := ucb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UnitMutation)
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
					_, err = mutators[i+1].Mutate(root, ucb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, ucb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
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
		if _, err := mutators[0].Mutate(ctx, ucb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (ucb *UnitCreateBulk) SaveX(ctx context.Context) []*Unit {
	v, err := ucb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ucb *UnitCreateBulk) Exec(ctx context.Context) error {
	_, err := ucb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ucb *UnitCreateBulk) ExecX(ctx context.Context) {
	if err := ucb.Exec(ctx); err != nil {
		panic(err)
	}
}
