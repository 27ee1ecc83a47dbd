// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/contestregistration"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/immersionlog"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/logattachment"
)

// LogAttachmentCreate is the builder for creating a LogAttachment entity.
type LogAttachmentCreate struct {
	config
	mutation *LogAttachmentMutation
	hooks    []Hook
}

// SetLogID sets the "log_id" field.
func (lac *LogAttachmentCreate) SetLogID(u uuid.UUID) *LogAttachmentCreate {
	lac.mutation.SetLogID(u)
	return lac
}

// SetRegistrationID sets the "registration_id" field.
func (lac *LogAttachmentCreate) SetRegistrationID(u uuid.UUID) *LogAttachmentCreate {
	lac.mutation.SetRegistrationID(u)
	return lac
}

// SetLog sets the "log" edge to the ImmersionLog entity.
func (lac *LogAttachmentCreate) SetLog(i *ImmersionLog) *LogAttachmentCreate {
	return lac.SetLogID(i.ID)
}

// SetRegistration sets the "registration" edge to the ContestRegistration entity.
func (lac *LogAttachmentCreate) SetRegistration(c *ContestRegistration) *LogAttachmentCreate {
	return lac.SetRegistrationID(c.ID)
}

// Mutation returns the LogAttachmentMutation object of the builder.
func (lac *LogAttachmentCreate) Mutation() *LogAttachmentMutation {
	return lac.mutation
}

// Save creates the LogAttachment in the database.
func (lac *LogAttachmentCreate) Save(ctx context.Context) (*LogAttachment, error) {
	return withHooks(ctx, lac.sqlSave, lac.mutation, lac.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (lac *LogAttachmentCreate) SaveX(ctx context.Context) *LogAttachment {
	v, err := lac.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (lac *LogAttachmentCreate) Exec(ctx context.Context) error {
	_, err := lac.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (lac *LogAttachmentCreate) ExecX(ctx context.Context) {
	if err := lac.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (lac *LogAttachmentCreate) check() error {
	if _, ok := lac.mutation.LogID(); !ok {
		return &ValidationError{Name: "log_id", err: errors.New(`ent: missing required field "LogAttachment.log_id"`)}
	}
	if _, ok := lac.mutation.RegistrationID(); !ok {
		return &ValidationError{Name: "registration_id", err: errors.New(`ent: missing required field "LogAttachment.registration_id"`)}
	}
	if len(lac.mutation.LogIDs()) == 0 {
		return &ValidationError{Name: "log", err: errors.New(`ent: missing required edge "LogAttachment.log"`)}
	}
	if len(lac.mutation.RegistrationIDs()) == 0 {
		return &ValidationError{Name: "registration", err: errors.New(`ent: missing required edge "LogAttachment.registration"`)}
	}
	return nil
}

func (lac *LogAttachmentCreate) sqlSave(ctx context.Context) (*LogAttachment, error) {
	if err := lac.check(); err != nil {
		return nil, err
	}
	_node, _spec := lac.createSpec()
	if err := sqlgraph.CreateNode(ctx, lac.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	lac.mutation.id = &_node.ID
	lac.mutation.done = true
	return _node, nil
}

func (lac *LogAttachmentCreate) createSpec() (*LogAttachment, *sqlgraph.CreateSpec) {
	var (
		_node = &LogAttachment{config: lac.config}
		_spec = sqlgraph.NewCreateSpec(logattachment.Table, sqlgraph.NewFieldSpec(logattachment.FieldID, field.TypeInt))
	)
	if nodes := lac.mutation.LogIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   logattachment.LogTable,
			Columns: []string{logattachment.LogColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(immersionlog.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.LogID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := lac.mutation.RegistrationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   logattachment.RegistrationTable,
			Columns: []string{logattachment.RegistrationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contestregistration.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RegistrationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// LogAttachmentCreateBulk is the builder for creating many LogAttachment entities in bulk.
type LogAttachmentCreateBulk struct {
	config
	err      error
	builders []*LogAttachmentCreate
}

// Save creates the LogAttachment entities in the database.
func (lacb *LogAttachmentCreateBulk) Save(ctx context.Context) ([]*LogAttachment, error) {
	if lacb.err != nil {
		return nil, lacb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(lacb.builders))
	nodes := make([]*LogAttachment, len(lacb.builders))
	mutators := make([]Mutator, len(lacb.builders))
	for i := range lacb.builders {
		func(i int, root context.Context) {
			builder := lacb.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LogAttachmentMutation)
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
					_, err = mutators[i+1].Mutate(root, lacb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, lacb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, lacb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (lacb *LogAttachmentCreateBulk) SaveX(ctx context.Context) []*LogAttachment {
	v, err := lacb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (lacb *LogAttachmentCreateBulk) Exec(ctx context.Context) error {
	_, err := lacb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (lacb *LogAttachmentCreateBulk) ExecX(ctx context.Context) {
	if err := lacb.Exec(ctx); err != nil {
		panic(err)
	}
}
