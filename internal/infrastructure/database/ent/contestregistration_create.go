// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/contest"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/contestregistration"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/logattachment"
)

// ContestRegistrationCreate is the builder for creating a ContestRegistration entity.
type ContestRegistrationCreate struct {
	config
	mutation *ContestRegistrationMutation
	hooks    []Hook
}

// SetContestID sets the "contest_id" field.
func (crc *ContestRegistrationCreate) SetContestID(u uuid.UUID) *ContestRegistrationCreate {
	crc.mutation.SetContestID(u)
	return crc
}

// SetUserID sets the "user_id" field.
func (crc *ContestRegistrationCreate) SetUserID(i int64) *ContestRegistrationCreate {
	crc.mutation.SetUserID(i)
	return crc
}

// SetUserDisplayName sets the "user_display_name" field.
func (crc *ContestRegistrationCreate) SetUserDisplayName(s string) *ContestRegistrationCreate {
	crc.mutation.SetUserDisplayName(s)
	return crc
}

// SetNillableUserDisplayName sets the "user_display_name" field if the given value is not nil.
func (crc *ContestRegistrationCreate) SetNillableUserDisplayName(s *string) *ContestRegistrationCreate {
	if s != nil {
		crc.SetUserDisplayName(*s)
	}
	return crc
}

// SetLanguages sets the "languages" field.
func (crc *ContestRegistrationCreate) SetLanguages(s []string) *ContestRegistrationCreate {
	crc.mutation.SetLanguages(s)
	return crc
}

// SetCreatedAt sets the "created_at" field.
func (crc *ContestRegistrationCreate) SetCreatedAt(t time.Time) *ContestRegistrationCreate {
	crc.mutation.SetCreatedAt(t)
	return crc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (crc *ContestRegistrationCreate) SetNillableCreatedAt(t *time.Time) *ContestRegistrationCreate {
	if t != nil {
		crc.SetCreatedAt(*t)
	}
	return crc
}

// SetUpdatedAt sets the "updated_at" field.
func (crc *ContestRegistrationCreate) SetUpdatedAt(t time.Time) *ContestRegistrationCreate {
	crc.mutation.SetUpdatedAt(t)
	return crc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (crc *ContestRegistrationCreate) SetNillableUpdatedAt(t *time.Time) *ContestRegistrationCreate {
	if t != nil {
		crc.SetUpdatedAt(*t)
	}
	return crc
}

// SetID sets the "id" field.
func (crc *ContestRegistrationCreate) SetID(u uuid.UUID) *ContestRegistrationCreate {
	crc.mutation.SetID(u)
	return crc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (crc *ContestRegistrationCreate) SetNillableID(u *uuid.UUID) *ContestRegistrationCreate {
	if u != nil {
		crc.SetID(*u)
	}
	return crc
}

// SetContest sets the "contest" edge to the Contest entity.
func (crc *ContestRegistrationCreate) SetContest(c *Contest) *ContestRegistrationCreate {
	return crc.SetContestID(c.ID)
}

// AddAttachmentIDs adds the "attachments" edge to the LogAttachment entity by IDs.
func (crc *ContestRegistrationCreate) AddAttachmentIDs(ids ...int) *ContestRegistrationCreate {
	crc.mutation.AddAttachmentIDs(ids...)
	return crc
}

// AddAttachments adds the "attachments" edges to the LogAttachment entity.
func (crc *ContestRegistrationCreate) AddAttachments(l ...*LogAttachment) *ContestRegistrationCreate {
	ids := make([]int, len(l))
	for i := range l {
		ids[i] = l[i].ID
	}
	return crc.AddAttachmentIDs(ids...)
}

// Mutation returns the ContestRegistrationMutation object of the builder.
func (crc *ContestRegistrationCreate) Mutation() *ContestRegistrationMutation {
	return crc.mutation
}

// Save creates the ContestRegistration in the database.
func (crc *ContestRegistrationCreate) Save(ctx context.Context) (*ContestRegistration, error) {
	crc.defaults()
	return withHooks(ctx, crc.sqlSave, crc.mutation, crc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (crc *ContestRegistrationCreate) SaveX(ctx context.Context) *ContestRegistration {
	v, err := crc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (crc *ContestRegistrationCreate) Exec(ctx context.Context) error {
	_, err := crc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (crc *ContestRegistrationCreate) ExecX(ctx context.Context) {
	if err := crc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (crc *ContestRegistrationCreate) defaults() {
	if _, ok := crc.mutation.UserDisplayName(); !ok {
		v := contestregistration.DefaultUserDisplayName
		crc.mutation.SetUserDisplayName(v)
	}
	if _, ok := crc.mutation.Languages(); !ok {
		v := contestregistration.DefaultLanguages
		crc.mutation.SetLanguages(v)
	}
	if _, ok := crc.mutation.CreatedAt(); !ok {
		v := contestregistration.DefaultCreatedAt()
		crc.mutation.SetCreatedAt(v)
	}
	if _, ok := crc.mutation.UpdatedAt(); !ok {
		v := contestregistration.DefaultUpdatedAt()
		crc.mutation.SetUpdatedAt(v)
	}
	if _, ok := crc.mutation.ID(); !ok {
		v := contestregistration.DefaultID()
		crc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (crc *ContestRegistrationCreate) check() error {
	if _, ok := crc.mutation.ContestID(); !ok {
		return &ValidationError{Name: "contest_id", err: errors.New(`ent: missing required field "ContestRegistration.contest_id"`)}
	}
	if _, ok := crc.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ContestRegistration.user_id"`)}
	}
	if _, ok := crc.mutation.UserDisplayName(); !ok {
		return &ValidationError{Name: "user_display_name", err: errors.New(`ent: missing required field "ContestRegistration.user_display_name"`)}
	}
	if _, ok := crc.mutation.Languages(); !ok {
		return &ValidationError{Name: "languages", err: errors.New(`ent: missing required field "ContestRegistration.languages"`)}
	}
	if _, ok := crc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ContestRegistration.created_at"`)}
	}
	if _, ok := crc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ContestRegistration.updated_at"`)}
	}
	if len(crc.mutation.ContestIDs()) == 0 {
		return &ValidationError{Name: "contest", err: errors.New(`ent: missing required edge "ContestRegistration.contest"`)}
	}
	return nil
}

func (crc *ContestRegistrationCreate) sqlSave(ctx context.Context) (*ContestRegistration, error) {
	if err := crc.check(); err != nil {
		return nil, err
	}
	_node, _spec := crc.createSpec()
	if err := sqlgraph.CreateNode(ctx, crc.driver, _spec); err != nil {
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
	crc.mutation.id = &_node.ID
	crc.mutation.done = true
	return _node, nil
}

func (crc *ContestRegistrationCreate) createSpec() (*ContestRegistration, *sqlgraph.CreateSpec) {
	var (
		_node = &ContestRegistration{config: crc.config}
		_spec = sqlgraph.NewCreateSpec(contestregistration.Table, sqlgraph.NewFieldSpec(contestregistration.FieldID, field.TypeUUID))
	)
	if id, ok := crc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := crc.mutation.UserID(); ok {
		_spec.SetField(contestregistration.FieldUserID, field.TypeInt64, value)
		_node.UserID = value
	}
	if value, ok := crc.mutation.UserDisplayName(); ok {
		_spec.SetField(contestregistration.FieldUserDisplayName, field.TypeString, value)
		_node.UserDisplayName = value
	}
	if value, ok := crc.mutation.Languages(); ok {
		_spec.SetField(contestregistration.FieldLanguages, field.TypeJSON, value)
		_node.Languages = value
	}
	if value, ok := crc.mutation.CreatedAt(); ok {
		_spec.SetField(contestregistration.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := crc.mutation.UpdatedAt(); ok {
		_spec.SetField(contestregistration.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := crc.mutation.ContestIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contestregistration.ContestTable,
			Columns: []string{contestregistration.ContestColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contest.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ContestID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := crc.mutation.AttachmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contestregistration.AttachmentsTable,
			Columns: []string{contestregistration.AttachmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(logattachment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ContestRegistrationCreateBulk is the builder for creating many ContestRegistration entities in bulk.
type ContestRegistrationCreateBulk struct {
	config
	err      error
	builders []*ContestRegistrationCreate
}

// Save creates the ContestRegistration entities in the database.
func (crcb *ContestRegistrationCreateBulk) Save(ctx context.Context) ([]*ContestRegistration, error) {
	if crcb.err != nil {
		return nil, crcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(crcb.builders))
	nodes := make([]*ContestRegistration, len(crcb.builders))
	mutators := make([]Mutator, len(crcb.builders))
	for i := range crcb.builders {
		func(i int, root context.Context) {
			builder := crcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContestRegistrationMutation)
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
					_, err = mutators[i+1].Mutate(root, crcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, crcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, crcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (crcb *ContestRegistrationCreateBulk) SaveX(ctx context.Context) []*ContestRegistration {
	v, err := crcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (crcb *ContestRegistrationCreateBulk) Exec(ctx context.Context) error {
	_, err := crcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (crcb *ContestRegistrationCreateBulk) ExecX(ctx context.Context) {
	if err := crcb.Exec(ctx); err != nil {
		panic(err)
	}
}
