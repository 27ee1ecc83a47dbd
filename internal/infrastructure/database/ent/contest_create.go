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
)

// ContestCreate is the builder for creating a Contest entity.
type ContestCreate struct {
	config
	mutation *ContestMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (cc *ContestCreate) SetTitle(s string) *ContestCreate {
	cc.mutation.SetTitle(s)
	return cc
}

// SetDescription sets the "description" field.
func (cc *ContestCreate) SetDescription(s string) *ContestCreate {
	cc.mutation.SetDescription(s)
	return cc
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (cc *ContestCreate) SetNillableDescription(s *string) *ContestCreate {
	if s != nil {
		cc.SetDescription(*s)
	}
	return cc
}

// SetContestStart sets the "contest_start" field.
func (cc *ContestCreate) SetContestStart(t time.Time) *ContestCreate {
	cc.mutation.SetContestStart(t)
	return cc
}

// SetContestEnd sets the "contest_end" field.
func (cc *ContestCreate) SetContestEnd(t time.Time) *ContestCreate {
	cc.mutation.SetContestEnd(t)
	return cc
}

// SetRegistrationEnd sets the "registration_end" field.
func (cc *ContestCreate) SetRegistrationEnd(t time.Time) *ContestCreate {
	cc.mutation.SetRegistrationEnd(t)
	return cc
}

// SetOfficial sets the "official" field.
func (cc *ContestCreate) SetOfficial(b bool) *ContestCreate {
	cc.mutation.SetOfficial(b)
	return cc
}

// SetNillableOfficial sets the "official" field if the given value is not nil.
func (cc *ContestCreate) SetNillableOfficial(b *bool) *ContestCreate {
	if b != nil {
		cc.SetOfficial(*b)
	}
	return cc
}

// SetPrivate sets the "private" field.
func (cc *ContestCreate) SetPrivate(b bool) *ContestCreate {
	cc.mutation.SetPrivate(b)
	return cc
}

// SetNillablePrivate sets the "private" field if the given value is not nil.
func (cc *ContestCreate) SetNillablePrivate(b *bool) *ContestCreate {
	if b != nil {
		cc.SetPrivate(*b)
	}
	return cc
}

// SetAllowedActivities sets the "allowed_activities" field.
func (cc *ContestCreate) SetAllowedActivities(i []int32) *ContestCreate {
	cc.mutation.SetAllowedActivities(i)
	return cc
}

// SetAllowedLanguages sets the "allowed_languages" field.
func (cc *ContestCreate) SetAllowedLanguages(s []string) *ContestCreate {
	cc.mutation.SetAllowedLanguages(s)
	return cc
}

// SetCreatedAt sets the "created_at" field.
func (cc *ContestCreate) SetCreatedAt(t time.Time) *ContestCreate {
	cc.mutation.SetCreatedAt(t)
	return cc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (cc *ContestCreate) SetNillableCreatedAt(t *time.Time) *ContestCreate {
	if t != nil {
		cc.SetCreatedAt(*t)
	}
	return cc
}

// SetUpdatedAt sets the "updated_at" field.
func (cc *ContestCreate) SetUpdatedAt(t time.Time) *ContestCreate {
	cc.mutation.SetUpdatedAt(t)
	return cc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (cc *ContestCreate) SetNillableUpdatedAt(t *time.Time) *ContestCreate {
	if t != nil {
		cc.SetUpdatedAt(*t)
	}
	return cc
}

// SetID sets the "id" field.
func (cc *ContestCreate) SetID(u uuid.UUID) *ContestCreate {
	cc.mutation.SetID(u)
	return cc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (cc *ContestCreate) SetNillableID(u *uuid.UUID) *ContestCreate {
	if u != nil {
		cc.SetID(*u)
	}
	return cc
}

// AddRegistrationIDs adds the "registrations" edge to the ContestRegistration entity by IDs.
func (cc *ContestCreate) AddRegistrationIDs(ids ...uuid.UUID) *ContestCreate {
	cc.mutation.AddRegistrationIDs(ids...)
	return cc
}

// AddRegistrations adds the "registrations" edges to the ContestRegistration entity.
func (cc *ContestCreate) AddRegistrations(c ...*ContestRegistration) *ContestCreate {
	ids := make([]uuid.UUID, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return cc.AddRegistrationIDs(ids...)
}

// Mutation returns the ContestMutation object of the builder.
func (cc *ContestCreate) Mutation() *ContestMutation {
	return cc.mutation
}

// Save creates the Contest in the database.
func (cc *ContestCreate) Save(ctx context.Context) (*Contest, error) {
	cc.defaults()
	return withHooks(ctx, cc.sqlSave, cc.mutation, cc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (cc *ContestCreate) SaveX(ctx context.Context) *Contest {
	v, err := cc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (cc *ContestCreate) Exec(ctx context.Context) error {
	_, err := cc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cc *ContestCreate) ExecX(ctx context.Context) {
	if err := cc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cc *ContestCreate) defaults() {
	if _, ok := cc.mutation.Description(); !ok {
		v := contest.DefaultDescription
		cc.mutation.SetDescription(v)
	}
	if _, ok := cc.mutation.Official(); !ok {
		v := contest.DefaultOfficial
		cc.mutation.SetOfficial(v)
	}
	if _, ok := cc.mutation.Private(); !ok {
		v := contest.DefaultPrivate
		cc.mutation.SetPrivate(v)
	}
	if _, ok := cc.mutation.AllowedActivities(); !ok {
		v := contest.DefaultAllowedActivities
		cc.mutation.SetAllowedActivities(v)
	}
	if _, ok := cc.mutation.CreatedAt(); !ok {
		v := contest.DefaultCreatedAt()
		cc.mutation.SetCreatedAt(v)
	}
	if _, ok := cc.mutation.UpdatedAt(); !ok {
		v := contest.DefaultUpdatedAt()
		cc.mutation.SetUpdatedAt(v)
	}
	if _, ok := cc.mutation.ID(); !ok {
		v := contest.DefaultID()
		cc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cc *ContestCreate) check() error {
	if _, ok := cc.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Contest.title"`)}
	}
	if v, ok := cc.mutation.Title(); ok {
		if err := contest.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Contest.title": %w`, err)}
		}
	}
	if _, ok := cc.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Contest.description"`)}
	}
	if _, ok := cc.mutation.ContestStart(); !ok {
		return &ValidationError{Name: "contest_start", err: errors.New(`ent: missing required field "Contest.contest_start"`)}
	}
	if _, ok := cc.mutation.ContestEnd(); !ok {
		return &ValidationError{Name: "contest_end", err: errors.New(`ent: missing required field "Contest.contest_end"`)}
	}
	if _, ok := cc.mutation.RegistrationEnd(); !ok {
		return &ValidationError{Name: "registration_end", err: errors.New(`ent: missing required field "Contest.registration_end"`)}
	}
	if _, ok := cc.mutation.Official(); !ok {
		return &ValidationError{Name: "official", err: errors.New(`ent: missing required field "Contest.official"`)}
	}
	if _, ok := cc.mutation.Private(); !ok {
		return &ValidationError{Name: "private", err: errors.New(`ent: missing required field "Contest.private"`)}
	}
	if _, ok := cc.mutation.AllowedActivities(); !ok {
		return &ValidationError{Name: "allowed_activities", err: errors.New(`ent: missing required field "Contest.allowed_activities"`)}
	}
	if _, ok := cc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Contest.created_at"`)}
	}
	if _, ok := cc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Contest.updated_at"`)}
	}
	return nil
}

func (cc *ContestCreate) sqlSave(ctx context.Context) (*Contest, error) {
	if err := cc.check(); err != nil {
		return nil, err
	}
	_node, _spec := cc.createSpec()
	if err := sqlgraph.CreateNode(ctx, cc.driver, _spec); err != nil {
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
	cc.mutation.id = &_node.ID
	cc.mutation.done = true
	return _node, nil
}

func (cc *ContestCreate) createSpec() (*Contest, *sqlgraph.CreateSpec) {
	var (
		_node = &Contest{config: cc.config}
		_spec = sqlgraph.NewCreateSpec(contest.Table, sqlgraph.NewFieldSpec(contest.FieldID, field.TypeUUID))
	)
	if id, ok := cc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := cc.mutation.Title(); ok {
		_spec.SetField(contest.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := cc.mutation.Description(); ok {
		_spec.SetField(contest.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := cc.mutation.ContestStart(); ok {
		_spec.SetField(contest.FieldContestStart, field.TypeTime, value)
		_node.ContestStart = value
	}
	if value, ok := cc.mutation.ContestEnd(); ok {
		_spec.SetField(contest.FieldContestEnd, field.TypeTime, value)
		_node.ContestEnd = value
	}
	if value, ok := cc.mutation.RegistrationEnd(); ok {
		_spec.SetField(contest.FieldRegistrationEnd, field.TypeTime, value)
		_node.RegistrationEnd = value
	}
	if value, ok := cc.mutation.Official(); ok {
		_spec.SetField(contest.FieldOfficial, field.TypeBool, value)
		_node.Official = value
	}
	if value, ok := cc.mutation.Private(); ok {
		_spec.SetField(contest.FieldPrivate, field.TypeBool, value)
		_node.Private = value
	}
	if value, ok := cc.mutation.AllowedActivities(); ok {
		_spec.SetField(contest.FieldAllowedActivities, field.TypeJSON, value)
		_node.AllowedActivities = value
	}
	if value, ok := cc.mutation.AllowedLanguages(); ok {
		_spec.SetField(contest.FieldAllowedLanguages, field.TypeJSON, value)
		_node.AllowedLanguages = value
	}
	if value, ok := cc.mutation.CreatedAt(); ok {
		_spec.SetField(contest.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := cc.mutation.UpdatedAt(); ok {
		_spec.SetField(contest.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := cc.mutation.RegistrationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contest.RegistrationsTable,
			Columns: []string{contest.RegistrationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contestregistration.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ContestCreateBulk is the builder for creating many Contest entities in bulk.
type ContestCreateBulk struct {
	config
	err      error
	builders []*ContestCreate
}

// Save creates the Contest entities in the database.
func (ccb *ContestCreateBulk) Save(ctx context.Context) ([]*Contest, error) {
	if ccb.err != nil {
		return nil, ccb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(ccb.builders))
	nodes := make([]*Contest, len(ccb.builders))
	mutators := make([]Mutator, len(ccb.builders))
	for i := range ccb.builders {
		func(i int, root context.Context) {
			builder := ccb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContestMutation)
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
					_, err = mutators[i+1].Mutate(root, ccb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, ccb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, ccb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (ccb *ContestCreateBulk) SaveX(ctx context.Context) []*Contest {
	v, err := ccb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ccb *ContestCreateBulk) Exec(ctx context.Context) error {
	_, err := ccb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ccb *ContestCreateBulk) ExecX(ctx context.Context) {
	if err := ccb.Exec(ctx); err != nil {
		panic(err)
	}
}
