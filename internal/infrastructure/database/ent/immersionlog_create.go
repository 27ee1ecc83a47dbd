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
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/immersionlog"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/logattachment"
)

// ImmersionLogCreate is the builder for creating a ImmersionLog entity.
type ImmersionLogCreate struct {
	config
	mutation *ImmersionLogMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (ilc *ImmersionLogCreate) SetUserID(i int64) *ImmersionLogCreate {
	ilc.mutation.SetUserID(i)
	return ilc
}

// SetLanguageCode sets the "language_code" field.
func (ilc *ImmersionLogCreate) SetLanguageCode(s string) *ImmersionLogCreate {
	ilc.mutation.SetLanguageCode(s)
	return ilc
}

// SetActivityID sets the "activity_id" field.
func (ilc *ImmersionLogCreate) SetActivityID(i int32) *ImmersionLogCreate {
	ilc.mutation.SetActivityID(i)
	return ilc
}

// SetAmount sets the "amount" field.
func (ilc *ImmersionLogCreate) SetAmount(f float64) *ImmersionLogCreate {
	ilc.mutation.SetAmount(f)
	return ilc
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (ilc *ImmersionLogCreate) SetNillableAmount(f *float64) *ImmersionLogCreate {
	if f != nil {
		ilc.SetAmount(*f)
	}
	return ilc
}

// SetUnitID sets the "unit_id" field.
func (ilc *ImmersionLogCreate) SetUnitID(u uuid.UUID) *ImmersionLogCreate {
	ilc.mutation.SetUnitID(u)
	return ilc
}

// SetNillableUnitID sets the "unit_id" field if the given value is not nil.
func (ilc *ImmersionLogCreate) SetNillableUnitID(u *uuid.UUID) *ImmersionLogCreate {
	if u != nil {
		ilc.SetUnitID(*u)
	}
	return ilc
}

// SetUnitName sets the "unit_name" field.
func (ilc *ImmersionLogCreate) SetUnitName(s string) *ImmersionLogCreate {
	ilc.mutation.SetUnitName(s)
	return ilc
}

// SetNillableUnitName sets the "unit_name" field if the given value is not nil.
func (ilc *ImmersionLogCreate) SetNillableUnitName(s *string) *ImmersionLogCreate {
	if s != nil {
		ilc.SetUnitName(*s)
	}
	return ilc
}

// SetDurationSeconds sets the "duration_seconds" field.
func (ilc *ImmersionLogCreate) SetDurationSeconds(i int64) *ImmersionLogCreate {
	ilc.mutation.SetDurationSeconds(i)
	return ilc
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (ilc *ImmersionLogCreate) SetNillableDurationSeconds(i *int64) *ImmersionLogCreate {
	if i != nil {
		ilc.SetDurationSeconds(*i)
	}
	return ilc
}

// SetScore sets the "score" field.
func (ilc *ImmersionLogCreate) SetScore(f float64) *ImmersionLogCreate {
	ilc.mutation.SetScore(f)
	return ilc
}

// SetTags sets the "tags" field.
func (ilc *ImmersionLogCreate) SetTags(s []string) *ImmersionLogCreate {
	ilc.mutation.SetTags(s)
	return ilc
}

// SetDescription sets the "description" field.
func (ilc *ImmersionLogCreate) SetDescription(s string) *ImmersionLogCreate {
	ilc.mutation.SetDescription(s)
	return ilc
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (ilc *ImmersionLogCreate) SetNillableDescription(s *string) *ImmersionLogCreate {
	if s != nil {
		ilc.SetDescription(*s)
	}
	return ilc
}

// SetCreatedAt sets the "created_at" field.
func (ilc *ImmersionLogCreate) SetCreatedAt(t time.Time) *ImmersionLogCreate {
	ilc.mutation.SetCreatedAt(t)
	return ilc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (ilc *ImmersionLogCreate) SetNillableCreatedAt(t *time.Time) *ImmersionLogCreate {
	if t != nil {
		ilc.SetCreatedAt(*t)
	}
	return ilc
}

// SetUpdatedAt sets the "updated_at" field.
func (ilc *ImmersionLogCreate) SetUpdatedAt(t time.Time) *ImmersionLogCreate {
	ilc.mutation.SetUpdatedAt(t)
	return ilc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (ilc *ImmersionLogCreate) SetNillableUpdatedAt(t *time.Time) *ImmersionLogCreate {
	if t != nil {
		ilc.SetUpdatedAt(*t)
	}
	return ilc
}

// SetID sets the "id" field.
func (ilc *ImmersionLogCreate) SetID(u uuid.UUID) *ImmersionLogCreate {
	ilc.mutation.SetID(u)
	return ilc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (ilc *ImmersionLogCreate) SetNillableID(u *uuid.UUID) *ImmersionLogCreate {
	if u != nil {
		ilc.SetID(*u)
	}
	return ilc
}

// AddAttachmentIDs adds the "attachments" edge to the LogAttachment entity by IDs.
func (ilc *ImmersionLogCreate) AddAttachmentIDs(ids ...int) *ImmersionLogCreate {
	ilc.mutation.AddAttachmentIDs(ids...)
	return ilc
}

// AddAttachments adds the "attachments" edges to the LogAttachment entity.
func (ilc *ImmersionLogCreate) AddAttachments(l ...*LogAttachment) *ImmersionLogCreate {
	ids := make([]int, len(l))
	for i := range l {
		ids[i] = l[i].ID
	}
	return ilc.AddAttachmentIDs(ids...)
}

// Mutation returns the ImmersionLogMutation object of the builder.
func (ilc *ImmersionLogCreate) Mutation() *ImmersionLogMutation {
	return ilc.mutation
}

// Save creates the ImmersionLog in the database.
func (ilc *ImmersionLogCreate) Save(ctx context.Context) (*ImmersionLog, error) {
	ilc.defaults()
	return withHooks(ctx, ilc.sqlSave, ilc.mutation, ilc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ilc *ImmersionLogCreate) SaveX(ctx context.Context) *ImmersionLog {
	v, err := ilc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ilc *ImmersionLogCreate) Exec(ctx context.Context) error {
	_, err := ilc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ilc *ImmersionLogCreate) ExecX(ctx context.Context) {
	if err := ilc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ilc *ImmersionLogCreate) defaults() {
	if _, ok := ilc.mutation.UnitName(); !ok {
		v := immersionlog.DefaultUnitName
		ilc.mutation.SetUnitName(v)
	}
	if _, ok := ilc.mutation.Tags(); !ok {
		v := immersionlog.DefaultTags
		ilc.mutation.SetTags(v)
	}
	if _, ok := ilc.mutation.Description(); !ok {
		v := immersionlog.DefaultDescription
		ilc.mutation.SetDescription(v)
	}
	if _, ok := ilc.mutation.CreatedAt(); !ok {
		v := immersionlog.DefaultCreatedAt()
		ilc.mutation.SetCreatedAt(v)
	}
	if _, ok := ilc.mutation.UpdatedAt(); !ok {
		v := immersionlog.DefaultUpdatedAt()
		ilc.mutation.SetUpdatedAt(v)
	}
	if _, ok := ilc.mutation.ID(); !ok {
		v := immersionlog.DefaultID()
		ilc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ilc *ImmersionLogCreate) check() error {
	if _, ok := ilc.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ImmersionLog.user_id"`)}
	}
	if _, ok := ilc.mutation.LanguageCode(); !ok {
		return &ValidationError{Name: "language_code", err: errors.New(`ent: missing required field "ImmersionLog.language_code"`)}
	}
	if v, ok := ilc.mutation.LanguageCode(); ok {
		if err := immersionlog.LanguageCodeValidator(v); err != nil {
			return &ValidationError{Name: "language_code", err: fmt.Errorf(`ent: validator failed for field "ImmersionLog.language_code": %w`, err)}
		}
	}
	if _, ok := ilc.mutation.ActivityID(); !ok {
		return &ValidationError{Name: "activity_id", err: errors.New(`ent: missing required field "ImmersionLog.activity_id"`)}
	}
	if _, ok := ilc.mutation.UnitName(); !ok {
		return &ValidationError{Name: "unit_name", err: errors.New(`ent: missing required field "ImmersionLog.unit_name"`)}
	}
	if _, ok := ilc.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "ImmersionLog.score"`)}
	}
	if _, ok := ilc.mutation.Tags(); !ok {
		return &ValidationError{Name: "tags", err: errors.New(`ent: missing required field "ImmersionLog.tags"`)}
	}
	if _, ok := ilc.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "ImmersionLog.description"`)}
	}
	if _, ok := ilc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ImmersionLog.created_at"`)}
	}
	if _, ok := ilc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ImmersionLog.updated_at"`)}
	}
	return nil
}

func (ilc *ImmersionLogCreate) sqlSave(ctx context.Context) (*ImmersionLog, error) {
	if err := ilc.check(); err != nil {
		return nil, err
	}
	_node, _spec := ilc.createSpec()
	if err := sqlgraph.CreateNode(ctx, ilc.driver, _spec); err != nil {
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
	ilc.mutation.id = &_node.ID
	ilc.mutation.done = true
	return _node, nil
}

func (ilc *ImmersionLogCreate) createSpec() (*ImmersionLog, *sqlgraph.CreateSpec) {
	var (
		_node = &ImmersionLog{config: ilc.config}
		_spec = sqlgraph.NewCreateSpec(immersionlog.Table, sqlgraph.NewFieldSpec(immersionlog.FieldID, field.TypeUUID))
	)
	if id, ok := ilc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := ilc.mutation.UserID(); ok {
		_spec.SetField(immersionlog.FieldUserID, field.TypeInt64, value)
		_node.UserID = value
	}
	if value, ok := ilc.mutation.LanguageCode(); ok {
		_spec.SetField(immersionlog.FieldLanguageCode, field.TypeString, value)
		_node.LanguageCode = value
	}
	if value, ok := ilc.mutation.ActivityID(); ok {
		_spec.SetField(immersionlog.FieldActivityID, field.TypeInt32, value)
		_node.ActivityID = value
	}
	if value, ok := ilc.mutation.Amount(); ok {
		_spec.SetField(immersionlog.FieldAmount, field.TypeFloat64, value)
		_node.Amount = &value
	}
	if value, ok := ilc.mutation.UnitID(); ok {
		_spec.SetField(immersionlog.FieldUnitID, field.TypeUUID, value)
		_node.UnitID = &value
	}
	if value, ok := ilc.mutation.UnitName(); ok {
		_spec.SetField(immersionlog.FieldUnitName, field.TypeString, value)
		_node.UnitName = value
	}
	if value, ok := ilc.mutation.DurationSeconds(); ok {
		_spec.SetField(immersionlog.FieldDurationSeconds, field.TypeInt64, value)
		_node.DurationSeconds = &value
	}
	if value, ok := ilc.mutation.Score(); ok {
		_spec.SetField(immersionlog.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := ilc.mutation.Tags(); ok {
		_spec.SetField(immersionlog.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := ilc.mutation.Description(); ok {
		_spec.SetField(immersionlog.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := ilc.mutation.CreatedAt(); ok {
		_spec.SetField(immersionlog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := ilc.mutation.UpdatedAt(); ok {
		_spec.SetField(immersionlog.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := ilc.mutation.AttachmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   immersionlog.AttachmentsTable,
			Columns: []string{immersionlog.AttachmentsColumn},
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

// ImmersionLogCreateBulk is the builder for creating many ImmersionLog entities in bulk.
type ImmersionLogCreateBulk struct {
	config
	err      error
	builders []*ImmersionLogCreate
}

// Save creates the ImmersionLog entities in the database.
func (ilcb *ImmersionLogCreateBulk) Save(ctx context.Context) ([]*ImmersionLog, error) {
	if ilcb.err != nil {
		return nil, ilcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(ilcb.builders))
	nodes := make([]*ImmersionLog, len(ilcb.builders))
	mutators := make([]Mutator, len(ilcb.builders))
	for i := range ilcb.builders {
		func(i int, root context.Context) {
			builder := ilcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ImmersionLogMutation)
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
					_, err = mutators[i+1].Mutate(root, ilcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, ilcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, ilcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (ilcb *ImmersionLogCreateBulk) SaveX(ctx context.Context) []*ImmersionLog {
	v, err := ilcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ilcb *ImmersionLogCreateBulk) Exec(ctx context.Context) error {
	_, err := ilcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ilcb *ImmersionLogCreateBulk) ExecX(ctx context.Context) {
	if err := ilcb.Exec(ctx); err != nil {
		panic(err)
	}
}
