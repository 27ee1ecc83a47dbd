// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/contestregistration"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/immersionlog"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/logattachment"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/predicate"
)

// LogAttachmentUpdate is the builder for updating LogAttachment entities.
type LogAttachmentUpdate struct {
	config
	hooks    []Hook
	mutation *LogAttachmentMutation
}

// Where appends a list predicates to the LogAttachmentUpdate builder.
func (lau *LogAttachmentUpdate) Where(ps ...predicate.LogAttachment) *LogAttachmentUpdate {
	lau.mutation.Where(ps...)
	return lau
}

// SetLogID sets the "log_id" field.
func (lau *LogAttachmentUpdate) SetLogID(u uuid.UUID) *LogAttachmentUpdate {
	lau.mutation.SetLogID(u)
	return lau
}

// SetNillableLogID sets the "log_id" field if the given value is not nil.
func (lau *LogAttachmentUpdate) SetNillableLogID(u *uuid.UUID) *LogAttachmentUpdate {
	if u != nil {
		lau.SetLogID(*u)
	}
	return lau
}

// SetRegistrationID sets the "registration_id" field.
func (lau *LogAttachmentUpdate) SetRegistrationID(u uuid.UUID) *LogAttachmentUpdate {
	lau.mutation.SetRegistrationID(u)
	return lau
}

// SetNillableRegistrationID sets the "registration_id" field if the given value is not nil.
func (lau *LogAttachmentUpdate) SetNillableRegistrationID(u *uuid.UUID) *LogAttachmentUpdate {
	if u != nil {
		lau.SetRegistrationID(*u)
	}
	return lau
}

// SetLog sets the "log" edge to the ImmersionLog entity.
func (lau *LogAttachmentUpdate) SetLog(i *ImmersionLog) *LogAttachmentUpdate {
	return lau.SetLogID(i.ID)
}

// SetRegistration sets the "registration" edge to the ContestRegistration entity.
func (lau *LogAttachmentUpdate) SetRegistration(c *ContestRegistration) *LogAttachmentUpdate {
	return lau.SetRegistrationID(c.ID)
}

// Mutation returns the LogAttachmentMutation object of the builder.
func (lau *LogAttachmentUpdate) Mutation() *LogAttachmentMutation {
	return lau.mutation
}

// ClearLog clears the "log" edge to the ImmersionLog entity.
func (lau *LogAttachmentUpdate) ClearLog() *LogAttachmentUpdate {
	lau.mutation.ClearLog()
	return lau
}

// ClearRegistration clears the "registration" edge to the ContestRegistration entity.
func (lau *LogAttachmentUpdate) ClearRegistration() *LogAttachmentUpdate {
	lau.mutation.ClearRegistration()
	return lau
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (lau *LogAttachmentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, lau.sqlSave, lau.mutation, lau.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (lau *LogAttachmentUpdate) SaveX(ctx context.Context) int {
	affected, err := lau.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (lau *LogAttachmentUpdate) Exec(ctx context.Context) error {
	_, err := lau.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (lau *LogAttachmentUpdate) ExecX(ctx context.Context) {
	if err := lau.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (lau *LogAttachmentUpdate) check() error {
	if lau.mutation.LogCleared() && len(lau.mutation.LogIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LogAttachment.log"`)
	}
	if lau.mutation.RegistrationCleared() && len(lau.mutation.RegistrationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LogAttachment.registration"`)
	}
	return nil
}

func (lau *LogAttachmentUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := lau.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(logattachment.Table, logattachment.Columns, sqlgraph.NewFieldSpec(logattachment.FieldID, field.TypeInt))
	if ps := lau.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if lau.mutation.LogCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := lau.mutation.LogIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if lau.mutation.RegistrationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := lau.mutation.RegistrationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, lau.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{logattachment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	lau.mutation.done = true
	return n, nil
}

// LogAttachmentUpdateOne is the builder for updating a single LogAttachment entity.
type LogAttachmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LogAttachmentMutation
}

// SetLogID sets the "log_id" field.
func (lauo *LogAttachmentUpdateOne) SetLogID(u uuid.UUID) *LogAttachmentUpdateOne {
	lauo.mutation.SetLogID(u)
	return lauo
}

// SetNillableLogID sets the "log_id" field if the given value is not nil.
func (lauo *LogAttachmentUpdateOne) SetNillableLogID(u *uuid.UUID) *LogAttachmentUpdateOne {
	if u != nil {
		lauo.SetLogID(*u)
	}
	return lauo
}

// SetRegistrationID sets the "registration_id" field.
func (lauo *LogAttachmentUpdateOne) SetRegistrationID(u uuid.UUID) *LogAttachmentUpdateOne {
	lauo.mutation.SetRegistrationID(u)
	return lauo
}

// SetNillableRegistrationID sets the "registration_id" field if the given value is not nil.
func (lauo *LogAttachmentUpdateOne) SetNillableRegistrationID(u *uuid.UUID) *LogAttachmentUpdateOne {
	if u != nil {
		lauo.SetRegistrationID(*u)
	}
	return lauo
}

// SetLog sets the "log" edge to the ImmersionLog entity.
func (lauo *LogAttachmentUpdateOne) SetLog(i *ImmersionLog) *LogAttachmentUpdateOne {
	return lauo.SetLogID(i.ID)
}

// SetRegistration sets the "registration" edge to the ContestRegistration entity.
func (lauo *LogAttachmentUpdateOne) SetRegistration(c *ContestRegistration) *LogAttachmentUpdateOne {
	return lauo.SetRegistrationID(c.ID)
}

// Mutation returns the LogAttachmentMutation object of the builder.
func (lauo *LogAttachmentUpdateOne) Mutation() *LogAttachmentMutation {
	return lauo.mutation
}

// ClearLog clears the "log" edge to the ImmersionLog entity.
func (lauo *LogAttachmentUpdateOne) ClearLog() *LogAttachmentUpdateOne {
	lauo.mutation.ClearLog()
	return lauo
}

// ClearRegistration clears the "registration" edge to the ContestRegistration entity.
func (lauo *LogAttachmentUpdateOne) ClearRegistration() *LogAttachmentUpdateOne {
	lauo.mutation.ClearRegistration()
	return lauo
}

// Where appends a list predicates to the LogAttachmentUpdate builder.
func (lauo *LogAttachmentUpdateOne) Where(ps ...predicate.LogAttachment) *LogAttachmentUpdateOne {
	lauo.mutation.Where(ps...)
	return lauo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (lauo *LogAttachmentUpdateOne) Select(field string, fields ...string) *LogAttachmentUpdateOne {
	lauo.fields = append([]string{field}, fields...)
	return lauo
}

// Save executes the query and returns the updated LogAttachment entity.
func (lauo *LogAttachmentUpdateOne) Save(ctx context.Context) (*LogAttachment, error) {
	return withHooks(ctx, lauo.sqlSave, lauo.mutation, lauo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (lauo *LogAttachmentUpdateOne) SaveX(ctx context.Context) *LogAttachment {
	node, err := lauo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (lauo *LogAttachmentUpdateOne) Exec(ctx context.Context) error {
	_, err := lauo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (lauo *LogAttachmentUpdateOne) ExecX(ctx context.Context) {
	if err := lauo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (lauo *LogAttachmentUpdateOne) check() error {
	if lauo.mutation.LogCleared() && len(lauo.mutation.LogIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LogAttachment.log"`)
	}
	if lauo.mutation.RegistrationCleared() && len(lauo.mutation.RegistrationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LogAttachment.registration"`)
	}
	return nil
}

func (lauo *LogAttachmentUpdateOne) sqlSave(ctx context.Context) (_node *LogAttachment, err error) {
	if err := lauo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(logattachment.Table, logattachment.Columns, sqlgraph.NewFieldSpec(logattachment.FieldID, field.TypeInt))
	id, ok := lauo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LogAttachment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := lauo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, logattachment.FieldID)
		for _, f := range fields {
			if !logattachment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != logattachment.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := lauo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if lauo.mutation.LogCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := lauo.mutation.LogIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if lauo.mutation.RegistrationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := lauo.mutation.RegistrationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &LogAttachment{config: lauo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, lauo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{logattachment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	lauo.mutation.done = true
	return _node, nil
}
