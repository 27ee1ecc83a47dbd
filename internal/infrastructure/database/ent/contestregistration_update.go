// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/contest"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/contestregistration"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/logattachment"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/predicate"
)

// ContestRegistrationUpdate is the builder for updating ContestRegistration entities.
type ContestRegistrationUpdate struct {
	config
	hooks    []Hook
	mutation *ContestRegistrationMutation
}

// Where appends a list predicates to the ContestRegistrationUpdate builder.
func (cru *ContestRegistrationUpdate) Where(ps ...predicate.ContestRegistration) *ContestRegistrationUpdate {
	cru.mutation.Where(ps...)
	return cru
}

// SetContestID sets the "contest_id" field.
func (cru *ContestRegistrationUpdate) SetContestID(u uuid.UUID) *ContestRegistrationUpdate {
	cru.mutation.SetContestID(u)
	return cru
}

// SetNillableContestID sets the "contest_id" field if the given value is not nil.
func (cru *ContestRegistrationUpdate) SetNillableContestID(u *uuid.UUID) *ContestRegistrationUpdate {
	if u != nil {
		cru.SetContestID(*u)
	}
	return cru
}

// SetUserID sets the "user_id" field.
func (cru *ContestRegistrationUpdate) SetUserID(i int64) *ContestRegistrationUpdate {
	cru.mutation.ResetUserID()
	cru.mutation.SetUserID(i)
	return cru
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (cru *ContestRegistrationUpdate) SetNillableUserID(i *int64) *ContestRegistrationUpdate {
	if i != nil {
		cru.SetUserID(*i)
	}
	return cru
}

// AddUserID adds i to the "user_id" field.
func (cru *ContestRegistrationUpdate) AddUserID(i int64) *ContestRegistrationUpdate {
	cru.mutation.AddUserID(i)
	return cru
}

// SetUserDisplayName sets the "user_display_name" field.
func (cru *ContestRegistrationUpdate) SetUserDisplayName(s string) *ContestRegistrationUpdate {
	cru.mutation.SetUserDisplayName(s)
	return cru
}

// SetNillableUserDisplayName sets the "user_display_name" field if the given value is not nil.
func (cru *ContestRegistrationUpdate) SetNillableUserDisplayName(s *string) *ContestRegistrationUpdate {
	if s != nil {
		cru.SetUserDisplayName(*s)
	}
	return cru
}

// SetLanguages sets the "languages" field.
func (cru *ContestRegistrationUpdate) SetLanguages(s []string) *ContestRegistrationUpdate {
	cru.mutation.SetLanguages(s)
	return cru
}

// AppendLanguages appends s to the "languages" field.
func (cru *ContestRegistrationUpdate) AppendLanguages(s []string) *ContestRegistrationUpdate {
	cru.mutation.AppendLanguages(s)
	return cru
}

// SetUpdatedAt sets the "updated_at" field.
func (cru *ContestRegistrationUpdate) SetUpdatedAt(t time.Time) *ContestRegistrationUpdate {
	cru.mutation.SetUpdatedAt(t)
	return cru
}

// SetContest sets the "contest" edge to the Contest entity.
func (cru *ContestRegistrationUpdate) SetContest(c *Contest) *ContestRegistrationUpdate {
	return cru.SetContestID(c.ID)
}

// AddAttachmentIDs adds the "attachments" edge to the LogAttachment entity by IDs.
func (cru *ContestRegistrationUpdate) AddAttachmentIDs(ids ...int) *ContestRegistrationUpdate {
	cru.mutation.AddAttachmentIDs(ids...)
	return cru
}

// AddAttachments adds the "attachments" edges to the LogAttachment entity.
func (cru *ContestRegistrationUpdate) AddAttachments(l ...*LogAttachment) *ContestRegistrationUpdate {
	ids := make([]int, len(l))
	for i := range l {
		ids[i] = l[i].ID
	}
	return cru.AddAttachmentIDs(ids...)
}

// Mutation returns the ContestRegistrationMutation object of the builder.
func (cru *ContestRegistrationUpdate) Mutation() *ContestRegistrationMutation {
	return cru.mutation
}

// ClearContest clears the "contest" edge to the Contest entity.
func (cru *ContestRegistrationUpdate) ClearContest() *ContestRegistrationUpdate {
	cru.mutation.ClearContest()
	return cru
}

// ClearAttachments clears all "attachments" edges to the LogAttachment entity.
func (cru *ContestRegistrationUpdate) ClearAttachments() *ContestRegistrationUpdate {
	cru.mutation.ClearAttachments()
	return cru
}

// RemoveAttachmentIDs removes the "attachments" edge to LogAttachment entities by IDs.
func (cru *ContestRegistrationUpdate) RemoveAttachmentIDs(ids ...int) *ContestRegistrationUpdate {
	cru.mutation.RemoveAttachmentIDs(ids...)
	return cru
}

// RemoveAttachments removes "attachments" edges to LogAttachment entities.
func (cru *ContestRegistrationUpdate) RemoveAttachments(l ...*LogAttachment) *ContestRegistrationUpdate {
	ids := make([]int, len(l))
	for i := range l {
		ids[i] = l[i].ID
	}
	return cru.RemoveAttachmentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (cru *ContestRegistrationUpdate) Save(ctx context.Context) (int, error) {
	cru.defaults()
	return withHooks(ctx, cru.sqlSave, cru.mutation, cru.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cru *ContestRegistrationUpdate) SaveX(ctx context.Context) int {
	affected, err := cru.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (cru *ContestRegistrationUpdate) Exec(ctx context.Context) error {
	_, err := cru.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cru *ContestRegistrationUpdate) ExecX(ctx context.Context) {
	if err := cru.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cru *ContestRegistrationUpdate) defaults() {
	if _, ok := cru.mutation.UpdatedAt(); !ok {
		v := contestregistration.UpdateDefaultUpdatedAt()
		cru.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cru *ContestRegistrationUpdate) check() error {
	if cru.mutation.ContestCleared() && len(cru.mutation.ContestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ContestRegistration.contest"`)
	}
	return nil
}

func (cru *ContestRegistrationUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := cru.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(contestregistration.Table, contestregistration.Columns, sqlgraph.NewFieldSpec(contestregistration.FieldID, field.TypeUUID))
	if ps := cru.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := cru.mutation.UserID(); ok {
		_spec.SetField(contestregistration.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := cru.mutation.AddedUserID(); ok {
		_spec.AddField(contestregistration.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := cru.mutation.UserDisplayName(); ok {
		_spec.SetField(contestregistration.FieldUserDisplayName, field.TypeString, value)
	}
	if value, ok := cru.mutation.Languages(); ok {
		_spec.SetField(contestregistration.FieldLanguages, field.TypeJSON, value)
	}
	if value, ok := cru.mutation.AppendedLanguages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contestregistration.FieldLanguages, value)
		})
	}
	if value, ok := cru.mutation.UpdatedAt(); ok {
		_spec.SetField(contestregistration.FieldUpdatedAt, field.TypeTime, value)
	}
	if cru.mutation.ContestCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cru.mutation.ContestIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if cru.mutation.AttachmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cru.mutation.RemovedAttachmentsIDs(); len(nodes) > 0 && !cru.mutation.AttachmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cru.mutation.AttachmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, cru.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contestregistration.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	cru.mutation.done = true
	return n, nil
}

// ContestRegistrationUpdateOne is the builder for updating a single ContestRegistration entity.
type ContestRegistrationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContestRegistrationMutation
}

// SetContestID sets the "contest_id" field.
func (cruo *ContestRegistrationUpdateOne) SetContestID(u uuid.UUID) *ContestRegistrationUpdateOne {
	cruo.mutation.SetContestID(u)
	return cruo
}

// SetNillableContestID sets the "contest_id" field if the given value is not nil.
func (cruo *ContestRegistrationUpdateOne) SetNillableContestID(u *uuid.UUID) *ContestRegistrationUpdateOne {
	if u != nil {
		cruo.SetContestID(*u)
	}
	return cruo
}

// SetUserID sets the "user_id" field.
func (cruo *ContestRegistrationUpdateOne) SetUserID(i int64) *ContestRegistrationUpdateOne {
	cruo.mutation.ResetUserID()
	cruo.mutation.SetUserID(i)
	return cruo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (cruo *ContestRegistrationUpdateOne) SetNillableUserID(i *int64) *ContestRegistrationUpdateOne {
	if i != nil {
		cruo.SetUserID(*i)
	}
	return cruo
}

// AddUserID adds i to the "user_id" field.
func (cruo *ContestRegistrationUpdateOne) AddUserID(i int64) *ContestRegistrationUpdateOne {
	cruo.mutation.AddUserID(i)
	return cruo
}

// SetUserDisplayName sets the "user_display_name" field.
func (cruo *ContestRegistrationUpdateOne) SetUserDisplayName(s string) *ContestRegistrationUpdateOne {
	cruo.mutation.SetUserDisplayName(s)
	return cruo
}

// SetNillableUserDisplayName sets the "user_display_name" field if the given value is not nil.
func (cruo *ContestRegistrationUpdateOne) SetNillableUserDisplayName(s *string) *ContestRegistrationUpdateOne {
	if s != nil {
		cruo.SetUserDisplayName(*s)
	}
	return cruo
}

// SetLanguages sets the "languages" field.
func (cruo *ContestRegistrationUpdateOne) SetLanguages(s []string) *ContestRegistrationUpdateOne {
	cruo.mutation.SetLanguages(s)
	return cruo
}

// AppendLanguages appends s to the "languages" field.
func (cruo *ContestRegistrationUpdateOne) AppendLanguages(s []string) *ContestRegistrationUpdateOne {
	cruo.mutation.AppendLanguages(s)
	return cruo
}

// SetUpdatedAt sets the "updated_at" field.
func (cruo *ContestRegistrationUpdateOne) SetUpdatedAt(t time.Time) *ContestRegistrationUpdateOne {
	cruo.mutation.SetUpdatedAt(t)
	return cruo
}

// SetContest sets the "contest" edge to the Contest entity.
func (cruo *ContestRegistrationUpdateOne) SetContest(c *Contest) *ContestRegistrationUpdateOne {
	return cruo.SetContestID(c.ID)
}

// AddAttachmentIDs adds the "attachments" edge to the LogAttachment entity by IDs.
func (cruo *ContestRegistrationUpdateOne) AddAttachmentIDs(ids ...int) *ContestRegistrationUpdateOne {
	cruo.mutation.AddAttachmentIDs(ids...)
	return cruo
}

// AddAttachments adds the "attachments" edges to the LogAttachment entity.
func (cruo *ContestRegistrationUpdateOne) AddAttachments(l ...*LogAttachment) *ContestRegistrationUpdateOne {
	ids := make([]int, len(l))
	for i := range l {
		ids[i] = l[i].ID
	}
	return cruo.AddAttachmentIDs(ids...)
}

// Mutation returns the ContestRegistrationMutation object of the builder.
func (cruo *ContestRegistrationUpdateOne) Mutation() *ContestRegistrationMutation {
	return cruo.mutation
}

// ClearContest clears the "contest" edge to the Contest entity.
func (cruo *ContestRegistrationUpdateOne) ClearContest() *ContestRegistrationUpdateOne {
	cruo.mutation.ClearContest()
	return cruo
}

// ClearAttachments clears all "attachments" edges to the LogAttachment entity.
func (cruo *ContestRegistrationUpdateOne) ClearAttachments() *ContestRegistrationUpdateOne {
	cruo.mutation.ClearAttachments()
	return cruo
}

// RemoveAttachmentIDs removes the "attachments" edge to LogAttachment entities by IDs.
func (cruo *ContestRegistrationUpdateOne) RemoveAttachmentIDs(ids ...int) *ContestRegistrationUpdateOne {
	cruo.mutation.RemoveAttachmentIDs(ids...)
	return cruo
}

// RemoveAttachments removes "attachments" edges to LogAttachment entities.
func (cruo *ContestRegistrationUpdateOne) RemoveAttachments(l ...*LogAttachment) *ContestRegistrationUpdateOne {
	ids := make([]int, len(l))
	for i := range l {
		ids[i] = l[i].ID
	}
	return cruo.RemoveAttachmentIDs(ids...)
}

// Where appends a list predicates to the ContestRegistrationUpdate builder.
func (cruo *ContestRegistrationUpdateOne) Where(ps ...predicate.ContestRegistration) *ContestRegistrationUpdateOne {
	cruo.mutation.Where(ps...)
	return cruo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (cruo *ContestRegistrationUpdateOne) Select(field string, fields ...string) *ContestRegistrationUpdateOne {
	cruo.fields = append([]string{field}, fields...)
	return cruo
}

// Save executes the query and returns the updated ContestRegistration entity.
func (cruo *ContestRegistrationUpdateOne) Save(ctx context.Context) (*ContestRegistration, error) {
	cruo.defaults()
	return withHooks(ctx, cruo.sqlSave, cruo.mutation, cruo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cruo *ContestRegistrationUpdateOne) SaveX(ctx context.Context) *ContestRegistration {
	node, err := cruo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (cruo *ContestRegistrationUpdateOne) Exec(ctx context.Context) error {
	_, err := cruo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cruo *ContestRegistrationUpdateOne) ExecX(ctx context.Context) {
	if err := cruo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cruo *ContestRegistrationUpdateOne) defaults() {
	if _, ok := cruo.mutation.UpdatedAt(); !ok {
		v := contestregistration.UpdateDefaultUpdatedAt()
		cruo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cruo *ContestRegistrationUpdateOne) check() error {
	if cruo.mutation.ContestCleared() && len(cruo.mutation.ContestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ContestRegistration.contest"`)
	}
	return nil
}

func (cruo *ContestRegistrationUpdateOne) sqlSave(ctx context.Context) (_node *ContestRegistration, err error) {
	if err := cruo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contestregistration.Table, contestregistration.Columns, sqlgraph.NewFieldSpec(contestregistration.FieldID, field.TypeUUID))
	id, ok := cruo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ContestRegistration.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := cruo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contestregistration.FieldID)
		for _, f := range fields {
			if !contestregistration.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contestregistration.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := cruo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := cruo.mutation.UserID(); ok {
		_spec.SetField(contestregistration.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := cruo.mutation.AddedUserID(); ok {
		_spec.AddField(contestregistration.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := cruo.mutation.UserDisplayName(); ok {
		_spec.SetField(contestregistration.FieldUserDisplayName, field.TypeString, value)
	}
	if value, ok := cruo.mutation.Languages(); ok {
		_spec.SetField(contestregistration.FieldLanguages, field.TypeJSON, value)
	}
	if value, ok := cruo.mutation.AppendedLanguages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contestregistration.FieldLanguages, value)
		})
	}
	if value, ok := cruo.mutation.UpdatedAt(); ok {
		_spec.SetField(contestregistration.FieldUpdatedAt, field.TypeTime, value)
	}
	if cruo.mutation.ContestCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cruo.mutation.ContestIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if cruo.mutation.AttachmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cruo.mutation.RemovedAttachmentsIDs(); len(nodes) > 0 && !cruo.mutation.AttachmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cruo.mutation.AttachmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ContestRegistration{config: cruo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, cruo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contestregistration.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	cruo.mutation.done = true
	return _node, nil
}
