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
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/predicate"
)

// ContestUpdate is the builder for updating Contest entities.
type ContestUpdate struct {
	config
	hooks    []Hook
	mutation *ContestMutation
}

// Where appends a list predicates to the ContestUpdate builder.
func (cu *ContestUpdate) Where(ps ...predicate.Contest) *ContestUpdate {
	cu.mutation.Where(ps...)
	return cu
}

// SetTitle sets the "title" field.
func (cu *ContestUpdate) SetTitle(s string) *ContestUpdate {
	cu.mutation.SetTitle(s)
	return cu
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (cu *ContestUpdate) SetNillableTitle(s *string) *ContestUpdate {
	if s != nil {
		cu.SetTitle(*s)
	}
	return cu
}

// SetDescription sets the "description" field.
func (cu *ContestUpdate) SetDescription(s string) *ContestUpdate {
	cu.mutation.SetDescription(s)
	return cu
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (cu *ContestUpdate) SetNillableDescription(s *string) *ContestUpdate {
	if s != nil {
		cu.SetDescription(*s)
	}
	return cu
}

// SetContestStart sets the "contest_start" field.
func (cu *ContestUpdate) SetContestStart(t time.Time) *ContestUpdate {
	cu.mutation.SetContestStart(t)
	return cu
}

// SetNillableContestStart sets the "contest_start" field if the given value is not nil.
func (cu *ContestUpdate) SetNillableContestStart(t *time.Time) *ContestUpdate {
	if t != nil {
		cu.SetContestStart(*t)
	}
	return cu
}

// SetContestEnd sets the "contest_end" field.
func (cu *ContestUpdate) SetContestEnd(t time.Time) *ContestUpdate {
	cu.mutation.SetContestEnd(t)
	return cu
}

// SetNillableContestEnd sets the "contest_end" field if the given value is not nil.
func (cu *ContestUpdate) SetNillableContestEnd(t *time.Time) *ContestUpdate {
	if t != nil {
		cu.SetContestEnd(*t)
	}
	return cu
}

// SetRegistrationEnd sets the "registration_end" field.
func (cu *ContestUpdate) SetRegistrationEnd(t time.Time) *ContestUpdate {
	cu.mutation.SetRegistrationEnd(t)
	return cu
}

// SetNillableRegistrationEnd sets the "registration_end" field if the given value is not nil.
func (cu *ContestUpdate) SetNillableRegistrationEnd(t *time.Time) *ContestUpdate {
	if t != nil {
		cu.SetRegistrationEnd(*t)
	}
	return cu
}

// SetOfficial sets the "official" field.
func (cu *ContestUpdate) SetOfficial(b bool) *ContestUpdate {
	cu.mutation.SetOfficial(b)
	return cu
}

// SetNillableOfficial sets the "official" field if the given value is not nil.
func (cu *ContestUpdate) SetNillableOfficial(b *bool) *ContestUpdate {
	if b != nil {
		cu.SetOfficial(*b)
	}
	return cu
}

// SetPrivate sets the "private" field.
func (cu *ContestUpdate) SetPrivate(b bool) *ContestUpdate {
	cu.mutation.SetPrivate(b)
	return cu
}

// SetNillablePrivate sets the "private" field if the given value is not nil.
func (cu *ContestUpdate) SetNillablePrivate(b *bool) *ContestUpdate {
	if b != nil {
		cu.SetPrivate(*b)
	}
	return cu
}

// SetAllowedActivities sets the "allowed_activities" field.
func (cu *ContestUpdate) SetAllowedActivities(i []int32) *ContestUpdate {
	cu.mutation.SetAllowedActivities(i)
	return cu
}

// AppendAllowedActivities appends i to the "allowed_activities" field.
func (cu *ContestUpdate) AppendAllowedActivities(i []int32) *ContestUpdate {
	cu.mutation.AppendAllowedActivities(i)
	return cu
}

// SetAllowedLanguages sets the "allowed_languages" field.
func (cu *ContestUpdate) SetAllowedLanguages(s []string) *ContestUpdate {
	cu.mutation.SetAllowedLanguages(s)
	return cu
}

// AppendAllowedLanguages appends s to the "allowed_languages" field.
func (cu *ContestUpdate) AppendAllowedLanguages(s []string) *ContestUpdate {
	cu.mutation.AppendAllowedLanguages(s)
	return cu
}

// ClearAllowedLanguages clears the value of the "allowed_languages" field.
func (cu *ContestUpdate) ClearAllowedLanguages() *ContestUpdate {
	cu.mutation.ClearAllowedLanguages()
	return cu
}

// SetUpdatedAt sets the "updated_at" field.
func (cu *ContestUpdate) SetUpdatedAt(t time.Time) *ContestUpdate {
	cu.mutation.SetUpdatedAt(t)
	return cu
}

// AddRegistrationIDs adds the "registrations" edge to the ContestRegistration entity by IDs.
func (cu *ContestUpdate) AddRegistrationIDs(ids ...uuid.UUID) *ContestUpdate {
	cu.mutation.AddRegistrationIDs(ids...)
	return cu
}

// AddRegistrations adds the "registrations" edges to the ContestRegistration entity.
func (cu *ContestUpdate) AddRegistrations(c ...*ContestRegistration) *ContestUpdate {
	ids := make([]uuid.UUID, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return cu.AddRegistrationIDs(ids...)
}

// Mutation returns the ContestMutation object of the builder.
func (cu *ContestUpdate) Mutation() *ContestMutation {
	return cu.mutation
}

// ClearRegistrations clears all "registrations" edges to the ContestRegistration entity.
func (cu *ContestUpdate) ClearRegistrations() *ContestUpdate {
	cu.mutation.ClearRegistrations()
	return cu
}

// RemoveRegistrationIDs removes the "registrations" edge to ContestRegistration entities by IDs.
func (cu *ContestUpdate) RemoveRegistrationIDs(ids ...uuid.UUID) *ContestUpdate {
	cu.mutation.RemoveRegistrationIDs(ids...)
	return cu
}

// RemoveRegistrations removes "registrations" edges to ContestRegistration entities.
func (cu *ContestUpdate) RemoveRegistrations(c ...*ContestRegistration) *ContestUpdate {
	ids := make([]uuid.UUID, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return cu.RemoveRegistrationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (cu *ContestUpdate) Save(ctx context.Context) (int, error) {
	cu.defaults()
	return withHooks(ctx, cu.sqlSave, cu.mutation, cu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cu *ContestUpdate) SaveX(ctx context.Context) int {
	affected, err := cu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (cu *ContestUpdate) Exec(ctx context.Context) error {
	_, err := cu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cu *ContestUpdate) ExecX(ctx context.Context) {
	if err := cu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cu *ContestUpdate) defaults() {
	if _, ok := cu.mutation.UpdatedAt(); !ok {
		v := contest.UpdateDefaultUpdatedAt()
		cu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cu *ContestUpdate) check() error {
	if v, ok := cu.mutation.Title(); ok {
		if err := contest.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Contest.title": %w`, err)}
		}
	}
	return nil
}

func (cu *ContestUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := cu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(contest.Table, contest.Columns, sqlgraph.NewFieldSpec(contest.FieldID, field.TypeUUID))
	if ps := cu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := cu.mutation.Title(); ok {
		_spec.SetField(contest.FieldTitle, field.TypeString, value)
	}
	if value, ok := cu.mutation.Description(); ok {
		_spec.SetField(contest.FieldDescription, field.TypeString, value)
	}
	if value, ok := cu.mutation.ContestStart(); ok {
		_spec.SetField(contest.FieldContestStart, field.TypeTime, value)
	}
	if value, ok := cu.mutation.ContestEnd(); ok {
		_spec.SetField(contest.FieldContestEnd, field.TypeTime, value)
	}
	if value, ok := cu.mutation.RegistrationEnd(); ok {
		_spec.SetField(contest.FieldRegistrationEnd, field.TypeTime, value)
	}
	if value, ok := cu.mutation.Official(); ok {
		_spec.SetField(contest.FieldOfficial, field.TypeBool, value)
	}
	if value, ok := cu.mutation.Private(); ok {
		_spec.SetField(contest.FieldPrivate, field.TypeBool, value)
	}
	if value, ok := cu.mutation.AllowedActivities(); ok {
		_spec.SetField(contest.FieldAllowedActivities, field.TypeJSON, value)
	}
	if value, ok := cu.mutation.AppendedAllowedActivities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contest.FieldAllowedActivities, value)
		})
	}
	if value, ok := cu.mutation.AllowedLanguages(); ok {
		_spec.SetField(contest.FieldAllowedLanguages, field.TypeJSON, value)
	}
	if value, ok := cu.mutation.AppendedAllowedLanguages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contest.FieldAllowedLanguages, value)
		})
	}
	if cu.mutation.AllowedLanguagesCleared() {
		_spec.ClearField(contest.FieldAllowedLanguages, field.TypeJSON)
	}
	if value, ok := cu.mutation.UpdatedAt(); ok {
		_spec.SetField(contest.FieldUpdatedAt, field.TypeTime, value)
	}
	if cu.mutation.RegistrationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cu.mutation.RemovedRegistrationsIDs(); len(nodes) > 0 && !cu.mutation.RegistrationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cu.mutation.RegistrationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, cu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	cu.mutation.done = true
	return n, nil
}

// ContestUpdateOne is the builder for updating a single Contest entity.
type ContestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContestMutation
}

// SetTitle sets the "title" field.
func (cuo *ContestUpdateOne) SetTitle(s string) *ContestUpdateOne {
	cuo.mutation.SetTitle(s)
	return cuo
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (cuo *ContestUpdateOne) SetNillableTitle(s *string) *ContestUpdateOne {
	if s != nil {
		cuo.SetTitle(*s)
	}
	return cuo
}

// SetDescription sets the "description" field.
func (cuo *ContestUpdateOne) SetDescription(s string) *ContestUpdateOne {
	cuo.mutation.SetDescription(s)
	return cuo
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (cuo *ContestUpdateOne) SetNillableDescription(s *string) *ContestUpdateOne {
	if s != nil {
		cuo.SetDescription(*s)
	}
	return cuo
}

// SetContestStart sets the "contest_start" field.
func (cuo *ContestUpdateOne) SetContestStart(t time.Time) *ContestUpdateOne {
	cuo.mutation.SetContestStart(t)
	return cuo
}

// SetNillableContestStart sets the "contest_start" field if the given value is not nil.
func (cuo *ContestUpdateOne) SetNillableContestStart(t *time.Time) *ContestUpdateOne {
	if t != nil {
		cuo.SetContestStart(*t)
	}
	return cuo
}

// SetContestEnd sets the "contest_end" field.
func (cuo *ContestUpdateOne) SetContestEnd(t time.Time) *ContestUpdateOne {
	cuo.mutation.SetContestEnd(t)
	return cuo
}

// SetNillableContestEnd sets the "contest_end" field if the given value is not nil.
func (cuo *ContestUpdateOne) SetNillableContestEnd(t *time.Time) *ContestUpdateOne {
	if t != nil {
		cuo.SetContestEnd(*t)
	}
	return cuo
}

// SetRegistrationEnd sets the "registration_end" field.
func (cuo *ContestUpdateOne) SetRegistrationEnd(t time.Time) *ContestUpdateOne {
	cuo.mutation.SetRegistrationEnd(t)
	return cuo
}

// SetNillableRegistrationEnd sets the "registration_end" field if the given value is not nil.
func (cuo *ContestUpdateOne) SetNillableRegistrationEnd(t *time.Time) *ContestUpdateOne {
	if t != nil {
		cuo.SetRegistrationEnd(*t)
	}
	return cuo
}

// SetOfficial sets the "official" field.
func (cuo *ContestUpdateOne) SetOfficial(b bool) *ContestUpdateOne {
	cuo.mutation.SetOfficial(b)
	return cuo
}

// SetNillableOfficial sets the "official" field if the given value is not nil.
func (cuo *ContestUpdateOne) SetNillableOfficial(b *bool) *ContestUpdateOne {
	if b != nil {
		cuo.SetOfficial(*b)
	}
	return cuo
}

// SetPrivate sets the "private" field.
func (cuo *ContestUpdateOne) SetPrivate(b bool) *ContestUpdateOne {
	cuo.mutation.SetPrivate(b)
	return cuo
}

// SetNillablePrivate sets the "private" field if the given value is not nil.
func (cuo *ContestUpdateOne) SetNillablePrivate(b *bool) *ContestUpdateOne {
	if b != nil {
		cuo.SetPrivate(*b)
	}
	return cuo
}

// SetAllowedActivities sets the "allowed_activities" field.
func (cuo *ContestUpdateOne) SetAllowedActivities(i []int32) *ContestUpdateOne {
	cuo.mutation.SetAllowedActivities(i)
	return cuo
}

// AppendAllowedActivities appends i to the "allowed_activities" field.
func (cuo *ContestUpdateOne) AppendAllowedActivities(i []int32) *ContestUpdateOne {
	cuo.mutation.AppendAllowedActivities(i)
	return cuo
}

// SetAllowedLanguages sets the "allowed_languages" field.
func (cuo *ContestUpdateOne) SetAllowedLanguages(s []string) *ContestUpdateOne {
	cuo.mutation.SetAllowedLanguages(s)
	return cuo
}

// AppendAllowedLanguages appends s to the "allowed_languages" field.
func (cuo *ContestUpdateOne) AppendAllowedLanguages(s []string) *ContestUpdateOne {
	cuo.mutation.AppendAllowedLanguages(s)
	return cuo
}

// ClearAllowedLanguages clears the value of the "allowed_languages" field.
func (cuo *ContestUpdateOne) ClearAllowedLanguages() *ContestUpdateOne {
	cuo.mutation.ClearAllowedLanguages()
	return cuo
}

// SetUpdatedAt sets the "updated_at" field.
func (cuo *ContestUpdateOne) SetUpdatedAt(t time.Time) *ContestUpdateOne {
	cuo.mutation.SetUpdatedAt(t)
	return cuo
}

// AddRegistrationIDs adds the "registrations" edge to the ContestRegistration entity by IDs.
func (cuo *ContestUpdateOne) AddRegistrationIDs(ids ...uuid.UUID) *ContestUpdateOne {
	cuo.mutation.AddRegistrationIDs(ids...)
	return cuo
}

// AddRegistrations adds the "registrations" edges to the ContestRegistration entity.
func (cuo *ContestUpdateOne) AddRegistrations(c ...*ContestRegistration) *ContestUpdateOne {
	ids := make([]uuid.UUID, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return cuo.AddRegistrationIDs(ids...)
}

// Mutation returns the ContestMutation object of the builder.
func (cuo *ContestUpdateOne) Mutation() *ContestMutation {
	return cuo.mutation
}

// ClearRegistrations clears all "registrations" edges to the ContestRegistration entity.
func (cuo *ContestUpdateOne) ClearRegistrations() *ContestUpdateOne {
	cuo.mutation.ClearRegistrations()
	return cuo
}

// RemoveRegistrationIDs removes the "registrations" edge to ContestRegistration entities by IDs.
func (cuo *ContestUpdateOne) RemoveRegistrationIDs(ids ...uuid.UUID) *ContestUpdateOne {
	cuo.mutation.RemoveRegistrationIDs(ids...)
	return cuo
}

// RemoveRegistrations removes "registrations" edges to ContestRegistration entities.
func (cuo *ContestUpdateOne) RemoveRegistrations(c ...*ContestRegistration) *ContestUpdateOne {
	ids := make([]uuid.UUID, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return cuo.RemoveRegistrationIDs(ids...)
}

// Where appends a list predicates to the ContestUpdate builder.
func (cuo *ContestUpdateOne) Where(ps ...predicate.Contest) *ContestUpdateOne {
	cuo.mutation.Where(ps...)
	return cuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (cuo *ContestUpdateOne) Select(field string, fields ...string) *ContestUpdateOne {
	cuo.fields = append([]string{field}, fields...)
	return cuo
}

// Save executes the query and returns the updated Contest entity.
func (cuo *ContestUpdateOne) Save(ctx context.Context) (*Contest, error) {
	cuo.defaults()
	return withHooks(ctx, cuo.sqlSave, cuo.mutation, cuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cuo *ContestUpdateOne) SaveX(ctx context.Context) *Contest {
	node, err := cuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (cuo *ContestUpdateOne) Exec(ctx context.Context) error {
	_, err := cuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cuo *ContestUpdateOne) ExecX(ctx context.Context) {
	if err := cuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cuo *ContestUpdateOne) defaults() {
	if _, ok := cuo.mutation.UpdatedAt(); !ok {
		v := contest.UpdateDefaultUpdatedAt()
		cuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cuo *ContestUpdateOne) check() error {
	if v, ok := cuo.mutation.Title(); ok {
		if err := contest.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Contest.title": %w`, err)}
		}
	}
	return nil
}

func (cuo *ContestUpdateOne) sqlSave(ctx context.Context) (_node *Contest, err error) {
	if err := cuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contest.Table, contest.Columns, sqlgraph.NewFieldSpec(contest.FieldID, field.TypeUUID))
	id, ok := cuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Contest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := cuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contest.FieldID)
		for _, f := range fields {
			if !contest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contest.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := cuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := cuo.mutation.Title(); ok {
		_spec.SetField(contest.FieldTitle, field.TypeString, value)
	}
	if value, ok := cuo.mutation.Description(); ok {
		_spec.SetField(contest.FieldDescription, field.TypeString, value)
	}
	if value, ok := cuo.mutation.ContestStart(); ok {
		_spec.SetField(contest.FieldContestStart, field.TypeTime, value)
	}
	if value, ok := cuo.mutation.ContestEnd(); ok {
		_spec.SetField(contest.FieldContestEnd, field.TypeTime, value)
	}
	if value, ok := cuo.mutation.RegistrationEnd(); ok {
		_spec.SetField(contest.FieldRegistrationEnd, field.TypeTime, value)
	}
	if value, ok := cuo.mutation.Official(); ok {
		_spec.SetField(contest.FieldOfficial, field.TypeBool, value)
	}
	if value, ok := cuo.mutation.Private(); ok {
		_spec.SetField(contest.FieldPrivate, field.TypeBool, value)
	}
	if value, ok := cuo.mutation.AllowedActivities(); ok {
		_spec.SetField(contest.FieldAllowedActivities, field.TypeJSON, value)
	}
	if value, ok := cuo.mutation.AppendedAllowedActivities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contest.FieldAllowedActivities, value)
		})
	}
	if value, ok := cuo.mutation.AllowedLanguages(); ok {
		_spec.SetField(contest.FieldAllowedLanguages, field.TypeJSON, value)
	}
	if value, ok := cuo.mutation.AppendedAllowedLanguages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contest.FieldAllowedLanguages, value)
		})
	}
	if cuo.mutation.AllowedLanguagesCleared() {
		_spec.ClearField(contest.FieldAllowedLanguages, field.TypeJSON)
	}
	if value, ok := cuo.mutation.UpdatedAt(); ok {
		_spec.SetField(contest.FieldUpdatedAt, field.TypeTime, value)
	}
	if cuo.mutation.RegistrationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cuo.mutation.RemovedRegistrationsIDs(); len(nodes) > 0 && !cuo.mutation.RegistrationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cuo.mutation.RegistrationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Contest{config: cuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, cuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	cuo.mutation.done = true
	return _node, nil
}
