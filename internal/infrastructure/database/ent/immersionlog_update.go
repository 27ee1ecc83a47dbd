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
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/immersionlog"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/logattachment"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/predicate"
)

// ImmersionLogUpdate is the builder for updating ImmersionLog entities.
type ImmersionLogUpdate struct {
	config
	hooks    []Hook
	mutation *ImmersionLogMutation
}

// Where appends a list predicates to the ImmersionLogUpdate builder.
func (ilu *ImmersionLogUpdate) Where(ps ...predicate.ImmersionLog) *ImmersionLogUpdate {
	ilu.mutation.Where(ps...)
	return ilu
}

// SetUserID sets the "user_id" field.
func (ilu *ImmersionLogUpdate) SetUserID(i int64) *ImmersionLogUpdate {
	ilu.mutation.ResetUserID()
	ilu.mutation.SetUserID(i)
	return ilu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (ilu *ImmersionLogUpdate) SetNillableUserID(i *int64) *ImmersionLogUpdate {
	if i != nil {
		ilu.SetUserID(*i)
	}
	return ilu
}

// AddUserID adds i to the "user_id" field.
func (ilu *ImmersionLogUpdate) AddUserID(i int64) *ImmersionLogUpdate {
	ilu.mutation.AddUserID(i)
	return ilu
}

// SetLanguageCode sets the "language_code" field.
func (ilu *ImmersionLogUpdate) SetLanguageCode(s string) *ImmersionLogUpdate {
	ilu.mutation.SetLanguageCode(s)
	return ilu
}

// SetNillableLanguageCode sets the "language_code" field if the given value is not nil.
func (ilu *ImmersionLogUpdate) SetNillableLanguageCode(s *string) *ImmersionLogUpdate {
	if s != nil {
		ilu.SetLanguageCode(*s)
	}
	return ilu
}

// SetActivityID sets the "activity_id" field.
func (ilu *ImmersionLogUpdate) SetActivityID(i int32) *ImmersionLogUpdate {
	ilu.mutation.ResetActivityID()
	ilu.mutation.SetActivityID(i)
	return ilu
}

// SetNillableActivityID sets the "activity_id" field if the given value is not nil.
func (ilu *ImmersionLogUpdate) SetNillableActivityID(i *int32) *ImmersionLogUpdate {
	if i != nil {
		ilu.SetActivityID(*i)
	}
	return ilu
}

// AddActivityID adds i to the "activity_id" field.
func (ilu *ImmersionLogUpdate) AddActivityID(i int32) *ImmersionLogUpdate {
	ilu.mutation.AddActivityID(i)
	return ilu
}

// SetAmount sets the "amount" field.
func (ilu *ImmersionLogUpdate) SetAmount(f float64) *ImmersionLogUpdate {
	ilu.mutation.ResetAmount()
	ilu.mutation.SetAmount(f)
	return ilu
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (ilu *ImmersionLogUpdate) SetNillableAmount(f *float64) *ImmersionLogUpdate {
	if f != nil {
		ilu.SetAmount(*f)
	}
	return ilu
}

// AddAmount adds f to the "amount" field.
func (ilu *ImmersionLogUpdate) AddAmount(f float64) *ImmersionLogUpdate {
	ilu.mutation.AddAmount(f)
	return ilu
}

// ClearAmount clears the value of the "amount" field.
func (ilu *ImmersionLogUpdate) ClearAmount() *ImmersionLogUpdate {
	ilu.mutation.ClearAmount()
	return ilu
}

// SetUnitID sets the "unit_id" field.
func (ilu *ImmersionLogUpdate) SetUnitID(u uuid.UUID) *ImmersionLogUpdate {
	ilu.mutation.SetUnitID(u)
	return ilu
}

// SetNillableUnitID sets the "unit_id" field if the given value is not nil.
func (ilu *ImmersionLogUpdate) SetNillableUnitID(u *uuid.UUID) *ImmersionLogUpdate {
	if u != nil {
		ilu.SetUnitID(*u)
	}
	return ilu
}

// ClearUnitID clears the value of the "unit_id" field.
func (ilu *ImmersionLogUpdate) ClearUnitID() *ImmersionLogUpdate {
	ilu.mutation.ClearUnitID()
	return ilu
}

// SetUnitName sets the "unit_name" field.
func (ilu *ImmersionLogUpdate) SetUnitName(s string) *ImmersionLogUpdate {
	ilu.mutation.SetUnitName(s)
	return ilu
}

// SetNillableUnitName sets the "unit_name" field if the given value is not nil.
func (ilu *ImmersionLogUpdate) SetNillableUnitName(s *string) *ImmersionLogUpdate {
	if s != nil {
		ilu.SetUnitName(*s)
	}
	return ilu
}

// SetDurationSeconds sets the "duration_seconds" field.
func (ilu *ImmersionLogUpdate) SetDurationSeconds(i int64) *ImmersionLogUpdate {
	ilu.mutation.ResetDurationSeconds()
	ilu.mutation.SetDurationSeconds(i)
	return ilu
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (ilu *ImmersionLogUpdate) SetNillableDurationSeconds(i *int64) *ImmersionLogUpdate {
	if i != nil {
		ilu.SetDurationSeconds(*i)
	}
	return ilu
}

// AddDurationSeconds adds i to the "duration_seconds" field.
func (ilu *ImmersionLogUpdate) AddDurationSeconds(i int64) *ImmersionLogUpdate {
	ilu.mutation.AddDurationSeconds(i)
	return ilu
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (ilu *ImmersionLogUpdate) ClearDurationSeconds() *ImmersionLogUpdate {
	ilu.mutation.ClearDurationSeconds()
	return ilu
}

// SetScore sets the "score" field.
func (ilu *ImmersionLogUpdate) SetScore(f float64) *ImmersionLogUpdate {
	ilu.mutation.ResetScore()
	ilu.mutation.SetScore(f)
	return ilu
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (ilu *ImmersionLogUpdate) SetNillableScore(f *float64) *ImmersionLogUpdate {
	if f != nil {
		ilu.SetScore(*f)
	}
	return ilu
}

// AddScore adds f to the "score" field.
func (ilu *ImmersionLogUpdate) AddScore(f float64) *ImmersionLogUpdate {
	ilu.mutation.AddScore(f)
	return ilu
}

// SetTags sets the "tags" field.
func (ilu *ImmersionLogUpdate) SetTags(s []string) *ImmersionLogUpdate {
	ilu.mutation.SetTags(s)
	return ilu
}

// AppendTags appends s to the "tags" field.
func (ilu *ImmersionLogUpdate) AppendTags(s []string) *ImmersionLogUpdate {
	ilu.mutation.AppendTags(s)
	return ilu
}

// SetDescription sets the "description" field.
func (ilu *ImmersionLogUpdate) SetDescription(s string) *ImmersionLogUpdate {
	ilu.mutation.SetDescription(s)
	return ilu
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (ilu *ImmersionLogUpdate) SetNillableDescription(s *string) *ImmersionLogUpdate {
	if s != nil {
		ilu.SetDescription(*s)
	}
	return ilu
}

// SetUpdatedAt sets the "updated_at" field.
func (ilu *ImmersionLogUpdate) SetUpdatedAt(t time.Time) *ImmersionLogUpdate {
	ilu.mutation.SetUpdatedAt(t)
	return ilu
}

// AddAttachmentIDs adds the "attachments" edge to the LogAttachment entity by IDs.
func (ilu *ImmersionLogUpdate) AddAttachmentIDs(ids ...int) *ImmersionLogUpdate {
	ilu.mutation.AddAttachmentIDs(ids...)
	return ilu
}

// AddAttachments adds the "attachments" edges to the LogAttachment entity.
func (ilu *ImmersionLogUpdate) AddAttachments(l ...*LogAttachment) *ImmersionLogUpdate {
	ids := make([]int, len(l))
	for i := range l {
		ids[i] = l[i].ID
	}
	return ilu.AddAttachmentIDs(ids...)
}

// Mutation returns the ImmersionLogMutation object of the builder.
func (ilu *ImmersionLogUpdate) Mutation() *ImmersionLogMutation {
	return ilu.mutation
}

// ClearAttachments clears all "attachments" edges to the LogAttachment entity.
func (ilu *ImmersionLogUpdate) ClearAttachments() *ImmersionLogUpdate {
	ilu.mutation.ClearAttachments()
	return ilu
}

// RemoveAttachmentIDs removes the "attachments" edge to LogAttachment entities by IDs.
func (ilu *ImmersionLogUpdate) RemoveAttachmentIDs(ids ...int) *ImmersionLogUpdate {
	ilu.mutation.RemoveAttachmentIDs(ids...)
	return ilu
}

// RemoveAttachments removes "attachments" edges to LogAttachment entities.
func (ilu *ImmersionLogUpdate) RemoveAttachments(l ...*LogAttachment) *ImmersionLogUpdate {
	ids := make([]int, len(l))
	for i := range l {
		ids[i] = l[i].ID
	}
	return ilu.RemoveAttachmentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (ilu *ImmersionLogUpdate) Save(ctx context.Context) (int, error) {
	ilu.defaults()
	return withHooks(ctx, ilu.sqlSave, ilu.mutation, ilu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ilu *ImmersionLogUpdate) SaveX(ctx context.Context) int {
	affected, err := ilu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (ilu *ImmersionLogUpdate) Exec(ctx context.Context) error {
	_, err := ilu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ilu *ImmersionLogUpdate) ExecX(ctx context.Context) {
	if err := ilu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ilu *ImmersionLogUpdate) defaults() {
	if _, ok := ilu.mutation.UpdatedAt(); !ok {
		v := immersionlog.UpdateDefaultUpdatedAt()
		ilu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ilu *ImmersionLogUpdate) check() error {
	if v, ok := ilu.mutation.LanguageCode(); ok {
		if err := immersionlog.LanguageCodeValidator(v); err != nil {
			return &ValidationError{Name: "language_code", err: fmt.Errorf(`ent: validator failed for field "ImmersionLog.language_code": %w`, err)}
		}
	}
	return nil
}

func (ilu *ImmersionLogUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := ilu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(immersionlog.Table, immersionlog.Columns, sqlgraph.NewFieldSpec(immersionlog.FieldID, field.TypeUUID))
	if ps := ilu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ilu.mutation.UserID(); ok {
		_spec.SetField(immersionlog.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := ilu.mutation.AddedUserID(); ok {
		_spec.AddField(immersionlog.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := ilu.mutation.LanguageCode(); ok {
		_spec.SetField(immersionlog.FieldLanguageCode, field.TypeString, value)
	}
	if value, ok := ilu.mutation.ActivityID(); ok {
		_spec.SetField(immersionlog.FieldActivityID, field.TypeInt32, value)
	}
	if value, ok := ilu.mutation.AddedActivityID(); ok {
		_spec.AddField(immersionlog.FieldActivityID, field.TypeInt32, value)
	}
	if value, ok := ilu.mutation.Amount(); ok {
		_spec.SetField(immersionlog.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := ilu.mutation.AddedAmount(); ok {
		_spec.AddField(immersionlog.FieldAmount, field.TypeFloat64, value)
	}
	if ilu.mutation.AmountCleared() {
		_spec.ClearField(immersionlog.FieldAmount, field.TypeFloat64)
	}
	if value, ok := ilu.mutation.UnitID(); ok {
		_spec.SetField(immersionlog.FieldUnitID, field.TypeUUID, value)
	}
	if ilu.mutation.UnitIDCleared() {
		_spec.ClearField(immersionlog.FieldUnitID, field.TypeUUID)
	}
	if value, ok := ilu.mutation.UnitName(); ok {
		_spec.SetField(immersionlog.FieldUnitName, field.TypeString, value)
	}
	if value, ok := ilu.mutation.DurationSeconds(); ok {
		_spec.SetField(immersionlog.FieldDurationSeconds, field.TypeInt64, value)
	}
	if value, ok := ilu.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(immersionlog.FieldDurationSeconds, field.TypeInt64, value)
	}
	if ilu.mutation.DurationSecondsCleared() {
		_spec.ClearField(immersionlog.FieldDurationSeconds, field.TypeInt64)
	}
	if value, ok := ilu.mutation.Score(); ok {
		_spec.SetField(immersionlog.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := ilu.mutation.AddedScore(); ok {
		_spec.AddField(immersionlog.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := ilu.mutation.Tags(); ok {
		_spec.SetField(immersionlog.FieldTags, field.TypeJSON, value)
	}
	if value, ok := ilu.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, immersionlog.FieldTags, value)
		})
	}
	if value, ok := ilu.mutation.Description(); ok {
		_spec.SetField(immersionlog.FieldDescription, field.TypeString, value)
	}
	if value, ok := ilu.mutation.UpdatedAt(); ok {
		_spec.SetField(immersionlog.FieldUpdatedAt, field.TypeTime, value)
	}
	if ilu.mutation.AttachmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ilu.mutation.RemovedAttachmentsIDs(); len(nodes) > 0 && !ilu.mutation.AttachmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ilu.mutation.AttachmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, ilu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{immersionlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	ilu.mutation.done = true
	return n, nil
}

// ImmersionLogUpdateOne is the builder for updating a single ImmersionLog entity.
type ImmersionLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ImmersionLogMutation
}

// SetUserID sets the "user_id" field.
func (iluo *ImmersionLogUpdateOne) SetUserID(i int64) *ImmersionLogUpdateOne {
	iluo.mutation.ResetUserID()
	iluo.mutation.SetUserID(i)
	return iluo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (iluo *ImmersionLogUpdateOne) SetNillableUserID(i *int64) *ImmersionLogUpdateOne {
	if i != nil {
		iluo.SetUserID(*i)
	}
	return iluo
}

// AddUserID adds i to the "user_id" field.
func (iluo *ImmersionLogUpdateOne) AddUserID(i int64) *ImmersionLogUpdateOne {
	iluo.mutation.AddUserID(i)
	return iluo
}

// SetLanguageCode sets the "language_code" field.
func (iluo *ImmersionLogUpdateOne) SetLanguageCode(s string) *ImmersionLogUpdateOne {
	iluo.mutation.SetLanguageCode(s)
	return iluo
}

// SetNillableLanguageCode sets the "language_code" field if the given value is not nil.
func (iluo *ImmersionLogUpdateOne) SetNillableLanguageCode(s *string) *ImmersionLogUpdateOne {
	if s != nil {
		iluo.SetLanguageCode(*s)
	}
	return iluo
}

// SetActivityID sets the "activity_id" field.
func (iluo *ImmersionLogUpdateOne) SetActivityID(i int32) *ImmersionLogUpdateOne {
	iluo.mutation.ResetActivityID()
	iluo.mutation.SetActivityID(i)
	return iluo
}

// SetNillableActivityID sets the "activity_id" field if the given value is not nil.
func (iluo *ImmersionLogUpdateOne) SetNillableActivityID(i *int32) *ImmersionLogUpdateOne {
	if i != nil {
		iluo.SetActivityID(*i)
	}
	return iluo
}

// AddActivityID adds i to the "activity_id" field.
func (iluo *ImmersionLogUpdateOne) AddActivityID(i int32) *ImmersionLogUpdateOne {
	iluo.mutation.AddActivityID(i)
	return iluo
}

// SetAmount sets the "amount" field.
func (iluo *ImmersionLogUpdateOne) SetAmount(f float64) *ImmersionLogUpdateOne {
	iluo.mutation.ResetAmount()
	iluo.mutation.SetAmount(f)
	return iluo
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (iluo *ImmersionLogUpdateOne) SetNillableAmount(f *float64) *ImmersionLogUpdateOne {
	if f != nil {
		iluo.SetAmount(*f)
	}
	return iluo
}

// AddAmount adds f to the "amount" field.
func (iluo *ImmersionLogUpdateOne) AddAmount(f float64) *ImmersionLogUpdateOne {
	iluo.mutation.AddAmount(f)
	return iluo
}

// ClearAmount clears the value of the "amount" field.
func (iluo *ImmersionLogUpdateOne) ClearAmount() *ImmersionLogUpdateOne {
	iluo.mutation.ClearAmount()
	return iluo
}

// SetUnitID sets the "unit_id" field.
func (iluo *ImmersionLogUpdateOne) SetUnitID(u uuid.UUID) *ImmersionLogUpdateOne {
	iluo.mutation.SetUnitID(u)
	return iluo
}

// SetNillableUnitID sets the "unit_id" field if the given value is not nil.
func (iluo *ImmersionLogUpdateOne) SetNillableUnitID(u *uuid.UUID) *ImmersionLogUpdateOne {
	if u != nil {
		iluo.SetUnitID(*u)
	}
	return iluo
}

// ClearUnitID clears the value of the "unit_id" field.
func (iluo *ImmersionLogUpdateOne) ClearUnitID() *ImmersionLogUpdateOne {
	iluo.mutation.ClearUnitID()
	return iluo
}

// SetUnitName sets the "unit_name" field.
func (iluo *ImmersionLogUpdateOne) SetUnitName(s string) *ImmersionLogUpdateOne {
	iluo.mutation.SetUnitName(s)
	return iluo
}

// SetNillableUnitName sets the "unit_name" field if the given value is not nil.
func (iluo *ImmersionLogUpdateOne) SetNillableUnitName(s *string) *ImmersionLogUpdateOne {
	if s != nil {
		iluo.SetUnitName(*s)
	}
	return iluo
}

// SetDurationSeconds sets the "duration_seconds" field.
func (iluo *ImmersionLogUpdateOne) SetDurationSeconds(i int64) *ImmersionLogUpdateOne {
	iluo.mutation.ResetDurationSeconds()
	iluo.mutation.SetDurationSeconds(i)
	return iluo
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (iluo *ImmersionLogUpdateOne) SetNillableDurationSeconds(i *int64) *ImmersionLogUpdateOne {
	if i != nil {
		iluo.SetDurationSeconds(*i)
	}
	return iluo
}

// AddDurationSeconds adds i to the "duration_seconds" field.
func (iluo *ImmersionLogUpdateOne) AddDurationSeconds(i int64) *ImmersionLogUpdateOne {
	iluo.mutation.AddDurationSeconds(i)
	return iluo
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (iluo *ImmersionLogUpdateOne) ClearDurationSeconds() *ImmersionLogUpdateOne {
	iluo.mutation.ClearDurationSeconds()
	return iluo
}

// SetScore sets the "score" field.
func (iluo *ImmersionLogUpdateOne) SetScore(f float64) *ImmersionLogUpdateOne {
	iluo.mutation.ResetScore()
	iluo.mutation.SetScore(f)
	return iluo
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (iluo *ImmersionLogUpdateOne) SetNillableScore(f *float64) *ImmersionLogUpdateOne {
	if f != nil {
		iluo.SetScore(*f)
	}
	return iluo
}

// AddScore adds f to the "score" field.
func (iluo *ImmersionLogUpdateOne) AddScore(f float64) *ImmersionLogUpdateOne {
	iluo.mutation.AddScore(f)
	return iluo
}

// SetTags sets the "tags" field.
func (iluo *ImmersionLogUpdateOne) SetTags(s []string) *ImmersionLogUpdateOne {
	iluo.mutation.SetTags(s)
	return iluo
}

// AppendTags appends s to the "tags" field.
func (iluo *ImmersionLogUpdateOne) AppendTags(s []string) *ImmersionLogUpdateOne {
	iluo.mutation.AppendTags(s)
	return iluo
}

// SetDescription sets the "description" field.
func (iluo *ImmersionLogUpdateOne) SetDescription(s string) *ImmersionLogUpdateOne {
	iluo.mutation.SetDescription(s)
	return iluo
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (iluo *ImmersionLogUpdateOne) SetNillableDescription(s *string) *ImmersionLogUpdateOne {
	if s != nil {
		iluo.SetDescription(*s)
	}
	return iluo
}

// SetUpdatedAt sets the "updated_at" field.
func (iluo *ImmersionLogUpdateOne) SetUpdatedAt(t time.Time) *ImmersionLogUpdateOne {
	iluo.mutation.SetUpdatedAt(t)
	return iluo
}

// AddAttachmentIDs adds the "attachments" edge to the LogAttachment entity by IDs.
func (iluo *ImmersionLogUpdateOne) AddAttachmentIDs(ids ...int) *ImmersionLogUpdateOne {
	iluo.mutation.AddAttachmentIDs(ids...)
	return iluo
}

// AddAttachments adds the "attachments" edges to the LogAttachment entity.
func (iluo *ImmersionLogUpdateOne) AddAttachments(l ...*LogAttachment) *ImmersionLogUpdateOne {
	ids := make([]int, len(l))
	for i := range l {
		ids[i] = l[i].ID
	}
	return iluo.AddAttachmentIDs(ids...)
}

// Mutation returns the ImmersionLogMutation object of the builder.
func (iluo *ImmersionLogUpdateOne) Mutation() *ImmersionLogMutation {
	return iluo.mutation
}

// ClearAttachments clears all "attachments" edges to the LogAttachment entity.
func (iluo *ImmersionLogUpdateOne) ClearAttachments() *ImmersionLogUpdateOne {
	iluo.mutation.ClearAttachments()
	return iluo
}

// RemoveAttachmentIDs removes the "attachments" edge to LogAttachment entities by IDs.
func (iluo *ImmersionLogUpdateOne) RemoveAttachmentIDs(ids ...int) *ImmersionLogUpdateOne {
	iluo.mutation.RemoveAttachmentIDs(ids...)
	return iluo
}

// RemoveAttachments removes "attachments" edges to LogAttachment entities.
func (iluo *ImmersionLogUpdateOne) RemoveAttachments(l ...*LogAttachment) *ImmersionLogUpdateOne {
	ids := make([]int, len(l))
	for i := range l {
		ids[i] = l[i].ID
	}
	return iluo.RemoveAttachmentIDs(ids...)
}

// Where appends a list predicates to the ImmersionLogUpdate builder.
func (iluo *ImmersionLogUpdateOne) Where(ps ...predicate.ImmersionLog) *ImmersionLogUpdateOne {
	iluo.mutation.Where(ps...)
	return iluo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (iluo *ImmersionLogUpdateOne) Select(field string, fields ...string) *ImmersionLogUpdateOne {
	iluo.fields = append([]string{field}, fields...)
	return iluo
}

// Save executes the query and returns the updated ImmersionLog entity.
func (iluo *ImmersionLogUpdateOne) Save(ctx context.Context) (*ImmersionLog, error) {
	iluo.defaults()
	return withHooks(ctx, iluo.sqlSave, iluo.mutation, iluo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (iluo *ImmersionLogUpdateOne) SaveX(ctx context.Context) *ImmersionLog {
	node, err := iluo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (iluo *ImmersionLogUpdateOne) Exec(ctx context.Context) error {
	_, err := iluo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (iluo *ImmersionLogUpdateOne) ExecX(ctx context.Context) {
	if err := iluo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (iluo *ImmersionLogUpdateOne) defaults() {
	if _, ok := iluo.mutation.UpdatedAt(); !ok {
		v := immersionlog.UpdateDefaultUpdatedAt()
		iluo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (iluo *ImmersionLogUpdateOne) check() error {
	if v, ok := iluo.mutation.LanguageCode(); ok {
		if err := immersionlog.LanguageCodeValidator(v); err != nil {
			return &ValidationError{Name: "language_code", err: fmt.Errorf(`ent: validator failed for field "ImmersionLog.language_code": %w`, err)}
		}
	}
	return nil
}

func (iluo *ImmersionLogUpdateOne) sqlSave(ctx context.Context) (_node *ImmersionLog, err error) {
	if err := iluo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(immersionlog.Table, immersionlog.Columns, sqlgraph.NewFieldSpec(immersionlog.FieldID, field.TypeUUID))
	id, ok := iluo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ImmersionLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := iluo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, immersionlog.FieldID)
		for _, f := range fields {
			if !immersionlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != immersionlog.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := iluo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := iluo.mutation.UserID(); ok {
		_spec.SetField(immersionlog.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := iluo.mutation.AddedUserID(); ok {
		_spec.AddField(immersionlog.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := iluo.mutation.LanguageCode(); ok {
		_spec.SetField(immersionlog.FieldLanguageCode, field.TypeString, value)
	}
	if value, ok := iluo.mutation.ActivityID(); ok {
		_spec.SetField(immersionlog.FieldActivityID, field.TypeInt32, value)
	}
	if value, ok := iluo.mutation.AddedActivityID(); ok {
		_spec.AddField(immersionlog.FieldActivityID, field.TypeInt32, value)
	}
	if value, ok := iluo.mutation.Amount(); ok {
		_spec.SetField(immersionlog.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := iluo.mutation.AddedAmount(); ok {
		_spec.AddField(immersionlog.FieldAmount, field.TypeFloat64, value)
	}
	if iluo.mutation.AmountCleared() {
		_spec.ClearField(immersionlog.FieldAmount, field.TypeFloat64)
	}
	if value, ok := iluo.mutation.UnitID(); ok {
		_spec.SetField(immersionlog.FieldUnitID, field.TypeUUID, value)
	}
	if iluo.mutation.UnitIDCleared() {
		_spec.ClearField(immersionlog.FieldUnitID, field.TypeUUID)
	}
	if value, ok := iluo.mutation.UnitName(); ok {
		_spec.SetField(immersionlog.FieldUnitName, field.TypeString, value)
	}
	if value, ok := iluo.mutation.DurationSeconds(); ok {
		_spec.SetField(immersionlog.FieldDurationSeconds, field.TypeInt64, value)
	}
	if value, ok := iluo.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(immersionlog.FieldDurationSeconds, field.TypeInt64, value)
	}
	if iluo.mutation.DurationSecondsCleared() {
		_spec.ClearField(immersionlog.FieldDurationSeconds, field.TypeInt64)
	}
	if value, ok := iluo.mutation.Score(); ok {
		_spec.SetField(immersionlog.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := iluo.mutation.AddedScore(); ok {
		_spec.AddField(immersionlog.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := iluo.mutation.Tags(); ok {
		_spec.SetField(immersionlog.FieldTags, field.TypeJSON, value)
	}
	if value, ok := iluo.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, immersionlog.FieldTags, value)
		})
	}
	if value, ok := iluo.mutation.Description(); ok {
		_spec.SetField(immersionlog.FieldDescription, field.TypeString, value)
	}
	if value, ok := iluo.mutation.UpdatedAt(); ok {
		_spec.SetField(immersionlog.FieldUpdatedAt, field.TypeTime, value)
	}
	if iluo.mutation.AttachmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := iluo.mutation.RemovedAttachmentsIDs(); len(nodes) > 0 && !iluo.mutation.AttachmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := iluo.mutation.AttachmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ImmersionLog{config: iluo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, iluo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{immersionlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	iluo.mutation.done = true
	return _node, nil
}
