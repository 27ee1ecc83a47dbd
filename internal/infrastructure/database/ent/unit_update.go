// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/predicate"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/unit"
)

// UnitUpdate is the builder for updating Unit entities.
type UnitUpdate struct {
	config
	hooks    []Hook
	mutation *UnitMutation
}

// Where appends a list predicates to the UnitUpdate builder.
func (uu *UnitUpdate) Where(ps ...predicate.Unit) *UnitUpdate {
	uu.mutation.Where(ps...)
	return uu
}

// SetName sets the "name" field.
func (uu *UnitUpdate) SetName(s string) *UnitUpdate {
	uu.mutation.SetName(s)
	return uu
}

// SetNillableName sets the "name" field if the given value is not nil.
func (uu *UnitUpdate) SetNillableName(s *string) *UnitUpdate {
	if s != nil {
		uu.SetName(*s)
	}
	return uu
}

// SetActivityID sets the "activity_id" field.
func (uu *UnitUpdate) SetActivityID(i int32) *UnitUpdate {
	uu.mutation.ResetActivityID()
	uu.mutation.SetActivityID(i)
	return uu
}

// SetNillableActivityID sets the "activity_id" field if the given value is not nil.
func (uu *UnitUpdate) SetNillableActivityID(i *int32) *UnitUpdate {
	if i != nil {
		uu.SetActivityID(*i)
	}
	return uu
}

// AddActivityID adds i to the "activity_id" field.
func (uu *UnitUpdate) AddActivityID(i int32) *UnitUpdate {
	uu.mutation.AddActivityID(i)
	return uu
}

// SetLanguageCode sets the "language_code" field.
func (uu *UnitUpdate) SetLanguageCode(s string) *UnitUpdate {
	uu.mutation.SetLanguageCode(s)
	return uu
}

// SetNillableLanguageCode sets the "language_code" field if the given value is not nil.
func (uu *UnitUpdate) SetNillableLanguageCode(s *string) *UnitUpdate {
	if s != nil {
		uu.SetLanguageCode(*s)
	}
	return uu
}

// ClearLanguageCode clears the value of the "language_code" field.
func (uu *UnitUpdate) ClearLanguageCode() *UnitUpdate {
	uu.mutation.ClearLanguageCode()
	return uu
}

// SetModifier sets the "modifier" field.
func (uu *UnitUpdate) SetModifier(f float64) *UnitUpdate {
	uu.mutation.ResetModifier()
	uu.mutation.SetModifier(f)
	return uu
}

// SetNillableModifier sets the "modifier" field if the given value is not nil.
func (uu *UnitUpdate) SetNillableModifier(f *float64) *UnitUpdate {
	if f != nil {
		uu.SetModifier(*f)
	}
	return uu
}

// AddModifier adds f to the "modifier" field.
func (uu *UnitUpdate) AddModifier(f float64) *UnitUpdate {
	uu.mutation.AddModifier(f)
	return uu
}

// Mutation returns the UnitMutation object of the builder.
func (uu *UnitUpdate) Mutation() *UnitMutation {
	return uu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (uu *UnitUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, uu.sqlSave, uu.mutation, uu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (uu *UnitUpdate) SaveX(ctx context.Context) int {
	affected, err := uu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (uu *UnitUpdate) Exec(ctx context.Context) error {
	_, err := uu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (uu *UnitUpdate) ExecX(ctx context.Context) {
	if err := uu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (uu *UnitUpdate) check() error {
	if v, ok := uu.mutation.Name(); ok {
		if err := unit.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Unit.name": %w`, err)}
		}
	}
	if v, ok := uu.mutation.LanguageCode(); ok {
		if err := unit.LanguageCodeValidator(v); err != nil {
			return &ValidationError{Name: "language_code", err: fmt.Errorf(`ent: validator failed for field "Unit.language_code": %w`, err)}
		}
	}
	return nil
}

func (uu *UnitUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := uu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(unit.Table, unit.Columns, sqlgraph.NewFieldSpec(unit.FieldID, field.TypeUUID))
	if ps := uu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := uu.mutation.Name(); ok {
		_spec.SetField(unit.FieldName, field.TypeString, value)
	}
	if value, ok := uu.mutation.ActivityID(); ok {
		_spec.SetField(unit.FieldActivityID, field.TypeInt32, value)
	}
	if value, ok := uu.mutation.AddedActivityID(); ok {
		_spec.AddField(unit.FieldActivityID, field.TypeInt32, value)
	}
	if value, ok := uu.mutation.LanguageCode(); ok {
		_spec.SetField(unit.FieldLanguageCode, field.TypeString, value)
	}
	if uu.mutation.LanguageCodeCleared() {
		_spec.ClearField(unit.FieldLanguageCode, field.TypeString)
	}
	if value, ok := uu.mutation.Modifier(); ok {
		_spec.SetField(unit.FieldModifier, field.TypeFloat64, value)
	}
	if value, ok := uu.mutation.AddedModifier(); ok {
		_spec.AddField(unit.FieldModifier, field.TypeFloat64, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, uu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{unit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	uu.mutation.done = true
	return n, nil
}

// UnitUpdateOne is the builder for updating a single Unit entity.
type UnitUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UnitMutation
}

// SetName sets the "name" field.
func (uuo *UnitUpdateOne) SetName(s string) *UnitUpdateOne {
	uuo.mutation.SetName(s)
	return uuo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (uuo *UnitUpdateOne) SetNillableName(s *string) *UnitUpdateOne {
	if s != nil {
		uuo.SetName(*s)
	}
	return uuo
}

// SetActivityID sets the "activity_id" field.
func (uuo *UnitUpdateOne) SetActivityID(i int32) *UnitUpdateOne {
	uuo.mutation.ResetActivityID()
	uuo.mutation.SetActivityID(i)
	return uuo
}

// SetNillableActivityID sets the "activity_id" field if the given value is not nil.
func (uuo *UnitUpdateOne) SetNillableActivityID(i *int32) *UnitUpdateOne {
	if i != nil {
		uuo.SetActivityID(*i)
	}
	return uuo
}

// AddActivityID adds i to the "activity_id" field.
func (uuo *UnitUpdateOne) AddActivityID(i int32) *UnitUpdateOne {
	uuo.mutation.AddActivityID(i)
	return uuo
}

// SetLanguageCode sets the "language_code" field.
func (uuo *UnitUpdateOne) SetLanguageCode(s string) *UnitUpdateOne {
	uuo.mutation.SetLanguageCode(s)
	return uuo
}

// SetNillableLanguageCode sets the "language_code" field if the given value is not nil.
func (uuo *UnitUpdateOne) SetNillableLanguageCode(s *string) *UnitUpdateOne {
	if s != nil {
		uuo.SetLanguageCode(*s)
	}
	return uuo
}

// ClearLanguageCode clears the value of the "language_code" field.
func (uuo *UnitUpdateOne) ClearLanguageCode() *UnitUpdateOne {
	uuo.mutation.ClearLanguageCode()
	return uuo
}

// SetModifier sets the "modifier" field.
func (uuo *UnitUpdateOne) SetModifier(f float64) *UnitUpdateOne {
	uuo.mutation.ResetModifier()
	uuo.mutation.SetModifier(f)
	return uuo
}

// SetNillableModifier sets the "modifier" field if the given value is not nil.
func (uuo *UnitUpdateOne) SetNillableModifier(f *float64) *UnitUpdateOne {
	if f != nil {
		uuo.SetModifier(*f)
	}
	return uuo
}

// AddModifier adds f to the "modifier" field.
func (uuo *UnitUpdateOne) AddModifier(f float64) *UnitUpdateOne {
	uuo.mutation.AddModifier(f)
	return uuo
}

// Mutation returns the UnitMutation object of the builder.
func (uuo *UnitUpdateOne) Mutation() *UnitMutation {
	return uuo.mutation
}

// Where appends a list predicates to the UnitUpdate builder.
func (uuo *UnitUpdateOne) Where(ps ...predicate.Unit) *UnitUpdateOne {
	uuo.mutation.Where(ps...)
	return uuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (uuo *UnitUpdateOne) Select(field string, fields ...string) *UnitUpdateOne {
	uuo.fields = append([]string{field}, fields...)
	return uuo
}

// Save executes the query and returns the updated Unit entity.
func (uuo *UnitUpdateOne) Save(ctx context.Context) (*Unit, error) {
	return withHooks(ctx, uuo.sqlSave, uuo.mutation, uuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (uuo *UnitUpdateOne) SaveX(ctx context.Context) *Unit {
	node, err := uuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (uuo *UnitUpdateOne) Exec(ctx context.Context) error {
	_, err := uuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (uuo *UnitUpdateOne) ExecX(ctx context.Context) {
	if err := uuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (uuo *UnitUpdateOne) check() error {
	if v, ok := uuo.mutation.Name(); ok {
		if err := unit.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Unit.name": %w`, err)}
		}
	}
	if v, ok := uuo.mutation.LanguageCode(); ok {
		if err := unit.LanguageCodeValidator(v); err != nil {
			return &ValidationError{Name: "language_code", err: fmt.Errorf(`ent: validator failed for field "Unit.language_code": %w`, err)}
		}
	}
	return nil
}

func (uuo *UnitUpdateOne) sqlSave(ctx context.Context) (_node *Unit, err error) {
	if err := uuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(unit.Table, unit.Columns, sqlgraph.NewFieldSpec(unit.FieldID, field.TypeUUID))
	id, ok := uuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Unit.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := uuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, unit.FieldID)
		for _, f := range fields {
			if !unit.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != unit.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := uuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := uuo.mutation.Name(); ok {
		_spec.SetField(unit.FieldName, field.TypeString, value)
	}
	if value, ok := uuo.mutation.ActivityID(); ok {
		_spec.SetField(unit.FieldActivityID, field.TypeInt32, value)
	}
	if value, ok := uuo.mutation.AddedActivityID(); ok {
		_spec.AddField(unit.FieldActivityID, field.TypeInt32, value)
	}
	if value, ok := uuo.mutation.LanguageCode(); ok {
		_spec.SetField(unit.FieldLanguageCode, field.TypeString, value)
	}
	if uuo.mutation.LanguageCodeCleared() {
		_spec.ClearField(unit.FieldLanguageCode, field.TypeString)
	}
	if value, ok := uuo.mutation.Modifier(); ok {
		_spec.SetField(unit.FieldModifier, field.TypeFloat64, value)
	}
	if value, ok := uuo.mutation.AddedModifier(); ok {
		_spec.AddField(unit.FieldModifier, field.TypeFloat64, value)
	}
	_node = &Unit{config: uuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, uuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{unit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	uuo.mutation.done = true
	return _node, nil
}
