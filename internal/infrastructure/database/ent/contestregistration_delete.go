// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/contestregistration"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/predicate"
)

// ContestRegistrationDelete is the builder for deleting a ContestRegistration entity.
type ContestRegistrationDelete struct {
	config
	hooks    []Hook
	mutation *ContestRegistrationMutation
}

// Where appends a list predicates to the ContestRegistrationDelete builder.
func (crd *ContestRegistrationDelete) Where(ps ...predicate.ContestRegistration) *ContestRegistrationDelete {
	crd.mutation.Where(ps...)
	return crd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (crd *ContestRegistrationDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, crd.sqlExec, crd.mutation, crd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (crd *ContestRegistrationDelete) ExecX(ctx context.Context) int {
	n, err := crd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (crd *ContestRegistrationDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(contestregistration.Table, sqlgraph.NewFieldSpec(contestregistration.FieldID, field.TypeUUID))
	if ps := crd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, crd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	crd.mutation.done = true
	return affected, err
}

// ContestRegistrationDeleteOne is the builder for deleting a single ContestRegistration entity.
type ContestRegistrationDeleteOne struct {
	crd *ContestRegistrationDelete
}

// Where appends a list predicates to the ContestRegistrationDelete builder.
func (crdo *ContestRegistrationDeleteOne) Where(ps ...predicate.ContestRegistration) *ContestRegistrationDeleteOne {
	crdo.crd.mutation.Where(ps...)
	return crdo
}

// Exec executes the deletion query.
func (crdo *ContestRegistrationDeleteOne) Exec(ctx context.Context) error {
	n, err := crdo.crd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{contestregistration.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (crdo *ContestRegistrationDeleteOne) ExecX(ctx context.Context) {
	if err := crdo.Exec(ctx); err != nil {
		panic(err)
	}
}
