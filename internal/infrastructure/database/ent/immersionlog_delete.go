// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/immersionlog"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/predicate"
)

// ImmersionLogDelete is the builder for deleting a ImmersionLog entity.
type ImmersionLogDelete struct {
	config
	hooks    []Hook
	mutation *ImmersionLogMutation
}

// Where appends a list predicates to the ImmersionLogDelete builder.
func (ild *ImmersionLogDelete) Where(ps ...predicate.ImmersionLog) *ImmersionLogDelete {
	ild.mutation.Where(ps...)
	return ild
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (ild *ImmersionLogDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, ild.sqlExec, ild.mutation, ild.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (ild *ImmersionLogDelete) ExecX(ctx context.Context) int {
	n, err := ild.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (ild *ImmersionLogDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(immersionlog.Table, sqlgraph.NewFieldSpec(immersionlog.FieldID, field.TypeUUID))
	if ps := ild.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, ild.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	ild.mutation.done = true
	return affected, err
}

// ImmersionLogDeleteOne is the builder for deleting a single ImmersionLog entity.
type ImmersionLogDeleteOne struct {
	ild *ImmersionLogDelete
}

// Where appends a list predicates to the ImmersionLogDelete builder.
func (ildo *ImmersionLogDeleteOne) Where(ps ...predicate.ImmersionLog) *ImmersionLogDeleteOne {
	ildo.ild.mutation.Where(ps...)
	return ildo
}

// Exec executes the deletion query.
func (ildo *ImmersionLogDeleteOne) Exec(ctx context.Context) error {
	n, err := ildo.ild.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{immersionlog.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (ildo *ImmersionLogDeleteOne) ExecX(ctx context.Context) {
	if err := ildo.Exec(ctx); err != nil {
		panic(err)
	}
}
