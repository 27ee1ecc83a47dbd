// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/logattachment"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/predicate"
)

// LogAttachmentDelete is the builder for deleting a LogAttachment entity.
type LogAttachmentDelete struct {
	config
	hooks    []Hook
	mutation *LogAttachmentMutation
}

// Where appends a list predicates to the LogAttachmentDelete builder.
func (lad *LogAttachmentDelete) Where(ps ...predicate.LogAttachment) *LogAttachmentDelete {
	lad.mutation.Where(ps...)
	return lad
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (lad *LogAttachmentDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, lad.sqlExec, lad.mutation, lad.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (lad *LogAttachmentDelete) ExecX(ctx context.Context) int {
	n, err := lad.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (lad *LogAttachmentDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(logattachment.Table, sqlgraph.NewFieldSpec(logattachment.FieldID, field.TypeInt))
	if ps := lad.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, lad.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	lad.mutation.done = true
	return affected, err
}

// LogAttachmentDeleteOne is the builder for deleting a single LogAttachment entity.
type LogAttachmentDeleteOne struct {
	lad *LogAttachmentDelete
}

// Where appends a list predicates to the LogAttachmentDelete builder.
func (lado *LogAttachmentDeleteOne) Where(ps ...predicate.LogAttachment) *LogAttachmentDeleteOne {
	lado.lad.mutation.Where(ps...)
	return lado
}

// Exec executes the deletion query.
func (lado *LogAttachmentDeleteOne) Exec(ctx context.Context) error {
	n, err := lado.lad.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{logattachment.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (lado *LogAttachmentDeleteOne) ExecX(ctx context.Context) {
	if err := lado.Exec(ctx); err != nil {
		panic(err)
	}
}
