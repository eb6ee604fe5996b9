// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/halvden/grimoire/ent/arbiterevent"
	"github.com/halvden/grimoire/ent/predicate"
)

// ArbiterEventDelete is the builder for deleting a ArbiterEvent entity.
type ArbiterEventDelete struct {
	config
	hooks    []Hook
	mutation *ArbiterEventMutation
}

// Where appends a list predicates to the ArbiterEventDelete builder.
func (_d *ArbiterEventDelete) Where(ps ...predicate.ArbiterEvent) *ArbiterEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ArbiterEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ArbiterEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ArbiterEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(arbiterevent.Table, sqlgraph.NewFieldSpec(arbiterevent.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ArbiterEventDeleteOne is the builder for deleting a single ArbiterEvent entity.
type ArbiterEventDeleteOne struct {
	_d *ArbiterEventDelete
}

// Where appends a list predicates to the ArbiterEventDelete builder.
func (_d *ArbiterEventDeleteOne) Where(ps ...predicate.ArbiterEvent) *ArbiterEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ArbiterEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{arbiterevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ArbiterEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
