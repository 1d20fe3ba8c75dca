// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/predicate"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/restaurantlocation"
)

// RestaurantLocationDelete is the builder for deleting a RestaurantLocation entity.
type RestaurantLocationDelete struct {
	config
	hooks    []Hook
	mutation *RestaurantLocationMutation
}

// Where appends a list predicates to the RestaurantLocationDelete builder.
func (_d *RestaurantLocationDelete) Where(ps ...predicate.RestaurantLocation) *RestaurantLocationDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *RestaurantLocationDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RestaurantLocationDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *RestaurantLocationDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(restaurantlocation.Table, sqlgraph.NewFieldSpec(restaurantlocation.FieldID, field.TypeUUID))
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

// RestaurantLocationDeleteOne is the builder for deleting a single RestaurantLocation entity.
type RestaurantLocationDeleteOne struct {
	_d *RestaurantLocationDelete
}

// Where appends a list predicates to the RestaurantLocationDelete builder.
func (_d *RestaurantLocationDeleteOne) Where(ps ...predicate.RestaurantLocation) *RestaurantLocationDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *RestaurantLocationDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{restaurantlocation.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RestaurantLocationDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
