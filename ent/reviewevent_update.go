// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/halvden/grimoire/ent/predicate"
	"github.com/halvden/grimoire/ent/reviewevent"
)

// ReviewEventUpdate is the builder for updating ReviewEvent entities.
type ReviewEventUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewEventMutation
}

// Where appends a list predicates to the ReviewEventUpdate builder.
func (_u *ReviewEventUpdate) Where(ps ...predicate.ReviewEvent) *ReviewEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBattleID sets the "battle_id" field.
func (_u *ReviewEventUpdate) SetBattleID(v string) *ReviewEventUpdate {
	_u.mutation.SetBattleID(v)
	return _u
}

// SetNillableBattleID sets the "battle_id" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableBattleID(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetBattleID(*v)
	}
	return _u
}

// SetDeckID sets the "deck_id" field.
func (_u *ReviewEventUpdate) SetDeckID(v string) *ReviewEventUpdate {
	_u.mutation.SetDeckID(v)
	return _u
}

// SetNillableDeckID sets the "deck_id" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableDeckID(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetDeckID(*v)
	}
	return _u
}

// SetCardID sets the "card_id" field.
func (_u *ReviewEventUpdate) SetCardID(v string) *ReviewEventUpdate {
	_u.mutation.SetCardID(v)
	return _u
}

// SetNillableCardID sets the "card_id" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableCardID(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetCardID(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *ReviewEventUpdate) SetMode(v string) *ReviewEventUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableMode(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *ReviewEventUpdate) SetGrade(v string) *ReviewEventUpdate {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableGrade(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *ReviewEventUpdate) SetCorrect(v bool) *ReviewEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableCorrect(v *bool) *ReviewEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *ReviewEventUpdate) SetTimeMs(v int) *ReviewEventUpdate {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableTimeMs(v *int) *ReviewEventUpdate {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *ReviewEventUpdate) AddTimeMs(v int) *ReviewEventUpdate {
	_u.mutation.AddTimeMs(v)
	return _u
}

// SetStateBefore sets the "state_before" field.
func (_u *ReviewEventUpdate) SetStateBefore(v string) *ReviewEventUpdate {
	_u.mutation.SetStateBefore(v)
	return _u
}

// SetNillableStateBefore sets the "state_before" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableStateBefore(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetStateBefore(*v)
	}
	return _u
}

// SetStateAfter sets the "state_after" field.
func (_u *ReviewEventUpdate) SetStateAfter(v string) *ReviewEventUpdate {
	_u.mutation.SetStateAfter(v)
	return _u
}

// SetNillableStateAfter sets the "state_after" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableStateAfter(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetStateAfter(*v)
	}
	return _u
}

// SetStability sets the "stability" field.
func (_u *ReviewEventUpdate) SetStability(v float64) *ReviewEventUpdate {
	_u.mutation.ResetStability()
	_u.mutation.SetStability(v)
	return _u
}

// SetNillableStability sets the "stability" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableStability(v *float64) *ReviewEventUpdate {
	if v != nil {
		_u.SetStability(*v)
	}
	return _u
}

// AddStability adds value to the "stability" field.
func (_u *ReviewEventUpdate) AddStability(v float64) *ReviewEventUpdate {
	_u.mutation.AddStability(v)
	return _u
}

// SetDueAt sets the "due_at" field.
func (_u *ReviewEventUpdate) SetDueAt(v time.Time) *ReviewEventUpdate {
	_u.mutation.SetDueAt(v)
	return _u
}

// SetNillableDueAt sets the "due_at" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableDueAt(v *time.Time) *ReviewEventUpdate {
	if v != nil {
		_u.SetDueAt(*v)
	}
	return _u
}

// Mutation returns the ReviewEventMutation object of the builder.
func (_u *ReviewEventUpdate) Mutation() *ReviewEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewEventUpdate) check() error {
	if v, ok := _u.mutation.BattleID(); ok {
		if err := reviewevent.BattleIDValidator(v); err != nil {
			return &ValidationError{Name: "battle_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.battle_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DeckID(); ok {
		if err := reviewevent.DeckIDValidator(v); err != nil {
			return &ValidationError{Name: "deck_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.deck_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CardID(); ok {
		if err := reviewevent.CardIDValidator(v); err != nil {
			return &ValidationError{Name: "card_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.card_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mode(); ok {
		if err := reviewevent.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Grade(); ok {
		if err := reviewevent.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.grade": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StateBefore(); ok {
		if err := reviewevent.StateBeforeValidator(v); err != nil {
			return &ValidationError{Name: "state_before", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.state_before": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StateAfter(); ok {
		if err := reviewevent.StateAfterValidator(v); err != nil {
			return &ValidationError{Name: "state_after", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.state_after": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewevent.Table, reviewevent.Columns, sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BattleID(); ok {
		_spec.SetField(reviewevent.FieldBattleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DeckID(); ok {
		_spec.SetField(reviewevent.FieldDeckID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CardID(); ok {
		_spec.SetField(reviewevent.FieldCardID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(reviewevent.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(reviewevent.FieldGrade, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(reviewevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(reviewevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(reviewevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StateBefore(); ok {
		_spec.SetField(reviewevent.FieldStateBefore, field.TypeString, value)
	}
	if value, ok := _u.mutation.StateAfter(); ok {
		_spec.SetField(reviewevent.FieldStateAfter, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stability(); ok {
		_spec.SetField(reviewevent.FieldStability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStability(); ok {
		_spec.AddField(reviewevent.FieldStability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DueAt(); ok {
		_spec.SetField(reviewevent.FieldDueAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewEventUpdateOne is the builder for updating a single ReviewEvent entity.
type ReviewEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewEventMutation
}

// SetBattleID sets the "battle_id" field.
func (_u *ReviewEventUpdateOne) SetBattleID(v string) *ReviewEventUpdateOne {
	_u.mutation.SetBattleID(v)
	return _u
}

// SetNillableBattleID sets the "battle_id" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableBattleID(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetBattleID(*v)
	}
	return _u
}

// SetDeckID sets the "deck_id" field.
func (_u *ReviewEventUpdateOne) SetDeckID(v string) *ReviewEventUpdateOne {
	_u.mutation.SetDeckID(v)
	return _u
}

// SetNillableDeckID sets the "deck_id" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableDeckID(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetDeckID(*v)
	}
	return _u
}

// SetCardID sets the "card_id" field.
func (_u *ReviewEventUpdateOne) SetCardID(v string) *ReviewEventUpdateOne {
	_u.mutation.SetCardID(v)
	return _u
}

// SetNillableCardID sets the "card_id" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableCardID(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetCardID(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *ReviewEventUpdateOne) SetMode(v string) *ReviewEventUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableMode(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *ReviewEventUpdateOne) SetGrade(v string) *ReviewEventUpdateOne {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableGrade(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *ReviewEventUpdateOne) SetCorrect(v bool) *ReviewEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableCorrect(v *bool) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *ReviewEventUpdateOne) SetTimeMs(v int) *ReviewEventUpdateOne {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableTimeMs(v *int) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *ReviewEventUpdateOne) AddTimeMs(v int) *ReviewEventUpdateOne {
	_u.mutation.AddTimeMs(v)
	return _u
}

// SetStateBefore sets the "state_before" field.
func (_u *ReviewEventUpdateOne) SetStateBefore(v string) *ReviewEventUpdateOne {
	_u.mutation.SetStateBefore(v)
	return _u
}

// SetNillableStateBefore sets the "state_before" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableStateBefore(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetStateBefore(*v)
	}
	return _u
}

// SetStateAfter sets the "state_after" field.
func (_u *ReviewEventUpdateOne) SetStateAfter(v string) *ReviewEventUpdateOne {
	_u.mutation.SetStateAfter(v)
	return _u
}

// SetNillableStateAfter sets the "state_after" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableStateAfter(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetStateAfter(*v)
	}
	return _u
}

// SetStability sets the "stability" field.
func (_u *ReviewEventUpdateOne) SetStability(v float64) *ReviewEventUpdateOne {
	_u.mutation.ResetStability()
	_u.mutation.SetStability(v)
	return _u
}

// SetNillableStability sets the "stability" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableStability(v *float64) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetStability(*v)
	}
	return _u
}

// AddStability adds value to the "stability" field.
func (_u *ReviewEventUpdateOne) AddStability(v float64) *ReviewEventUpdateOne {
	_u.mutation.AddStability(v)
	return _u
}

// SetDueAt sets the "due_at" field.
func (_u *ReviewEventUpdateOne) SetDueAt(v time.Time) *ReviewEventUpdateOne {
	_u.mutation.SetDueAt(v)
	return _u
}

// SetNillableDueAt sets the "due_at" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableDueAt(v *time.Time) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetDueAt(*v)
	}
	return _u
}

// Mutation returns the ReviewEventMutation object of the builder.
func (_u *ReviewEventUpdateOne) Mutation() *ReviewEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReviewEventUpdate builder.
func (_u *ReviewEventUpdateOne) Where(ps ...predicate.ReviewEvent) *ReviewEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewEventUpdateOne) Select(field string, fields ...string) *ReviewEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReviewEvent entity.
func (_u *ReviewEventUpdateOne) Save(ctx context.Context) (*ReviewEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewEventUpdateOne) SaveX(ctx context.Context) *ReviewEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewEventUpdateOne) check() error {
	if v, ok := _u.mutation.BattleID(); ok {
		if err := reviewevent.BattleIDValidator(v); err != nil {
			return &ValidationError{Name: "battle_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.battle_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DeckID(); ok {
		if err := reviewevent.DeckIDValidator(v); err != nil {
			return &ValidationError{Name: "deck_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.deck_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CardID(); ok {
		if err := reviewevent.CardIDValidator(v); err != nil {
			return &ValidationError{Name: "card_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.card_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mode(); ok {
		if err := reviewevent.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Grade(); ok {
		if err := reviewevent.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.grade": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StateBefore(); ok {
		if err := reviewevent.StateBeforeValidator(v); err != nil {
			return &ValidationError{Name: "state_before", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.state_before": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StateAfter(); ok {
		if err := reviewevent.StateAfterValidator(v); err != nil {
			return &ValidationError{Name: "state_after", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.state_after": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewEventUpdateOne) sqlSave(ctx context.Context) (_node *ReviewEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewevent.Table, reviewevent.Columns, sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewevent.FieldID)
		for _, f := range fields {
			if !reviewevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BattleID(); ok {
		_spec.SetField(reviewevent.FieldBattleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DeckID(); ok {
		_spec.SetField(reviewevent.FieldDeckID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CardID(); ok {
		_spec.SetField(reviewevent.FieldCardID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(reviewevent.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(reviewevent.FieldGrade, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(reviewevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(reviewevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(reviewevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StateBefore(); ok {
		_spec.SetField(reviewevent.FieldStateBefore, field.TypeString, value)
	}
	if value, ok := _u.mutation.StateAfter(); ok {
		_spec.SetField(reviewevent.FieldStateAfter, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stability(); ok {
		_spec.SetField(reviewevent.FieldStability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStability(); ok {
		_spec.AddField(reviewevent.FieldStability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DueAt(); ok {
		_spec.SetField(reviewevent.FieldDueAt, field.TypeTime, value)
	}
	_node = &ReviewEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
