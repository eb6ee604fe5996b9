// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/halvden/grimoire/ent/battleevent"
	"github.com/halvden/grimoire/ent/predicate"
)

// BattleEventUpdate is the builder for updating BattleEvent entities.
type BattleEventUpdate struct {
	config
	hooks    []Hook
	mutation *BattleEventMutation
}

// Where appends a list predicates to the BattleEventUpdate builder.
func (_u *BattleEventUpdate) Where(ps ...predicate.BattleEvent) *BattleEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBattleID sets the "battle_id" field.
func (_u *BattleEventUpdate) SetBattleID(v string) *BattleEventUpdate {
	_u.mutation.SetBattleID(v)
	return _u
}

// SetNillableBattleID sets the "battle_id" field if the given value is not nil.
func (_u *BattleEventUpdate) SetNillableBattleID(v *string) *BattleEventUpdate {
	if v != nil {
		_u.SetBattleID(*v)
	}
	return _u
}

// SetDeckID sets the "deck_id" field.
func (_u *BattleEventUpdate) SetDeckID(v string) *BattleEventUpdate {
	_u.mutation.SetDeckID(v)
	return _u
}

// SetNillableDeckID sets the "deck_id" field if the given value is not nil.
func (_u *BattleEventUpdate) SetNillableDeckID(v *string) *BattleEventUpdate {
	if v != nil {
		_u.SetDeckID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *BattleEventUpdate) SetAction(v string) *BattleEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *BattleEventUpdate) SetNillableAction(v *string) *BattleEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetMonster sets the "monster" field.
func (_u *BattleEventUpdate) SetMonster(v string) *BattleEventUpdate {
	_u.mutation.SetMonster(v)
	return _u
}

// SetNillableMonster sets the "monster" field if the given value is not nil.
func (_u *BattleEventUpdate) SetNillableMonster(v *string) *BattleEventUpdate {
	if v != nil {
		_u.SetMonster(*v)
	}
	return _u
}

// SetCardsReviewed sets the "cards_reviewed" field.
func (_u *BattleEventUpdate) SetCardsReviewed(v int) *BattleEventUpdate {
	_u.mutation.ResetCardsReviewed()
	_u.mutation.SetCardsReviewed(v)
	return _u
}

// SetNillableCardsReviewed sets the "cards_reviewed" field if the given value is not nil.
func (_u *BattleEventUpdate) SetNillableCardsReviewed(v *int) *BattleEventUpdate {
	if v != nil {
		_u.SetCardsReviewed(*v)
	}
	return _u
}

// AddCardsReviewed adds value to the "cards_reviewed" field.
func (_u *BattleEventUpdate) AddCardsReviewed(v int) *BattleEventUpdate {
	_u.mutation.AddCardsReviewed(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *BattleEventUpdate) SetCorrectAnswers(v int) *BattleEventUpdate {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *BattleEventUpdate) SetNillableCorrectAnswers(v *int) *BattleEventUpdate {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *BattleEventUpdate) AddCorrectAnswers(v int) *BattleEventUpdate {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetXpEarned sets the "xp_earned" field.
func (_u *BattleEventUpdate) SetXpEarned(v int) *BattleEventUpdate {
	_u.mutation.ResetXpEarned()
	_u.mutation.SetXpEarned(v)
	return _u
}

// SetNillableXpEarned sets the "xp_earned" field if the given value is not nil.
func (_u *BattleEventUpdate) SetNillableXpEarned(v *int) *BattleEventUpdate {
	if v != nil {
		_u.SetXpEarned(*v)
	}
	return _u
}

// AddXpEarned adds value to the "xp_earned" field.
func (_u *BattleEventUpdate) AddXpEarned(v int) *BattleEventUpdate {
	_u.mutation.AddXpEarned(v)
	return _u
}

// SetGoldEarned sets the "gold_earned" field.
func (_u *BattleEventUpdate) SetGoldEarned(v int) *BattleEventUpdate {
	_u.mutation.ResetGoldEarned()
	_u.mutation.SetGoldEarned(v)
	return _u
}

// SetNillableGoldEarned sets the "gold_earned" field if the given value is not nil.
func (_u *BattleEventUpdate) SetNillableGoldEarned(v *int) *BattleEventUpdate {
	if v != nil {
		_u.SetGoldEarned(*v)
	}
	return _u
}

// AddGoldEarned adds value to the "gold_earned" field.
func (_u *BattleEventUpdate) AddGoldEarned(v int) *BattleEventUpdate {
	_u.mutation.AddGoldEarned(v)
	return _u
}

// SetVictory sets the "victory" field.
func (_u *BattleEventUpdate) SetVictory(v bool) *BattleEventUpdate {
	_u.mutation.SetVictory(v)
	return _u
}

// SetNillableVictory sets the "victory" field if the given value is not nil.
func (_u *BattleEventUpdate) SetNillableVictory(v *bool) *BattleEventUpdate {
	if v != nil {
		_u.SetVictory(*v)
	}
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *BattleEventUpdate) SetDurationSecs(v int) *BattleEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *BattleEventUpdate) SetNillableDurationSecs(v *int) *BattleEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *BattleEventUpdate) AddDurationSecs(v int) *BattleEventUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the BattleEventMutation object of the builder.
func (_u *BattleEventUpdate) Mutation() *BattleEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BattleEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BattleEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BattleEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BattleEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BattleEventUpdate) check() error {
	if v, ok := _u.mutation.BattleID(); ok {
		if err := battleevent.BattleIDValidator(v); err != nil {
			return &ValidationError{Name: "battle_id", err: fmt.Errorf(`ent: validator failed for field "BattleEvent.battle_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DeckID(); ok {
		if err := battleevent.DeckIDValidator(v); err != nil {
			return &ValidationError{Name: "deck_id", err: fmt.Errorf(`ent: validator failed for field "BattleEvent.deck_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := battleevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "BattleEvent.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Monster(); ok {
		if err := battleevent.MonsterValidator(v); err != nil {
			return &ValidationError{Name: "monster", err: fmt.Errorf(`ent: validator failed for field "BattleEvent.monster": %w`, err)}
		}
	}
	return nil
}

func (_u *BattleEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(battleevent.Table, battleevent.Columns, sqlgraph.NewFieldSpec(battleevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BattleID(); ok {
		_spec.SetField(battleevent.FieldBattleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DeckID(); ok {
		_spec.SetField(battleevent.FieldDeckID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(battleevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Monster(); ok {
		_spec.SetField(battleevent.FieldMonster, field.TypeString, value)
	}
	if value, ok := _u.mutation.CardsReviewed(); ok {
		_spec.SetField(battleevent.FieldCardsReviewed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCardsReviewed(); ok {
		_spec.AddField(battleevent.FieldCardsReviewed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(battleevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(battleevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.XpEarned(); ok {
		_spec.SetField(battleevent.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpEarned(); ok {
		_spec.AddField(battleevent.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GoldEarned(); ok {
		_spec.SetField(battleevent.FieldGoldEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGoldEarned(); ok {
		_spec.AddField(battleevent.FieldGoldEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Victory(); ok {
		_spec.SetField(battleevent.FieldVictory, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(battleevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(battleevent.FieldDurationSecs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{battleevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BattleEventUpdateOne is the builder for updating a single BattleEvent entity.
type BattleEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BattleEventMutation
}

// SetBattleID sets the "battle_id" field.
func (_u *BattleEventUpdateOne) SetBattleID(v string) *BattleEventUpdateOne {
	_u.mutation.SetBattleID(v)
	return _u
}

// SetNillableBattleID sets the "battle_id" field if the given value is not nil.
func (_u *BattleEventUpdateOne) SetNillableBattleID(v *string) *BattleEventUpdateOne {
	if v != nil {
		_u.SetBattleID(*v)
	}
	return _u
}

// SetDeckID sets the "deck_id" field.
func (_u *BattleEventUpdateOne) SetDeckID(v string) *BattleEventUpdateOne {
	_u.mutation.SetDeckID(v)
	return _u
}

// SetNillableDeckID sets the "deck_id" field if the given value is not nil.
func (_u *BattleEventUpdateOne) SetNillableDeckID(v *string) *BattleEventUpdateOne {
	if v != nil {
		_u.SetDeckID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *BattleEventUpdateOne) SetAction(v string) *BattleEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *BattleEventUpdateOne) SetNillableAction(v *string) *BattleEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetMonster sets the "monster" field.
func (_u *BattleEventUpdateOne) SetMonster(v string) *BattleEventUpdateOne {
	_u.mutation.SetMonster(v)
	return _u
}

// SetNillableMonster sets the "monster" field if the given value is not nil.
func (_u *BattleEventUpdateOne) SetNillableMonster(v *string) *BattleEventUpdateOne {
	if v != nil {
		_u.SetMonster(*v)
	}
	return _u
}

// SetCardsReviewed sets the "cards_reviewed" field.
func (_u *BattleEventUpdateOne) SetCardsReviewed(v int) *BattleEventUpdateOne {
	_u.mutation.ResetCardsReviewed()
	_u.mutation.SetCardsReviewed(v)
	return _u
}

// SetNillableCardsReviewed sets the "cards_reviewed" field if the given value is not nil.
func (_u *BattleEventUpdateOne) SetNillableCardsReviewed(v *int) *BattleEventUpdateOne {
	if v != nil {
		_u.SetCardsReviewed(*v)
	}
	return _u
}

// AddCardsReviewed adds value to the "cards_reviewed" field.
func (_u *BattleEventUpdateOne) AddCardsReviewed(v int) *BattleEventUpdateOne {
	_u.mutation.AddCardsReviewed(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *BattleEventUpdateOne) SetCorrectAnswers(v int) *BattleEventUpdateOne {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *BattleEventUpdateOne) SetNillableCorrectAnswers(v *int) *BattleEventUpdateOne {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *BattleEventUpdateOne) AddCorrectAnswers(v int) *BattleEventUpdateOne {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetXpEarned sets the "xp_earned" field.
func (_u *BattleEventUpdateOne) SetXpEarned(v int) *BattleEventUpdateOne {
	_u.mutation.ResetXpEarned()
	_u.mutation.SetXpEarned(v)
	return _u
}

// SetNillableXpEarned sets the "xp_earned" field if the given value is not nil.
func (_u *BattleEventUpdateOne) SetNillableXpEarned(v *int) *BattleEventUpdateOne {
	if v != nil {
		_u.SetXpEarned(*v)
	}
	return _u
}

// AddXpEarned adds value to the "xp_earned" field.
func (_u *BattleEventUpdateOne) AddXpEarned(v int) *BattleEventUpdateOne {
	_u.mutation.AddXpEarned(v)
	return _u
}

// SetGoldEarned sets the "gold_earned" field.
func (_u *BattleEventUpdateOne) SetGoldEarned(v int) *BattleEventUpdateOne {
	_u.mutation.ResetGoldEarned()
	_u.mutation.SetGoldEarned(v)
	return _u
}

// SetNillableGoldEarned sets the "gold_earned" field if the given value is not nil.
func (_u *BattleEventUpdateOne) SetNillableGoldEarned(v *int) *BattleEventUpdateOne {
	if v != nil {
		_u.SetGoldEarned(*v)
	}
	return _u
}

// AddGoldEarned adds value to the "gold_earned" field.
func (_u *BattleEventUpdateOne) AddGoldEarned(v int) *BattleEventUpdateOne {
	_u.mutation.AddGoldEarned(v)
	return _u
}

// SetVictory sets the "victory" field.
func (_u *BattleEventUpdateOne) SetVictory(v bool) *BattleEventUpdateOne {
	_u.mutation.SetVictory(v)
	return _u
}

// SetNillableVictory sets the "victory" field if the given value is not nil.
func (_u *BattleEventUpdateOne) SetNillableVictory(v *bool) *BattleEventUpdateOne {
	if v != nil {
		_u.SetVictory(*v)
	}
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *BattleEventUpdateOne) SetDurationSecs(v int) *BattleEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *BattleEventUpdateOne) SetNillableDurationSecs(v *int) *BattleEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *BattleEventUpdateOne) AddDurationSecs(v int) *BattleEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the BattleEventMutation object of the builder.
func (_u *BattleEventUpdateOne) Mutation() *BattleEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the BattleEventUpdate builder.
func (_u *BattleEventUpdateOne) Where(ps ...predicate.BattleEvent) *BattleEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BattleEventUpdateOne) Select(field string, fields ...string) *BattleEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BattleEvent entity.
func (_u *BattleEventUpdateOne) Save(ctx context.Context) (*BattleEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BattleEventUpdateOne) SaveX(ctx context.Context) *BattleEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BattleEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BattleEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BattleEventUpdateOne) check() error {
	if v, ok := _u.mutation.BattleID(); ok {
		if err := battleevent.BattleIDValidator(v); err != nil {
			return &ValidationError{Name: "battle_id", err: fmt.Errorf(`ent: validator failed for field "BattleEvent.battle_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DeckID(); ok {
		if err := battleevent.DeckIDValidator(v); err != nil {
			return &ValidationError{Name: "deck_id", err: fmt.Errorf(`ent: validator failed for field "BattleEvent.deck_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := battleevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "BattleEvent.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Monster(); ok {
		if err := battleevent.MonsterValidator(v); err != nil {
			return &ValidationError{Name: "monster", err: fmt.Errorf(`ent: validator failed for field "BattleEvent.monster": %w`, err)}
		}
	}
	return nil
}

func (_u *BattleEventUpdateOne) sqlSave(ctx context.Context) (_node *BattleEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(battleevent.Table, battleevent.Columns, sqlgraph.NewFieldSpec(battleevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BattleEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, battleevent.FieldID)
		for _, f := range fields {
			if !battleevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != battleevent.FieldID {
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
		_spec.SetField(battleevent.FieldBattleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DeckID(); ok {
		_spec.SetField(battleevent.FieldDeckID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(battleevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Monster(); ok {
		_spec.SetField(battleevent.FieldMonster, field.TypeString, value)
	}
	if value, ok := _u.mutation.CardsReviewed(); ok {
		_spec.SetField(battleevent.FieldCardsReviewed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCardsReviewed(); ok {
		_spec.AddField(battleevent.FieldCardsReviewed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(battleevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(battleevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.XpEarned(); ok {
		_spec.SetField(battleevent.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpEarned(); ok {
		_spec.AddField(battleevent.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GoldEarned(); ok {
		_spec.SetField(battleevent.FieldGoldEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGoldEarned(); ok {
		_spec.AddField(battleevent.FieldGoldEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Victory(); ok {
		_spec.SetField(battleevent.FieldVictory, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(battleevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(battleevent.FieldDurationSecs, field.TypeInt, value)
	}
	_node = &BattleEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{battleevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
