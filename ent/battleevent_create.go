// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/halvden/grimoire/ent/battleevent"
)

// BattleEventCreate is the builder for creating a BattleEvent entity.
type BattleEventCreate struct {
	config
	mutation *BattleEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *BattleEventCreate) SetSequence(v int64) *BattleEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *BattleEventCreate) SetTimestamp(v time.Time) *BattleEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *BattleEventCreate) SetNillableTimestamp(v *time.Time) *BattleEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetBattleID sets the "battle_id" field.
func (_c *BattleEventCreate) SetBattleID(v string) *BattleEventCreate {
	_c.mutation.SetBattleID(v)
	return _c
}

// SetDeckID sets the "deck_id" field.
func (_c *BattleEventCreate) SetDeckID(v string) *BattleEventCreate {
	_c.mutation.SetDeckID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *BattleEventCreate) SetAction(v string) *BattleEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetMonster sets the "monster" field.
func (_c *BattleEventCreate) SetMonster(v string) *BattleEventCreate {
	_c.mutation.SetMonster(v)
	return _c
}

// SetCardsReviewed sets the "cards_reviewed" field.
func (_c *BattleEventCreate) SetCardsReviewed(v int) *BattleEventCreate {
	_c.mutation.SetCardsReviewed(v)
	return _c
}

// SetNillableCardsReviewed sets the "cards_reviewed" field if the given value is not nil.
func (_c *BattleEventCreate) SetNillableCardsReviewed(v *int) *BattleEventCreate {
	if v != nil {
		_c.SetCardsReviewed(*v)
	}
	return _c
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_c *BattleEventCreate) SetCorrectAnswers(v int) *BattleEventCreate {
	_c.mutation.SetCorrectAnswers(v)
	return _c
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_c *BattleEventCreate) SetNillableCorrectAnswers(v *int) *BattleEventCreate {
	if v != nil {
		_c.SetCorrectAnswers(*v)
	}
	return _c
}

// SetXpEarned sets the "xp_earned" field.
func (_c *BattleEventCreate) SetXpEarned(v int) *BattleEventCreate {
	_c.mutation.SetXpEarned(v)
	return _c
}

// SetNillableXpEarned sets the "xp_earned" field if the given value is not nil.
func (_c *BattleEventCreate) SetNillableXpEarned(v *int) *BattleEventCreate {
	if v != nil {
		_c.SetXpEarned(*v)
	}
	return _c
}

// SetGoldEarned sets the "gold_earned" field.
func (_c *BattleEventCreate) SetGoldEarned(v int) *BattleEventCreate {
	_c.mutation.SetGoldEarned(v)
	return _c
}

// SetNillableGoldEarned sets the "gold_earned" field if the given value is not nil.
func (_c *BattleEventCreate) SetNillableGoldEarned(v *int) *BattleEventCreate {
	if v != nil {
		_c.SetGoldEarned(*v)
	}
	return _c
}

// SetVictory sets the "victory" field.
func (_c *BattleEventCreate) SetVictory(v bool) *BattleEventCreate {
	_c.mutation.SetVictory(v)
	return _c
}

// SetNillableVictory sets the "victory" field if the given value is not nil.
func (_c *BattleEventCreate) SetNillableVictory(v *bool) *BattleEventCreate {
	if v != nil {
		_c.SetVictory(*v)
	}
	return _c
}

// SetDurationSecs sets the "duration_secs" field.
func (_c *BattleEventCreate) SetDurationSecs(v int) *BattleEventCreate {
	_c.mutation.SetDurationSecs(v)
	return _c
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_c *BattleEventCreate) SetNillableDurationSecs(v *int) *BattleEventCreate {
	if v != nil {
		_c.SetDurationSecs(*v)
	}
	return _c
}

// Mutation returns the BattleEventMutation object of the builder.
func (_c *BattleEventCreate) Mutation() *BattleEventMutation {
	return _c.mutation
}

// Save creates the BattleEvent in the database.
func (_c *BattleEventCreate) Save(ctx context.Context) (*BattleEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BattleEventCreate) SaveX(ctx context.Context) *BattleEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BattleEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BattleEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BattleEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := battleevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.CardsReviewed(); !ok {
		v := battleevent.DefaultCardsReviewed
		_c.mutation.SetCardsReviewed(v)
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		v := battleevent.DefaultCorrectAnswers
		_c.mutation.SetCorrectAnswers(v)
	}
	if _, ok := _c.mutation.XpEarned(); !ok {
		v := battleevent.DefaultXpEarned
		_c.mutation.SetXpEarned(v)
	}
	if _, ok := _c.mutation.GoldEarned(); !ok {
		v := battleevent.DefaultGoldEarned
		_c.mutation.SetGoldEarned(v)
	}
	if _, ok := _c.mutation.Victory(); !ok {
		v := battleevent.DefaultVictory
		_c.mutation.SetVictory(v)
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		v := battleevent.DefaultDurationSecs
		_c.mutation.SetDurationSecs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BattleEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "BattleEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "BattleEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.BattleID(); !ok {
		return &ValidationError{Name: "battle_id", err: errors.New(`ent: missing required field "BattleEvent.battle_id"`)}
	}
	if v, ok := _c.mutation.BattleID(); ok {
		if err := battleevent.BattleIDValidator(v); err != nil {
			return &ValidationError{Name: "battle_id", err: fmt.Errorf(`ent: validator failed for field "BattleEvent.battle_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DeckID(); !ok {
		return &ValidationError{Name: "deck_id", err: errors.New(`ent: missing required field "BattleEvent.deck_id"`)}
	}
	if v, ok := _c.mutation.DeckID(); ok {
		if err := battleevent.DeckIDValidator(v); err != nil {
			return &ValidationError{Name: "deck_id", err: fmt.Errorf(`ent: validator failed for field "BattleEvent.deck_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "BattleEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := battleevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "BattleEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Monster(); !ok {
		return &ValidationError{Name: "monster", err: errors.New(`ent: missing required field "BattleEvent.monster"`)}
	}
	if v, ok := _c.mutation.Monster(); ok {
		if err := battleevent.MonsterValidator(v); err != nil {
			return &ValidationError{Name: "monster", err: fmt.Errorf(`ent: validator failed for field "BattleEvent.monster": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CardsReviewed(); !ok {
		return &ValidationError{Name: "cards_reviewed", err: errors.New(`ent: missing required field "BattleEvent.cards_reviewed"`)}
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		return &ValidationError{Name: "correct_answers", err: errors.New(`ent: missing required field "BattleEvent.correct_answers"`)}
	}
	if _, ok := _c.mutation.XpEarned(); !ok {
		return &ValidationError{Name: "xp_earned", err: errors.New(`ent: missing required field "BattleEvent.xp_earned"`)}
	}
	if _, ok := _c.mutation.GoldEarned(); !ok {
		return &ValidationError{Name: "gold_earned", err: errors.New(`ent: missing required field "BattleEvent.gold_earned"`)}
	}
	if _, ok := _c.mutation.Victory(); !ok {
		return &ValidationError{Name: "victory", err: errors.New(`ent: missing required field "BattleEvent.victory"`)}
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		return &ValidationError{Name: "duration_secs", err: errors.New(`ent: missing required field "BattleEvent.duration_secs"`)}
	}
	return nil
}

func (_c *BattleEventCreate) sqlSave(ctx context.Context) (*BattleEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BattleEventCreate) createSpec() (*BattleEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &BattleEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(battleevent.Table, sqlgraph.NewFieldSpec(battleevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(battleevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(battleevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.BattleID(); ok {
		_spec.SetField(battleevent.FieldBattleID, field.TypeString, value)
		_node.BattleID = value
	}
	if value, ok := _c.mutation.DeckID(); ok {
		_spec.SetField(battleevent.FieldDeckID, field.TypeString, value)
		_node.DeckID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(battleevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Monster(); ok {
		_spec.SetField(battleevent.FieldMonster, field.TypeString, value)
		_node.Monster = value
	}
	if value, ok := _c.mutation.CardsReviewed(); ok {
		_spec.SetField(battleevent.FieldCardsReviewed, field.TypeInt, value)
		_node.CardsReviewed = value
	}
	if value, ok := _c.mutation.CorrectAnswers(); ok {
		_spec.SetField(battleevent.FieldCorrectAnswers, field.TypeInt, value)
		_node.CorrectAnswers = value
	}
	if value, ok := _c.mutation.XpEarned(); ok {
		_spec.SetField(battleevent.FieldXpEarned, field.TypeInt, value)
		_node.XpEarned = value
	}
	if value, ok := _c.mutation.GoldEarned(); ok {
		_spec.SetField(battleevent.FieldGoldEarned, field.TypeInt, value)
		_node.GoldEarned = value
	}
	if value, ok := _c.mutation.Victory(); ok {
		_spec.SetField(battleevent.FieldVictory, field.TypeBool, value)
		_node.Victory = value
	}
	if value, ok := _c.mutation.DurationSecs(); ok {
		_spec.SetField(battleevent.FieldDurationSecs, field.TypeInt, value)
		_node.DurationSecs = value
	}
	return _node, _spec
}

// BattleEventCreateBulk is the builder for creating many BattleEvent entities in bulk.
type BattleEventCreateBulk struct {
	config
	err      error
	builders []*BattleEventCreate
}

// Save creates the BattleEvent entities in the database.
func (_c *BattleEventCreateBulk) Save(ctx context.Context) ([]*BattleEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BattleEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BattleEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *BattleEventCreateBulk) SaveX(ctx context.Context) []*BattleEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BattleEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BattleEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
