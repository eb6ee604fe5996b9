// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/halvden/grimoire/ent/reviewevent"
)

// ReviewEventCreate is the builder for creating a ReviewEvent entity.
type ReviewEventCreate struct {
	config
	mutation *ReviewEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ReviewEventCreate) SetSequence(v int64) *ReviewEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ReviewEventCreate) SetTimestamp(v time.Time) *ReviewEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ReviewEventCreate) SetNillableTimestamp(v *time.Time) *ReviewEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetBattleID sets the "battle_id" field.
func (_c *ReviewEventCreate) SetBattleID(v string) *ReviewEventCreate {
	_c.mutation.SetBattleID(v)
	return _c
}

// SetDeckID sets the "deck_id" field.
func (_c *ReviewEventCreate) SetDeckID(v string) *ReviewEventCreate {
	_c.mutation.SetDeckID(v)
	return _c
}

// SetCardID sets the "card_id" field.
func (_c *ReviewEventCreate) SetCardID(v string) *ReviewEventCreate {
	_c.mutation.SetCardID(v)
	return _c
}

// SetMode sets the "mode" field.
func (_c *ReviewEventCreate) SetMode(v string) *ReviewEventCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetGrade sets the "grade" field.
func (_c *ReviewEventCreate) SetGrade(v string) *ReviewEventCreate {
	_c.mutation.SetGrade(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *ReviewEventCreate) SetCorrect(v bool) *ReviewEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetTimeMs sets the "time_ms" field.
func (_c *ReviewEventCreate) SetTimeMs(v int) *ReviewEventCreate {
	_c.mutation.SetTimeMs(v)
	return _c
}

// SetStateBefore sets the "state_before" field.
func (_c *ReviewEventCreate) SetStateBefore(v string) *ReviewEventCreate {
	_c.mutation.SetStateBefore(v)
	return _c
}

// SetStateAfter sets the "state_after" field.
func (_c *ReviewEventCreate) SetStateAfter(v string) *ReviewEventCreate {
	_c.mutation.SetStateAfter(v)
	return _c
}

// SetStability sets the "stability" field.
func (_c *ReviewEventCreate) SetStability(v float64) *ReviewEventCreate {
	_c.mutation.SetStability(v)
	return _c
}

// SetDueAt sets the "due_at" field.
func (_c *ReviewEventCreate) SetDueAt(v time.Time) *ReviewEventCreate {
	_c.mutation.SetDueAt(v)
	return _c
}

// Mutation returns the ReviewEventMutation object of the builder.
func (_c *ReviewEventCreate) Mutation() *ReviewEventMutation {
	return _c.mutation
}

// Save creates the ReviewEvent in the database.
func (_c *ReviewEventCreate) Save(ctx context.Context) (*ReviewEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReviewEventCreate) SaveX(ctx context.Context) *ReviewEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReviewEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := reviewevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReviewEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ReviewEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ReviewEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.BattleID(); !ok {
		return &ValidationError{Name: "battle_id", err: errors.New(`ent: missing required field "ReviewEvent.battle_id"`)}
	}
	if v, ok := _c.mutation.BattleID(); ok {
		if err := reviewevent.BattleIDValidator(v); err != nil {
			return &ValidationError{Name: "battle_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.battle_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DeckID(); !ok {
		return &ValidationError{Name: "deck_id", err: errors.New(`ent: missing required field "ReviewEvent.deck_id"`)}
	}
	if v, ok := _c.mutation.DeckID(); ok {
		if err := reviewevent.DeckIDValidator(v); err != nil {
			return &ValidationError{Name: "deck_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.deck_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CardID(); !ok {
		return &ValidationError{Name: "card_id", err: errors.New(`ent: missing required field "ReviewEvent.card_id"`)}
	}
	if v, ok := _c.mutation.CardID(); ok {
		if err := reviewevent.CardIDValidator(v); err != nil {
			return &ValidationError{Name: "card_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.card_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "ReviewEvent.mode"`)}
	}
	if v, ok := _c.mutation.Mode(); ok {
		if err := reviewevent.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Grade(); !ok {
		return &ValidationError{Name: "grade", err: errors.New(`ent: missing required field "ReviewEvent.grade"`)}
	}
	if v, ok := _c.mutation.Grade(); ok {
		if err := reviewevent.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.grade": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "ReviewEvent.correct"`)}
	}
	if _, ok := _c.mutation.TimeMs(); !ok {
		return &ValidationError{Name: "time_ms", err: errors.New(`ent: missing required field "ReviewEvent.time_ms"`)}
	}
	if _, ok := _c.mutation.StateBefore(); !ok {
		return &ValidationError{Name: "state_before", err: errors.New(`ent: missing required field "ReviewEvent.state_before"`)}
	}
	if v, ok := _c.mutation.StateBefore(); ok {
		if err := reviewevent.StateBeforeValidator(v); err != nil {
			return &ValidationError{Name: "state_before", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.state_before": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StateAfter(); !ok {
		return &ValidationError{Name: "state_after", err: errors.New(`ent: missing required field "ReviewEvent.state_after"`)}
	}
	if v, ok := _c.mutation.StateAfter(); ok {
		if err := reviewevent.StateAfterValidator(v); err != nil {
			return &ValidationError{Name: "state_after", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.state_after": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Stability(); !ok {
		return &ValidationError{Name: "stability", err: errors.New(`ent: missing required field "ReviewEvent.stability"`)}
	}
	if _, ok := _c.mutation.DueAt(); !ok {
		return &ValidationError{Name: "due_at", err: errors.New(`ent: missing required field "ReviewEvent.due_at"`)}
	}
	return nil
}

func (_c *ReviewEventCreate) sqlSave(ctx context.Context) (*ReviewEvent, error) {
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

func (_c *ReviewEventCreate) createSpec() (*ReviewEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ReviewEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reviewevent.Table, sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(reviewevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(reviewevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.BattleID(); ok {
		_spec.SetField(reviewevent.FieldBattleID, field.TypeString, value)
		_node.BattleID = value
	}
	if value, ok := _c.mutation.DeckID(); ok {
		_spec.SetField(reviewevent.FieldDeckID, field.TypeString, value)
		_node.DeckID = value
	}
	if value, ok := _c.mutation.CardID(); ok {
		_spec.SetField(reviewevent.FieldCardID, field.TypeString, value)
		_node.CardID = value
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(reviewevent.FieldMode, field.TypeString, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.Grade(); ok {
		_spec.SetField(reviewevent.FieldGrade, field.TypeString, value)
		_node.Grade = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(reviewevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.TimeMs(); ok {
		_spec.SetField(reviewevent.FieldTimeMs, field.TypeInt, value)
		_node.TimeMs = value
	}
	if value, ok := _c.mutation.StateBefore(); ok {
		_spec.SetField(reviewevent.FieldStateBefore, field.TypeString, value)
		_node.StateBefore = value
	}
	if value, ok := _c.mutation.StateAfter(); ok {
		_spec.SetField(reviewevent.FieldStateAfter, field.TypeString, value)
		_node.StateAfter = value
	}
	if value, ok := _c.mutation.Stability(); ok {
		_spec.SetField(reviewevent.FieldStability, field.TypeFloat64, value)
		_node.Stability = value
	}
	if value, ok := _c.mutation.DueAt(); ok {
		_spec.SetField(reviewevent.FieldDueAt, field.TypeTime, value)
		_node.DueAt = value
	}
	return _node, _spec
}

// ReviewEventCreateBulk is the builder for creating many ReviewEvent entities in bulk.
type ReviewEventCreateBulk struct {
	config
	err      error
	builders []*ReviewEventCreate
}

// Save creates the ReviewEvent entities in the database.
func (_c *ReviewEventCreateBulk) Save(ctx context.Context) ([]*ReviewEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReviewEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReviewEventMutation)
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
func (_c *ReviewEventCreateBulk) SaveX(ctx context.Context) []*ReviewEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
