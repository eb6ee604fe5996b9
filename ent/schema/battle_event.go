package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BattleEvent records battle lifecycle events (start/end).
type BattleEvent struct {
	ent.Schema
}

func (BattleEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (BattleEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("battle_id").
			NotEmpty().
			Comment("UUID grouping events in a battle"),
		field.String("deck_id").
			NotEmpty(),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.String("monster").
			NotEmpty().
			Comment("Monster name for this battle"),
		field.Int("cards_reviewed").
			Default(0).
			Comment("Total attempts (on end only)"),
		field.Int("correct_answers").
			Default(0).
			Comment("Total successes (on end only)"),
		field.Int("xp_earned").
			Default(0),
		field.Int("gold_earned").
			Default(0),
		field.Bool("victory").
			Default(false).
			Comment("Whether the monster fell (on end only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Actual duration in seconds (on end only)"),
	}
}

func (BattleEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("battle_id"),
		index.Fields("action"),
	}
}
