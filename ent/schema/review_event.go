package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewEvent records a single graded recall attempt within a battle.
type ReviewEvent struct {
	ent.Schema
}

func (ReviewEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ReviewEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("battle_id").
			NotEmpty().
			Comment("Links to BattleEvent"),
		field.String("deck_id").
			NotEmpty(),
		field.String("card_id").
			NotEmpty(),
		field.String("mode").
			NotEmpty().
			Comment("Retrieval mode token: standard, reversed, teach, connect, generate"),
		field.String("grade").
			NotEmpty().
			Comment("Grade token: perfect, correct, partial, wrong, timeout"),
		field.Bool("correct").
			Comment("Whether the grade classifies as a success"),
		field.Int("time_ms").
			Comment("Milliseconds to answer"),
		field.String("state_before").
			NotEmpty().
			Comment("Lifecycle state going into the review"),
		field.String("state_after").
			NotEmpty().
			Comment("Lifecycle state after the scheduler update"),
		field.Float("stability").
			Comment("Stability (days) after the update"),
		field.Time("due_at").
			Comment("Next due time after the update"),
	}
}

func (ReviewEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("battle_id"),
		index.Fields("card_id"),
	}
}
