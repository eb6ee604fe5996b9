package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ArbiterEvent records a single LLM judging request.
type ArbiterEvent struct {
	ent.Schema
}

func (ArbiterEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ArbiterEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").
			NotEmpty().
			Comment("anthropic, openai, gemini or mock"),
		field.String("model").
			NotEmpty(),
		field.String("purpose").
			NotEmpty().
			Comment("What the request judged, e.g. teach-response"),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Int64("latency_ms").
			Default(0),
		field.Bool("success"),
		field.String("error_message").
			Optional(),
	}
}

func (ArbiterEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider"),
	}
}
