package llm

import (
	"context"
	"encoding/json"
)

// Provider is the abstraction over LLM backends. The arbiter calls
// Generate with a judging prompt and receives structured JSON back.
type Provider interface {
	// Generate sends a prompt to the LLM and returns its response.
	// When the request carries a Schema, the provider uses its native
	// structured output mechanism and the returned Content is JSON
	// validated against that schema.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured with.
	ModelID() string
}

// Request describes a single generation call.
type Request struct {
	// System sets the LLM's role and constraints.
	System string

	// Messages is the conversation. Grimoire only ever sends single-turn
	// requests, so this is normally one user message.
	Messages []Message

	// Schema, when set, constrains the response to a JSON structure.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0 to 1.0. Zero means deterministic.
	Temperature float64
}

// Message is one turn of conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names a JSON Schema the response must conform to.
type Schema struct {
	// Name identifies the schema, kebab-case, e.g. "answer-verdict".
	Name string

	// Description tells the LLM what the schema represents.
	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response holds the LLM's output.
type Response struct {
	// Content is the generated output. With a Schema in the request this
	// is the validated JSON object, otherwise raw text.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
