package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var verdictSchema = &Schema{
	Name:        "test-verdict",
	Description: "answer verdict",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"grade": map[string]any{
				"type": "string",
				"enum": []any{"perfect", "correct", "partial", "wrong"},
			},
			"feedback": map[string]any{"type": "string"},
		},
		"required":             []any{"grade", "feedback"},
		"additionalProperties": false,
	},
}

func TestValidateResponseAccepts(t *testing.T) {
	raw := json.RawMessage(`{"grade":"correct","feedback":"close enough"}`)
	if err := validateResponse(verdictSchema, raw); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestValidateResponseRejects(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"not json", `grade: correct`},
		{"missing field", `{"grade":"correct"}`},
		{"bad enum", `{"grade":"amazing","feedback":"x"}`},
		{"extra field", `{"grade":"correct","feedback":"x","score":1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateResponse(verdictSchema, json.RawMessage(tc.raw))
			var invResp *ErrInvalidResponse
			if !errors.As(err, &invResp) {
				t.Fatalf("err = %v, want ErrInvalidResponse", err)
			}
		})
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("nil schema should skip validation, got %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing anthropic key")
	}

	cfg.Anthropic.APIKey = "k"
	if err := cfg.Validate(); err != nil {
		t.Errorf("validate with key: %v", err)
	}

	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Errorf("mock needs no key: %v", err)
	}

	cfg.Provider = "frontier"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestResolveModel(t *testing.T) {
	if got := resolveModel("claude-haiku", anthropicModels); got != "claude-haiku-4-5-20251001" {
		t.Errorf("resolveModel friendly = %q", got)
	}
	if got := resolveModel("some-direct-id", anthropicModels); got != "some-direct-id" {
		t.Errorf("resolveModel passthrough = %q", got)
	}
}
