package deck

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// deckSchema is the JSON Schema every deck file must satisfy.
const deckSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["name", "cards"],
	"properties": {
		"id": {"type": "string"},
		"name": {"type": "string", "minLength": 1},
		"description": {"type": "string"},
		"legacy": {"type": "boolean"},
		"cards": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["front", "back"],
				"properties": {
					"id": {"type": "string"},
					"front": {"type": "string", "minLength": 1},
					"back": {"type": "string", "minLength": 1},
					"lore": {"type": "string"},
					"tags": {"type": "array", "items": {"type": "string"}}
				},
				"additionalProperties": false
			}
		}
	},
	"additionalProperties": false
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateDeck checks raw deck JSON against the embedded schema.
func validateDeck(raw []byte) error {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(deckSchema))
		if err != nil {
			compileErr = fmt.Errorf("parse deck schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://deck.json", doc); err != nil {
			compileErr = fmt.Errorf("add deck schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://deck.json")
	})
	if compileErr != nil {
		return compileErr
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := compiledSchema.Validate(parsed); err != nil {
		return fmt.Errorf("deck file rejected by schema: %w", err)
	}
	return nil
}
