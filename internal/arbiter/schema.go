package arbiter

import "github.com/halvden/grimoire/internal/llm"

// VerdictSchema defines the JSON schema for answer-judging responses.
// Timeout is deliberately absent: only the battle clock can produce it.
var VerdictSchema = &llm.Schema{
	Name:        "answer-verdict",
	Description: "Grade suggestion for a free-text recall answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"grade": map[string]any{
				"type":        "string",
				"enum":        []any{"perfect", "correct", "partial", "wrong"},
				"description": "How well the answer demonstrates recall of the card",
			},
			"confidence": map[string]any{
				"type":        "number",
				"minimum":     0.0,
				"maximum":     1.0,
				"description": "Confidence in the grade (0.0-1.0)",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "One or two sentences the player sees alongside the verdict",
			},
		},
		"required":             []any{"grade", "confidence", "feedback"},
		"additionalProperties": false,
	},
}
