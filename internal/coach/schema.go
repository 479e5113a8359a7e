package coach

import "github.com/smarted/studykit/internal/llm"

// PlanSchema defines the JSON schema for study plans.
var PlanSchema = &llm.Schema{
	Name:        "study-plan",
	Description: "A weekly study schedule",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"plan": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"day":      map[string]any{"type": "string", "description": "Day of the week"},
						"time":     map[string]any{"type": "string", "description": "Suggested time, e.g. 16:00-17:00"},
						"task":     map[string]any{"type": "string", "description": "Specific study task"},
						"duration": map[string]any{"type": "string", "description": "Length of the block, e.g. 45 minutes"},
					},
					"required":             []any{"day", "time", "task", "duration"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"plan"},
		"additionalProperties": false,
	},
}

// FeynmanSchema defines the JSON schema for explanation feedback.
var FeynmanSchema = &llm.Schema{
	Name:        "feynman-evaluation",
	Description: "Feedback on a student's explanation of a concept",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"feedback": map[string]any{
				"type":        "string",
				"description": "Encouraging overall feedback",
			},
			"weakSpots": map[string]any{
				"type":        "array",
				"description": "Gaps, errors or jargon in the explanation",
				"items":       map[string]any{"type": "string"},
			},
			"clarityScore": map[string]any{
				"type":        "integer",
				"description": "How clear and simple the explanation is, 1 to 10",
				"minimum":     1,
				"maximum":     10,
			},
			"textbookDefinition": map[string]any{
				"type":        "string",
				"description": "A correct, concise definition of the concept",
			},
		},
		"required":             []any{"feedback", "weakSpots", "clarityScore", "textbookDefinition"},
		"additionalProperties": false,
	},
}
