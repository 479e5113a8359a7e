package quiz

import "github.com/smarted/studykit/internal/llm"

// QuizSchema defines the JSON schema for generated quizzes.
var QuizSchema = &llm.Schema{
	Name:        "quiz",
	Description: "A multiple-choice quiz",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"quiz": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question text",
						},
						"options": map[string]any{
							"type":        "array",
							"description": "Possible answers",
							"items":       map[string]any{"type": "string"},
							"minItems":    2,
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "The correct answer, copied exactly from options",
						},
					},
					"required":             []any{"question", "options", "answer"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"quiz"},
		"additionalProperties": false,
	},
}
