package notes

import (
	"fmt"

	"github.com/smarted/studykit/internal/llm"
)

// SummarySchema defines the JSON schema for document summaries.
var SummarySchema = &llm.Schema{
	Name:        "notes-summary",
	Description: "Key points of a document",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summaryPoints": map[string]any{
				"type":        "array",
				"description": "Concise bullet points covering the main ideas",
				"items":       map[string]any{"type": "string"},
				"minItems":    1,
			},
		},
		"required":             []any{"summaryPoints"},
		"additionalProperties": false,
	},
}

// FlashcardSchema defines the JSON schema for flashcard decks.
var FlashcardSchema = &llm.Schema{
	Name:        "notes-flashcards",
	Description: "Flashcards for key terms",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"flashcards": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"term":       map[string]any{"type": "string"},
						"definition": map[string]any{"type": "string"},
					},
					"required":             []any{"term", "definition"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"flashcards"},
		"additionalProperties": false,
	},
}

// MetadataSchema defines the JSON schema for title and tag suggestions.
var MetadataSchema = &llm.Schema{
	Name:        "notes-metadata",
	Description: "A document title and topic tags",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "A short, descriptive title",
			},
			"tags": map[string]any{
				"type":        "array",
				"description": "3 to 5 lowercase topic tags",
				"items":       map[string]any{"type": "string"},
			},
		},
		"required":             []any{"title", "tags"},
		"additionalProperties": false,
	},
}

// MindMapSchema returns the mind-map schema allowing depth levels of
// children. Providers cannot follow recursive references, so the node
// definition is unrolled.
func MindMapSchema(depth int) *llm.Schema {
	return &llm.Schema{
		Name:        fmt.Sprintf("notes-mindmap-%d", depth),
		Description: "A hierarchical mind map of a document",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"mindMap": mindMapNode(depth),
			},
			"required":             []any{"mindMap"},
			"additionalProperties": false,
		},
	}
}

func mindMapNode(depth int) map[string]any {
	props := map[string]any{
		"topic": map[string]any{"type": "string"},
	}
	required := []any{"topic"}
	if depth > 0 {
		props["children"] = map[string]any{
			"type":  "array",
			"items": mindMapNode(depth - 1),
		}
		required = append(required, "children")
	}
	return map[string]any{
		"type":                 "object",
		"properties":           props,
		"required":             required,
		"additionalProperties": false,
	}
}
