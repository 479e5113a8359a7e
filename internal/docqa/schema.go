package docqa

import "github.com/smarted/studykit/internal/llm"

// SearchSchema defines the JSON schema for semantic document search.
var SearchSchema = &llm.Schema{
	Name:        "document-search",
	Description: "IDs of the documents most related to a query",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"relevant_ids": map[string]any{
				"type":        "array",
				"description": "Document IDs relevant to the query, most relevant first",
				"items":       map[string]any{"type": "string"},
			},
		},
		"required":             []any{"relevant_ids"},
		"additionalProperties": false,
	},
}
