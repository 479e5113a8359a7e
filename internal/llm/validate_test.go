package llm

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flashcardSchema() *Schema {
	return &Schema{
		Name:        "test-flashcard",
		Description: "A single flashcard",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"term":       map[string]any{"type": "string", "minLength": 1},
				"definition": map[string]any{"type": "string"},
				"difficulty": map[string]any{"type": "string", "enum": []any{"easy", "medium", "hard"}},
				"reviews":    map[string]any{"type": "integer", "minimum": 0},
			},
			"required": []any{"term", "definition"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"complete", `{"term":"Osmosis","definition":"Diffusion of water","difficulty":"easy","reviews":2}`, false},
		{"without optional", `{"term":"Mitosis","definition":"Cell division"}`, false},
		{"missing required", `{"term":"Meiosis"}`, true},
		{"wrong type", `{"term":"Atom","definition":"Smallest unit","reviews":"two"}`, true},
		{"bad enum", `{"term":"Ion","definition":"Charged atom","difficulty":"brutal"}`, true},
		{"empty term", `{"term":"","definition":"nothing"}`, true},
		{"malformed", `{not json}`, true},
		{"prose instead of json", `Here are your flashcards!`, true},
		{"empty", ``, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := validateResponse(flashcardSchema(), json.RawMessage(tt.raw))
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var inv *ErrInvalidResponse
			require.True(t, errors.As(err, &inv), "expected ErrInvalidResponse, got %T", err)
			assert.Equal(t, tt.raw, string(inv.Content))
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	out, err := validateResponse(nil, json.RawMessage(`free text`))
	assert.NoError(t, err)
	assert.Equal(t, "free text", string(out))
}

func TestValidateResponse_NestedArrays(t *testing.T) {
	schema := &Schema{
		Name: "test-mindmap",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"topic": map[string]any{"type": "string"},
				"children": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"topic": map[string]any{"type": "string"},
						},
						"required": []any{"topic"},
					},
				},
			},
			"required": []any{"topic", "children"},
		},
	}

	valid := json.RawMessage(`{"topic":"Cells","children":[{"topic":"Nucleus"},{"topic":"Membrane"}]}`)
	_, err := validateResponse(schema, valid)
	assert.NoError(t, err)

	invalid := json.RawMessage(`{"topic":"Cells","children":[{"name":"Nucleus"}]}`)
	_, err = validateResponse(schema, invalid)
	assert.Error(t, err)
}

func TestValidateResponse_StripsCodeFence(t *testing.T) {
	raw := json.RawMessage("```json\n{\"term\":\"Osmosis\",\"definition\":\"Diffusion of water\"}\n```")
	out, err := validateResponse(flashcardSchema(), raw)
	require.NoError(t, err)
	assert.JSONEq(t, `{"term":"Osmosis","definition":"Diffusion of water"}`, string(out))
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, string(stripCodeFence(json.RawMessage("  {\"a\":1}\n"))))
	assert.Equal(t, `[1]`, string(stripCodeFence(json.RawMessage("```\n[1]\n```"))))
	assert.Equal(t, "```", string(stripCodeFence(json.RawMessage("```"))))
}
