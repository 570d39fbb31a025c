package topics

// fixtureSchema validates the embedded topic content before it is served
// to the lesson flow.
var fixtureSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"topics": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":    "integer",
						"minimum": 1,
					},
					"title": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"description": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"key_points": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items":    map[string]any{"type": "string"},
					},
					"exercise": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"question": map[string]any{
								"type":      "string",
								"minLength": 1,
							},
							"options": map[string]any{
								"type":     "array",
								"minItems": 4,
								"maxItems": 4,
								"items":    map[string]any{"type": "string"},
							},
							"correct_answer": map[string]any{
								"type":    "integer",
								"minimum": 1,
								"maximum": 4,
							},
							"explanation": map[string]any{
								"type":      "string",
								"minLength": 1,
							},
						},
						"required":             []any{"question", "options", "correct_answer", "explanation"},
						"additionalProperties": false,
					},
				},
				"required":             []any{"id", "title", "description", "key_points", "exercise"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"topics"},
	"additionalProperties": false,
}
