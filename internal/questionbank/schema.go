package questionbank

import "github.com/abhisek/timesninja/internal/llm"

// SessionSchema defines the JSON schema for a generated question set.
var SessionSchema = &llm.Schema{
	Name:        "quiz-questions",
	Description: "A session's worth of multiple-choice multiplication questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":        "array",
				"description": "The generated questions, one per session slot",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{
							"type":        "string",
							"description": "Unique ID within the session, e.g. q1",
						},
						"a": map[string]any{
							"type":        "integer",
							"description": "First factor, 1-12",
						},
						"b": map[string]any{
							"type":        "integer",
							"description": "Second factor, 1-12",
						},
						"questionText": map[string]any{
							"type":        "string",
							"description": "Display text, e.g. 'What is 4 x 7?'",
						},
						"correctAnswer": map[string]any{
							"type":        "integer",
							"description": "Equals a times b",
						},
						"wrongAnswers": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "integer",
							},
							"description": "Exactly 4 distinct distractors, none equal to correctAnswer",
						},
						"hint": map[string]any{
							"type":        "string",
							"description": "Repeated-addition hint for kids",
						},
					},
					"required":             []any{"id", "a", "b", "questionText", "correctAnswer", "wrongAnswers", "hint"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
