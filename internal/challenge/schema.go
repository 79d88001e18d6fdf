package challenge

import "github.com/elliotskunk/stumble/internal/llm"

// challengeSchema constrains the model to the four fields of a
// micro-challenge.
func challengeSchema() *llm.Schema {
	return &llm.Schema{
		Name:        "micro-challenge",
		Description: "A spontaneous micro-challenge grounded in the user's environment",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title": map[string]any{
					"type":        "string",
					"description": "A short, catchy title for the challenge (max 5 words).",
				},
				"description": map[string]any{
					"type":        "string",
					"description": "The specific instruction for the user to perform. Must be safe and actionable immediately.",
				},
				"locationIdentified": map[string]any{
					"type":        "string",
					"description": "What environment was detected (e.g., 'Gym', 'Coffee Shop', 'Park').",
				},
				"timeLimitSeconds": map[string]any{
					"type":        "integer",
					"description": "Time in seconds to complete the challenge. Usually between 60 and 300.",
				},
			},
			"required":             []any{"title", "description", "locationIdentified", "timeLimitSeconds"},
			"additionalProperties": false,
		},
	}
}
