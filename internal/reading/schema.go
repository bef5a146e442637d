package reading

import "github.com/tolgahan/oka/internal/llm"

// AnalysisSchema defines the JSON shape a reading analysis response must match.
var AnalysisSchema = &llm.Schema{
	Name:        "reading-analysis",
	Description: "Evaluation of a child's recorded read-aloud against the reference text",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"correctWordCount": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"description": "Number of words read correctly",
			},
			"accuracyScore": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     100,
				"description": "Overall accuracy score",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "Short encouraging, corrective feedback in Turkish",
			},
		},
		"required":             []any{"correctWordCount", "accuracyScore", "feedback"},
		"additionalProperties": false,
	},
}
