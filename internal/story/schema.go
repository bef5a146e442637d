package story

import "github.com/tolgahan/oka/internal/llm"

// StorySchema defines the JSON shape a story generation response must match.
var StorySchema = &llm.Schema{
	Name:        "story",
	Description: "A short didactic children's story with a title and theme",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "Story title",
			},
			"content": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "Story text, 200-250 words, for ages 5-10",
			},
			"theme": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "Main theme of the story, e.g. Dostluk",
			},
		},
		"required":             []any{"title", "content", "theme"},
		"additionalProperties": false,
	},
}
