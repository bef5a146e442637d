package llm

import (
	"encoding/json"
	"errors"
	"strings"
)

// RecoverJSON extracts a JSON object embedded in free-form model output.
// Models asked for JSON routinely wrap it in code fences or surround it
// with prose; this strips the fences, takes the substring from the first
// '{' to the last '}', and returns it if it parses. No further repair is
// attempted — on failure the caller's fallback path takes over.
func RecoverJSON(text string) (json.RawMessage, error) {
	clean := strings.ReplaceAll(text, "```json", "")
	clean = strings.ReplaceAll(clean, "```", "")
	clean = strings.TrimSpace(clean)

	start := strings.Index(clean, "{")
	end := strings.LastIndex(clean, "}")
	if start == -1 || end == -1 || end < start {
		return nil, &ErrMalformedResponse{
			Content: json.RawMessage(text),
			Err:     errors.New("no JSON object found in response"),
		}
	}

	candidate := clean[start : end+1]
	if !json.Valid([]byte(candidate)) {
		return nil, &ErrMalformedResponse{
			Content: json.RawMessage(text),
			Err:     errors.New("extracted candidate is not valid JSON"),
		}
	}

	return json.RawMessage(candidate), nil
}
