package ai

import "strings"

// ExtractJSON defensively locates a JSON object or array substring in raw
// model output. Models sometimes wrap JSON in markdown fences or prepend
// prose despite instructions; stray text around the payload is tolerated,
// its absence is not.
func ExtractJSON(task TaskID, raw string) (string, error) {
	text := strings.TrimSpace(raw)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	objStart := strings.Index(text, "{")
	arrStart := strings.Index(text, "[")

	start, closer := objStart, "}"
	if objStart == -1 || (arrStart != -1 && arrStart < objStart) {
		start, closer = arrStart, "]"
	}

	if start == -1 {
		return "", &SchemaValidationError{Task: task, Reason: "no JSON payload in response"}
	}

	end := strings.LastIndex(text, closer)
	if end == -1 || end <= start {
		return "", &SchemaValidationError{Task: task, Reason: "unterminated JSON payload in response"}
	}

	return text[start : end+1], nil
}
