package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// CleanJSONBlock removes markdown code block wrappers from JSON output.
// Models sometimes wrap JSON in ```json fences even when asked not to.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

// ParseStringList parses a JSON array of strings from model output,
// tolerating code fences and surrounding whitespace.
func ParseStringList(raw string) ([]string, error) {
	cleaned := CleanJSONBlock(raw)

	var items []string
	if err := json.Unmarshal([]byte(cleaned), &items); err != nil {
		return nil, fmt.Errorf("failed to parse string list: %w (content: %s)", err, cleaned)
	}
	return items, nil
}
