package ai

import "strings"

// StripJSONFence removes markdown code fences that models routinely wrap
// around JSON output despite being told not to.
func StripJSONFence(text string) string {
	cleaned := strings.ReplaceAll(text, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return strings.TrimSpace(cleaned)
}
