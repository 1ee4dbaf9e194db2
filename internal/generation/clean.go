package generation

import "strings"

// CleanJSON strips Markdown code fences that generation models like to wrap
// around JSON payloads. Returns "" when the remainder does not look like a
// JSON object or array; the content itself is still subject to parsing.
func CleanJSON(response string) string {
	cleaned := strings.TrimSpace(response)

	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimSuffix(cleaned, "```")
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(cleaned, "```")
	}
	cleaned = strings.TrimSpace(cleaned)

	objectLike := strings.HasPrefix(cleaned, "{") && strings.HasSuffix(cleaned, "}")
	arrayLike := strings.HasPrefix(cleaned, "[") && strings.HasSuffix(cleaned, "]")
	if !objectLike && !arrayLike {
		return ""
	}
	return cleaned
}
