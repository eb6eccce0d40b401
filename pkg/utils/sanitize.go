package utils

import (
	"html"
	"strings"
)

// SanitizeString trims whitespace and escapes HTML entities in free-text
// input such as trip notes and leave reasons.
func SanitizeString(input string) string {
	return html.EscapeString(strings.TrimSpace(input))
}
