package service

import (
	"strings"
)

// Sanitize normalizes a raw completion into candidate JSON text. It strips
// Markdown code fences, drops any prose outside the outermost JSON object,
// and trims surrounding whitespace. It is a best-effort text transform: it
// never rejects input, and it is idempotent.
func Sanitize(raw string) string {
	s := strings.ReplaceAll(raw, "```json", "")
	s = strings.ReplaceAll(s, "```", "")

	if start := strings.Index(s, "{"); start >= 0 {
		if end := strings.LastIndex(s, "}"); end >= start {
			s = s[start : end+1]
		}
	}

	return strings.TrimSpace(s)
}
