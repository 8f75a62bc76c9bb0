package content

import (
	"strings"
)

// StripFences removes markdown code-fence delimiters the model sometimes
// wraps its JSON in ("```json" / "```") and trims surrounding whitespace.
func StripFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
