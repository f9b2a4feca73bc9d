package utils

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/text"
)

// SanitizeModelOutput strips the outer code fence a model sometimes wraps
// its reply in, leaving plain Markdown ready for display.
func SanitizeModelOutput(input string) string {
	cleaned := strings.TrimSpace(input)

	for _, fence := range []string{"```markdown", "```"} {
		if strings.HasPrefix(cleaned, fence) && strings.HasSuffix(cleaned, "```") {
			cleaned = strings.TrimPrefix(cleaned, fence)
			cleaned = strings.TrimSuffix(cleaned, "```")
			cleaned = strings.TrimSpace(cleaned)
			break
		}
	}

	return cleaned
}

// IsRenderableMarkdown reports whether Goldmark can parse the text. Goldmark
// is very permissive, so this only catches pathological output.
func IsRenderableMarkdown(input string) bool {
	parser := goldmark.DefaultParser()
	return parser.Parse(text.NewReader([]byte(input))) != nil
}
