package content

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

var htmlSanitizer = bluemonday.UGCPolicy()

// RenderMarkdown converts Markdown to HTML that is safe to hand to clients. Model output and
// admin edits both flow through here, so the result is always sanitized.
func RenderMarkdown(source string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return htmlSanitizer.Sanitize(buf.String()), nil
}
