// ABOUTME: Markdown rendering for announcement body previews
// ABOUTME: Converts operator-authored markdown to HTML via goldmark

package console

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
)

// PreviewHTML renders an announcement's markdown body to HTML for preview.
func PreviewHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.String(), nil
}
