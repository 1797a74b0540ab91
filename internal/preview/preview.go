// Package preview renders a markdown document, with its generated TOC
// inserted, to HTML for the live-preview surface.
package preview

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
)

// InsertTOC places the TOC block into the document: after the leading
// H1 when the document opens with one (title first, then the outline),
// otherwise at the very top. Blank lines separate the block on both
// sides so the result stays valid markdown.
func InsertTOC(document, tocBlock string) string {
	if tocBlock == "" {
		return document
	}

	lines := strings.Split(document, "\n")
	insertAt := 0
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "# ") {
			insertAt = i + 1
		}
		break
	}

	var out []string
	out = append(out, lines[:insertAt]...)
	if insertAt > 0 {
		out = append(out, "")
	}
	out = append(out, tocBlock, "")
	out = append(out, lines[insertAt:]...)
	return strings.Join(out, "\n")
}

// HTML converts markdown to HTML with goldmark.
func HTML(document string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.New().Convert([]byte(document), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}
