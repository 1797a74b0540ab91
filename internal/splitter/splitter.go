// Package splitter cuts a markdown document into heading-delimited
// sections, each carrying its ancestor breadcrumb and source line range.
package splitter

import (
	"strings"

	"github.com/dgallion1/tocgen/internal/toc"
)

// Section is the slice of the document owned by one heading: everything
// from the line after the heading up to (but not including) the next
// heading of any level. Line numbers are 1-based and inclusive.
type Section struct {
	Title      string   `json:"title"`
	Level      int      `json:"level"`
	Anchor     string   `json:"anchor"`
	Breadcrumb []string `json:"breadcrumb"`
	StartLine  int      `json:"start_line"`
	EndLine    int      `json:"end_line"`
	Text       string   `json:"text"`
}

// Split scans the document and emits one Section per heading, in
// document order. The breadcrumb is the heading-hierarchy path down to
// and including the section's own title, following the same ancestor-
// stack policy the TOC hierarchy uses (skipped levels adopt downward).
// Text before the first heading belongs to no section and is dropped.
func Split(document string) []Section {
	lines := strings.Split(document, "\n")
	flat := toc.Scan(document)
	if len(flat) == 0 {
		return nil
	}

	sections := make([]Section, 0, len(flat))

	type crumb struct {
		level int
		title string
	}
	var stack []crumb

	for i, h := range flat {
		for len(stack) > 0 && stack[len(stack)-1].level >= h.Level {
			stack = stack[:len(stack)-1]
		}
		stack = append(stack, crumb{level: h.Level, title: h.Text})

		breadcrumb := make([]string, len(stack))
		for j, c := range stack {
			breadcrumb[j] = c.title
		}

		endLine := len(lines)
		if i+1 < len(flat) {
			endLine = flat[i+1].Line - 1
		}

		sections = append(sections, Section{
			Title:      h.Text,
			Level:      h.Level,
			Anchor:     toc.Anchor(h.Text),
			Breadcrumb: breadcrumb,
			StartLine:  h.Line,
			EndLine:    endLine,
			Text:       sectionText(lines, h.Line, endLine),
		})
	}

	return sections
}

// sectionText joins the body lines between a heading and the next one,
// trimmed of surrounding blank lines.
func sectionText(lines []string, headingLine, endLine int) string {
	if headingLine >= endLine {
		return ""
	}
	body := lines[headingLine:endLine]
	return strings.TrimSpace(strings.Join(body, "\n"))
}
