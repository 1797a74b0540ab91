package toc

import (
	"regexp"
	"strings"
)

// atxPattern matches an ATX heading: 1-6 '#' then at least one space or
// tab then content. Seven or more '#', or '#' glued to text, is not a
// heading and the line is silently skipped.
var atxPattern = regexp.MustCompile(`^(#{1,6})[ \t]+(.+)$`)

// Scan extracts ATX headings from a document as a flat, document-ordered
// list. No nesting happens here. Every input line counts toward line
// numbers, matching or not, and lines have no length limit. Lines inside
// fenced code blocks are not excluded; the scanner is deliberately
// line-oriented.
func Scan(document string) []Heading {
	var headings []Heading

	for i, line := range strings.Split(document, "\n") {
		m := atxPattern.FindStringSubmatch(strings.TrimSuffix(line, "\r"))
		if m == nil {
			continue
		}
		headings = append(headings, Heading{
			Level: len(m[1]),
			Text:  strings.TrimSpace(m[2]),
			Line:  i + 1,
		})
	}

	return headings
}
