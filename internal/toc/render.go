package toc

import (
	"encoding/json"
	"fmt"
	"html"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Render turns a (depth-filtered) forest into the output string for the
// chosen format. Output whitespace is exact: TOC text is pasted
// verbatim into documents, so a stray space is a defect, not cosmetics.
func Render(forest []*Heading, s Settings) (string, error) {
	if len(forest) == 0 {
		return "", nil
	}
	switch s.Format {
	case FormatMarkdown:
		return renderList(forest, s, false), nil
	case FormatPlain:
		return renderPlain(forest, s), nil
	case FormatNumbered:
		return renderList(forest, s, true), nil
	case FormatHTML:
		return renderHTML(forest, s), nil
	case FormatJSON:
		return renderJSON(forest, s)
	}
	return "", fmt.Errorf("%w: unknown format %q", ErrInvalidSettings, s.Format)
}

// renderList covers markdown and numbered output: one line per heading,
// indent from (level-1), bullet per style. Numbered output ignores
// BulletStyle and uses hierarchical dotted numbering built from the
// sibling-index path.
func renderList(forest []*Heading, s Settings, numbered bool) string {
	var b strings.Builder
	first := true

	var walk func(nodes []*Heading, path []int)
	walk = func(nodes []*Heading, path []int) {
		for i, h := range nodes {
			if !first {
				b.WriteByte('\n')
			}
			first = false

			// Fresh copy per sibling: recursion must not share backing arrays.
			numPath := append(append([]int(nil), path...), i+1)

			b.WriteString(indentFor(h.Level, s.IndentStyle))
			if numbered {
				b.WriteString(dottedNumber(numPath))
			} else {
				b.WriteString(bulletFor(s, i))
			}
			b.WriteString(renderEntry(h, s))

			walk(h.Children, numPath)
		}
	}
	walk(forest, nil)

	return b.String()
}

func renderPlain(forest []*Heading, s Settings) string {
	var lines []string
	var walk func(nodes []*Heading)
	walk = func(nodes []*Heading) {
		for _, h := range nodes {
			lines = append(lines, indentFor(h.Level, s.IndentStyle)+displayText(h.Text, s))
			walk(h.Children)
		}
	}
	walk(forest)
	return strings.Join(lines, "\n")
}

func renderHTML(forest []*Heading, s Settings) string {
	var b strings.Builder
	writeHTMLList(&b, forest, s, 0)
	return strings.TrimSuffix(b.String(), "\n")
}

func writeHTMLList(b *strings.Builder, nodes []*Heading, s Settings, depth int) {
	pad := strings.Repeat("  ", depth)
	b.WriteString(pad + "<ul>\n")
	for _, h := range nodes {
		text := html.EscapeString(displayText(h.Text, s))
		b.WriteString(pad + "  <li>")
		if s.IncludeLinks {
			href := html.EscapeString(s.CustomAnchorPrefix + h.Anchor)
			b.WriteString(`<a href="#` + href + `">` + text + `</a>`)
		} else {
			b.WriteString(text)
		}
		if len(h.Children) > 0 {
			b.WriteByte('\n')
			writeHTMLList(b, h.Children, s, depth+2)
			b.WriteString(pad + "  </li>\n")
		} else {
			b.WriteString("</li>\n")
		}
	}
	b.WriteString(pad + "</ul>\n")
}

// renderJSON serializes the forest as a pretty-printed array of
// {level, text, anchor, line, children} objects. Anchors carry the
// CustomAnchorPrefix; heading text stays untransformed since this is a
// structural dump, not display text.
func renderJSON(forest []*Heading, s Settings) (string, error) {
	out, err := json.MarshalIndent(jsonForest(forest, s.CustomAnchorPrefix), "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal toc: %w", err)
	}
	return string(out), nil
}

// jsonForest deep-copies with prefixed anchors and nil children
// normalized to empty arrays.
func jsonForest(nodes []*Heading, prefix string) []*Heading {
	out := make([]*Heading, 0, len(nodes))
	for _, h := range nodes {
		out = append(out, &Heading{
			Level:    h.Level,
			Text:     h.Text,
			Anchor:   prefix + h.Anchor,
			Line:     h.Line,
			Children: jsonForest(h.Children, prefix),
		})
	}
	return out
}

func renderEntry(h *Heading, s Settings) string {
	text := displayText(h.Text, s)
	if !s.IncludeLinks {
		return text
	}
	return "[" + text + "](#" + s.CustomAnchorPrefix + h.Anchor + ")"
}

func indentFor(level int, style IndentStyle) string {
	switch style {
	case IndentTabs:
		return strings.Repeat("\t", level-1)
	case IndentNone:
		return ""
	default:
		return strings.Repeat("  ", level-1)
	}
}

// bulletFor returns the marker plus its trailing space. The number
// style counts within the current sibling group only; i is the
// zero-based index there.
func bulletFor(s Settings, i int) string {
	switch s.BulletStyle {
	case BulletAsterisk:
		return "* "
	case BulletPlus:
		return "+ "
	case BulletNumber:
		return strconv.Itoa(i+1) + ". "
	case BulletCustom:
		return s.CustomPrefix + " "
	default:
		return "- "
	}
}

// dottedNumber renders a sibling-index path as "1.2.1. " including the
// trailing dot and space.
func dottedNumber(path []int) string {
	parts := make([]string, len(path))
	for i, n := range path {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ".") + ". "
}

var leadingNumber = regexp.MustCompile(`^\d+(\.\d+)*[.):]?\s*`)

// nonWord matches everything the anchor slugger also strips; here it is
// applied to display text only, and only on request.
var nonWord = regexp.MustCompile(`[^\w\s]`)

// displayText applies the render-time text transforms: numeric-prefix
// and special-character stripping first, then the case transform.
// Anchors are derived from the raw text and are never affected.
func displayText(text string, s Settings) string {
	if s.RemoveNumbers {
		text = strings.TrimSpace(leadingNumber.ReplaceAllString(text, ""))
	}
	if s.RemoveSpecialChars {
		text = strings.TrimSpace(nonWord.ReplaceAllString(text, ""))
	}
	switch s.CaseStyle {
	case CaseLowercase:
		return strings.ToLower(text)
	case CaseUppercase:
		return strings.ToUpper(text)
	case CaseTitle:
		return titleCase(text)
	case CaseSentence:
		return sentenceCase(text)
	}
	return text
}

func titleCase(text string) string {
	words := strings.Split(text, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		r := []rune(strings.ToLower(w))
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

func sentenceCase(text string) string {
	if text == "" {
		return ""
	}
	r := []rune(strings.ToLower(text))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
