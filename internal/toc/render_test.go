package toc

import (
	"encoding/json"
	"strings"
	"testing"
)

const sampleDoc = "# Intro\n## Setup\n### Install\n## Usage"

func renderDoc(t *testing.T, doc string, s Settings) string {
	t.Helper()
	res, err := Generate(doc, s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return res.TOC
}

func TestRender_MarkdownDefault(t *testing.T) {
	want := strings.Join([]string{
		"- [Intro](#intro)",
		"  - [Setup](#setup)",
		"    - [Install](#install)",
		"  - [Usage](#usage)",
	}, "\n")

	if got := renderDoc(t, sampleDoc, DefaultSettings()); got != want {
		t.Errorf("markdown output mismatch:\nexpected:\n%s\ngot:\n%s", want, got)
	}
}

func TestRender_Numbered(t *testing.T) {
	s := DefaultSettings()
	s.Format = FormatNumbered

	want := strings.Join([]string{
		"1. [Intro](#intro)",
		"  1.1. [Setup](#setup)",
		"    1.1.1. [Install](#install)",
		"  1.2. [Usage](#usage)",
	}, "\n")

	if got := renderDoc(t, sampleDoc, s); got != want {
		t.Errorf("numbered output mismatch:\nexpected:\n%s\ngot:\n%s", want, got)
	}
}

func TestRender_NumberedWithoutLinks(t *testing.T) {
	s := DefaultSettings()
	s.Format = FormatNumbered
	s.IncludeLinks = false

	want := "1. A\n  1.1. B\n  1.2. C"
	if got := renderDoc(t, "# A\n## B\n## C", s); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRender_BulletStyles(t *testing.T) {
	tests := []struct {
		style  BulletStyle
		custom string
		want   string
	}{
		{BulletDash, "", "- A\n  - B\n  - C"},
		{BulletAsterisk, "", "* A\n  * B\n  * C"},
		{BulletPlus, "", "+ A\n  + B\n  + C"},
		{BulletNumber, "", "1. A\n  1. B\n  2. C"},
		{BulletCustom, ">>", ">> A\n  >> B\n  >> C"},
	}
	for _, tt := range tests {
		t.Run(string(tt.style), func(t *testing.T) {
			s := DefaultSettings()
			s.IncludeLinks = false
			s.BulletStyle = tt.style
			s.CustomPrefix = tt.custom
			if got := renderDoc(t, "# A\n## B\n## C", s); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestRender_NumberBulletResetsPerSiblingGroup(t *testing.T) {
	s := DefaultSettings()
	s.IncludeLinks = false
	s.BulletStyle = BulletNumber

	// Each sibling group counts from 1; the counter is not cumulative
	// across the document.
	want := "1. A\n  1. B\n  2. C\n2. D\n  1. E"
	if got := renderDoc(t, "# A\n## B\n## C\n# D\n## E", s); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRender_IndentStyles(t *testing.T) {
	doc := "# A\n## B"
	tests := []struct {
		style IndentStyle
		want  string
	}{
		{IndentSpaces, "- A\n  - B"},
		{IndentTabs, "- A\n\t- B"},
		{IndentNone, "- A\n- B"},
	}
	for _, tt := range tests {
		t.Run(string(tt.style), func(t *testing.T) {
			s := DefaultSettings()
			s.IncludeLinks = false
			s.IndentStyle = tt.style
			if got := renderDoc(t, doc, s); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestRender_IndentFollowsHeadingLevel(t *testing.T) {
	s := DefaultSettings()
	s.IncludeLinks = false

	// Indent comes from (level-1), not tree depth: the H3 adopted by an
	// H1 still renders with two indent units.
	want := "- A\n    - B"
	if got := renderDoc(t, "# A\n### B", s); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRender_CaseStyles(t *testing.T) {
	doc := "# the QUICK brown Fox"
	tests := []struct {
		style CaseStyle
		want  string
	}{
		{CaseOriginal, "- the QUICK brown Fox"},
		{CaseLowercase, "- the quick brown fox"},
		{CaseUppercase, "- THE QUICK BROWN FOX"},
		{CaseTitle, "- The Quick Brown Fox"},
		{CaseSentence, "- The quick brown fox"},
	}
	for _, tt := range tests {
		t.Run(string(tt.style), func(t *testing.T) {
			s := DefaultSettings()
			s.IncludeLinks = false
			s.CaseStyle = tt.style
			if got := renderDoc(t, doc, s); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestRender_TextTransformsNeverTouchAnchors(t *testing.T) {
	s := DefaultSettings()
	s.CaseStyle = CaseUppercase
	s.RemoveNumbers = true

	want := "- [GETTING STARTED](#1-getting-started)"
	if got := renderDoc(t, "# 1. Getting Started", s); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRender_RemoveSpecialChars(t *testing.T) {
	s := DefaultSettings()
	s.IncludeLinks = false
	s.RemoveSpecialChars = true

	if got := renderDoc(t, "# Setup & Teardown!", s); got != "- Setup  Teardown" {
		t.Errorf("got %q", got)
	}
}

func TestRender_CustomAnchorPrefix(t *testing.T) {
	s := DefaultSettings()
	s.CustomAnchorPrefix = "doc-"

	if got := renderDoc(t, "# Intro", s); got != "- [Intro](#doc-intro)" {
		t.Errorf("got %q", got)
	}
}

func TestRender_Plain(t *testing.T) {
	s := DefaultSettings()
	s.Format = FormatPlain

	want := "Intro\n  Setup\n    Install\n  Usage"
	if got := renderDoc(t, sampleDoc, s); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRender_HTML(t *testing.T) {
	s := DefaultSettings()
	s.Format = FormatHTML

	want := strings.Join([]string{
		`<ul>`,
		`  <li><a href="#intro">Intro</a>`,
		`    <ul>`,
		`      <li><a href="#setup">Setup</a></li>`,
		`    </ul>`,
		`  </li>`,
		`</ul>`,
	}, "\n")

	if got := renderDoc(t, "# Intro\n## Setup", s); got != want {
		t.Errorf("html output mismatch:\nexpected:\n%s\ngot:\n%s", want, got)
	}
}

func TestRender_HTMLWithoutLinksEscapesText(t *testing.T) {
	s := DefaultSettings()
	s.Format = FormatHTML
	s.IncludeLinks = false

	want := "<ul>\n  <li>a &lt;b&gt; c</li>\n</ul>"
	if got := renderDoc(t, "# a <b> c", s); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRender_JSON(t *testing.T) {
	s := DefaultSettings()
	s.Format = FormatJSON
	s.CustomAnchorPrefix = "p-"

	out := renderDoc(t, "# A\n## B", s)

	var decoded []Heading
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("expected 1 root object, got %d", len(decoded))
	}
	if decoded[0].Anchor != "p-a" {
		t.Errorf("expected prefixed anchor %q, got %q", "p-a", decoded[0].Anchor)
	}
	if len(decoded[0].Children) != 1 || decoded[0].Children[0].Anchor != "p-b" {
		t.Errorf("expected prefixed child anchor, got %+v", decoded[0].Children)
	}
	if !strings.Contains(out, "\n  ") {
		t.Error("expected pretty-printed output")
	}
	if strings.Contains(out, "null") {
		t.Error("leaf children should serialize as [], not null")
	}
}

func TestRender_EmptyForestIsEmptyString(t *testing.T) {
	for _, f := range []Format{FormatMarkdown, FormatHTML, FormatJSON, FormatPlain, FormatNumbered} {
		s := DefaultSettings()
		s.Format = f
		if got := renderDoc(t, "no headings here", s); got != "" {
			t.Errorf("format %s: expected empty string, got %q", f, got)
		}
	}
}
