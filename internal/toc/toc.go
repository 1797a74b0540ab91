// Package toc generates a table of contents from a document's ATX
// headings: scan, hierarchy build, depth filter, render, statistics.
// The whole pipeline is pure and synchronous; every call is independent,
// so callers may regenerate on each keystroke without synchronization.
package toc

import (
	"errors"
	"fmt"
	"time"
)

// Format selects the output rendering of the TOC.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatJSON     Format = "json"
	FormatPlain    Format = "plain"
	FormatNumbered Format = "numbered"
)

// BulletStyle selects the list marker for the markdown format.
type BulletStyle string

const (
	BulletDash     BulletStyle = "dash"
	BulletAsterisk BulletStyle = "asterisk"
	BulletPlus     BulletStyle = "plus"
	BulletNumber   BulletStyle = "number"
	BulletCustom   BulletStyle = "custom"
)

// IndentStyle selects per-level indentation for markdown/plain/numbered.
type IndentStyle string

const (
	IndentSpaces IndentStyle = "spaces"
	IndentTabs   IndentStyle = "tabs"
	IndentNone   IndentStyle = "none"
)

// CaseStyle transforms displayed heading text. Anchors are never affected.
type CaseStyle string

const (
	CaseOriginal  CaseStyle = "original"
	CaseLowercase CaseStyle = "lowercase"
	CaseUppercase CaseStyle = "uppercase"
	CaseTitle     CaseStyle = "title"
	CaseSentence  CaseStyle = "sentence"
)

// Heading is one heading in the document. Children hold strictly deeper
// headings in document order. Nodes are created during scanning and
// never mutated; depth filtering copies instead of altering.
type Heading struct {
	Level    int        `json:"level"`
	Text     string     `json:"text"`
	Anchor   string     `json:"anchor"`
	Line     int        `json:"line"`
	Children []*Heading `json:"children"`
}

// Settings controls generation. The zero value is not valid; start from
// DefaultSettings.
type Settings struct {
	Format             Format      `json:"format"`
	MinDepth           int         `json:"min_depth"`
	MaxDepth           int         `json:"max_depth"`
	IncludeLinks       bool        `json:"include_links"`
	BulletStyle        BulletStyle `json:"bullet_style"`
	IndentStyle        IndentStyle `json:"indent_style"`
	CaseStyle          CaseStyle   `json:"case_style"`
	CustomPrefix       string      `json:"custom_prefix"`
	RemoveNumbers      bool        `json:"remove_numbers"`
	RemoveSpecialChars bool        `json:"remove_special_chars"`
	CustomAnchorPrefix string      `json:"custom_anchor_prefix"`
}

// DefaultSettings returns the defaults the UI ships with.
func DefaultSettings() Settings {
	return Settings{
		Format:       FormatMarkdown,
		MinDepth:     1,
		MaxDepth:     6,
		IncludeLinks: true,
		BulletStyle:  BulletDash,
		IndentStyle:  IndentSpaces,
		CaseStyle:    CaseOriginal,
	}
}

// ErrInvalidSettings is wrapped by every settings validation failure.
var ErrInvalidSettings = errors.New("invalid settings")

// Validate checks depth bounds and enum values. It runs before any
// scanning; a failure aborts the whole call with no partial result.
func (s Settings) Validate() error {
	if s.MinDepth < 1 || s.MinDepth > 6 {
		return fmt.Errorf("%w: min_depth %d out of range 1-6", ErrInvalidSettings, s.MinDepth)
	}
	if s.MaxDepth < 1 || s.MaxDepth > 6 {
		return fmt.Errorf("%w: max_depth %d out of range 1-6", ErrInvalidSettings, s.MaxDepth)
	}
	if s.MinDepth > s.MaxDepth {
		return fmt.Errorf("%w: min_depth %d > max_depth %d", ErrInvalidSettings, s.MinDepth, s.MaxDepth)
	}
	switch s.Format {
	case FormatMarkdown, FormatHTML, FormatJSON, FormatPlain, FormatNumbered:
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidSettings, s.Format)
	}
	switch s.BulletStyle {
	case BulletDash, BulletAsterisk, BulletPlus, BulletNumber, BulletCustom:
	default:
		return fmt.Errorf("%w: unknown bullet_style %q", ErrInvalidSettings, s.BulletStyle)
	}
	if s.BulletStyle == BulletCustom && s.CustomPrefix == "" {
		return fmt.Errorf("%w: bullet_style %q requires custom_prefix", ErrInvalidSettings, BulletCustom)
	}
	switch s.IndentStyle {
	case IndentSpaces, IndentTabs, IndentNone:
	default:
		return fmt.Errorf("%w: unknown indent_style %q", ErrInvalidSettings, s.IndentStyle)
	}
	switch s.CaseStyle {
	case CaseOriginal, CaseLowercase, CaseUppercase, CaseTitle, CaseSentence:
	default:
		return fmt.Errorf("%w: unknown case_style %q", ErrInvalidSettings, s.CaseStyle)
	}
	return nil
}

// Statistics describes the whole document, independent of the depth
// filter window. DuplicateAnchors holds anchors occurring more than
// once, sorted, before any CustomAnchorPrefix is applied.
type Statistics struct {
	TotalHeadings    int           `json:"total_headings"`
	HeadingsByLevel  map[int]int   `json:"headings_by_level"`
	MaxDepth         int           `json:"max_depth"`
	AverageDepth     float64       `json:"average_depth"`
	DuplicateAnchors []string      `json:"duplicate_anchors"`
	ProcessingTime   time.Duration `json:"processing_time_ns"`
}

// Result is the output of one generation. Headings is the unfiltered
// forest. Immutable once produced; re-generation yields a fresh Result.
type Result struct {
	TOC        string     `json:"toc"`
	Headings   []*Heading `json:"headings"`
	Statistics Statistics `json:"statistics"`
	Format     Format     `json:"format"`
	Settings   Settings   `json:"settings"`
}
