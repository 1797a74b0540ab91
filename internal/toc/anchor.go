package toc

import (
	"regexp"
	"strings"
)

var (
	anchorStrip    = regexp.MustCompile(`[^\w\s]`)
	anchorSpaceRun = regexp.MustCompile(`\s+`)
	anchorDashRun  = regexp.MustCompile(`-+`)
)

// Anchor derives the URL-fragment slug for a heading text. It is pure:
// identical text always yields the identical anchor, regardless of
// level or position, so distinct headings may legitimately collide
// ("Setup!" and "Setup?" both yield "setup"). Collisions are reported
// in Statistics, never disambiguated.
func Anchor(text string) string {
	s := strings.ToLower(text)
	s = anchorStrip.ReplaceAllString(s, "")
	s = anchorSpaceRun.ReplaceAllString(s, "-")
	s = anchorDashRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
