package api

import (
	"net/url"
	"strconv"

	"github.com/dgallion1/tocgen/internal/toc"
)

// settingsPayload is the partial-settings shape requests send: only the
// fields present override the configured defaults. Validation happens
// in the engine, not here.
type settingsPayload struct {
	Format             *string `json:"format"`
	MinDepth           *int    `json:"min_depth"`
	MaxDepth           *int    `json:"max_depth"`
	IncludeLinks       *bool   `json:"include_links"`
	BulletStyle        *string `json:"bullet_style"`
	IndentStyle        *string `json:"indent_style"`
	CaseStyle          *string `json:"case_style"`
	CustomPrefix       *string `json:"custom_prefix"`
	RemoveNumbers      *bool   `json:"remove_numbers"`
	RemoveSpecialChars *bool   `json:"remove_special_chars"`
	CustomAnchorPrefix *string `json:"custom_anchor_prefix"`
}

func (p *settingsPayload) apply(s toc.Settings) toc.Settings {
	if p == nil {
		return s
	}
	if p.Format != nil {
		s.Format = toc.Format(*p.Format)
	}
	if p.MinDepth != nil {
		s.MinDepth = *p.MinDepth
	}
	if p.MaxDepth != nil {
		s.MaxDepth = *p.MaxDepth
	}
	if p.IncludeLinks != nil {
		s.IncludeLinks = *p.IncludeLinks
	}
	if p.BulletStyle != nil {
		s.BulletStyle = toc.BulletStyle(*p.BulletStyle)
	}
	if p.IndentStyle != nil {
		s.IndentStyle = toc.IndentStyle(*p.IndentStyle)
	}
	if p.CaseStyle != nil {
		s.CaseStyle = toc.CaseStyle(*p.CaseStyle)
	}
	if p.CustomPrefix != nil {
		s.CustomPrefix = *p.CustomPrefix
	}
	if p.RemoveNumbers != nil {
		s.RemoveNumbers = *p.RemoveNumbers
	}
	if p.RemoveSpecialChars != nil {
		s.RemoveSpecialChars = *p.RemoveSpecialChars
	}
	if p.CustomAnchorPrefix != nil {
		s.CustomAnchorPrefix = *p.CustomAnchorPrefix
	}
	return s
}

// settingsFromForm applies multipart/form-encoded overrides, used by
// the batch upload endpoint. Unknown or malformed numbers fall through
// to the engine's validation via out-of-band values left as-is.
func settingsFromForm(form url.Values, s toc.Settings) toc.Settings {
	if v := form.Get("format"); v != "" {
		s.Format = toc.Format(v)
	}
	if v := form.Get("min_depth"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			s.MinDepth = n
		}
	}
	if v := form.Get("max_depth"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			s.MaxDepth = n
		}
	}
	if v := form.Get("include_links"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			s.IncludeLinks = b
		}
	}
	if v := form.Get("bullet_style"); v != "" {
		s.BulletStyle = toc.BulletStyle(v)
	}
	if v := form.Get("indent_style"); v != "" {
		s.IndentStyle = toc.IndentStyle(v)
	}
	if v := form.Get("case_style"); v != "" {
		s.CaseStyle = toc.CaseStyle(v)
	}
	if v := form.Get("custom_prefix"); v != "" {
		s.CustomPrefix = v
	}
	if v := form.Get("remove_numbers"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			s.RemoveNumbers = b
		}
	}
	if v := form.Get("remove_special_chars"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			s.RemoveSpecialChars = b
		}
	}
	if v := form.Get("custom_anchor_prefix"); v != "" {
		s.CustomAnchorPrefix = v
	}
	return s
}
