package toc

// FilterDepth prunes a forest to the inclusive [minDepth, maxDepth]
// level window. Each node is tested on its own level: in-range
// descendants of an out-of-range ancestor are promoted into its place
// rather than dropped, so the window never silently loses headings that
// only display is hiding. The source forest is never mutated — every
// retained node is a copy — which lets the caller re-filter the same
// scan result under a different window without rescanning.
func FilterDepth(forest []*Heading, minDepth, maxDepth int) []*Heading {
	var out []*Heading
	for _, h := range forest {
		children := FilterDepth(h.Children, minDepth, maxDepth)
		if h.Level >= minDepth && h.Level <= maxDepth {
			out = append(out, &Heading{
				Level:    h.Level,
				Text:     h.Text,
				Anchor:   h.Anchor,
				Line:     h.Line,
				Children: children,
			})
		} else {
			out = append(out, children...)
		}
	}
	return out
}
