package toc

// BuildForest nests a flat, ordered heading list into a forest using an
// explicit ancestor stack: pop while the top's level is >= the current
// heading's, then attach to the new top (or the root list when empty).
// A skipped level adopts downward — an H3 directly after an H1 becomes
// the H1's child, since no H2 exists to compete for ancestry. Document
// order is preserved at every level.
func BuildForest(flat []Heading) []*Heading {
	var roots []*Heading
	var stack []*Heading

	for i := range flat {
		h := &Heading{
			Level:  flat[i].Level,
			Text:   flat[i].Text,
			Anchor: flat[i].Anchor,
			Line:   flat[i].Line,
		}

		for len(stack) > 0 && stack[len(stack)-1].Level >= h.Level {
			stack = stack[:len(stack)-1]
		}

		if len(stack) == 0 {
			roots = append(roots, h)
		} else {
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, h)
		}
		stack = append(stack, h)
	}

	return roots
}
