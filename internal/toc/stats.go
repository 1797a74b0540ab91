package toc

import "sort"

// Flatten returns the forest's headings in pre-order document order.
func Flatten(forest []*Heading) []*Heading {
	var flat []*Heading
	var walk func(nodes []*Heading)
	walk = func(nodes []*Heading) {
		for _, h := range nodes {
			flat = append(flat, h)
			walk(h.Children)
		}
	}
	walk(forest)
	return flat
}

// ComputeStatistics describes the unfiltered forest, so the numbers
// never move when the caller changes the depth-filter window. Duplicate
// detection runs on the bare anchors — collisions are a property of the
// document, not of the CustomAnchorPrefix. ProcessingTime is filled in
// by the engine, which times the whole invocation.
func ComputeStatistics(forest []*Heading) Statistics {
	stats := Statistics{
		HeadingsByLevel:  make(map[int]int),
		DuplicateAnchors: []string{},
	}

	flat := Flatten(forest)
	stats.TotalHeadings = len(flat)
	if len(flat) == 0 {
		return stats
	}

	anchorCounts := make(map[string]int)
	levelSum := 0
	for _, h := range flat {
		stats.HeadingsByLevel[h.Level]++
		if h.Level > stats.MaxDepth {
			stats.MaxDepth = h.Level
		}
		levelSum += h.Level
		anchorCounts[h.Anchor]++
	}
	stats.AverageDepth = float64(levelSum) / float64(len(flat))

	for anchor, n := range anchorCounts {
		if n > 1 {
			stats.DuplicateAnchors = append(stats.DuplicateAnchors, anchor)
		}
	}
	sort.Strings(stats.DuplicateAnchors)

	return stats
}
