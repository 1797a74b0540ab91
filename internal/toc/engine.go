package toc

import "time"

// Generate runs the whole pipeline over a document: validate settings,
// scan, build the forest, depth-filter, render, compute statistics.
// A document without headings is not an error — it yields a Result with
// an empty TOC and zero statistics. The only failure mode is invalid
// settings, detected before any scanning.
func Generate(document string, s Settings) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return assemble(Scan(document), s, time.Now())
}

// FromHeadings runs the same pipeline over an already-extracted flat
// heading list (HTML, DOCX and PDF uploads arrive this way). Anchors
// are derived here so every source shares one slug policy.
func FromHeadings(flat []Heading, s Settings) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return assemble(flat, s, time.Now())
}

func assemble(flat []Heading, s Settings, start time.Time) (*Result, error) {
	// Anchors are written into a copy; the caller's slice stays untouched.
	headings := make([]Heading, len(flat))
	copy(headings, flat)
	for i := range headings {
		headings[i].Anchor = Anchor(headings[i].Text)
	}

	forest := BuildForest(headings)
	filtered := FilterDepth(forest, s.MinDepth, s.MaxDepth)

	rendered, err := Render(filtered, s)
	if err != nil {
		return nil, err
	}

	stats := ComputeStatistics(forest)
	stats.ProcessingTime = time.Since(start)

	return &Result{
		TOC:        rendered,
		Headings:   forest,
		Statistics: stats,
		Format:     s.Format,
		Settings:   s,
	}, nil
}
