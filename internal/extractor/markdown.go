package extractor

import (
	"io"

	"github.com/dgallion1/tocgen/internal/toc"
)

// MarkdownExtractor handles markdown and plain-text files by running the
// engine's own ATX line scanner over the raw bytes, so file uploads and
// pasted text produce byte-identical heading lists.
type MarkdownExtractor struct{}

func (e *MarkdownExtractor) Extract(r io.Reader, filename string) ([]toc.Heading, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return toc.Scan(string(src)), nil
}
