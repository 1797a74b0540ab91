package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dgallion1/tocgen/internal/preview"
	"github.com/dgallion1/tocgen/internal/splitter"
	"github.com/dgallion1/tocgen/internal/toc"
)

type generateRequest struct {
	Document string           `json:"document"`
	Settings *settingsPayload `json:"settings"`
}

// handleGenerate runs the engine synchronously over a pasted document.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeDocumentRequest(w, r)
	if !ok {
		return
	}

	settings := req.Settings.apply(s.cfg.DefaultSettings())
	res, err := toc.Generate(req.Document, settings)
	if err != nil {
		if errors.Is(err, toc.ErrInvalidSettings) {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.stats.Record(res.Statistics.ProcessingTime)

	writeJSON(w, res)
}

// handleSplit cuts a markdown document into heading-delimited sections.
func (s *Server) handleSplit(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeDocumentRequest(w, r)
	if !ok {
		return
	}

	sections := splitter.Split(req.Document)
	if sections == nil {
		sections = []splitter.Section{}
	}
	writeJSON(w, map[string]any{
		"sections": sections,
		"count":    len(sections),
	})
}

// handlePreview generates the TOC, inserts it into the document and
// renders the whole thing to HTML. The inserted block must be markdown
// whatever the caller's preferred format is, so html/json fall back to
// the markdown renderer for the insert.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeDocumentRequest(w, r)
	if !ok {
		return
	}

	settings := req.Settings.apply(s.cfg.DefaultSettings())
	switch settings.Format {
	case toc.FormatMarkdown, toc.FormatNumbered, toc.FormatPlain:
	default:
		settings.Format = toc.FormatMarkdown
	}

	res, err := toc.Generate(req.Document, settings)
	if err != nil {
		if errors.Is(err, toc.ErrInvalidSettings) {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.stats.Record(res.Statistics.ProcessingTime)

	html, err := preview.HTML(preview.InsertTOC(req.Document, res.TOC))
	if err != nil {
		jsonError(w, "render preview: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]any{
		"html":       html,
		"toc":        res.TOC,
		"statistics": res.Statistics,
	})
}

func (s *Server) decodeDocumentRequest(w http.ResponseWriter, r *http.Request) (generateRequest, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return generateRequest{}, false
	}
	return req, true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
