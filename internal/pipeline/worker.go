package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/dgallion1/tocgen/internal/extractor"
	"github.com/dgallion1/tocgen/internal/metrics"
	"github.com/dgallion1/tocgen/internal/toc"
)

// Worker processes a single batch TOC job: extract the flat heading
// list from the uploaded file, then run the engine over it.
type Worker struct {
	log         *slog.Logger
	stats       *metrics.EngineStats
	pdfFallback bool
}

func NewWorker(log *slog.Logger, stats *metrics.EngineStats, pdfFallback bool) *Worker {
	return &Worker{
		log:         log,
		stats:       stats,
		pdfFallback: pdfFallback,
	}
}

// Process runs the extract and generate phases for a job. The engine
// itself is pure and fast; ctx only gates whether we start at all.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)

	if ctx.Err() != nil {
		job.AddError(ctx.Err().Error())
		job.SetStatus(StatusFailed, "canceled")
		return
	}

	// Phase 1: Extract headings.
	job.SetStatus(StatusExtracting, "extracting headings")
	ex, err := extractor.ForFile(job.Filename)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "extracting")
		return
	}
	if p, ok := ex.(*extractor.PDFExtractor); ok {
		p.FallbackPdftotext = w.pdfFallback
	}

	flat, err := ex.Extract(bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		log.Error("extraction failed", "error", err)
		job.AddError(fmt.Sprintf("extract: %s", err))
		job.SetStatus(StatusFailed, "extracting")
		return
	}

	// Phase 2: Generate the TOC.
	job.SetStatus(StatusGenerating, "generating toc")
	res, err := toc.FromHeadings(flat, job.Settings)
	if err != nil {
		log.Error("generation failed", "error", err)
		job.AddError(fmt.Sprintf("generate: %s", err))
		job.SetStatus(StatusFailed, "generating")
		return
	}

	if w.stats != nil {
		w.stats.Record(res.Statistics.ProcessingTime)
	}

	job.SetResult(res)
	job.SetStatus(StatusCompleted, "done")
	log.Info("job complete",
		"headings", res.Statistics.TotalHeadings,
		"duplicates", len(res.Statistics.DuplicateAnchors),
		"format", res.Format,
	)
}
