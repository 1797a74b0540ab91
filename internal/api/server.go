package api

import (
	"log/slog"
	"net/http"

	"github.com/dgallion1/tocgen/internal/config"
	"github.com/dgallion1/tocgen/internal/metrics"
	"github.com/dgallion1/tocgen/internal/pipeline"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API server for tocgen.
type Server struct {
	router       chi.Router
	orchestrator *pipeline.Orchestrator
	stats        *metrics.EngineStats
	log          *slog.Logger
	cfg          config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(orch *pipeline.Orchestrator, stats *metrics.EngineStats, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		orchestrator: orch,
		stats:        stats,
		log:          log,
		cfg:          cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.APIKey, s.log))

		r.Post("/api/toc", s.handleGenerate)
		r.Post("/api/toc/batch", s.handleBatch)
		r.Get("/api/toc/jobs/{jobID}", s.handleJobStatus)
		r.Post("/api/split", s.handleSplit)
		r.Post("/api/preview", s.handlePreview)
		r.Get("/api/stats/engine", s.handleEngineStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
