package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/dgallion1/tocgen/internal/toc"
)

type Config struct {
	Port string

	// Auth
	APIKey string

	// Worker pool
	WorkerCount  int
	MaxQueueSize int

	// Upload limits
	MaxUploadBytes int64

	// Job state
	JobTTL time.Duration

	// Engine stats rolling window
	StatsWindow time.Duration

	// TOC defaults applied when a request leaves settings unset
	DefaultFormat   string
	DefaultMinDepth int
	DefaultMaxDepth int

	// PDF
	PDFFallbackPdftotext bool
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8070"),

		APIKey: os.Getenv("TOCGEN_API_KEY"),

		WorkerCount:  envInt("WORKER_COUNT", 4),
		MaxQueueSize: envInt("MAX_QUEUE_SIZE", 100),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 10485760), // 10MB

		JobTTL:      envDuration("JOB_TTL", 1*time.Hour),
		StatsWindow: envDuration("STATS_WINDOW", 1*time.Hour),

		DefaultFormat:   envOr("DEFAULT_FORMAT", string(toc.FormatMarkdown)),
		DefaultMinDepth: envInt("DEFAULT_MIN_DEPTH", 1),
		DefaultMaxDepth: envInt("DEFAULT_MAX_DEPTH", 6),

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 100
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 10485760
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}
	if cfg.StatsWindow <= 0 {
		cfg.StatsWindow = 1 * time.Hour
	}

	return cfg
}

func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("TOCGEN_API_KEY is required")
	}
	if err := c.DefaultSettings().Validate(); err != nil {
		return fmt.Errorf("default toc settings: %w", err)
	}
	return nil
}

// DefaultSettings builds the engine settings a request starts from
// before its own overrides apply.
func (c Config) DefaultSettings() toc.Settings {
	s := toc.DefaultSettings()
	if c.DefaultFormat != "" {
		s.Format = toc.Format(c.DefaultFormat)
	}
	if c.DefaultMinDepth != 0 {
		s.MinDepth = c.DefaultMinDepth
	}
	if c.DefaultMaxDepth != 0 {
		s.MaxDepth = c.DefaultMaxDepth
	}
	return s
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
