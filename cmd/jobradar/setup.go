package main

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/wingkam/jobradar/internal/annotate"
	"github.com/wingkam/jobradar/internal/config"
	"github.com/wingkam/jobradar/internal/db"
	"github.com/wingkam/jobradar/internal/ingestion"
	"github.com/wingkam/jobradar/internal/observability"
	"github.com/wingkam/jobradar/internal/source"
)

const fetchTimeout = 30 * time.Second

// loadConfig merges the optional config file, environment variables, and
// built-in defaults. Environment wins over the file; defaults fill the rest.
func loadConfig(path string) (config.Config, error) {
	var cfg config.Config
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	cfg.FromEnv()
	cfg = cfg.MergeWithDefaults(config.Defaults())

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if cfg.DatabaseURL == "" {
		return cfg, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	return cfg, nil
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	return observability.NewLogger(cfg.Verbose)
}

// buildPipelines wires one ingest pipeline per configured board. All boards
// share the fetcher and the Hong Kong annotation profile.
func buildPipelines(cfg config.Config, database *db.DB, log *zap.Logger) []*ingestion.Pipeline {
	fetcher := source.NewFetcher(fetchTimeout, cfg.UseBrowser)
	normalizer := ingestion.NewNormalizer(annotate.HongKongProfile())

	jobsdb := source.NewJobsDB(fetcher, cfg.JobsDBBaseURL)
	return []*ingestion.Pipeline{
		ingestion.NewPipeline(jobsdb, normalizer, database, log),
	}
}
