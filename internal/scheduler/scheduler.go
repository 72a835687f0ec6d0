// Package scheduler wires up the cron jobs that periodically re-crawl the
// configured boards and expire postings the boards no longer serve.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/wingkam/jobradar/internal/ingestion"
)

// Purger removes long-expired jobs, typically backed by the database layer.
type Purger interface {
	PurgeExpired(ctx context.Context, grace time.Duration) (int, error)
}

// Scheduler wraps robfig/cron and manages the ingest loop.
type Scheduler struct {
	cron      *cron.Cron
	pipelines []*ingestion.Pipeline
	purger    Purger
	keywords  []string
	pages     int
	grace     time.Duration
	spec      string // cron spec, e.g. "@every 6h"
	log       *zap.Logger
}

// New creates a Scheduler that re-crawls every intervalHours hours and
// purges jobs that stayed expired longer than graceDays days.
func New(pipelines []*ingestion.Pipeline, purger Purger, keywords []string, pages, intervalHours, graceDays int, log *zap.Logger) *Scheduler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scheduler{
		cron:      cron.New(),
		pipelines: pipelines,
		purger:    purger,
		keywords:  keywords,
		pages:     pages,
		grace:     time.Duration(graceDays) * 24 * time.Hour,
		spec:      fmt.Sprintf("@every %dh", intervalHours),
		log:       log,
	}
}

// Start registers the jobs and starts the scheduler. Also runs one cycle
// immediately so the board is populated without waiting for the first tick.
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.spec, func() {
		s.runCycle(ctx)
	}); err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	s.log.Info("scheduler started", zap.String("spec", s.spec))

	go s.runCycle(ctx)
	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.log.Info("scheduler stopped")
}

// runCycle crawls every board, sweeps stale postings, and purges jobs that
// have been expired past the grace period.
func (s *Scheduler) runCycle(ctx context.Context) {
	s.log.Info("ingest cycle started")

	for _, p := range s.pipelines {
		result, err := p.Run(ctx, s.keywords, s.pages)
		if err != nil {
			s.log.Error("pipeline run failed", zap.Error(err))
			continue
		}
		// Only sweep after a run that actually saw listings. A board that
		// returned nothing is more likely an outage than an empty inventory.
		if result.Fetched > 0 {
			if _, err := p.Sweep(ctx, result.LiveIDs); err != nil {
				s.log.Error("staleness sweep failed", zap.Error(err))
			}
		}
	}

	if s.purger != nil {
		purged, err := s.purger.PurgeExpired(ctx, s.grace)
		if err != nil {
			s.log.Error("purge failed", zap.Error(err))
		} else if purged > 0 {
			s.log.Info("purged expired jobs", zap.Int("count", purged))
		}
	}

	s.log.Info("ingest cycle complete")
}
