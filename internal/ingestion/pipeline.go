package ingestion

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/wingkam/jobradar/internal/source"
	"github.com/wingkam/jobradar/internal/types"
)

// detailConcurrency bounds parallel detail fetches against a single board.
const detailConcurrency = 4

// Store is the persistence capability the pipeline needs.
type Store interface {
	UpsertJob(ctx context.Context, job types.Job) (types.Job, bool, error)
	MarkExpiredExcept(ctx context.Context, source string, liveSourceIDs []string) (int, error)
}

// Result summarizes one pipeline run.
type Result struct {
	Fetched  int
	Created  int
	Updated  int
	Skipped  int
	Warnings int

	// LiveIDs lists every source id seen during the run, for Sweep.
	LiveIDs []string
}

// Pipeline runs search keywords against a board, annotates every posting,
// and upserts the results. One posting failing its detail fetch never aborts
// its siblings; the posting is stored with whatever the listing provided.
type Pipeline struct {
	src        source.Source
	normalizer *Normalizer
	store      Store
	log        *zap.Logger
}

// NewPipeline wires a pipeline for one board.
func NewPipeline(src source.Source, normalizer *Normalizer, store Store, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{src: src, normalizer: normalizer, store: store, log: log}
}

// Source reports the board name this pipeline crawls.
func (p *Pipeline) Source() string { return p.src.Name() }

// Run searches every keyword over the given number of pages and ingests all
// postings found. Extraction is parallel per job; writes serialize through
// the store's upsert.
func (p *Pipeline) Run(ctx context.Context, keywords []string, pages int) (Result, error) {
	if pages < 1 {
		pages = 1
	}

	var raws []types.RawJob
	seen := make(map[string]bool)
	for _, keyword := range keywords {
		for page := 1; page <= pages; page++ {
			batch, err := p.src.Search(ctx, keyword, page)
			if err != nil {
				p.log.Warn("search page failed",
					zap.String("source", p.src.Name()),
					zap.String("keyword", keyword),
					zap.Int("page", page),
					zap.Error(err))
				continue
			}
			for _, raw := range batch {
				if raw.SourceID == "" || seen[raw.SourceID] {
					continue
				}
				seen[raw.SourceID] = true
				raws = append(raws, raw)
			}
		}
	}

	var result Result
	result.Fetched = len(raws)
	for _, raw := range raws {
		result.LiveIDs = append(result.LiveIDs, raw.SourceID)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(detailConcurrency)

	var mu sync.Mutex
	for i := range raws {
		raw := &raws[i]
		g.Go(func() error {
			if err := p.src.FetchDetail(gctx, raw); err != nil {
				// Listing data alone is still worth storing.
				p.log.Warn("detail fetch failed",
					zap.String("source_id", raw.SourceID),
					zap.Error(err))
			}

			job, warnings := p.normalizer.Normalize(*raw)
			for _, warning := range warnings {
				p.log.Warn("data quality",
					zap.String("source_id", raw.SourceID),
					zap.String("warning", warning))
			}

			_, created, err := p.store.UpsertJob(gctx, job)

			mu.Lock()
			defer mu.Unlock()
			result.Warnings += len(warnings)
			switch {
			case err != nil:
				p.log.Error("upsert failed", zap.String("source_id", raw.SourceID), zap.Error(err))
				result.Skipped++
			case created:
				result.Created++
			default:
				result.Updated++
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return result, err
	}

	p.log.Info("ingestion run complete",
		zap.String("source", p.src.Name()),
		zap.Int("fetched", result.Fetched),
		zap.Int("created", result.Created),
		zap.Int("updated", result.Updated),
		zap.Int("skipped", result.Skipped))
	return result, nil
}

// Sweep marks jobs the source no longer serves as expired. It should run
// after a full crawl so liveSourceIDs covers the board's current inventory.
func (p *Pipeline) Sweep(ctx context.Context, liveSourceIDs []string) (int, error) {
	swept, err := p.store.MarkExpiredExcept(ctx, p.src.Name(), liveSourceIDs)
	if err != nil {
		return 0, err
	}
	if swept > 0 {
		p.log.Info("staleness sweep",
			zap.String("source", p.src.Name()),
			zap.Int("expired", swept))
	}
	return swept, nil
}
