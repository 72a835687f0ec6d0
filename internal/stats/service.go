package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/wingkam/jobradar/internal/cache"
	"github.com/wingkam/jobradar/internal/types"
)

// Store is the window-query capability the service needs from persistence.
type Store interface {
	ListJobsCreatedBetween(ctx context.Context, from, to time.Time) ([]types.Job, error)
}

// Service computes windowed statistics from the store, caching results for a
// short TTL since they only drift as new jobs are ingested.
type Service struct {
	store Store
	cache *cache.Cache
	now   func() time.Time
}

// NewService builds a Service. A nil cache disables caching.
func NewService(store Store, c *cache.Cache) *Service {
	return &Service{store: store, cache: c, now: time.Now}
}

// Overview returns the market overview for the rolling window of the last
// windowDays days.
func (s *Service) Overview(ctx context.Context, windowDays int) (Overview, error) {
	key := fmt.Sprintf("stats:overview:%d", windowDays)
	var cached Overview
	if hit, _ := s.cache.Get(ctx, key, &cached); hit {
		return cached, nil
	}

	now := s.now()
	jobs, err := s.store.ListJobsCreatedBetween(ctx, now.AddDate(0, 0, -windowDays), now)
	if err != nil {
		return Overview{}, fmt.Errorf("failed to load overview window: %w", err)
	}

	overview := ComputeOverview(jobs)
	_ = s.cache.Set(ctx, key, overview)
	return overview, nil
}

// TrendingSkills returns trending growth between the last currentDays days
// and the non-overlapping previousDays days before them.
func (s *Service) TrendingSkills(ctx context.Context, currentDays, previousDays int) ([]TrendingSkill, error) {
	key := fmt.Sprintf("stats:trending:%d:%d", currentDays, previousDays)
	var cached []TrendingSkill
	if hit, _ := s.cache.Get(ctx, key, &cached); hit {
		return cached, nil
	}

	now := s.now()
	currentFrom := now.AddDate(0, 0, -currentDays)
	previousFrom := currentFrom.AddDate(0, 0, -previousDays)

	current, err := s.store.ListJobsCreatedBetween(ctx, currentFrom, now)
	if err != nil {
		return nil, fmt.Errorf("failed to load current window: %w", err)
	}
	previous, err := s.store.ListJobsCreatedBetween(ctx, previousFrom, currentFrom)
	if err != nil {
		return nil, fmt.Errorf("failed to load previous window: %w", err)
	}

	trending := Trending(current, previous)
	_ = s.cache.Set(ctx, key, trending)
	return trending, nil
}
