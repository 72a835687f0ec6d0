// Package ratelimit throttles API clients with per-endpoint token buckets.
package ratelimit

import (
	"math"
	"sync"
	"time"
)

// Info describes the state of a client's bucket after a request was
// counted. RetryAfter is zero unless the request was refused.
type Info struct {
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// bucket is a token bucket. The level refills continuously at perSecond
// up to capacity; each admitted request costs one token.
type bucket struct {
	mu        sync.Mutex
	limit     int
	capacity  float64
	perSecond float64
	level     float64
	updated   time.Time
}

func newBucket(ec *EndpointConfig, now time.Time) *bucket {
	burst := ec.Burst
	if burst <= 0 {
		burst = ec.Limit
	}
	return &bucket{
		limit:     ec.Limit,
		capacity:  float64(burst),
		perSecond: float64(ec.Limit) / ec.Window.Seconds(),
		level:     float64(burst),
		updated:   now,
	}
}

// take refills the bucket for the elapsed time, consumes a token when one
// is available, and reports the resulting state in a single locked step.
func (b *bucket) take(now time.Time) (bool, Info) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.level = math.Min(b.capacity, b.level+now.Sub(b.updated).Seconds()*b.perSecond)
	b.updated = now

	ok := b.level >= 1
	if ok {
		b.level--
	}

	info := Info{Limit: b.limit, Remaining: int(b.level), ResetTime: now}
	if b.level < b.capacity {
		full := (b.capacity - b.level) / b.perSecond
		info.ResetTime = now.Add(time.Duration(full * float64(time.Second)))
	}
	if !ok {
		next := (1 - b.level) / b.perSecond
		info.RetryAfter = time.Duration(next * float64(time.Second))
	}
	return ok, info
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

type entry struct {
	bucket *bucket
	seen   time.Time
}

// Limiter tracks one bucket per client, endpoint and method. Idle entries
// are swept periodically so one-off clients do not accumulate.
type Limiter struct {
	mu      sync.Mutex
	entries map[string]*entry
	config  *Config
	ticker  *time.Ticker
	stop    chan struct{}
}

// idleTTL is how long an entry may go unused before the sweeper drops it.
const idleTTL = time.Hour

// NewLimiter creates a limiter. A nil config enables limiting with a
// 1000 req/min default and a five minute sweep interval.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:         true,
			DefaultLimit:    1000,
			DefaultWindow:   time.Minute,
			CleanupInterval: 5 * time.Minute,
			Whitelist:       make(map[string]bool),
			Blacklist:       make(map[string]bool),
		}
	}

	l := &Limiter{
		entries: make(map[string]*entry),
		config:  config,
	}

	if config.Enabled && config.CleanupInterval > 0 {
		l.ticker = time.NewTicker(config.CleanupInterval)
		l.stop = make(chan struct{})
		go l.sweepLoop()
	}

	return l
}

// Allow counts a request against the client's bucket for the endpoint and
// reports whether it may proceed. Whitelisted clients and unlimited
// endpoints bypass the buckets entirely; blacklisted clients are always
// refused.
func (l *Limiter) Allow(clientID, endpoint, method string) (bool, Info) {
	if !l.config.Enabled || l.config.Whitelist[clientID] {
		return true, Info{}
	}
	if l.config.Blacklist[clientID] {
		return false, Info{}
	}

	ec := MatchEndpoint(endpoint, method, l.config.EndpointConfigs)
	if ec == nil {
		ec = &EndpointConfig{
			Limit:  l.config.DefaultLimit,
			Window: l.config.DefaultWindow,
		}
	}
	if ec.Limit <= 0 {
		return true, Info{}
	}

	now := time.Now()
	return l.bucketFor(clientID+"|"+method+" "+endpoint, ec, now).take(now)
}

func (l *Limiter) bucketFor(key string, ec *EndpointConfig, now time.Time) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[key]
	if !ok {
		e = &entry{bucket: newBucket(ec, now)}
		l.entries[key] = e
	}
	e.seen = now
	return e.bucket
}

func (l *Limiter) sweepLoop() {
	for {
		select {
		case <-l.ticker.C:
			l.sweep(time.Now())
		case <-l.stop:
			return
		}
	}
}

func (l *Limiter) sweep(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for key, e := range l.entries {
		if now.Sub(e.seen) > idleTTL {
			delete(l.entries, key)
		}
	}
}

// Stop terminates the sweeper goroutine.
func (l *Limiter) Stop() {
	if l.ticker != nil {
		l.ticker.Stop()
	}
	if l.stop != nil {
		close(l.stop)
	}
}
