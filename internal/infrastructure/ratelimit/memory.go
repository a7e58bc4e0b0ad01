// Package ratelimit keeps per-client request budgets for the HTTP layer, either in
// process memory or in redis when several instances share one budget.
package ratelimit

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/housestock/backend/internal/infrastructure/cache"
)

// MemoryLimiter is a token bucket per key held in an in-memory TTL cache.
// Buckets idle for longer than one window are evicted.
type MemoryLimiter struct {
	buckets *cache.MemoryCache
	limit   rate.Limit
	burst   int
	idle    time.Duration
}

// NewMemoryLimiter allows requests per window for every key
func NewMemoryLimiter(requests int, window time.Duration) *MemoryLimiter {
	if requests < 1 {
		requests = 1
	}
	if window <= 0 {
		window = time.Minute
	}

	return &MemoryLimiter{
		buckets: cache.NewMemoryCache(window),
		limit:   rate.Every(window / time.Duration(requests)),
		burst:   requests,
		idle:    window,
	}
}

// Allow reports whether key still has budget and consumes one token if so
func (l *MemoryLimiter) Allow(ctx context.Context, key string) (bool, error) {
	bucket := l.buckets.GetOrCreate(key, l.idle, func() interface{} {
		return rate.NewLimiter(l.limit, l.burst)
	}).(*rate.Limiter)

	return bucket.Allow(), nil
}

// Close stops the eviction loop
func (l *MemoryLimiter) Close() error {
	l.buckets.Close()
	return nil
}
