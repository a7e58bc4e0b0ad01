package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "housestock:ratelimit:"

// RedisLimiter is a fixed-window counter per key stored in redis.
// The window starts with the first request; later requests do not extend it (needs redis >= 7).
type RedisLimiter struct {
	client   redis.Cmdable
	requests int64
	window   time.Duration
}

// NewRedisLimiter allows requests per window for every key
func NewRedisLimiter(client redis.Cmdable, requests int, window time.Duration) *RedisLimiter {
	if requests < 1 {
		requests = 1
	}
	if window <= 0 {
		window = time.Minute
	}

	return &RedisLimiter{
		client:   client,
		requests: int64(requests),
		window:   window,
	}
}

// Allow increments the counter for key and reports whether it is within the limit
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := keyPrefix + key

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.ExpireNX(ctx, redisKey, l.window)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit check for %s: %w", key, err)
	}

	return incr.Val() <= l.requests, nil
}

// NewRedisClient parses a redis:// URL and verifies the server answers
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return client, nil
}
