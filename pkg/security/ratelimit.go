// Package security holds the request-abuse guards in front of the
// credential endpoints.
package security

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter is a sliding-window limiter backed by redis. A nil
// limiter allows everything, so callers never have to branch on
// whether redis is configured.
type RateLimiter struct {
	rdb    *redis.Client
	window time.Duration
	max    int64
}

func NewRateLimiter(rdb *redis.Client, window time.Duration, max int64) *RateLimiter {
	if rdb == nil {
		return nil
	}
	return &RateLimiter{rdb: rdb, window: window, max: max}
}

// Allow records one hit for key and reports whether it stays inside
// the window budget. Redis errors fail open.
func (rl *RateLimiter) Allow(ctx context.Context, key string) bool {
	if rl == nil {
		return true
	}

	now := time.Now()
	redisKey := fmt.Sprintf("ratelimit:%s", key)
	windowStart := now.Add(-rl.window).UnixNano()

	pipe := rl.rdb.Pipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", fmt.Sprintf("%d", windowStart))
	count := pipe.ZCard(ctx, redisKey)
	pipe.ZAdd(ctx, redisKey, redis.Z{Score: float64(now.UnixNano()), Member: now.UnixNano()})
	pipe.Expire(ctx, redisKey, rl.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return true
	}
	return count.Val() < rl.max
}
