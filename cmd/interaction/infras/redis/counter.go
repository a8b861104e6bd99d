// Package redis caches per-video reaction counts. The cache is optional:
// when no address is configured every call degrades to a no-op or a miss
// and the services fall back to counting in the store.
package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"speakup/config"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/redis/go-redis/v9"
)

var rdb *redis.Client

const counterTTL = 10 * time.Minute

func Load() {
	if config.ConfigInfo.Redis.Addr == "" {
		hlog.Warn("no redis address configured, reaction counters served from the store")
		return
	}
	rdb = redis.NewClient(&redis.Options{
		Addr:     config.ConfigInfo.Redis.Addr,
		Password: config.ConfigInfo.Redis.Password,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		hlog.Warnf("redis unreachable, reaction counters served from the store: %v", err)
		rdb = nil
	}
}

// Client exposes the shared connection for other redis-backed guards.
// Nil when the cache is disabled.
func Client() *redis.Client {
	return rdb
}

func counterKey(kind string, videoID int64) string {
	return fmt.Sprintf("video:%d:%s", videoID, kind)
}

// GetVideoCounter returns the cached count and whether it was present.
func GetVideoCounter(ctx context.Context, kind string, videoID int64) (int64, bool) {
	if rdb == nil {
		return 0, false
	}
	val, err := rdb.Get(ctx, counterKey(kind, videoID)).Result()
	if err != nil {
		return 0, false
	}
	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false
	}
	return count, true
}

func SetVideoCounter(ctx context.Context, kind string, videoID, count int64) {
	if rdb == nil {
		return
	}
	if err := rdb.Set(ctx, counterKey(kind, videoID), count, counterTTL).Err(); err != nil {
		hlog.CtxWarnf(ctx, "failed to cache %s counter for video %d: %v", kind, videoID, err)
	}
}

// InvalidateVideoCounters drops all cached counters for a video after a
// mutation; the next read repopulates from the store.
func InvalidateVideoCounters(ctx context.Context, videoID int64) {
	if rdb == nil {
		return
	}
	keys := []string{
		counterKey("likes", videoID),
		counterKey("dislikes", videoID),
		counterKey("comments", videoID),
		counterKey("reports", videoID),
	}
	if err := rdb.Del(ctx, keys...).Err(); err != nil {
		hlog.CtxWarnf(ctx, "failed to invalidate counters for video %d: %v", videoID, err)
	}
}
