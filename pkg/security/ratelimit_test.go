package security

import (
	"context"
	"testing"
	"time"
)

func TestNilLimiterAllowsEverything(t *testing.T) {
	var rl *RateLimiter
	for i := 0; i < 100; i++ {
		if !rl.Allow(context.Background(), "login:10.0.0.1") {
			t.Fatal("nil limiter denied a request")
		}
	}
}

func TestNewRateLimiterWithoutRedis(t *testing.T) {
	if rl := NewRateLimiter(nil, time.Minute, 10); rl != nil {
		t.Error("expected nil limiter when no redis client is given")
	}
}
