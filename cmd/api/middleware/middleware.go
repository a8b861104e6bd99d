package middleware

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"speakup/pkg/errno"
	"speakup/pkg/metrics"
	"speakup/pkg/security"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// AccessLog tags every request with an id and logs the outcome; requests
// slower than two seconds are flagged at warn level.
func AccessLog() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		start := time.Now()
		requestID := uuid.New().String()
		c.Set("request_id", requestID)

		c.Next(ctx)

		duration := time.Since(start)
		fields := logrus.Fields{
			"request_id": requestID,
			"method":     string(c.Method()),
			"path":       string(c.Path()),
			"status":     c.Response.StatusCode(),
			"duration":   duration,
			"remote_ip":  c.ClientIP(),
		}
		if duration > 2*time.Second {
			logrus.WithFields(fields).Warn("Slow request detected")
		} else {
			logrus.WithFields(fields).Info("Request completed")
		}
	}
}

// RateLimit throttles a route per client IP using the given limiter.
// A nil limiter allows everything.
func RateLimit(limiter *security.RateLimiter, route string) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		key := fmt.Sprintf("%s:%s", route, c.ClientIP())
		if !limiter.Allow(ctx, key) {
			c.JSON(consts.StatusTooManyRequests, map[string]interface{}{
				"code":    errno.RateLimitErr.ErrCode,
				"message": errno.RateLimitErr.ErrMsg,
			})
			c.Abort()
			return
		}
		c.Next(ctx)
	}
}

// Prometheus records the request counters and latency histogram.
func Prometheus() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		start := time.Now()
		c.Next(ctx)
		if metrics.Default == nil {
			return
		}
		path := string(c.Path())
		metrics.Default.RequestsTotal.WithLabelValues(
			path, string(c.Method()), strconv.Itoa(c.Response.StatusCode())).Inc()
		metrics.Default.RequestDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	}
}
