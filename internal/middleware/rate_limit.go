package middleware

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/orderkit/orderkit/internal/errs"
	"github.com/orderkit/orderkit/internal/server"
)

// RateLimitMiddleware enforces a fixed-window per-client request limit
// backed by redis.
//
// Each client IP gets a counter keyed by the current window; the first
// request in a window sets the key's expiry, and requests past the
// configured limit are rejected with 429. When redis is unavailable the
// limiter fails open: availability wins over enforcement.
type RateLimitMiddleware struct {
	server *server.Server
}

// NewRateLimitMiddleware constructs a RateLimitMiddleware.
func NewRateLimitMiddleware(s *server.Server) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		server: s,
	}
}

// Limit returns the echo middleware. It is a no-op when rate limiting is
// disabled in config or redis is not connected.
func (r *RateLimitMiddleware) Limit() echo.MiddlewareFunc {
	cfg := r.server.Config.RateLimit
	window := time.Duration(cfg.WindowSeconds) * time.Second

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !cfg.Enabled || r.server.Redis == nil {
				return next(c)
			}

			ctx := c.Request().Context()
			key := fmt.Sprintf("ratelimit:%s:%d", c.RealIP(), time.Now().Unix()/int64(cfg.WindowSeconds))

			count, err := r.server.Redis.Incr(ctx, key).Result()
			if err != nil {
				// Fail open on redis errors.
				GetLogger(c).Error().Err(err).Msg("rate limit check failed, allowing request")
				return next(c)
			}

			if count == 1 {
				r.server.Redis.Expire(ctx, key, window)
			}

			if count > int64(cfg.Requests) {
				GetLogger(c).Warn().
					Str("ip", c.RealIP()).
					Int64("count", count).
					Msg("rate limit exceeded")

				r.RecordRateLimitHit(c.Path())

				return errs.NewTooManyRequestsError("Too many requests, slow down")
			}

			return next(c)
		}
	}
}

// RecordRateLimitHit records a New Relic custom event for a rejected
// request, when New Relic is configured.
func (r *RateLimitMiddleware) RecordRateLimitHit(endpoint string) {
	if r.server.LoggerService != nil && r.server.LoggerService.GetApplication() != nil {
		r.server.LoggerService.GetApplication().RecordCustomEvent("RateLimitHit", map[string]interface{}{
			"endpoint": endpoint,
		})
	}
}
