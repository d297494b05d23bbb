package middleware

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sarhadcorp/catalog-api/internal/errs"
	"github.com/sarhadcorp/catalog-api/internal/server"
)

// Login throttle: attempts per client IP within one window.
const (
	loginRateLimit  = 10
	loginRateWindow = time.Minute
)

// RateLimitMiddleware throttles credential guessing on the login route
// using a Redis fixed-window counter per client IP.
type RateLimitMiddleware struct {
	server *server.Server
}

func NewRateLimitMiddleware(s *server.Server) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		server: s,
	}
}

// LimitLogin returns the Echo middleware enforcing the login throttle.
//
// Fail-open: when Redis is absent or the counter operations error, the
// request goes through. Losing brute-force protection during a Redis
// outage beats locking every admin out of the panel.
func (r *RateLimitMiddleware) LimitLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if r.server.Redis == nil {
				return next(c)
			}

			ctx := c.Request().Context()
			key := fmt.Sprintf("ratelimit:login:%s", c.RealIP())

			count, err := r.server.Redis.Incr(ctx, key).Result()
			if err != nil {
				GetLogger(c).Warn().Err(err).Msg("rate limit counter unavailable, allowing request")
				return next(c)
			}

			// First hit in the window starts the expiry clock.
			if count == 1 {
				if err := r.server.Redis.Expire(ctx, key, loginRateWindow).Err(); err != nil {
					GetLogger(c).Warn().Err(err).Msg("failed to set rate limit window expiry")
				}
			}

			if count > loginRateLimit {
				r.RecordRateLimitHit(c.Path())
				return errs.NewTooManyRequestsError("Too many login attempts, try again later")
			}

			return next(c)
		}
	}
}

// RecordRateLimitHit emits a New Relic custom event when a client gets
// throttled, so bursts show up in dashboards.
func (r *RateLimitMiddleware) RecordRateLimitHit(endpoint string) {
	if r.server.LoggerService != nil && r.server.LoggerService.GetApplication() != nil {
		r.server.LoggerService.GetApplication().RecordCustomEvent("RateLimitHit", map[string]interface{}{
			"endpoint": endpoint,
		})
	}
}
