package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/netandpro/booking-api/internal/config"
)

// FixedWindow returns a per-IP fixed-window rate limiter backed by Redis.
// The first request of a window creates the counter with the window TTL;
// later requests increment it and are rejected with 429 once the limit is
// reached. When Redis is unavailable the limiter fails open so the site
// keeps working without it.
func FixedWindow(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}

	// INCR and EXPIRE must run atomically, otherwise a crash between the
	// two would leave a counter that never resets.
	windowScript := redis.NewScript(`
        local current = redis.call('INCR', KEYS[1])
        if current == 1 then
            redis.call('EXPIRE', KEYS[1], ARGV[1])
        end
        return current
    `)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			if ip == "" {
				ip = "unknown"
			}
			key := cfg.Prefix + ":" + ip

			ctx := c.Request().Context()
			current, err := windowScript.Run(ctx, rdb, []string{key}, int(cfg.Window/time.Second)).Int64()
			if err != nil {
				c.Logger().Warnf("ratelimit: redis error for key=%s: %v", key, err)
				return next(c)
			}

			remaining := int64(cfg.Max) - current
			if remaining < 0 {
				remaining = 0
			}
			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.Max))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if current > int64(cfg.Max) {
				ttl, err := rdb.TTL(ctx, key).Result()
				if err == nil && ttl > 0 {
					c.Response().Header().Set("Retry-After", strconv.Itoa(int(ttl/time.Second)))
				}
				return c.JSON(http.StatusTooManyRequests, echo.Map{
					"success": false,
					"message": cfg.Message,
				})
			}
			return next(c)
		}
	}
}
