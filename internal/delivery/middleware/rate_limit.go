package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"linkedpro/internal/infrastructure"
)

// RateLimit guards credential endpoints with a per-client-IP token bucket.
func RateLimit(limiter *infrastructure.RateLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow(c.RealIP()) {
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests, please try again later")
			}
			return next(c)
		}
	}
}
