package middleware

import (
	"log"

	"github.com/labstack/echo/v4"

	apperrors "task-management.com/task-management/internal/errors"
	"task-management.com/task-management/internal/ratelimit"
)

// RateLimiter throttles per client IP through the injected limiter.
// A limiter backend failure fails open so a redis outage does not take
// the API down with it.
func RateLimiter(limiter ratelimit.Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			allowed, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Printf("rate limiter unavailable, allowing request: %v", err)
				return next(c)
			}
			if !allowed {
				return apperrors.NewRateLimitExceeded()
			}
			return next(c)
		}
	}
}
