package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/maemanahmaemanah39-collab/venaules/pkg/logger"
	"github.com/maemanahmaemanah39-collab/venaules/pkg/security"
	"github.com/maemanahmaemanah39-collab/venaules/prometheus"
)

// RateLimitMiddleware rejects requests past the limiter's fixed window,
// keyed by client IP. Applied to the public mutating routes.
func RateLimitMiddleware(limiter *security.RateLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow(c.RealIP()) {
				prometheus.RateLimitedCounter.Inc()
				logger.FromEcho(c).Warn("Rate limit exceeded", zap.String("ip", c.RealIP()))
				return c.JSON(http.StatusTooManyRequests, echo.Map{
					"error": "Terlalu banyak permintaan. Silakan coba lagi nanti.",
				})
			}
			return next(c)
		}
	}
}
