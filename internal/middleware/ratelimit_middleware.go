package middleware

import (
	"context"
	"net/http"
	"strconv"

	"social-media/internal/redis"
	"social-media/internal/transport/httpdto"
	social_errors "social-media/pkg/errors"

	"github.com/gin-gonic/gin"
)

// AuthLimiter is satisfied by *redis.RateLimiter.
type AuthLimiter interface {
	AllowAuth(ctx context.Context, ip string) (*redis.RateLimitResult, error)
	ResetAuth(ctx context.Context, ip string) error
}

// AuthRateLimitMiddleware limits register and login attempts per client IP.
// Attach it to the auth routes only.
func AuthRateLimitMiddleware(limiter AuthLimiter) gin.HandlerFunc {
	return authRateLimit(limiter, false)
}

// LoginRateLimitMiddleware is AuthRateLimitMiddleware that also clears the
// client's counter once a login succeeds.
func LoginRateLimitMiddleware(limiter AuthLimiter) gin.HandlerFunc {
	return authRateLimit(limiter, true)
}

func authRateLimit(limiter AuthLimiter, resetOnSuccess bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		result, err := limiter.AllowAuth(c.Request.Context(), ip)
		if err != nil {
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, httpdto.NewErrorResponse("rate limit error", "INTERNAL_ERROR"))
			return
		}

		setRateLimitHeaders(c, result)

		if !result.Allowed {
			_ = c.Error(social_errors.ErrRateLimited)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, httpdto.NewErrorResponse("rate limit exceeded", "RATE_LIMITED"))
			return
		}

		c.Next()

		if resetOnSuccess && c.Writer.Status() == http.StatusOK {
			if err := limiter.ResetAuth(c.Request.Context(), ip); err != nil {
				_ = c.Error(err)
			}
		}
	}
}

// setRateLimitHeaders sets standard rate limit response headers
func setRateLimitHeaders(c *gin.Context, result *redis.RateLimitResult) {
	c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	c.Header("X-RateLimit-Reset", strconv.FormatInt(int64(result.ResetIn.Seconds()), 10))
}
