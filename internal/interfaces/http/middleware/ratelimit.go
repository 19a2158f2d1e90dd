package middleware

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/storefront/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// RateLimitStore counts hits per key in a fixed window
type RateLimitStore interface {
	Hit(ctx context.Context, key string, window time.Duration) (count int64, resetIn time.Duration, err error)
}

// RateLimiter allows limit requests per client per window
type RateLimiter struct {
	store  RateLimitStore
	limit  int
	window time.Duration
	logger *zap.Logger
}

// NewRateLimiter creates a new rate limiter over store
func NewRateLimiter(store RateLimitStore, limit int, window time.Duration, logger *zap.Logger) *RateLimiter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RateLimiter{store: store, limit: limit, window: window, logger: logger}
}

// RateLimit returns a rate limiting middleware keyed by client IP.
// Store failures let the request through.
func RateLimit(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()

		count, resetIn, err := limiter.store.Hit(c.Request.Context(), key, limiter.window)
		if err != nil {
			limiter.logger.Warn("Rate limit store unavailable", zap.Error(err))
			c.Next()
			return
		}

		remaining := max(int64(limiter.limit)-count, 0)
		c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.limit))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(limiter.limit) {
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(resetIn.Seconds()))))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponseWithRequestID(
				dto.ErrCodeRateLimited,
				"Too many requests. Please try again later.",
				GetRequestID(c),
			))
			return
		}
		c.Next()
	}
}
