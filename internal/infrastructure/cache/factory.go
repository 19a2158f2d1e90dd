package cache

import (
	"context"
	"fmt"

	"github.com/storefront/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// Rate limit backends
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// NewRateLimitStore builds the store named by cfg.RateLimitBackend.
// When Redis is unreachable the in-memory store is used and a warning logged.
func NewRateLimitStore(ctx context.Context, httpCfg config.HTTPConfig, redisCfg config.RedisConfig, logger *zap.Logger) (RateLimitStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	cleanup := 2 * httpCfg.RateLimitWindow

	switch httpCfg.RateLimitBackend {
	case "", BackendMemory:
		return NewInMemoryRateLimitStore(cleanup), nil
	case BackendRedis:
		client, err := NewRedisClient(ctx, redisCfg)
		if err != nil {
			logger.Warn("Redis unavailable, falling back to in-memory rate limit store",
				zap.String("host", redisCfg.Host),
				zap.Int("port", redisCfg.Port),
				zap.Error(err),
			)
			return NewInMemoryRateLimitStore(cleanup), nil
		}
		logger.Info("Using Redis rate limit store",
			zap.String("host", redisCfg.Host),
			zap.Int("port", redisCfg.Port),
		)
		return NewRedisRateLimitStore(client, ""), nil
	default:
		return nil, fmt.Errorf("unknown rate limit backend %q", httpCfg.RateLimitBackend)
	}
}
