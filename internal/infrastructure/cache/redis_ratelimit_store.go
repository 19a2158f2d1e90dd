package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/storefront/backend/internal/infrastructure/config"
)

const defaultRateLimitPrefix = "ratelimit:"

// RedisRateLimitStore implements RateLimitStore with INCR and PEXPIRE so
// every instance behind a load balancer shares the same counters.
type RedisRateLimitStore struct {
	client    redis.UniversalClient
	keyPrefix string
}

// NewRedisClient connects to Redis and verifies the connection
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// NewRedisRateLimitStore creates a store on an existing client
func NewRedisRateLimitStore(client redis.UniversalClient, keyPrefix string) *RedisRateLimitStore {
	if keyPrefix == "" {
		keyPrefix = defaultRateLimitPrefix
	}
	return &RedisRateLimitStore{client: client, keyPrefix: keyPrefix}
}

// Hit implements RateLimitStore. The expiry is only set by the first hit
// of a window, so the window does not slide.
func (s *RedisRateLimitStore) Hit(ctx context.Context, key string, d time.Duration) (int64, time.Duration, error) {
	k := s.keyPrefix + key

	count, err := s.client.Incr(ctx, k).Result()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to record rate limit hit: %w", err)
	}
	if count == 1 {
		if err := s.client.PExpire(ctx, k, d).Err(); err != nil {
			return 0, 0, fmt.Errorf("failed to set rate limit window: %w", err)
		}
		return count, d, nil
	}

	resetIn, err := s.client.PTTL(ctx, k).Result()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read rate limit window: %w", err)
	}
	if resetIn < 0 {
		// key lost its expiry; restart the window
		if err := s.client.PExpire(ctx, k, d).Err(); err != nil {
			return 0, 0, fmt.Errorf("failed to set rate limit window: %w", err)
		}
		resetIn = d
	}
	return count, resetIn, nil
}

// Close closes the underlying client
func (s *RedisRateLimitStore) Close() error {
	return s.client.Close()
}
