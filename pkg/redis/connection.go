package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// RedisClient is the subset of Redis the API depends on; fakes implement it in tests
type RedisClient interface {
	Ping(ctx context.Context) error
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	DeleteMany(ctx context.Context, keys ...string) (int64, error)
	IncrWithExpiry(ctx context.Context, key string, window time.Duration) (int64, error)
	Close() error
}

var _ RedisClient = (*Client)(nil)

// Connect pings the server once and then keeps pinging it in the background
// until ctx is cancelled, logging failures
func Connect(ctx context.Context, client *Client, cfg *Config, log *logrus.Logger) error {
	timeout := cfg.DialTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx); err != nil {
		_ = client.Close()
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	go monitor(ctx, client, cfg.HealthCheckInterval, log)
	return nil
}

func monitor(ctx context.Context, client *Client, interval time.Duration, log *logrus.Logger) {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			if err := client.Ping(pingCtx); err != nil {
				log.WithError(err).Warn("Redis health check failed")
			}
			cancel()
		}
	}
}
