package auth

import (
	"context"
	"fmt"
	"time"

	"quillpost-api/pkg/redis"
)

const (
	failedLoginPrefix = "login:failed:"
	lockPrefix        = "login:locked:"
)

// RedisLimiter counts failed logins in fixed windows and locks the email or the
// client address once a threshold is reached
type RedisLimiter struct {
	client      redis.RedisClient
	maxPerEmail int64
	maxPerIP    int64
	window      time.Duration
}

// NewRedisLimiter creates a limiter. A non-positive threshold disables that dimension.
func NewRedisLimiter(client redis.RedisClient, maxPerEmail, maxPerIP int, window time.Duration) *RedisLimiter {
	if window <= 0 {
		window = 15 * time.Minute
	}
	return &RedisLimiter{
		client:      client,
		maxPerEmail: int64(maxPerEmail),
		maxPerIP:    int64(maxPerIP),
		window:      window,
	}
}

// Locked reports whether either the email or the client address is locked out
func (l *RedisLimiter) Locked(ctx context.Context, email, clientIP string) (bool, error) {
	for _, key := range l.lockKeys(email, clientIP) {
		val, err := l.client.Get(ctx, key)
		if err != nil {
			return false, err
		}
		if val != "" {
			return true, nil
		}
	}
	return false, nil
}

// RecordFailure bumps both counters and sets the lock when a threshold is crossed
func (l *RedisLimiter) RecordFailure(ctx context.Context, email, clientIP string) error {
	if l.maxPerEmail > 0 && email != "" {
		if err := l.bump(ctx, "email:"+email, l.maxPerEmail); err != nil {
			return err
		}
	}
	if l.maxPerIP > 0 && clientIP != "" {
		if err := l.bump(ctx, "ip:"+clientIP, l.maxPerIP); err != nil {
			return err
		}
	}
	return nil
}

// Reset clears the email counter and lock after a successful login
func (l *RedisLimiter) Reset(ctx context.Context, email string) error {
	_, err := l.client.DeleteMany(ctx, failedLoginPrefix+"email:"+email, lockPrefix+"email:"+email)
	return err
}

func (l *RedisLimiter) bump(ctx context.Context, subject string, max int64) error {
	count, err := l.client.IncrWithExpiry(ctx, failedLoginPrefix+subject, l.window)
	if err != nil {
		return fmt.Errorf("failed to record login failure: %w", err)
	}
	if count >= max {
		return l.client.Set(ctx, lockPrefix+subject, count, l.window)
	}
	return nil
}

func (l *RedisLimiter) lockKeys(email, clientIP string) []string {
	keys := make([]string, 0, 2)
	if l.maxPerEmail > 0 && email != "" {
		keys = append(keys, lockPrefix+"email:"+email)
	}
	if l.maxPerIP > 0 && clientIP != "" {
		keys = append(keys, lockPrefix+"ip:"+clientIP)
	}
	return keys
}
