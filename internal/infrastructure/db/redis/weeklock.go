package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	lockTTL      = 30 * time.Second
	pollInterval = 100 * time.Millisecond
)

// WeekLock is a Redis-backed generation guard: it serializes weekly
// challenge generation per (user, week) across service instances via SET NX.
// Key format: weeklock:<user_id>:<week_start_unix>
type WeekLock struct {
	client *redis.Client
}

// NewWeekLock creates a WeekLock wrapping the given Redis client.
func NewWeekLock(client *redis.Client) *WeekLock {
	return &WeekLock{client: client}
}

// Acquire blocks until the lock for (userID, weekStart) is held or ctx is
// cancelled. The lock expires after lockTTL in case a holder dies without
// releasing.
func (l *WeekLock) Acquire(ctx context.Context, userID string, weekStart time.Time) error {
	key := l.key(userID, weekStart)
	for {
		ok, err := l.client.SetNX(ctx, key, "1", lockTTL).Result()
		if err != nil {
			return fmt.Errorf("week lock acquire: %w", err)
		}
		if ok {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(pollInterval):
		}
	}
}

// Release drops the lock. A best-effort delete: expiry covers the failure
// case.
func (l *WeekLock) Release(userID string, weekStart time.Time) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	_ = l.client.Del(ctx, l.key(userID, weekStart)).Err()
}

func (l *WeekLock) key(userID string, weekStart time.Time) string {
	return fmt.Sprintf("weeklock:%s:%d", userID, weekStart.Unix())
}
