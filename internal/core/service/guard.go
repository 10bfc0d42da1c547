package service

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// GenerationGuard serializes challenge generation per (user, week). Acquire
// blocks until the caller holds the guard; Release must follow every
// successful Acquire.
type GenerationGuard interface {
	Acquire(ctx context.Context, userID string, weekStart time.Time) error
	Release(userID string, weekStart time.Time)
}

// LocalGenerationGuard is a process-local GenerationGuard backed by a mutex
// per (user, week) key. Sufficient for a single instance; multi-instance
// deployments use the Redis-backed guard instead.
type LocalGenerationGuard struct {
	locks sync.Map // key -> *sync.Mutex
}

func NewLocalGenerationGuard() *LocalGenerationGuard {
	return &LocalGenerationGuard{}
}

func (g *LocalGenerationGuard) Acquire(_ context.Context, userID string, weekStart time.Time) error {
	mu, _ := g.locks.LoadOrStore(guardKey(userID, weekStart), &sync.Mutex{})
	mu.(*sync.Mutex).Lock()
	return nil
}

func (g *LocalGenerationGuard) Release(userID string, weekStart time.Time) {
	if mu, ok := g.locks.Load(guardKey(userID, weekStart)); ok {
		mu.(*sync.Mutex).Unlock()
	}
}

func guardKey(userID string, weekStart time.Time) string {
	return fmt.Sprintf("%s:%d", userID, weekStart.Unix())
}
