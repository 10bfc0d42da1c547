package service

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestLocalGenerationGuard_SerializesSameKey(t *testing.T) {
	guard := NewLocalGenerationGuard()
	weekStart := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	const workers = 8
	counter := 0
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			if err := guard.Acquire(context.Background(), "user_1", weekStart); err != nil {
				t.Errorf("acquire failed: %v", err)
				return
			}
			defer guard.Release("user_1", weekStart)

			// Unsynchronized on purpose: the guard is the only protection.
			counter++
		}()
	}

	wg.Wait()
	if counter != workers {
		t.Errorf("expected %d increments, got %d (guard did not serialize)", workers, counter)
	}
}

func TestLocalGenerationGuard_DistinctKeysIndependent(t *testing.T) {
	guard := NewLocalGenerationGuard()
	weekStart := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	if err := guard.Acquire(context.Background(), "user_1", weekStart); err != nil {
		t.Fatalf("acquire failed: %v", err)
	}
	defer guard.Release("user_1", weekStart)

	// A different user and a different week must not block.
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = guard.Acquire(context.Background(), "user_2", weekStart)
		guard.Release("user_2", weekStart)
		_ = guard.Acquire(context.Background(), "user_1", weekStart.AddDate(0, 0, 7))
		guard.Release("user_1", weekStart.AddDate(0, 0, 7))
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("distinct keys blocked each other")
	}
}
