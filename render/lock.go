package render

import (
	"context"
	"time"

	"golang.org/x/sync/semaphore"
)

// DrawLock serializes all access to the LCD
// Per-frame draws wait a bounded time and drop the frame on timeout; each drawer counts its own drops
type DrawLock struct {
	sem *semaphore.Weighted
}

// NewDrawLock creates an unlocked draw lock
func NewDrawLock() *DrawLock {
	return &DrawLock{sem: semaphore.NewWeighted(1)}
}

// TryAcquire waits at most timeout for the lock
// Returns false on timeout or cancellation; the caller skips the frame and must not Release
func (l *DrawLock) TryAcquire(ctx context.Context, timeout time.Duration) bool {
	if l.sem.TryAcquire(1) {
		return true
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return l.sem.Acquire(ctx, 1) == nil
}

// Acquire waits for the lock until ctx is done
func (l *DrawLock) Acquire(ctx context.Context) error {
	return l.sem.Acquire(ctx, 1)
}

// Release unlocks; releasing an unheld lock panics
func (l *DrawLock) Release() {
	l.sem.Release(1)
}
