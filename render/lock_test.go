package render

import (
	"context"
	"testing"
	"time"
)

func TestDrawLockTimeoutDropsFrame(t *testing.T) {
	lock := NewDrawLock()
	ctx := context.Background()

	if !lock.TryAcquire(ctx, time.Millisecond) {
		t.Fatal("free lock not acquired")
	}

	start := time.Now()
	if lock.TryAcquire(ctx, 20*time.Millisecond) {
		t.Fatal("held lock acquired twice")
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("gave up after %v, before the timeout", elapsed)
	}

	lock.Release()
	if !lock.TryAcquire(ctx, time.Millisecond) {
		t.Error("released lock not acquired")
	}
	lock.Release()
}

func TestDrawLockWaiterWakesOnRelease(t *testing.T) {
	lock := NewDrawLock()
	ctx := context.Background()
	if err := lock.Acquire(ctx); err != nil {
		t.Fatal(err)
	}

	got := make(chan bool, 1)
	go func() {
		got <- lock.TryAcquire(ctx, time.Second)
	}()

	time.Sleep(10 * time.Millisecond)
	lock.Release()

	select {
	case ok := <-got:
		if !ok {
			t.Error("waiter timed out after release")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("waiter never returned")
	}
	lock.Release()
}

func TestDrawLockAcquireHonorsContext(t *testing.T) {
	lock := NewDrawLock()
	if err := lock.Acquire(context.Background()); err != nil {
		t.Fatal(err)
	}
	defer lock.Release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := lock.Acquire(ctx); err == nil {
		t.Error("Acquire succeeded on a cancelled context with the lock held")
	}
}
