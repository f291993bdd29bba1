package engine

import (
	"context"
	"sync"
)

// Signal is a counting semaphore
// Send never blocks; once capacity tokens are pending further sends are dropped
type Signal struct {
	ch chan struct{}
}

// NewSignal creates a signal holding at most capacity pending tokens
func NewSignal(capacity int) *Signal {
	if capacity < 1 {
		capacity = 1
	}
	return &Signal{ch: make(chan struct{}, capacity)}
}

// Send posts one token, returns false if the signal is saturated
func (s *Signal) Send() bool {
	select {
	case s.ch <- struct{}{}:
		return true
	default:
		return false
	}
}

// Wait consumes one token, blocking until one is posted or ctx is done
func (s *Signal) Wait(ctx context.Context) error {
	select {
	case <-s.ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// pending returns the number of tokens posted and not yet consumed
func (s *Signal) pending() int {
	return len(s.ch)
}

// Gate blocks waiters while closed
// Opening releases every waiter at once by closing the current channel
type Gate struct {
	mu   sync.Mutex
	open chan struct{}
}

// NewGate creates a gate in the given state
func NewGate(open bool) *Gate {
	g := &Gate{open: make(chan struct{})}
	if open {
		close(g.open)
	}
	return g
}

// Open releases current and future waiters; no-op if already open
func (g *Gate) Open() {
	g.mu.Lock()
	defer g.mu.Unlock()
	select {
	case <-g.open:
	default:
		close(g.open)
	}
}

// Close makes future waiters block; no-op if already closed
func (g *Gate) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	select {
	case <-g.open:
		g.open = make(chan struct{})
	default:
	}
}

// Wait returns once the gate is open or ctx is done
func (g *Gate) Wait(ctx context.Context) error {
	g.mu.Lock()
	ch := g.open
	g.mu.Unlock()
	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
