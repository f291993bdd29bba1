package render

import (
	"github.com/lixenwraith/vi-pong/vmath"
)

// Well-known arena slots
const (
	SlotBallPrev = "ball.prev"
	SlotBallDiff = "ball.diff"
)

// Arena hands out reusable sprite buffers keyed by object id
// Owned by a single drawing task, not safe for concurrent use
type Arena struct {
	slots map[string]*vmath.Ball
}

// NewArena creates an arena with the given slots preallocated
func NewArena(ids ...string) *Arena {
	a := &Arena{slots: make(map[string]*vmath.Ball, len(ids))}
	for _, id := range ids {
		a.Slot(id)
	}
	return a
}

// Slot returns the buffer for id, creating an empty one on first use
// The same pointer is returned on every call
func (a *Arena) Slot(id string) *vmath.Ball {
	if b, ok := a.slots[id]; ok {
		return b
	}
	b := &vmath.Ball{}
	a.slots[id] = b
	return b
}

// Store copies src into the slot for id, reusing its mask buffer
func (a *Arena) Store(id string, src *vmath.Ball) *vmath.Ball {
	dst := a.Slot(id)
	src.CopyInto(dst)
	return dst
}
