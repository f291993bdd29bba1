package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat is a float64 stored as its bit pattern
// Zero value is ready to use (represents 0.0)
type AtomicFloat struct {
	bits atomic.Uint64
}

// Set stores v
func (f *AtomicFloat) Set(v float64) {
	f.bits.Store(math.Float64bits(v))
}

// Get loads the value
func (f *AtomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}
