package render

import (
	"sync/atomic"
)

// LEDsPerSide is the number of score LEDs per player; scores show in binary
const LEDsPerSide = 3

const sideMask = 1<<LEDsPerSide - 1

// ScoreIndicator shows both scores outside the LCD
type ScoreIndicator interface {
	Show(left, right uint8)
}

// LEDBank is the terminal score indicator, written without the draw lock
type LEDBank struct {
	bits atomic.Uint32
}

// Show lights the low three bits of each score
func (b *LEDBank) Show(left, right uint8) {
	b.bits.Store(uint32(left&sideMask) | uint32(right&sideMask)<<LEDsPerSide)
}

// Bits returns left in bits 0-2 and right in bits 3-5
func (b *LEDBank) Bits() uint8 {
	return uint8(b.bits.Load())
}

// Values returns the displayed left and right values
func (b *LEDBank) Values() (left, right uint8) {
	v := b.Bits()
	return v & sideMask, v >> LEDsPerSide & sideMask
}
