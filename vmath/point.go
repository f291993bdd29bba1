package vmath

import (
	"fmt"
	"math"
)

// Point is a pixel coordinate on the LCD
type Point struct {
	X, Y uint16
}

// NewPoint creates a point at x, y
func NewPoint(x, y uint16) Point {
	return Point{X: x, Y: y}
}

// Shift returns the point translated by dx, dy, saturating at the coordinate range
func (p Point) Shift(dx, dy int) Point {
	return Point{X: saturate(int(p.X) + dx), Y: saturate(int(p.Y) + dy)}
}

// Equal reports whether both coordinates match
func (p Point) Equal(o Point) bool {
	return p.X == o.X && p.Y == o.Y
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func saturate(v int) uint16 {
	if v < 0 {
		return 0
	}
	if v > math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(v)
}
