package render

import (
	"image/color"

	"github.com/lixenwraith/vi-pong/vmath"
)

// SubtractRect returns the region of old not covered by next, colored clear
// Returns false when both rects cover the same pixels and nothing needs erasing
// Drawing next, then the returned rect, leaves no stale pixels of old
func SubtractRect(old, next vmath.Rect, clear color.RGBA) (vmath.Rect, bool) {
	if old.PosEqual(next) {
		return vmath.Rect{}, false
	}

	full := old
	full.Color = clear

	if !old.Overlaps(next) {
		return full, true
	}

	sameX := old.BottomLeft.X == next.BottomLeft.X && old.TopRight.X == next.TopRight.X
	sameY := old.BottomLeft.Y == next.BottomLeft.Y && old.TopRight.Y == next.TopRight.Y

	switch {
	case sameX && next.BottomLeft.Y > old.BottomLeft.Y && next.TopRight.Y >= old.TopRight.Y:
		// Shifted toward increasing y: erase the low strip
		return vmath.NewRect(
			old.BottomLeft,
			vmath.NewPoint(old.TopRight.X, next.BottomLeft.Y-1),
			clear,
		), true

	case sameX && next.TopRight.Y < old.TopRight.Y && next.BottomLeft.Y <= old.BottomLeft.Y:
		// Shifted toward decreasing y: erase the high strip
		return vmath.NewRect(
			vmath.NewPoint(old.BottomLeft.X, next.TopRight.Y+1),
			old.TopRight,
			clear,
		), true

	case sameY && next.BottomLeft.X > old.BottomLeft.X && next.TopRight.X >= old.TopRight.X:
		return vmath.NewRect(
			old.BottomLeft,
			vmath.NewPoint(next.BottomLeft.X-1, old.TopRight.Y),
			clear,
		), true

	case sameY && next.TopRight.X < old.TopRight.X && next.BottomLeft.X <= old.BottomLeft.X:
		return vmath.NewRect(
			vmath.NewPoint(next.TopRight.X+1, old.BottomLeft.Y),
			old.TopRight,
			clear,
		), true
	}

	// Diagonal or resized overlap, erase everything
	return full, true
}

// SubtractBall writes into dst a sprite at old's position keeping only the pixels next does not cover
// dst's mask buffer is reused; returns false when nothing is left to erase
func SubtractBall(dst *vmath.Ball, old, next *vmath.Ball, clear color.RGBA) bool {
	if old.PosEqual(next) {
		return false
	}

	old.CopyInto(dst)
	dst.Color = clear

	mask := dst.Mask()
	side := mask.Side()
	oo := old.Origin()
	no := next.Origin()
	nm := next.Mask()

	for row := 0; row < side; row++ {
		for col := 0; col < side; col++ {
			if !mask.At(col, row) {
				continue
			}
			if nm.At(oo.X+col-no.X, oo.Y+row-no.Y) {
				mask.Set(col, row, false)
			}
		}
	}
	return !mask.Empty()
}
