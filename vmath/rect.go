package vmath

import (
	"fmt"
	"image"
	"image/color"
)

// Rect is an axis-aligned box inclusive of both corners, used for paddles and walls
// Invariant: BottomLeft.X <= TopRight.X and BottomLeft.Y <= TopRight.Y
type Rect struct {
	BottomLeft Point
	TopRight   Point
	Color      color.RGBA
}

// NewRect creates a rect from two corners, normalizing swapped coordinates
func NewRect(bl, tr Point, c color.RGBA) Rect {
	r := Rect{Color: c}
	r.SetPoints(bl, tr)
	return r
}

// SetPoints replaces both corners, normalizing swapped coordinates
func (r *Rect) SetPoints(bl, tr Point) {
	if bl.X > tr.X {
		bl.X, tr.X = tr.X, bl.X
	}
	if bl.Y > tr.Y {
		bl.Y, tr.Y = tr.Y, bl.Y
	}
	r.BottomLeft = bl
	r.TopRight = tr
}

// Shift translates the rect by dx, dy
func (r *Rect) Shift(dx, dy int) {
	r.BottomLeft = r.BottomLeft.Shift(dx, dy)
	r.TopRight = r.TopRight.Shift(dx, dy)
}

// ShiftY translates the rect along y only
func (r *Rect) ShiftY(dy int) {
	r.Shift(0, dy)
}

// PosEqual reports whether both rects cover the same pixels, ignoring color
func (r Rect) PosEqual(o Rect) bool {
	return r.BottomLeft.Equal(o.BottomLeft) && r.TopRight.Equal(o.TopRight)
}

// Width is the pixel count along x
func (r Rect) Width() int {
	return int(r.TopRight.X) - int(r.BottomLeft.X) + 1
}

// Height is the pixel count along y
func (r Rect) Height() int {
	return int(r.TopRight.Y) - int(r.BottomLeft.Y) + 1
}

// Span is the corner-to-corner distance along y, the paddle width of the bounce model
func (r Rect) Span() int {
	return int(r.TopRight.Y) - int(r.BottomLeft.Y)
}

// MidY is the floored center row
func (r Rect) MidY() int {
	return (int(r.BottomLeft.Y) + int(r.TopRight.Y)) / 2
}

// Contains reports whether p lies inside r
func (r Rect) Contains(p Point) bool {
	return p.X >= r.BottomLeft.X && p.X <= r.TopRight.X &&
		p.Y >= r.BottomLeft.Y && p.Y <= r.TopRight.Y
}

// Overlaps reports whether r and o share at least one pixel
func (r Rect) Overlaps(o Rect) bool {
	return r.BottomLeft.X <= o.TopRight.X && o.BottomLeft.X <= r.TopRight.X &&
		r.BottomLeft.Y <= o.TopRight.Y && o.BottomLeft.Y <= r.TopRight.Y
}

// Image converts to an image.Rectangle with exclusive max
func (r Rect) Image() image.Rectangle {
	return image.Rect(int(r.BottomLeft.X), int(r.BottomLeft.Y), int(r.TopRight.X)+1, int(r.TopRight.Y)+1)
}

func (r Rect) String() string {
	return fmt.Sprintf("%d %d %d %d", r.BottomLeft.X, r.BottomLeft.Y, r.TopRight.X, r.TopRight.Y)
}
