package vmath

import (
	"image"
	"image/color"
)

// Velocity is the per-tick displacement of the ball
type Velocity struct {
	X, Y int
}

// Ball is a circular sprite with an owned mask
// Copy a ball with Clone or CopyInto; a plain assignment shares the mask buffer
type Ball struct {
	Center   Point
	Radius   uint16
	Color    color.RGBA
	Velocity Velocity

	mask Bitmap
}

// NewBall creates a ball and generates its mask
func NewBall(center Point, radius uint16, c color.RGBA) Ball {
	b := Ball{Center: center, Radius: radius, Color: c}
	b.mask.Generate(radius)
	return b
}

// SetRadius changes the radius and regenerates the mask
func (b *Ball) SetRadius(radius uint16) {
	b.Radius = radius
	b.mask.Generate(radius)
}

// SetColor changes the sprite color; the mask is color independent
func (b *Ball) SetColor(c color.RGBA) {
	b.Color = c
}

// MoveTo places the center at p
func (b *Ball) MoveTo(p Point) {
	b.Center = p
}

// Shift translates the center by dx, dy
func (b *Ball) Shift(dx, dy int) {
	b.Center = b.Center.Shift(dx, dy)
}

// SetVelocity replaces the velocity
func (b *Ball) SetVelocity(vx, vy int) {
	b.Velocity = Velocity{X: vx, Y: vy}
}

// PosEqual reports whether both balls cover the same pixels
func (b *Ball) PosEqual(o *Ball) bool {
	return b.Center.Equal(o.Center) && b.Radius == o.Radius
}

// Mask returns the ball's own mask; callers must not retain it past the ball's lifetime
func (b *Ball) Mask() *Bitmap {
	return &b.mask
}

// Origin is the LCD position of the mask's first pixel
func (b *Ball) Origin() image.Point {
	return image.Pt(int(b.Center.X)-int(b.Radius), int(b.Center.Y)-int(b.Radius))
}

// Box is the bounding rect of the sprite
func (b *Ball) Box() Rect {
	bl := b.Center.Shift(-int(b.Radius), -int(b.Radius))
	tr := b.Center.Shift(int(b.Radius), int(b.Radius))
	return NewRect(bl, tr, b.Color)
}

// Clone returns a deep copy with its own mask
func (b *Ball) Clone() Ball {
	c := *b
	c.mask = b.mask.Clone()
	return c
}

// CopyInto deep-copies b into dst, reusing dst's mask buffer
func (b *Ball) CopyInto(dst *Ball) {
	dst.Center = b.Center
	dst.Radius = b.Radius
	dst.Color = b.Color
	dst.Velocity = b.Velocity
	dst.mask.CopyFrom(&b.mask)
}
