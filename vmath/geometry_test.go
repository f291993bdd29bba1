package vmath

import (
	"image"
	"image/color"
	"testing"
)

var testColor = color.RGBA{255, 255, 0, 255}

func TestPointShift(t *testing.T) {
	tests := []struct {
		name   string
		p      Point
		dx, dy int
		want   Point
	}{
		{"positive", NewPoint(10, 20), 4, 3, NewPoint(14, 23)},
		{"negative", NewPoint(10, 20), -4, -3, NewPoint(6, 17)},
		{"saturates at zero", NewPoint(2, 2), -5, -5, NewPoint(0, 0)},
		{"saturates at max", NewPoint(65530, 1), 10, 0, NewPoint(65535, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.p.Shift(tt.dx, tt.dy)
			if !got.Equal(tt.want) {
				t.Errorf("Shift(%d, %d) = %v, want %v", tt.dx, tt.dy, got, tt.want)
			}
		})
	}
}

func TestNewRectNormalizes(t *testing.T) {
	r := NewRect(NewPoint(30, 40), NewPoint(10, 20), testColor)
	if r.BottomLeft != NewPoint(10, 20) || r.TopRight != NewPoint(30, 40) {
		t.Errorf("NewRect corners = %v %v, want (10,20) (30,40)", r.BottomLeft, r.TopRight)
	}
	if r.Width() != 21 || r.Height() != 21 {
		t.Errorf("size = %dx%d, want 21x21", r.Width(), r.Height())
	}
}

func TestRectShiftAndEquality(t *testing.T) {
	a := NewRect(NewPoint(15, 93), NewPoint(25, 145), testColor)
	b := a
	b.ShiftY(11)

	if a.PosEqual(b) {
		t.Fatal("shifted rect reported equal")
	}
	if b.BottomLeft.Y != 104 || b.TopRight.Y != 156 {
		t.Errorf("ShiftY(11) rows = %d..%d, want 104..156", b.BottomLeft.Y, b.TopRight.Y)
	}
	if b.BottomLeft.X != a.BottomLeft.X {
		t.Error("ShiftY moved x")
	}

	b.Color = color.RGBA{}
	b.ShiftY(-11)
	if !a.PosEqual(b) {
		t.Error("PosEqual should ignore color")
	}
}

func TestRectGeometry(t *testing.T) {
	r := NewRect(NewPoint(15, 93), NewPoint(25, 145), testColor)

	if r.Span() != 52 {
		t.Errorf("Span() = %d, want 52", r.Span())
	}
	if r.MidY() != 119 {
		t.Errorf("MidY() = %d, want 119", r.MidY())
	}
	if !r.Contains(NewPoint(25, 145)) || r.Contains(NewPoint(26, 145)) {
		t.Error("Contains must be inclusive of TopRight and nothing beyond")
	}
	if got, want := r.Image(), image.Rect(15, 93, 26, 146); got != want {
		t.Errorf("Image() = %v, want %v", got, want)
	}
	if got := r.String(); got != "15 93 25 145" {
		t.Errorf("String() = %q", got)
	}

	touching := NewRect(NewPoint(25, 145), NewPoint(30, 150), testColor)
	apart := NewRect(NewPoint(26, 146), NewPoint(30, 150), testColor)
	if !r.Overlaps(touching) {
		t.Error("corner-sharing rects must overlap")
	}
	if r.Overlaps(apart) {
		t.Error("disjoint rects reported overlapping")
	}
}

func TestCircleBitmap(t *testing.T) {
	b := NewCircleBitmap(4)
	if b.Side() != 9 {
		t.Fatalf("Side() = %d, want 9", b.Side())
	}
	if !b.At(4, 4) || !b.At(0, 4) || !b.At(4, 8) {
		t.Error("center and axis extremes must be set")
	}
	if b.At(0, 0) || b.At(8, 8) {
		t.Error("corners must be clear")
	}
	if b.At(-1, 4) || b.At(9, 4) {
		t.Error("out of range must read as clear")
	}

	// Symmetric in both axes
	for row := 0; row < b.Side(); row++ {
		for col := 0; col < b.Side(); col++ {
			if b.At(col, row) != b.At(8-col, row) || b.At(col, row) != b.At(col, 8-row) {
				t.Fatalf("mask asymmetric at %d,%d", col, row)
			}
		}
	}
}

func TestBitmapCopyIsDeep(t *testing.T) {
	src := NewCircleBitmap(3)
	dst := src.Clone()
	dst.Set(3, 3, false)

	if !src.At(3, 3) {
		t.Fatal("mutating a clone changed the source")
	}
	if dst.Count() != src.Count()-1 {
		t.Errorf("clone count = %d, want %d", dst.Count(), src.Count()-1)
	}

	var reused Bitmap
	reused.Generate(10)
	reused.CopyFrom(&src)
	if reused.Side() != src.Side() || reused.Count() != src.Count() {
		t.Error("CopyFrom into a larger buffer must shrink to the source")
	}
}

func TestBallCopiesOwnMask(t *testing.T) {
	a := NewBall(NewPoint(159, 119), 4, testColor)
	a.SetVelocity(4, 3)

	b := a.Clone()
	b.Mask().Set(4, 4, false)
	if !a.Mask().At(4, 4) {
		t.Fatal("Clone shares the mask")
	}

	var c Ball
	a.CopyInto(&c)
	c.Mask().Set(4, 4, false)
	if !a.Mask().At(4, 4) {
		t.Fatal("CopyInto shares the mask")
	}
	if c.Velocity != a.Velocity || !c.PosEqual(&a) {
		t.Error("CopyInto dropped state")
	}
}

func TestBallGeometry(t *testing.T) {
	b := NewBall(NewPoint(159, 119), 4, testColor)

	if got := b.Origin(); got != image.Pt(155, 115) {
		t.Errorf("Origin() = %v, want (155,115)", got)
	}
	box := b.Box()
	if box.Width() != 9 || box.Height() != 9 {
		t.Errorf("Box() = %v", box)
	}

	b.Shift(-4, 3)
	if b.Center != NewPoint(155, 122) {
		t.Errorf("Shift moved to %v", b.Center)
	}

	b.SetRadius(6)
	if b.Mask().Side() != 13 {
		t.Errorf("SetRadius did not regenerate mask, side %d", b.Mask().Side())
	}
}
