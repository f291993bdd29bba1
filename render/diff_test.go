package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/vmath"
)

var (
	testBG    = color.RGBA{0, 0, 0, 255}
	testPaint = color.RGBA{0, 0, 255, 255}
)

func paddleAt(x, y uint16) vmath.Rect {
	return vmath.NewRect(
		vmath.NewPoint(x, y),
		vmath.NewPoint(x+constants.PaddleDepth, y+constants.PaddleWidth),
		testPaint,
	)
}

// assertSameFrame compares two framebuffers pixel by pixel
func assertSameFrame(t *testing.T, got, want *LCD, label string) {
	t.Helper()
	b := got.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if got.At(x, y) != want.At(x, y) {
				t.Fatalf("%s: stale pixel at (%d,%d): got %v, want %v", label, x, y, got.At(x, y), want.At(x, y))
			}
		}
	}
}

func TestSubtractRectIdentical(t *testing.T) {
	r := paddleAt(15, 93)
	if _, ok := SubtractRect(r, r, testBG); ok {
		t.Error("identical rects should need no erase")
	}

	recolored := r
	recolored.Color = testBG
	if _, ok := SubtractRect(r, recolored, testBG); ok {
		t.Error("color must not affect position equality")
	}
}

func TestSubtractRectBranches(t *testing.T) {
	old := paddleAt(15, 93)

	tests := []struct {
		name string
		next vmath.Rect
		want vmath.Rect
	}{
		{"increasing y", paddleAt(15, 104), vmath.NewRect(vmath.NewPoint(15, 93), vmath.NewPoint(25, 103), testBG)},
		{"decreasing y", paddleAt(15, 82), vmath.NewRect(vmath.NewPoint(15, 135), vmath.NewPoint(25, 145), testBG)},
		{"increasing x", paddleAt(18, 93), vmath.NewRect(vmath.NewPoint(15, 93), vmath.NewPoint(17, 145), testBG)},
		{"decreasing x", paddleAt(12, 93), vmath.NewRect(vmath.NewPoint(23, 93), vmath.NewPoint(25, 145), testBG)},
		{"no overlap", paddleAt(15, 160), vmath.NewRect(vmath.NewPoint(15, 93), vmath.NewPoint(25, 145), testBG)},
		{"diagonal", paddleAt(17, 95), vmath.NewRect(vmath.NewPoint(15, 93), vmath.NewPoint(25, 145), testBG)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SubtractRect(old, tt.next, testBG)
			if !ok {
				t.Fatal("expected a region to erase")
			}
			if !got.PosEqual(tt.want) {
				t.Errorf("region = %v, want %v", got, tt.want)
			}
			if got.Color != testBG {
				t.Errorf("color = %v, want background", got.Color)
			}
		})
	}
}

func TestSubtractRectLeavesNoStalePixels(t *testing.T) {
	const startY = 93

	for dy := -80; dy <= 80; dy++ {
		if dy == 0 {
			continue
		}
		old := paddleAt(15, startY)
		next := paddleAt(15, uint16(startY+dy))

		lcd := NewLCD()
		lcd.Clear(testBG)
		DrawRect(lcd, old)

		// New shape first, then the erase region
		DrawRect(lcd, next)
		diff, ok := SubtractRect(old, next, testBG)
		if !ok {
			t.Fatalf("dy %d: no region", dy)
		}
		lcd.FillRect(diff, diff.Color)

		want := NewLCD()
		want.Clear(testBG)
		DrawRect(want, next)

		assertSameFrame(t, lcd, want, "rect shift")

		// Minimal: only pixels of old not covered by next
		uncovered := 0
		for y := int(old.BottomLeft.Y); y <= int(old.TopRight.Y); y++ {
			if y < int(next.BottomLeft.Y) || y > int(next.TopRight.Y) {
				uncovered++
			}
		}
		if got := diff.Height(); got != uncovered {
			t.Fatalf("dy %d: erase height %d, want %d", dy, got, uncovered)
		}
		if diff.Overlaps(next) {
			t.Fatalf("dy %d: erase region %v overlaps new shape %v", dy, diff, next)
		}
	}
}

func TestSubtractBallIdentical(t *testing.T) {
	a := vmath.NewBall(vmath.NewPoint(100, 100), constants.BallRadius, testPaint)
	b := a.Clone()
	var dst vmath.Ball
	if SubtractBall(&dst, &a, &b, testBG) {
		t.Error("identical balls should need no erase")
	}
}

func TestSubtractBallLeavesNoStalePixels(t *testing.T) {
	var dst vmath.Ball

	for dx := -10; dx <= 10; dx++ {
		for dy := -10; dy <= 10; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			old := vmath.NewBall(vmath.NewPoint(150, 120), constants.BallRadius, testPaint)
			next := old.Clone()
			next.Shift(dx, dy)

			lcd := NewLCD()
			lcd.Clear(testBG)
			DrawBall(lcd, &old)

			DrawBall(lcd, &next)
			if !SubtractBall(&dst, &old, &next, testBG) {
				t.Fatalf("(%d,%d): nothing to erase", dx, dy)
			}
			DrawBall(lcd, &dst)

			want := NewLCD()
			want.Clear(testBG)
			DrawBall(want, &next)

			assertSameFrame(t, lcd, want, "ball shift")

			// Every erased pixel belongs to old and not to next
			if got, want := dst.Mask().Count(), uncoveredPixels(&old, &next); got != want {
				t.Fatalf("(%d,%d): erased %d pixels, want %d", dx, dy, got, want)
			}
			if dst.Center != old.Center {
				t.Fatalf("(%d,%d): diff sprite at %v, want %v", dx, dy, dst.Center, old.Center)
			}
		}
	}
}

func TestSubtractBallDoesNotMutateInputs(t *testing.T) {
	old := vmath.NewBall(vmath.NewPoint(150, 120), constants.BallRadius, testPaint)
	next := old.Clone()
	next.Shift(2, 1)
	before := old.Mask().Count()

	var dst vmath.Ball
	SubtractBall(&dst, &old, &next, testBG)

	if old.Mask().Count() != before {
		t.Error("old mask modified")
	}
	if next.Mask().Count() != before {
		t.Error("next mask modified")
	}
}

func uncoveredPixels(old, next *vmath.Ball) int {
	n := 0
	oo, no := old.Origin(), next.Origin()
	side := old.Mask().Side()
	for row := 0; row < side; row++ {
		for col := 0; col < side; col++ {
			if !old.Mask().At(col, row) {
				continue
			}
			p := image.Pt(oo.X+col-no.X, oo.Y+row-no.Y)
			if !next.Mask().At(p.X, p.Y) {
				n++
			}
		}
	}
	return n
}
