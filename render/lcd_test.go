package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/vmath"
)

func TestLCDFillRectInclusiveAndClipped(t *testing.T) {
	lcd := NewLCD()
	red := color.RGBA{255, 0, 0, 255}

	lcd.FillRect(vmath.NewRect(vmath.NewPoint(10, 20), vmath.NewPoint(12, 21), red), red)

	for _, p := range []image.Point{{10, 20}, {12, 21}, {11, 20}} {
		if lcd.At(p.X, p.Y) != red {
			t.Errorf("pixel %v not filled", p)
		}
	}
	for _, p := range []image.Point{{9, 20}, {13, 21}, {10, 22}} {
		if lcd.At(p.X, p.Y) != constants.ColorBackground {
			t.Errorf("pixel %v filled outside rect", p)
		}
	}

	// Partially off-screen
	lcd.FillRect(vmath.NewRect(vmath.NewPoint(315, 235), vmath.NewPoint(400, 300), red), red)
	if lcd.At(319, 239) != red {
		t.Error("clipped fill missed the corner")
	}
}

func TestLCDBlitMask(t *testing.T) {
	lcd := NewLCD()
	b := vmath.NewBall(vmath.NewPoint(2, 2), constants.BallRadius, constants.ColorBall)

	// Origin is off-screen, must not panic
	DrawBall(lcd, &b)

	if lcd.At(2, 2) != constants.ColorBall {
		t.Error("center not painted")
	}
	// Mask corner is outside the circle
	b.MoveTo(vmath.NewPoint(100, 100))
	DrawBall(lcd, &b)
	if lcd.At(96, 96) == constants.ColorBall {
		t.Error("mask corner painted")
	}

	painted := 0
	for y := 96; y <= 104; y++ {
		for x := 96; x <= 104; x++ {
			if lcd.At(x, y) == constants.ColorBall {
				painted++
			}
		}
	}
	if painted != b.Mask().Count() {
		t.Errorf("painted %d pixels, mask has %d", painted, b.Mask().Count())
	}
}

func TestLCDDrawTextStaysInBox(t *testing.T) {
	lcd := NewLCD()
	white := color.RGBA{255, 255, 255, 255}
	const x, y, scale = 40, 50, 2

	lcd.DrawText(x, y, "GAME OVER", white, scale)
	w, h := lcd.TextSize("GAME OVER", scale)
	box := image.Rect(x, y, x+w, y+h)

	inside := 0
	b := lcd.Bounds()
	for py := b.Min.Y; py < b.Max.Y; py++ {
		for px := b.Min.X; px < b.Max.X; px++ {
			c := lcd.At(px, py)
			if c == constants.ColorBackground {
				continue
			}
			if !image.Pt(px, py).In(box) {
				t.Fatalf("text pixel (%d,%d) outside %v", px, py, box)
			}
			inside++
		}
	}
	if inside == 0 {
		t.Fatal("no text drawn")
	}
	if w != 9*7*scale || h != 13*scale {
		t.Errorf("TextSize = %dx%d, want %dx%d", w, h, 9*7*scale, 13*scale)
	}
}

func TestLCDSnapshotIsCopy(t *testing.T) {
	lcd := NewLCD()
	frame := lcd.NewFrame()
	red := color.RGBA{255, 0, 0, 255}

	lcd.Clear(red)
	lcd.Snapshot(frame)
	lcd.Clear(constants.ColorBackground)

	if frame.RGBAAt(5, 5) != red {
		t.Error("snapshot changed with the LCD")
	}
}
