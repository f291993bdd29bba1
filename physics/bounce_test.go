package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/vmath"
)

func TestBounceAngleLimits(t *testing.T) {
	width := constants.PaddleWidth

	if got := BounceAngle(0, width); got != constants.MaxBounceAngle {
		t.Errorf("BounceAngle(0) = %v, want %v", got, constants.MaxBounceAngle)
	}
	if got := BounceAngle(width/2, width); math.Abs(got-constants.MinBounceAngle) > 1e-9 {
		t.Errorf("BounceAngle(edge) = %v, want %v", got, constants.MinBounceAngle)
	}
	if got := BounceAngle(width, width); math.Abs(got-constants.MinBounceAngle) > 1e-9 {
		t.Errorf("BounceAngle beyond edge = %v, want clamp to %v", got, constants.MinBounceAngle)
	}
	if got := BounceAngle(5, 0); got != constants.MaxBounceAngle {
		t.Errorf("zero width = %v, want %v", got, constants.MaxBounceAngle)
	}
}

func TestBounceAngleMonotone(t *testing.T) {
	width := constants.PaddleWidth
	prev := BounceAngle(0, width)

	for d := 1; d <= width/2; d++ {
		got := BounceAngle(d, width)
		if got >= prev {
			t.Fatalf("BounceAngle(%d) = %v, not below BounceAngle(%d) = %v", d, got, d-1, prev)
		}
		if got < constants.MinBounceAngle-1e-9 || got > constants.MaxBounceAngle {
			t.Fatalf("BounceAngle(%d) = %v out of range", d, got)
		}
		if mirror := BounceAngle(-d, width); mirror != got {
			t.Fatalf("BounceAngle(-%d) = %v, want %v", d, mirror, got)
		}
		prev = got
	}
}

func TestBounceDirection(t *testing.T) {
	bottom, top := restPaddles()

	tests := []struct {
		name   string
		cy     uint16
		paddle vmath.Rect
		away   int
		wantVX int // sign
		wantVY int // sign, 0 for either
	}{
		{"bottom center", 119, bottom, 1, 1, -1},
		{"bottom above center", 140, bottom, 1, 1, 1},
		{"bottom below center", 95, bottom, 1, 1, -1},
		{"top above center", 140, top, -1, -1, 1},
		{"top below center", 95, top, -1, -1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBall(100, tt.cy, 4, 3)
			v := Bounce(&b, tt.paddle, 7, tt.away)
			if sign(v.X) != tt.wantVX {
				t.Errorf("VX = %d, want sign %d", v.X, tt.wantVX)
			}
			if sign(v.Y) != tt.wantVY {
				t.Errorf("VY = %d, want sign %d", v.Y, tt.wantVY)
			}
		})
	}
}

func TestBounceAlwaysClearsPaddle(t *testing.T) {
	bottom, _ := restPaddles()

	for speed := 1; speed <= 15; speed++ {
		for cy := 60; cy <= 180; cy++ {
			b := newTestBall(30, uint16(cy), -4, 0)
			v := Bounce(&b, bottom, speed, 1)
			if v.X < 1 {
				t.Fatalf("speed %d row %d: VX = %d, ball would stay in the plane", speed, cy, v.X)
			}
			if v.X > speed {
				t.Fatalf("speed %d row %d: VX = %d exceeds speed", speed, cy, v.X)
			}
		}
	}
}

func TestBounceEdgeIsShallow(t *testing.T) {
	bottom, _ := restPaddles()
	center := newTestBall(30, 119, -4, 0)
	edge := newTestBall(30, 145, -4, 0)

	vc := Bounce(&center, bottom, 15, 1)
	ve := Bounce(&edge, bottom, 15, 1)

	// 80 degrees: mostly normal; 15 degrees: mostly along the paddle
	if vc.X <= abs(vc.Y) {
		t.Errorf("center hit %+v should travel mostly along x", vc)
	}
	if ve.X >= abs(ve.Y) {
		t.Errorf("edge hit %+v should travel mostly along y", ve)
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
