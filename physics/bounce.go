package physics

import (
	"math"

	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/vmath"
)

// BounceAngle maps a hit offset from the paddle center to a bounce angle in degrees
// Offsets beyond half the paddle width clamp to the edge
// 0 yields MaxBounceAngle, the edge yields MinBounceAngle, linear in between
func BounceAngle(offset, width int) float64 {
	half := width / 2
	if half <= 0 {
		return constants.MaxBounceAngle
	}
	d := clampOffset(offset, half)
	if d < 0 {
		d = -d
	}
	slope := (constants.MinBounceAngle - constants.MaxBounceAngle) / (float64(width) / 2.0)
	return slope*float64(d) + constants.MaxBounceAngle
}

// Bounce computes the post-contact velocity off paddle
// away is +1 when the ball leaves toward increasing x, -1 otherwise
// The parallel component is floored and the normal component ceiled so the ball clears the paddle next tick
func Bounce(b *vmath.Ball, paddle vmath.Rect, speed, away int) vmath.Velocity {
	width := paddle.Span()
	offset := clampOffset(int(b.Center.Y)-paddle.MidY(), width/2)

	theta := BounceAngle(offset, width) * math.Pi / 180.0
	s := float64(speed)

	vy := int(math.Floor(s * math.Cos(theta)))
	if offset <= 0 {
		vy = -vy
	}
	vx := int(math.Ceil(s * math.Sin(theta)))
	if away < 0 {
		vx = -vx
	}
	return vmath.Velocity{X: vx, Y: vy}
}

func clampOffset(offset, half int) int {
	if offset > half {
		return half
	}
	if offset < -half {
		return -half
	}
	return offset
}
