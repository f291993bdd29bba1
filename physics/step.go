package physics

import (
	"math"

	"github.com/lixenwraith/vi-pong/vmath"
)

// Contact names the collision case resolved by a Step
type Contact uint8

const (
	ContactNone Contact = iota
	ContactWallRight
	ContactWallLeft
	ContactPaddleBottom
	ContactPaddleTop
	ContactPassBottom
	ContactPassTop
	ContactGoal
)

func (c Contact) String() string {
	switch c {
	case ContactNone:
		return "None"
	case ContactWallRight:
		return "WallRight"
	case ContactWallLeft:
		return "WallLeft"
	case ContactPaddleBottom:
		return "PaddleBottom"
	case ContactPaddleTop:
		return "PaddleTop"
	case ContactPassBottom:
		return "PassBottom"
	case ContactPassTop:
		return "PassTop"
	case ContactGoal:
		return "Goal"
	default:
		return "Unknown"
	}
}

// Outcome reports what a Step did
// Scorer is the side credited with a goal, SideNone if the rally continues
type Outcome struct {
	Scorer  Side
	Contact Contact
}

// Goal reports whether the step ended the rally
func (o Outcome) Goal() bool {
	return o.Scorer != SideNone
}

// Step advances the ball by one tick against the walls and paddles
// The bottom paddle guards low x, the top paddle guards high x
// Position and velocity of b are updated in place; on a goal the ball is left untouched
// Cases are priority ordered, the first match wins
func Step(b *vmath.Ball, bottom, top vmath.Rect, speed int, court Court) Outcome {
	cx, cy := int(b.Center.X), int(b.Center.Y)
	r := int(b.Radius)
	vx, vy := b.Velocity.X, b.Velocity.Y
	minY, maxY := int(court.MinY), int(court.MaxY)
	bottomFace := int(bottom.TopRight.X)
	topFace := int(top.BottomLeft.X)

	switch {
	case cy+r+vy > maxY:
		// Right wall: land on the border, reflect y
		dy := maxY - (cy + r)
		b.Shift(scaled(dy, vy, vx), dy)
		b.SetVelocity(vx, -vy)
		return Outcome{Contact: ContactWallRight}

	case cy-r+vy < minY:
		// Left wall
		dy := minY - (cy - r)
		b.Shift(scaled(dy, vy, vx), dy)
		b.SetVelocity(vx, -vy)
		return Outcome{Contact: ContactWallLeft}

	case cx-r <= bottomFace:
		// Already inside the bottom paddle plane
		if cx+vx >= bottomFace && engaging(cy, r, bottom) {
			b.Shift(bottomFace+1-(cx-r), 0)
			b.Velocity = Bounce(b, bottom, speed, 1)
			return Outcome{Contact: ContactPaddleBottom}
		}
		return passOrGoal(b, bottom, cx+vx > bottomFace, speed, 1)

	case cx-r+vx <= bottomFace:
		// Crossing the bottom paddle plane this tick, classify at the contact point
		dx := bottomFace + 1 - (cx - r)
		dy := scaled(dx, vx, vy)
		if engaging(cy+dy, r, bottom) {
			b.Shift(dx, dy)
			b.Velocity = Bounce(b, bottom, speed, 1)
			return Outcome{Contact: ContactPaddleBottom}
		}
		return passOrGoal(b, bottom, cx+vx > bottomFace, speed, 1)

	case cx+r >= topFace:
		// Already inside the top paddle plane
		if cx+vx <= topFace && engaging(cy, r, top) {
			b.Shift(topFace-1-(cx+r), 0)
			b.Velocity = Bounce(b, top, speed, -1)
			return Outcome{Contact: ContactPaddleTop}
		}
		return passOrGoal(b, top, cx+vx < topFace, speed, -1)

	case cx+r+vx >= topFace:
		// Crossing the top paddle plane this tick
		dx := topFace - 1 - (cx + r)
		dy := scaled(dx, vx, vy)
		if engaging(cy+dy, r, top) {
			b.Shift(dx, dy)
			b.Velocity = Bounce(b, top, speed, -1)
			return Outcome{Contact: ContactPaddleTop}
		}
		return passOrGoal(b, top, cx+vx < topFace, speed, -1)

	default:
		b.Shift(vx, vy)
		return Outcome{Contact: ContactNone}
	}
}

// passOrGoal moves the full tick while the center stays in front of the paddle face
// A move that would end inside the paddle stops beside its end and bounces
func passOrGoal(b *vmath.Ball, paddle vmath.Rect, clear bool, speed, away int) Outcome {
	pass, hit, scorer := ContactPassBottom, ContactPaddleBottom, SideTop
	if away < 0 {
		pass, hit, scorer = ContactPassTop, ContactPaddleTop, SideBottom
	}
	if !clear {
		return Outcome{Scorer: scorer, Contact: ContactGoal}
	}

	cx, cy := int(b.Center.X), int(b.Center.Y)
	r := int(b.Radius)
	vx, vy := b.Velocity.X, b.Velocity.Y
	if !overlaps(cx+vx, cy+vy, r, paddle) {
		b.Shift(vx, vy)
		return Outcome{Contact: pass}
	}

	// The track enters the paddle through its end, the row short of it is the contact
	dy := int(paddle.TopRight.Y) + 1 - (cy - r)
	if vy > 0 {
		dy = int(paddle.BottomLeft.Y) - 1 - (cy + r)
	}
	b.Shift(scaled(dy, vy, vx), dy)
	b.Velocity = Bounce(b, paddle, speed, away)
	return Outcome{Contact: hit}
}

// overlaps reports whether the ball's bounding square at (cx, cy) shares a pixel with paddle
func overlaps(cx, cy, r int, paddle vmath.Rect) bool {
	return cx-r <= int(paddle.TopRight.X) && cx+r >= int(paddle.BottomLeft.X) && engaging(cy, r, paddle)
}

// engaging is the closed-interval y test, tangent counts as a hit
func engaging(cy, r int, paddle vmath.Rect) bool {
	return cy-r <= int(paddle.TopRight.Y) && cy+r >= int(paddle.BottomLeft.Y)
}

// scaled returns floor(num/den * v), the share of v covered while travelling num of den
// A zero divisor yields 0
func scaled(num, den, v int) int {
	if den == 0 {
		return 0
	}
	scale := float64(num) / float64(den)
	return int(math.Floor(scale * float64(v)))
}
