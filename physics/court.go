package physics

import (
	"errors"

	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/vmath"
)

// ErrZeroVelocity rejects a launch whose x component is zero, which would never reach a paddle
var ErrZeroVelocity = errors.New("ball velocity has zero x component")

// Side identifies a player
type Side uint8

const (
	SideNone Side = iota
	SideTop
	SideBottom
)

func (s Side) String() string {
	switch s {
	case SideNone:
		return "None"
	case SideTop:
		return "Top"
	case SideBottom:
		return "Bottom"
	default:
		return "Unknown"
	}
}

// Opponent returns the other player; SideNone maps to itself
func (s Side) Opponent() Side {
	switch s {
	case SideTop:
		return SideBottom
	case SideBottom:
		return SideTop
	default:
		return SideNone
	}
}

// Court bounds the rows the ball may occupy, walls lie outside [MinY, MaxY]
type Court struct {
	MinY, MaxY uint16
}

// DefaultCourt is the LCD court between the two borders
func DefaultCourt() Court {
	return Court{MinY: constants.CourtMinY, MaxY: constants.CourtMaxY}
}

// ValidateVelocity reports ErrZeroVelocity for a stalled velocity
func ValidateVelocity(v vmath.Velocity) error {
	if v.X == 0 {
		return ErrZeroVelocity
	}
	return nil
}
