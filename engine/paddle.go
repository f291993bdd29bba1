package engine

import (
	"image/color"
	"sync"

	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/vmath"
)

const (
	// RestRow is the bottom-left row of a centered paddle
	RestRow = constants.CourtMinY + constants.PaddleRowRange/2

	minRow = constants.CourtMinY
	maxRow = constants.CourtMinY + constants.PaddleRowRange

	// Joystick moves closer than a full step to a border snap onto it
	nudgeHighLimit = constants.CourtMaxY + 1 - constants.JoystickStep
	nudgeLowLimit  = constants.CourtMinY - 1 + constants.JoystickStep
)

// Paddle is a rect written by its owning task and read by the ball task
type Paddle struct {
	mu   sync.RWMutex
	rect vmath.Rect
}

// NewBottomPaddle creates the joystick paddle guarding low x
func NewBottomPaddle(row int) *Paddle {
	x := constants.PaddleOffset
	return newPaddle(x, row, constants.ColorPaddleBottom)
}

// NewTopPaddle creates the potentiometer paddle guarding high x
func NewTopPaddle(row int) *Paddle {
	x := constants.ScreenWidth - 1 - constants.PaddleOffset - constants.PaddleDepth
	return newPaddle(x, row, constants.ColorPaddleTop)
}

func newPaddle(x, row int, c color.RGBA) *Paddle {
	row = clampRow(row)
	return &Paddle{rect: vmath.NewRect(
		vmath.NewPoint(uint16(x), uint16(row)),
		vmath.NewPoint(uint16(x+constants.PaddleDepth), uint16(row+constants.PaddleWidth)),
		c,
	)}
}

// Rect returns a copy of the current rect
func (p *Paddle) Rect() vmath.Rect {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.rect
}

// SetRow moves the bottom-left corner to row, clamped to the court, and returns the new rect
func (p *Paddle) SetRow(row int) vmath.Rect {
	row = clampRow(row)
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rect.SetPoints(
		vmath.NewPoint(p.rect.BottomLeft.X, uint16(row)),
		vmath.NewPoint(p.rect.TopRight.X, uint16(row+constants.PaddleWidth)),
	)
	return p.rect
}

// Nudge moves the paddle one joystick step in dir and returns the new rect
func (p *Paddle) Nudge(dir input.Direction) vmath.Rect {
	p.mu.Lock()
	defer p.mu.Unlock()
	switch dir {
	case input.DirIncrease:
		top := int(p.rect.TopRight.Y)
		if top < nudgeHighLimit {
			p.rect.ShiftY(constants.JoystickStep)
		} else if top < constants.CourtMaxY {
			p.rect.ShiftY(constants.CourtMaxY - top)
		}
	case input.DirDecrease:
		low := int(p.rect.BottomLeft.Y)
		if low > nudgeLowLimit {
			p.rect.ShiftY(-constants.JoystickStep)
		} else if low > constants.CourtMinY {
			p.rect.ShiftY(constants.CourtMinY - low)
		}
	}
	return p.rect
}

func clampRow(row int) int {
	return max(minRow, min(row, maxRow))
}
