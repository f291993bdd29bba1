package constants

import (
	"image/color"
	"time"
)

// LCD geometry (pixels)
const (
	ScreenWidth  = 320
	ScreenHeight = 240

	// BorderWidth is the thickness of each side wall
	BorderWidth = 10

	// CourtMinY and CourtMaxY are the first and last rows the ball may occupy
	CourtMinY = BorderWidth
	CourtMaxY = ScreenHeight - 1 - BorderWidth

	// CenterX and CenterY are the serve position
	CenterX = 159
	CenterY = ((BorderWidth - 1) + (ScreenHeight - BorderWidth)) / 2
)

// Paddle geometry (pixels)
// Paddles span PaddleDepth along x and PaddleWidth along y
const (
	PaddleDepth  = 10
	PaddleWidth  = 52
	PaddleOffset = 15

	// PaddleRowRange is the travel of a paddle's bottom-left row
	PaddleRowRange = (ScreenHeight - 1 - BorderWidth - PaddleWidth) - BorderWidth

	// JoystickStep is the bottom paddle shift per joystick event
	JoystickStep = 11
)

// Ball
const (
	BallRadius = 4

	// MaxScore ends a match
	MaxScore = 7
)

// DefaultDirection is the serve velocity, x toward the top paddle
var DefaultDirection = [2]int{4, 3}

// Speeds are cycled by the push button; index 0 is the match default
var Speeds = [...]int{7, 15}

// Bounce angle limits in degrees
const (
	MinBounceAngle = 15.0
	MaxBounceAngle = 80.0
)

// Potentiometer calibration
const (
	PotMin        = 100
	PotMax        = 4000
	PotHysteresis = 10

	// PotKeyStep is the virtual potentiometer change per key press
	PotKeyStep = 80
)

// Task timing, expressed in scheduler ticks of RTXTick
const (
	RTXTick = 10 * time.Millisecond

	BallDelay      = 5 * RTXTick
	TopPaddleDelay = 5 * RTXTick
	GameOverDelay  = 250 * RTXTick

	// DrawLockTimeout bounds every per-frame wait on the render lock
	// Two ball periods, a late frame is dropped rather than stalling its task
	DrawLockTimeout = 2 * BallDelay

	LEDFlashCycles = 6
	LEDFlashDelay  = 16 * RTXTick

	// FrameUpdateInterval is the terminal presentation rate (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond
)

// Palette
var (
	ColorBackground   = color.RGBA{0, 0, 0, 255}
	ColorBorder       = color.RGBA{128, 128, 128, 255}
	ColorBall         = color.RGBA{255, 255, 0, 255}
	ColorPaddleTop    = color.RGBA{255, 0, 0, 255}
	ColorPaddleBottom = color.RGBA{0, 0, 255, 255}
	ColorText         = color.RGBA{255, 255, 255, 255}
	ColorLEDOff       = color.RGBA{40, 40, 40, 255}
	ColorLEDOn        = color.RGBA{0, 255, 0, 255}
)
