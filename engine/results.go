package engine

import (
	"fmt"

	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/render"
	"github.com/lixenwraith/vi-pong/vmath"
)

// Results page layout, in LCD pixels
const (
	resultsScale  = 2
	resultsLeft   = 4 * 8 * resultsScale
	resultsPitch  = 28
	resultsFirstY = 3 * resultsPitch
)

// Wall rects along the full width at both ends of the y axis
var (
	borderLow = vmath.NewRect(
		vmath.NewPoint(0, 0),
		vmath.NewPoint(constants.ScreenWidth-1, constants.BorderWidth-1),
		constants.ColorBorder,
	)
	borderHigh = vmath.NewRect(
		vmath.NewPoint(0, constants.ScreenHeight-constants.BorderWidth),
		vmath.NewPoint(constants.ScreenWidth-1, constants.ScreenHeight-1),
		constants.ColorBorder,
	)
)

// drawBorders paints both walls; caller holds the draw lock
func drawBorders(d render.Display) {
	render.DrawRect(d, borderLow)
	render.DrawRect(d, borderHigh)
}

// drawResults replaces the arena with the final score page; caller holds the draw lock
// Red is the potentiometer (top) player, blue the joystick (bottom) player
func drawResults(d render.Display, top, bottom uint32) {
	d.Clear(constants.ColorBackground)
	d.DrawText(resultsLeft, resultsFirstY, "GAME OVER", constants.ColorText, resultsScale)
	d.DrawText(resultsLeft, resultsFirstY+resultsPitch, fmt.Sprintf("RED  - %d", top), constants.ColorPaddleTop, resultsScale)
	d.DrawText(resultsLeft, resultsFirstY+2*resultsPitch, fmt.Sprintf("BLUE - %d", bottom), constants.ColorPaddleBottom, resultsScale)
}
