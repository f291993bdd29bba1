package input

import "context"

// Code is a quantized joystick reading
type Code uint32

// Joystick codes that move the bottom paddle; anything else is no motion
const (
	JoyNone     Code = 0
	JoyLeft     Code = 8
	JoyLeftAlt  Code = 9
	JoyRight    Code = 32
	JoyRightAlt Code = 33
)

// Direction is the paddle motion a code requests along y
type Direction int8

const (
	DirDecrease Direction = -1
	DirNone     Direction = 0
	DirIncrease Direction = 1
)

// Direction maps the code to a paddle motion
func (c Code) Direction() Direction {
	switch c {
	case JoyLeft, JoyLeftAlt:
		return DirDecrease
	case JoyRight, JoyRightAlt:
		return DirIncrease
	default:
		return DirNone
	}
}

func (d Direction) String() string {
	switch d {
	case DirDecrease:
		return "Decrease"
	case DirIncrease:
		return "Increase"
	default:
		return "None"
	}
}

// Potentiometer reports the calibrated analog control value
type Potentiometer interface {
	Read() int
}

// Joystick blocks until the next code or until ctx is done
type Joystick interface {
	Read(ctx context.Context) (Code, error)
}

// Button blocks until a full press and release of the operator button
type Button interface {
	WaitPressRelease(ctx context.Context) error
}
