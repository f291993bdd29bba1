package input

// Intent is the game action a terminal event maps to
type Intent uint8

const (
	IntentNone Intent = iota

	// System
	IntentQuit   // q, Esc, Ctrl+C
	IntentResize // terminal resize
	IntentMute   // m: sound on/off

	// Top paddle (virtual potentiometer)
	IntentPotUp   // Up, k: toward the first court row
	IntentPotDown // Down, j

	// Bottom paddle (joystick)
	IntentJoyDecrease // Left, h
	IntentJoyIncrease // Right, l

	// Buttons
	IntentPushButton // Space: speed toggle and acknowledge, like the board's single button
	IntentSpeed      // s: speed toggle only
	IntentAck        // Enter: acknowledge only
)

var intentNames = map[Intent]string{
	IntentNone:        "none",
	IntentQuit:        "quit",
	IntentResize:      "resize",
	IntentMute:        "mute",
	IntentPotUp:       "pot_up",
	IntentPotDown:     "pot_down",
	IntentJoyDecrease: "joy_decrease",
	IntentJoyIncrease: "joy_increase",
	IntentPushButton:  "push_button",
	IntentSpeed:       "speed",
	IntentAck:         "ack",
}

func (i Intent) String() string {
	if name, ok := intentNames[i]; ok {
		return name
	}
	return "unknown"
}

// Toggles reports whether the intent cycles the ball speed
func (i Intent) Toggles() bool {
	return i == IntentPushButton || i == IntentSpeed
}

// Acks reports whether the intent acknowledges the results screen
func (i Intent) Acks() bool {
	return i == IntentPushButton || i == IntentAck
}
