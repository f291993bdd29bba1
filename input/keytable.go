package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (arrows, Enter, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]Intent

	// Rune bindings
	Runes map[rune]Intent
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyCtrlQ:  IntentQuit,
			tcell.KeyUp:     IntentPotUp,
			tcell.KeyDown:   IntentPotDown,
			tcell.KeyLeft:   IntentJoyDecrease,
			tcell.KeyRight:  IntentJoyIncrease,
			tcell.KeyEnter:  IntentAck,
		},
		Runes: map[rune]Intent{
			'q': IntentQuit,
			'k': IntentPotUp,
			'j': IntentPotDown,
			'h': IntentJoyDecrease,
			'l': IntentJoyIncrease,
			' ': IntentPushButton,
			's': IntentSpeed,
			'm': IntentMute,
		},
	}
}

// Lookup returns the intent bound to ev
func (t *KeyTable) Lookup(ev *tcell.EventKey) Intent {
	if ev.Key() == tcell.KeyRune {
		return t.Runes[ev.Rune()]
	}
	return t.SpecialKeys[ev.Key()]
}
