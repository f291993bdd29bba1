package input

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/render"
)

const (
	joystickBuffer = 16
	buttonBuffer   = 8
)

// Terminal turns tcell events into the board's input devices
// Handle is called from the event loop; the device views are read from game tasks
type Terminal struct {
	screen tcell.Screen
	table  *KeyTable

	pot     atomic.Int32
	joy     chan Code
	button  chan bool // true on press, false on release
	mouse   tcell.ButtonMask
	onSpeed func()
	onMute  func()
	resize  func()

	quit     chan struct{}
	quitOnce sync.Once
}

// NewTerminal creates an adapter with the potentiometer resting at the paddle's start row
// screen may be nil when events are injected directly
func NewTerminal(screen tcell.Screen, table *KeyTable) *Terminal {
	if table == nil {
		table = DefaultKeyTable()
	}
	t := &Terminal{
		screen: screen,
		table:  table,
		joy:    make(chan Code, joystickBuffer),
		button: make(chan bool, buttonBuffer),
		quit:   make(chan struct{}),
	}
	t.pot.Store(int32(PotForRow(constants.CenterY - constants.PaddleWidth/2)))
	return t
}

// OnSpeed installs the push button handler; call before the event loop starts
func (t *Terminal) OnSpeed(fn func()) {
	t.onSpeed = fn
}

// OnMute installs the sound toggle handler; call before the event loop starts
func (t *Terminal) OnMute(fn func()) {
	t.onMute = fn
}

// OnResize installs the resize handler; call before the event loop starts
func (t *Terminal) OnResize(fn func()) {
	t.resize = fn
}

// Quit is closed once a quit intent is seen
func (t *Terminal) Quit() <-chan struct{} {
	return t.quit
}

// Potentiometer returns the virtual analog control
func (t *Terminal) Potentiometer() Potentiometer {
	return terminalPot{t}
}

// Joystick returns the virtual discrete control
func (t *Terminal) Joystick() Joystick {
	return terminalJoystick{t}
}

// Button returns the operator acknowledge button
func (t *Terminal) Button() Button {
	return terminalButton{t}
}

// SetPot overrides the potentiometer reading
func (t *Terminal) SetPot(v int) {
	if v < 0 {
		v = 0
	}
	if v > PotReadMax {
		v = PotReadMax
	}
	t.pot.Store(int32(v))
}

// Poll reads screen events until the screen is finalized or ctx is done
func (t *Terminal) Poll(ctx context.Context) error {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return nil
		}
		t.Handle(ev)
		select {
		case <-ctx.Done():
			return nil
		case <-t.quit:
			return nil
		default:
		}
	}
}

// Handle applies one event
func (t *Terminal) Handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		t.apply(t.table.Lookup(ev))
	case *tcell.EventMouse:
		t.handleMouse(ev)
	case *tcell.EventResize:
		t.apply(IntentResize)
	}
}

func (t *Terminal) apply(intent Intent) {
	switch intent {
	case IntentQuit:
		t.quitOnce.Do(func() { close(t.quit) })
	case IntentResize:
		if t.resize != nil {
			t.resize()
		}
	case IntentMute:
		if t.onMute != nil {
			t.onMute()
		}
	case IntentPotUp:
		t.SetPot(int(t.pot.Load()) + constants.PotKeyStep)
	case IntentPotDown:
		t.SetPot(int(t.pot.Load()) - constants.PotKeyStep)
	case IntentJoyDecrease:
		t.sendJoy(JoyLeft)
	case IntentJoyIncrease:
		t.sendJoy(JoyRight)
	}

	if intent.Toggles() && t.onSpeed != nil {
		t.onSpeed()
	}
	if intent.Acks() {
		// Keys have no release event, a key press is a full click
		t.sendButton(true)
		t.sendButton(false)
	}
}

// handleMouse maps the pointer row onto the potentiometer and buttons onto the push button
func (t *Terminal) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	pressed := buttons &^ t.mouse
	released := t.mouse &^ buttons
	t.mouse = buttons

	if t.screen != nil {
		_, y := ev.Position()
		if row, ok := t.rowAt(y); ok {
			t.SetPot(PotForRow(row))
		}
	}

	if pressed&tcell.ButtonPrimary != 0 {
		if t.onSpeed != nil {
			t.onSpeed()
		}
		t.sendButton(true)
	}
	if released&tcell.ButtonPrimary != 0 {
		t.sendButton(false)
	}
	if pressed&tcell.ButtonMiddle != 0 && t.onSpeed != nil {
		t.onSpeed()
	}
}

// rowAt converts a terminal row to the paddle bottom-left row centered on the pointer
func (t *Terminal) rowAt(cellY int) (int, bool) {
	cols, rows := t.screen.Size()
	vp := render.Viewport(cols, rows)
	if vp.Empty() {
		return 0, false
	}
	py := 2*cellY - vp.Min.Y
	if py < 0 || py >= vp.Dy() {
		return 0, false
	}
	lcdY := py * constants.ScreenHeight / vp.Dy()
	return lcdY - constants.PaddleWidth/2, true
}

func (t *Terminal) sendJoy(c Code) {
	select {
	case t.joy <- c:
	default: // Drop when the paddle task lags
	}
}

func (t *Terminal) sendButton(down bool) {
	select {
	case t.button <- down:
	default:
	}
}

type terminalPot struct{ t *Terminal }

func (p terminalPot) Read() int {
	return int(p.t.pot.Load())
}

type terminalJoystick struct{ t *Terminal }

func (j terminalJoystick) Read(ctx context.Context) (Code, error) {
	select {
	case <-ctx.Done():
		return JoyNone, ctx.Err()
	case c := <-j.t.joy:
		return c, nil
	}
}

type terminalButton struct{ t *Terminal }

// WaitPressRelease discards clicks made before the call, then waits for a press followed by a release
func (b terminalButton) WaitPressRelease(ctx context.Context) error {
drain:
	for {
		select {
		case <-b.t.button:
		default:
			break drain
		}
	}

	pressed := false
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case down := <-b.t.button:
			if down {
				pressed = true
			} else if pressed {
				return nil
			}
		}
	}
}
