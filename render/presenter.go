package render

import (
	"context"
	"image"
	"image/color"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/draw"

	"github.com/lixenwraith/vi-pong/constants"
)

// Presenter copies the LCD to the terminal at a fixed rate
// Each terminal cell shows two LCD rows using the upper half block glyph
type Presenter struct {
	screen  tcell.Screen
	lcd     *LCD
	lock    *DrawLock
	leds    *LEDBank
	timeout time.Duration
	dropped *atomic.Int64

	status func() string

	frame  *image.RGBA // LCD snapshot
	scaled *image.RGBA // terminal-sized, two pixels per cell
}

// NewPresenter creates a presenter; leds may be nil
func NewPresenter(screen tcell.Screen, lcd *LCD, lock *DrawLock, leds *LEDBank) *Presenter {
	return &Presenter{
		screen:  screen,
		lcd:     lcd,
		lock:    lock,
		leds:    leds,
		timeout: constants.DrawLockTimeout,
		dropped: new(atomic.Int64),
		frame:   lcd.NewFrame(),
	}
}

// CountDrops publishes frames skipped on a lock timeout into c; call before Run
func (p *Presenter) CountDrops(c *atomic.Int64) {
	c.Store(p.dropped.Load())
	p.dropped = c
}

// Dropped returns the number of frames skipped on a lock timeout
func (p *Presenter) Dropped() int64 {
	return p.dropped.Load()
}

// SetStatus installs the provider of the bottom status text
func (p *Presenter) SetStatus(fn func() string) {
	p.status = fn
}

// Viewport returns the terminal pixel rect the LCD is scaled into for a cols x rows screen
// One row is reserved for the indicator line; aspect ratio is preserved and centered
func Viewport(cols, rows int) image.Rectangle {
	w, h := cols, 2*(rows-1)
	if w <= 0 || h <= 0 {
		return image.Rectangle{}
	}
	sw, sh := constants.ScreenWidth, constants.ScreenHeight
	if w*sh > h*sw {
		w = h * sw / sh
	} else {
		h = w * sh / sw
	}
	// Keep h even so the image starts on a cell boundary
	h &^= 1
	if w <= 0 || h <= 0 {
		return image.Rectangle{}
	}
	x0 := (cols - w) / 2
	y0 := ((2*(rows-1) - h) / 2) &^ 1
	return image.Rect(x0, y0, x0+w, y0+h)
}

// Frame presents one frame; returns false when the lock timed out or the screen is too small
func (p *Presenter) Frame(ctx context.Context) bool {
	if !p.lock.TryAcquire(ctx, p.timeout) {
		p.dropped.Add(1)
		return false
	}
	p.lcd.Snapshot(p.frame)
	p.lock.Release()

	cols, rows := p.screen.Size()
	vp := Viewport(cols, rows)
	if vp.Empty() {
		return false
	}

	canvas := image.Rect(0, 0, cols, 2*(rows-1))
	if p.scaled == nil || !p.scaled.Bounds().Eq(canvas) {
		p.scaled = image.NewRGBA(canvas)
	}
	draw.Draw(p.scaled, canvas, &image.Uniform{C: constants.ColorBackground}, image.Point{}, draw.Src)
	draw.NearestNeighbor.Scale(p.scaled, vp, p.frame, p.frame.Bounds(), draw.Src, nil)

	for y := 0; y < rows-1; y++ {
		for x := 0; x < cols; x++ {
			upper := p.scaled.RGBAAt(x, 2*y)
			lower := p.scaled.RGBAAt(x, 2*y+1)
			style := tcell.StyleDefault.Foreground(toTcell(upper)).Background(toTcell(lower))
			p.screen.SetContent(x, y, '▀', nil, style)
		}
	}

	p.drawIndicatorRow(cols, rows-1)
	p.screen.Show()
	return true
}

// drawIndicatorRow draws the score LEDs and the status text on the last line
func (p *Presenter) drawIndicatorRow(cols, y int) {
	base := tcell.StyleDefault.Background(toTcell(constants.ColorBackground))
	for x := 0; x < cols; x++ {
		p.screen.SetContent(x, y, ' ', nil, base)
	}

	x := 1
	if p.leds != nil {
		left, right := p.leds.Values()
		x = p.drawLEDs(x, y, left, base)
		x++
		x = p.drawLEDs(x, y, right, base)
		x += 2
	}

	if p.status == nil {
		return
	}
	textStyle := base.Foreground(toTcell(constants.ColorText))
	for _, ch := range p.status() {
		if x >= cols {
			break
		}
		p.screen.SetContent(x, y, ch, nil, textStyle)
		x++
	}
}

// drawLEDs draws one side most significant bit first, returns the next free column
func (p *Presenter) drawLEDs(x, y int, value uint8, base tcell.Style) int {
	for i := LEDsPerSide - 1; i >= 0; i-- {
		c := constants.ColorLEDOff
		if value&(1<<i) != 0 {
			c = constants.ColorLEDOn
		}
		p.screen.SetContent(x, y, '●', nil, base.Foreground(toTcell(c)))
		x += 2
	}
	return x
}

// Run presents frames every interval until ctx is done
func (p *Presenter) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			p.Frame(ctx)
		}
	}
}

// Sync forces a full repaint after a resize
func (p *Presenter) Sync() {
	p.screen.Sync()
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
