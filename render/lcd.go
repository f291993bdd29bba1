package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/vmath"
)

// Display is the pixel sink the game draws into
// Implementations are not synchronized; callers hold the DrawLock
type Display interface {
	FillRect(r vmath.Rect, c color.RGBA)
	BlitMask(m *vmath.Bitmap, origin image.Point, c color.RGBA)
	Clear(c color.RGBA)
	DrawText(x, y int, text string, c color.RGBA, scale int)
}

// DrawRect fills r with its own color
func DrawRect(d Display, r vmath.Rect) {
	d.FillRect(r, r.Color)
}

// DrawBall blits the ball's mask in its own color
func DrawBall(d Display, b *vmath.Ball) {
	d.BlitMask(b.Mask(), b.Origin(), b.Color)
}

// LCD is the in-memory 320x240 framebuffer
type LCD struct {
	img   *image.RGBA
	face  font.Face
	glyph *image.RGBA // scratch for text before scaling
}

// NewLCD creates a framebuffer cleared to the background color
func NewLCD() *LCD {
	l := &LCD{
		img:  image.NewRGBA(image.Rect(0, 0, constants.ScreenWidth, constants.ScreenHeight)),
		face: basicfont.Face7x13,
	}
	l.Clear(constants.ColorBackground)
	return l
}

// Bounds returns the framebuffer rectangle
func (l *LCD) Bounds() image.Rectangle {
	return l.img.Bounds()
}

// FillRect paints the inclusive rect r, clipped to the screen
func (l *LCD) FillRect(r vmath.Rect, c color.RGBA) {
	area := r.Image().Intersect(l.img.Bounds())
	if area.Empty() {
		return
	}
	draw.Draw(l.img, area, &image.Uniform{C: c}, image.Point{}, draw.Src)
}

// BlitMask paints every set pixel of m with its top-left at origin
func (l *LCD) BlitMask(m *vmath.Bitmap, origin image.Point, c color.RGBA) {
	side := m.Side()
	for row := 0; row < side; row++ {
		for col := 0; col < side; col++ {
			if m.At(col, row) {
				// SetRGBA ignores out-of-bounds writes
				l.img.SetRGBA(origin.X+col, origin.Y+row, c)
			}
		}
	}
}

// Clear fills the whole screen
func (l *LCD) Clear(c color.RGBA) {
	draw.Draw(l.img, l.img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
}

// DrawText renders text with its top-left at x, y, each font pixel enlarged scale times
// Only glyph pixels are painted, the background is left as is
func (l *LCD) DrawText(x, y int, text string, c color.RGBA, scale int) {
	if text == "" {
		return
	}
	if scale < 1 {
		scale = 1
	}

	m := l.face.Metrics()
	w := font.MeasureString(l.face, text).Ceil()
	h := m.Height.Ceil()
	if w <= 0 || h <= 0 {
		return
	}

	area := image.Rect(0, 0, w, h)
	if l.glyph == nil || l.glyph.Bounds().Dx() < w || l.glyph.Bounds().Dy() < h {
		l.glyph = image.NewRGBA(area)
	}
	glyph := l.glyph.SubImage(area).(*image.RGBA)
	draw.Draw(glyph, area, image.Transparent, image.Point{}, draw.Src)

	d := font.Drawer{
		Dst:  glyph,
		Src:  &image.Uniform{C: c},
		Face: l.face,
		Dot:  fixed.P(0, m.Ascent.Ceil()),
	}
	d.DrawString(text)

	dst := image.Rect(x, y, x+w*scale, y+h*scale)
	draw.NearestNeighbor.Scale(l.img, dst, glyph, area, draw.Over, nil)
}

// TextSize returns the pixel size DrawText would cover
func (l *LCD) TextSize(text string, scale int) (w, h int) {
	if scale < 1 {
		scale = 1
	}
	return font.MeasureString(l.face, text).Ceil() * scale, l.face.Metrics().Height.Ceil() * scale
}

// At returns the pixel at x, y
func (l *LCD) At(x, y int) color.RGBA {
	return l.img.RGBAAt(x, y)
}

// Snapshot copies the framebuffer into dst, which must match in size
func (l *LCD) Snapshot(dst *image.RGBA) {
	copy(dst.Pix, l.img.Pix)
}

// NewFrame allocates an image matching the framebuffer for Snapshot
func (l *LCD) NewFrame() *image.RGBA {
	return image.NewRGBA(l.img.Bounds())
}
