package core

import "math"

// Surface is the draw contract the simulation renders against. Coordinates
// are logical field units; the implementation decides how they map to output.
type Surface interface {
	FillRect(r RectF, c Color)
	FillCircle(center Vec2, radius float64, c Color)
	// Blit draws a sprite stretched over r. When the sprite is not ready the
	// surface draws a flat rectangle of the same bounds in the sprite's
	// fallback color instead.
	Blit(s *Sprite, r RectF)
	Text(pos Vec2, text string, c Color)
}

// Sprite is an opaque visual handle. Rows hold glyph art; a space is
// transparent. A sprite with no rows is not ready.
type Sprite struct {
	Rows     []string
	Color    Color
	Fallback Color
}

// Ready reports whether the sprite has usable image data.
func (s *Sprite) Ready() bool {
	return s != nil && len(s.Rows) > 0 && len(s.Rows[0]) > 0
}

// Canvas projects a logical field onto a Screen.
type Canvas struct {
	dst    *Screen
	sx, sy float64
}

// NewCanvas creates a canvas mapping a fieldW×fieldH logical area onto dst.
func NewCanvas(dst *Screen, fieldW, fieldH float64) *Canvas {
	return &Canvas{
		dst: dst,
		sx:  float64(dst.Width()) / fieldW,
		sy:  float64(dst.Height()) / fieldH,
	}
}

// Screen returns the underlying buffer.
func (c *Canvas) Screen() *Screen {
	return c.dst
}

// Project converts a logical point to a screen cell.
func (c *Canvas) Project(p Vec2) (int, int) {
	return int(math.Floor(p.X * c.sx)), int(math.Floor(p.Y * c.sy))
}

// cellSpan returns the half-open cell span covering [lo, hi) scaled by s.
// A non-empty logical span always covers at least one cell.
func cellSpan(lo, hi, s float64) (int, int) {
	a := int(math.Round(lo * s))
	b := int(math.Round(hi * s))
	if b <= a && hi > lo {
		b = a + 1
	}
	return a, b
}

// glyphFor picks the fill rune for a flat color. Sky colors stay blank so
// the terminal background shows through.
func glyphFor(col Color) rune {
	switch col {
	case ColorSky, ColorNight:
		return ' '
	default:
		return '█'
	}
}

// FillRect fills the cells covered by r.
func (c *Canvas) FillRect(r RectF, col Color) {
	x0, x1 := cellSpan(r.X, r.Right(), c.sx)
	y0, y1 := cellSpan(r.Y, r.Bottom(), c.sy)
	c.dst.DrawRect(NewRect(x0, y0, x1-x0, y1-y0), glyphFor(col), col)
}

// FillCircle fills every cell whose center lies inside the circle.
func (c *Canvas) FillCircle(center Vec2, radius float64, col Color) {
	x0, x1 := cellSpan(center.X-radius, center.X+radius, c.sx)
	y0, y1 := cellSpan(center.Y-radius, center.Y+radius, c.sy)
	cell := Cell{Rune: glyphFor(col), Color: col}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			p := Vec2{X: (float64(x) + 0.5) / c.sx, Y: (float64(y) + 0.5) / c.sy}
			if Distance(p, center) <= radius {
				c.dst.SetCell(x, y, cell)
			}
		}
	}
}

// Blit stretches the sprite's glyph art over r, or falls back to a flat box.
func (c *Canvas) Blit(s *Sprite, r RectF) {
	if !s.Ready() {
		fallback := ColorGray
		if s != nil {
			fallback = s.Fallback
		}
		c.FillRect(r, fallback)
		return
	}

	x0, x1 := cellSpan(r.X, r.Right(), c.sx)
	y0, y1 := cellSpan(r.Y, r.Bottom(), c.sy)
	w, h := x1-x0, y1-y0
	rows := len(s.Rows)
	for y := 0; y < h; y++ {
		row := []rune(s.Rows[y*rows/h])
		if len(row) == 0 {
			continue
		}
		for x := 0; x < w; x++ {
			ch := row[x*len(row)/w]
			if ch == ' ' {
				continue
			}
			c.dst.SetCell(x0+x, y0+y, Cell{Rune: ch, Color: s.Color})
		}
	}
}

// Text writes a string starting at the cell containing pos.
func (c *Canvas) Text(pos Vec2, text string, col Color) {
	x, y := c.Project(pos)
	c.dst.DrawText(x, y, text, col)
}
