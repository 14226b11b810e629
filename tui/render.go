package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/coolmode"
)

// Canvas is the part of tcell.Screen the renderer draws on.
type Canvas interface {
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
	Size() (width, height int)
}

// Glyphs by particle size, smallest first.
var (
	circleGlyphs = []rune{'·', '•', '●'}
	imageGlyphs  = []rune{'∘', '○', '◉'}
)

// glyph picks the rune for a particle of the given shape and pixel size,
// relative to the cell height.
func glyph(shape coolmode.Shape, size, cellHeight float64) rune {
	set := circleGlyphs
	if shape == coolmode.ShapeImage {
		set = imageGlyphs
	}
	switch r := size / cellHeight; {
	case r < 0.75:
		return set[0]
	case r < 1.4:
		return set[1]
	default:
		return set[2]
	}
}

// particleColor converts a visual's tint, faded by its alpha, to a terminal
// color.
func particleColor(c coolmode.Color, alpha float64) tcell.Color {
	a := max(0, min(1, c.A*alpha))
	ch := func(v float64) int32 { return int32(max(0, min(1, v)) * a * 255) }
	return tcell.NewRGBColor(ch(c.R), ch(c.G), ch(c.B))
}

// DrawOverlay draws one glyph per live visual at the cell under its center.
// Later visuals overwrite earlier ones sharing a cell, matching draw order.
func DrawOverlay(c Canvas, o *coolmode.Overlay, g Grid) {
	if o == nil || o.Destroyed() {
		return
	}
	cols, rows := c.Size()
	_, ch := g.cell()
	for _, v := range o.Visuals() {
		if v.Alpha <= 0 || v.Scale <= 0 {
			continue
		}
		center := v.Center()
		col, row := g.ToCell(center.X, center.Y)
		if col < 0 || row < 0 || col >= cols || row >= rows {
			continue
		}
		style := tcell.StyleDefault.Foreground(particleColor(v.Color, v.Alpha))
		c.SetContent(col, row, glyph(v.Shape, v.Size*v.Scale, ch), nil, style)
	}
}

// DrawElements outlines every element of the stage and writes its name
// inside the top border.
func DrawElements(c Canvas, s *coolmode.Stage, g Grid, style tcell.Style) {
	cols, rows := c.Size()
	put := func(x, y int, r rune) {
		if x >= 0 && y >= 0 && x < cols && y < rows {
			c.SetContent(x, y, r, nil, style)
		}
	}
	for _, el := range s.Elements() {
		b := el.Bounds()
		x0, y0 := g.ToCell(b.X, b.Y)
		x1, y1 := g.ToCell(b.X+b.Width, b.Y+b.Height)
		x1, y1 = max(x1-1, x0), max(y1-1, y0)

		for x := x0 + 1; x < x1; x++ {
			put(x, y0, '─')
			put(x, y1, '─')
		}
		for y := y0 + 1; y < y1; y++ {
			put(x0, y, '│')
			put(x1, y, '│')
		}
		put(x0, y0, '┌')
		put(x1, y0, '┐')
		put(x0, y1, '└')
		put(x1, y1, '┘')

		for i, r := range []rune(el.Name) {
			if x := x0 + 2 + i; x < x1 {
				put(x, y0, r)
			}
		}
	}
}
