// Package tui hosts a coolmode Stage inside a terminal with tcell. Mouse
// events become pointer events in a virtual pixel space and the overlay is
// drawn back as colored glyphs, one cell per particle.
package tui

import "math"

// Default cell size in virtual pixels. Particle sizes and speeds are in
// pixels, so the grid decides how fast particles cross the terminal.
const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
)

// Grid maps terminal cells to the stage's pixel coordinates.
type Grid struct {
	CellWidth, CellHeight float64
}

// DefaultGrid returns a Grid with the default cell size.
func DefaultGrid() Grid {
	return Grid{CellWidth: DefaultCellWidth, CellHeight: DefaultCellHeight}
}

func (g Grid) cell() (w, h float64) {
	w, h = g.CellWidth, g.CellHeight
	if w <= 0 {
		w = DefaultCellWidth
	}
	if h <= 0 {
		h = DefaultCellHeight
	}
	return w, h
}

// ToPixel returns the pixel at the center of cell (col, row).
func (g Grid) ToPixel(col, row int) (x, y float64) {
	w, h := g.cell()
	return (float64(col) + 0.5) * w, (float64(row) + 0.5) * h
}

// ToCell returns the cell containing pixel (x, y).
func (g Grid) ToCell(x, y float64) (col, row int) {
	w, h := g.cell()
	return int(math.Floor(x / w)), int(math.Floor(y / h))
}

// Viewport returns the pixel size of a cols by rows terminal.
func (g Grid) Viewport(cols, rows int) (width, height float64) {
	w, h := g.cell()
	return float64(cols) * w, float64(rows) * h
}
