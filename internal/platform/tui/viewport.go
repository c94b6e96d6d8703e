package tui

import (
	"math"

	"github.com/vovakirdan/bamboo-breakout/internal/core"
)

// Viewport maps the y-up arena frame onto a grid of terminal cells.
// Row 0 is the top of the arena.
type Viewport struct {
	Frame core.Rect
	Left  int // First column of the grid on screen
	Top   int // First row of the grid on screen
	Cols  int
	Rows  int
}

// NewViewport fits frame into a cols x rows grid placed at (left, top).
func NewViewport(frame core.Rect, left, top, cols, rows int) Viewport {
	return Viewport{
		Frame: frame,
		Left:  left,
		Top:   top,
		Cols:  max(cols, 1),
		Rows:  max(rows, 1),
	}
}

// ToCell returns the screen cell containing arena point p, clamped to the grid.
func (v Viewport) ToCell(p core.Vec) (x, y int) {
	fx := (p.X - v.Frame.X) / v.Frame.W
	fy := (p.Y - v.Frame.Y) / v.Frame.H

	col := int(math.Floor(fx * float64(v.Cols)))
	row := v.Rows - 1 - int(math.Floor(fy*float64(v.Rows)))

	col = core.Clamp(col, 0, v.Cols-1)
	row = core.Clamp(row, 0, v.Rows-1)
	return v.Left + col, v.Top + row
}

// ToArena returns the arena point at the center of screen cell (x, y).
// Cells outside the grid map to the nearest edge cell.
func (v Viewport) ToArena(x, y int) core.Vec {
	col := core.Clamp(x-v.Left, 0, v.Cols-1)
	row := core.Clamp(y-v.Top, 0, v.Rows-1)

	fx := (float64(col) + 0.5) / float64(v.Cols)
	fy := (float64(v.Rows-row) - 0.5) / float64(v.Rows)
	return core.V(v.Frame.X+fx*v.Frame.W, v.Frame.Y+fy*v.Frame.H)
}

// Span returns how many cells the arena length h covers vertically, at least one.
func (v Viewport) Span(h float64) int {
	return max(int(math.Round(h/v.Frame.H*float64(v.Rows))), 1)
}

// Width returns how many cells the arena length w covers horizontally, at least one.
func (v Viewport) Width(w float64) int {
	return max(int(math.Round(w/v.Frame.W*float64(v.Cols))), 1)
}

// CellHeight is the arena height of one row.
func (v Viewport) CellHeight() float64 {
	return v.Frame.H / float64(v.Rows)
}
