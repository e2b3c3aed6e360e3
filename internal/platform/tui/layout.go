package tui

import (
	"github.com/vovakirdan/snakematrix/internal/core"
	"github.com/vovakirdan/snakematrix/internal/matrix"
)

// StatusRows is the space kept below the grid for the status line.
const StatusRows = 1

// frameMargin is the border drawn around the grid on every side.
const frameMargin = 1

// Layout places the matrix cells on the terminal. Terminal glyphs are
// about twice as tall as they are wide, so cells are twice as wide as high.
type Layout struct {
	Cols, Rows   int // Grid dimensions in cells
	CellW, CellH int // Cell size in characters, excluding the gap
	GapX, GapY   int // Padding between cells
	OriginX      int
	OriginY      int
	ScreenW      int
	ScreenH      int
}

// NewLayout fits a cols x rows grid into a screenW x screenH terminal,
// framed and centered above the status line. Cells never shrink below 2x1,
// so a tiny terminal clips the grid instead of collapsing it.
func NewLayout(screenW, screenH, cols, rows int) Layout {
	l := Layout{Cols: cols, Rows: rows, ScreenW: screenW, ScreenH: screenH}
	if cols <= 0 || rows <= 0 {
		return l
	}

	availW := core.Max(screenW-2*frameMargin, 0)
	availH := core.Max(screenH-StatusRows-2*frameMargin, 0)

	// Pitch is cell plus gap. Pick the largest height pitch whose
	// width pitch (twice as wide) still fits.
	pitchH := core.Max(core.Min(availH/rows, availW/(2*cols)), 1)
	pitchW := 2 * pitchH

	l.GapX, l.GapY = 0, 0
	if pitchH >= 2 {
		l.GapY = 1
	}
	if pitchW >= 4 {
		l.GapX = 1
	}
	l.CellW = pitchW - l.GapX
	l.CellH = pitchH - l.GapY

	gridW := cols*pitchW - l.GapX
	gridH := rows*pitchH - l.GapY
	l.OriginX = frameMargin + core.Max((availW-gridW)/2, 0)
	l.OriginY = frameMargin + core.Max((availH-gridH)/2, 0)
	return l
}

// pitch returns the distance between the starts of neighboring cells.
func (l Layout) pitch() (int, int) {
	return l.CellW + l.GapX, l.CellH + l.GapY
}

// CellRect returns the screen rectangle drawn for c.
func (l Layout) CellRect(c matrix.Coord) core.Rect {
	pw, ph := l.pitch()
	return core.NewRect(l.OriginX+c.X*pw, l.OriginY+c.Y*ph, l.CellW, l.CellH)
}

// Bounds returns the rectangle covering the whole grid.
func (l Layout) Bounds() core.Rect {
	pw, ph := l.pitch()
	return core.NewRect(l.OriginX, l.OriginY, l.Cols*pw-l.GapX, l.Rows*ph-l.GapY)
}

// Frame returns the border rectangle drawn just outside Bounds.
func (l Layout) Frame() core.Rect {
	return l.Bounds().Inset(-frameMargin)
}

// CellAt maps a terminal position back to a grid coordinate. A gap
// belongs to the cell before it. ok is false outside the grid.
func (l Layout) CellAt(x, y int) (c matrix.Coord, ok bool) {
	pw, ph := l.pitch()
	if pw <= 0 || ph <= 0 {
		return matrix.Coord{}, false
	}
	hit := core.NewRect(l.OriginX, l.OriginY, l.Cols*pw, l.Rows*ph)
	if !hit.Contains(x, y) {
		return matrix.Coord{}, false
	}
	return matrix.C((x-l.OriginX)/pw, (y-l.OriginY)/ph), true
}

// StatusY returns the row of the status line.
func (l Layout) StatusY() int {
	return core.Max(l.ScreenH-StatusRows, 0)
}
