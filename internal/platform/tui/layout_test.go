package tui

import (
	"testing"

	"github.com/vovakirdan/snakematrix/internal/matrix"
)

func TestNewLayout(t *testing.T) {
	l := NewLayout(80, 24, 8, 5)

	// 21 rows inside the frame and above the status line fit a height
	// pitch of 4; width pitch is 8.
	if l.CellW != 7 || l.CellH != 3 {
		t.Errorf("cell = %dx%d, want 7x3", l.CellW, l.CellH)
	}
	if l.GapX != 1 || l.GapY != 1 {
		t.Errorf("gap = %d,%d, want 1,1", l.GapX, l.GapY)
	}

	b := l.Bounds()
	if b.W != 63 || b.H != 19 {
		t.Errorf("bounds = %dx%d, want 63x19", b.W, b.H)
	}
	if l.OriginX != 8 || l.OriginY != 2 {
		t.Errorf("origin = %d,%d, want 8,2", l.OriginX, l.OriginY)
	}
	if l.StatusY() != 23 {
		t.Errorf("StatusY() = %d, want 23", l.StatusY())
	}
}

func TestNewLayoutTinyTerminal(t *testing.T) {
	l := NewLayout(10, 3, 8, 5)
	if l.CellW != 2 || l.CellH != 1 {
		t.Errorf("cell = %dx%d, want minimum 2x1", l.CellW, l.CellH)
	}
	if l.GapX != 0 || l.GapY != 0 {
		t.Errorf("gap = %d,%d, want none", l.GapX, l.GapY)
	}
	if l.OriginX != 1 || l.OriginY != 1 {
		t.Errorf("origin = %d,%d, want clamped inside the frame at 1,1", l.OriginX, l.OriginY)
	}
	if f := l.Frame(); f.X != 0 || f.Y != 0 {
		t.Errorf("frame origin = %d,%d, want 0,0", f.X, f.Y)
	}
}

func TestFrameSurroundsGrid(t *testing.T) {
	l := NewLayout(80, 24, 8, 5)
	b, f := l.Bounds(), l.Frame()

	if f.X != b.X-1 || f.Y != b.Y-1 || f.Right() != b.Right()+1 || f.Bottom() != b.Bottom()+1 {
		t.Errorf("frame %+v should sit one cell outside bounds %+v", f, b)
	}
	if f.Bottom() > l.StatusY() {
		t.Errorf("frame bottom %d overlaps status row %d", f.Bottom(), l.StatusY())
	}
	if _, ok := l.CellAt(f.X, f.Y); ok {
		t.Error("the frame corner should not map to a cell")
	}
}

func TestCellRectRoundTrip(t *testing.T) {
	l := NewLayout(80, 24, 8, 5)

	for y := 0; y < 5; y++ {
		for x := 0; x < 8; x++ {
			c := matrix.C(x, y)
			r := l.CellRect(c)
			for _, p := range [][2]int{{r.X, r.Y}, {r.Right() - 1, r.Bottom() - 1}} {
				got, ok := l.CellAt(p[0], p[1])
				if !ok || got != c {
					t.Errorf("CellAt(%d, %d) = %v, %v; want %v", p[0], p[1], got, ok, c)
				}
			}
		}
	}
}

func TestCellAtGapBelongsToPreviousCell(t *testing.T) {
	l := NewLayout(80, 24, 8, 5)
	r := l.CellRect(matrix.C(2, 1))

	got, ok := l.CellAt(r.Right(), r.Y) // The gap column
	if !ok || got != matrix.C(2, 1) {
		t.Errorf("gap maps to %v, %v; want (2,1)", got, ok)
	}
}

func TestCellAtOutside(t *testing.T) {
	l := NewLayout(80, 24, 8, 5)
	b := l.Bounds()

	tests := [][2]int{
		{b.X - 1, b.Y},
		{b.X, b.Y - 1},
		{b.Right() + 1, b.Y},
		{b.X, b.Bottom() + 1},
	}
	for _, p := range tests {
		if c, ok := l.CellAt(p[0], p[1]); ok {
			t.Errorf("CellAt(%d, %d) = %v, want outside", p[0], p[1], c)
		}
	}
}
