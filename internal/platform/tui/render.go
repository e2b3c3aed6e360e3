package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snakematrix/internal/core"
	"github.com/vovakirdan/snakematrix/internal/matrix"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	core.ColorLightGray:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorDimRed:        lipgloss.NewStyle().Foreground(lipgloss.Color("52")),
	core.ColorDimMagenta:    lipgloss.NewStyle().Foreground(lipgloss.Color("53")),
	core.ColorDimCyan:       lipgloss.NewStyle().Foreground(lipgloss.Color("23")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

const (
	glyphFill   = '█'
	glyphEmpty  = '░'
	glyphCursor = '▓'
	glyphBeat   = '━'
)

// foodColor returns the color of a food kind. Snake cells take the color of
// the food the snake ate last.
func foodColor(food matrix.Flags) (core.Color, bool) {
	switch {
	case food.Has(matrix.SinFood):
		return core.ColorCyan, true
	case food.Has(matrix.TriangleFood):
		return core.ColorMagenta, true
	case food.Has(matrix.SquareFood):
		return core.ColorRed, true
	default:
		return core.ColorDefault, false
	}
}

// foodGlyph returns the label drawn in the middle of a food cell.
func foodGlyph(food matrix.Flags) rune {
	switch {
	case food.Has(matrix.SinFood):
		return '~'
	case food.Has(matrix.TriangleFood):
		return '^'
	case food.Has(matrix.SquareFood):
		return '#'
	default:
		return 0
	}
}

// tint returns the faded color of the food the snake ate last, or gray
// before it has eaten.
func tint(snap matrix.Snapshot) core.Color {
	if fc, ok := foodColor(snap.FoodState()); ok {
		return fc.Dim()
	}
	return core.ColorGray
}

// cellColor decides how the cell at c is painted. The head wins over
// everything, then the snake, then food. Empty cells take the tint.
// Cells under the beat cursor are brightened.
func cellColor(snap matrix.Snapshot, c matrix.Coord, flags matrix.Flags) core.Color {
	var color core.Color
	switch {
	case c == snap.HeadPosition():
		color = core.ColorWhite
	case flags.Has(matrix.Snake):
		if fc, ok := foodColor(snap.FoodState()); ok {
			color = fc
		} else {
			color = core.ColorGreen
		}
	case flags.Any(matrix.FoodMask):
		color, _ = foodColor(flags)
	default:
		color = tint(snap)
	}

	if flags.Has(matrix.OnBeat) {
		color = color.Bright()
	}
	return color
}

// DrawMatrix paints every cell of snap onto s. When showCursor is set the
// cell under cursor uses a distinct fill so keyboard taps can be aimed.
func DrawMatrix(s *core.Screen, l Layout, snap matrix.Snapshot, cursor matrix.Coord, showCursor bool) {
	for y := 0; y < snap.Height(); y++ {
		for x := 0; x < snap.Width(); x++ {
			c := matrix.C(x, y)
			flags, err := snap.State(c)
			if err != nil {
				continue
			}

			fill := glyphFill
			if flags == matrix.None || flags == matrix.OnBeat {
				fill = glyphEmpty
			}
			if showCursor && c == cursor {
				fill = glyphCursor
			}

			r := l.CellRect(c)
			s.DrawRect(r, fill, cellColor(snap, c, flags))

			if g := foodGlyph(flags); g != 0 && !flags.Has(matrix.Snake) {
				cx, cy := r.Center()
				s.SetColored(cx, cy, g, core.ColorBrightWhite)
			}
		}
	}
}

// DrawFrame outlines the grid in the tint color and marks the beat column
// on the bottom edge. A paused player gets a banner on the top edge.
func DrawFrame(s *core.Screen, l Layout, snap matrix.Snapshot, paused bool) {
	frame := l.Frame()
	s.DrawBox(frame, tint(snap))

	beat := l.CellRect(matrix.C(snap.BeatCursor(), 0))
	s.DrawHLine(beat.X, frame.Bottom()-1, beat.W, glyphBeat, core.ColorBrightWhite)

	if paused {
		s.DrawTextCentered(frame.Y, " paused ", core.ColorBrightWhite)
	}
}

// notes counts the snake cells sounding in the current beat column.
func notes(snap matrix.Snapshot) int {
	n := 0
	for _, f := range snap.Column(snap.BeatCursor()) {
		if f.Has(matrix.Snake) {
			n++
		}
	}
	return n
}

// StatusLine summarizes the engine state for the line under the grid.
// fps is left out when it is zero.
func StatusLine(snap matrix.Snapshot, paused bool, fps int) string {
	food := "none"
	if f := snap.FoodState(); f != matrix.None {
		food = f.String()
	}
	line := fmt.Sprintf("beat %d/%d  notes %d  food %s  length %d  heading %s",
		snap.BeatCursor()+1, snap.Width(), notes(snap), food, snap.BodyLen(), snap.Direction())
	if fps > 0 {
		line += fmt.Sprintf("  %d fps", fps)
	}
	if paused {
		line += "  [paused]"
	}
	return line
}
