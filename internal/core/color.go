package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for matrix cells.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorGray
	ColorLightGray
	ColorDimRed
	ColorDimMagenta
	ColorDimCyan
)

// Bright returns the highlighted variant used for cells on the active beat.
// Colors without a brighter variant are returned unchanged.
func (c Color) Bright() Color {
	switch c {
	case ColorRed:
		return ColorBrightRed
	case ColorGreen:
		return ColorBrightGreen
	case ColorMagenta:
		return ColorBrightMagenta
	case ColorCyan:
		return ColorBrightCyan
	case ColorWhite:
		return ColorBrightWhite
	case ColorGray:
		return ColorLightGray
	case ColorDimRed:
		return ColorRed
	case ColorDimMagenta:
		return ColorMagenta
	case ColorDimCyan:
		return ColorCyan
	default:
		return c
	}
}

// Dim returns the faded variant used for empty cells tinted by the last
// food eaten. Colors without one fall back to gray.
func (c Color) Dim() Color {
	switch c {
	case ColorRed, ColorBrightRed, ColorDimRed:
		return ColorDimRed
	case ColorMagenta, ColorBrightMagenta, ColorDimMagenta:
		return ColorDimMagenta
	case ColorCyan, ColorBrightCyan, ColorDimCyan:
		return ColorDimCyan
	default:
		return ColorGray
	}
}
