package matrix

import "fmt"

// Coord is a cell position. X is the column, Y the row.
type Coord struct {
	X, Y int
}

// C is shorthand for Coord{X: x, Y: y}.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is the snake's direction of travel.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists the four directions in declaration order.
var Directions = [...]Direction{Up, Right, Down, Left}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Left
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}
