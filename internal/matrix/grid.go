package matrix

import "fmt"

// Grid is a fixed-size dense store of cell flags in row-major order.
type Grid struct {
	width  int
	height int
	cells  []Flags
}

// NewGrid allocates an empty width x height grid.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("matrix: grid %dx%d: %w", width, height, ErrInvalidConfiguration)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Flags, width*height),
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Contains reports whether c lies inside the grid.
func (g *Grid) Contains(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

func (g *Grid) check(c Coord) error {
	if !g.Contains(c) {
		return fmt.Errorf("matrix: %s in %dx%d grid: %w", c, g.width, g.height, ErrOutOfBounds)
	}
	return nil
}

func (g *Grid) index(c Coord) int {
	return c.Y*g.width + c.X
}

// Get returns the flags at c.
func (g *Grid) Get(c Coord) (Flags, error) {
	if err := g.check(c); err != nil {
		return None, err
	}
	return g.cells[g.index(c)], nil
}

// AddFlags sets f on the cell at c.
func (g *Grid) AddFlags(f Flags, c Coord) error {
	if err := g.check(c); err != nil {
		return err
	}
	g.cells[g.index(c)] |= f
	return nil
}

// RemoveFlags clears f on the cell at c.
func (g *Grid) RemoveFlags(f Flags, c Coord) error {
	if err := g.check(c); err != nil {
		return err
	}
	g.cells[g.index(c)] &^= f
	return nil
}

func (g *Grid) has(c Coord, f Flags) (bool, error) {
	s, err := g.Get(c)
	if err != nil {
		return false, err
	}
	return s.Any(f), nil
}

// IsSnake reports whether c is occupied by the snake.
func (g *Grid) IsSnake(c Coord) (bool, error) { return g.has(c, Snake) }

// IsOnBeat reports whether c lies on the active beat column.
func (g *Grid) IsOnBeat(c Coord) (bool, error) { return g.has(c, OnBeat) }

// IsFood reports whether c carries any food flag.
func (g *Grid) IsFood(c Coord) (bool, error) { return g.has(c, FoodMask) }

// IsSinFood reports whether c carries sin food.
func (g *Grid) IsSinFood(c Coord) (bool, error) { return g.has(c, SinFood) }

// IsTriangleFood reports whether c carries triangle food.
func (g *Grid) IsTriangleFood(c Coord) (bool, error) { return g.has(c, TriangleFood) }

// IsSquareFood reports whether c carries square food.
func (g *Grid) IsSquareFood(c Coord) (bool, error) { return g.has(c, SquareFood) }

// at, set and clear skip bounds checks; callers guarantee c is inside.
func (g *Grid) at(c Coord) Flags {
	return g.cells[g.index(c)]
}

func (g *Grid) set(f Flags, c Coord) {
	g.cells[g.index(c)] |= f
}

func (g *Grid) clear(f Flags, c Coord) {
	g.cells[g.index(c)] &^= f
}

// clearAll removes f from every cell.
func (g *Grid) clearAll(f Flags) {
	for i := range g.cells {
		g.cells[i] &^= f
	}
}

// clone returns a deep copy.
func (g *Grid) clone() *Grid {
	cells := make([]Flags, len(g.cells))
	copy(cells, g.cells)
	return &Grid{width: g.width, height: g.height, cells: cells}
}
