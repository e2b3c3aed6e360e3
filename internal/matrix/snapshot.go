package matrix

// Snapshot is an immutable copy of a Matrix. It can be handed to other
// goroutines (renderers, audio callbacks) while the engine keeps ticking.
type Snapshot struct {
	grid      *Grid
	body      []Coord
	head      Coord
	direction Direction
	foodState Flags
	beat      int
}

// Snapshot copies the current engine state.
func (m *Matrix) Snapshot() Snapshot {
	return Snapshot{
		grid:      m.grid.clone(),
		body:      m.body.Slice(),
		head:      m.head,
		direction: m.direction,
		foodState: m.foodState,
		beat:      m.beat,
	}
}

// Width returns the number of columns.
func (s Snapshot) Width() int { return s.grid.width }

// Height returns the number of rows.
func (s Snapshot) Height() int { return s.grid.height }

// State returns the flags of the cell at c.
func (s Snapshot) State(c Coord) (Flags, error) { return s.grid.Get(c) }

// IsSnake reports whether c was covered by the body.
func (s Snapshot) IsSnake(c Coord) (bool, error) { return s.grid.IsSnake(c) }

// FoodState returns the food last eaten, or None.
func (s Snapshot) FoodState() Flags { return s.foodState }

// HeadPosition returns the head at the time of the copy.
func (s Snapshot) HeadPosition() Coord { return s.head }

// Direction returns the direction of travel.
func (s Snapshot) Direction() Direction { return s.direction }

// BeatCursor returns the active beat column.
func (s Snapshot) BeatCursor() int { return s.beat }

// BodyLen returns the number of body segments.
func (s Snapshot) BodyLen() int { return len(s.body) }

// Body returns a copy of the body, oldest segment first.
func (s Snapshot) Body() []Coord {
	out := make([]Coord, len(s.body))
	copy(out, s.body)
	return out
}

// Column returns the flags of every row in column x, top to bottom.
// It returns nil when x is outside the grid.
func (s Snapshot) Column(x int) []Flags {
	if x < 0 || x >= s.grid.width {
		return nil
	}
	col := make([]Flags, s.grid.height)
	for y := range col {
		col[y] = s.grid.at(Coord{X: x, Y: y})
	}
	return col
}
