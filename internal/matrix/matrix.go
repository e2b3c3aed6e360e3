// Package matrix implements the snake tone matrix engine: a grid of flag
// cells shared by a beat scanner that sweeps one column per beat and a
// snake that wanders the grid eating food.
//
// The engine has no clock of its own. Callers decide when to invoke
// BeatTick and SnakeTick, and Tap and SetDirection are applied as they
// arrive. A Matrix is not safe for concurrent use: every call must be
// serialized by the caller, either by driving the engine from a single
// goroutine and publishing Snapshots, or by wrapping it in a Locked.
package matrix

import (
	"math/rand"
	"time"
)

// Default grid dimensions.
const (
	DefaultWidth  = 8
	DefaultHeight = 5
)

// Matrix combines a tone matrix with a snake game over one shared grid.
type Matrix struct {
	grid *Grid
	rng  *rand.Rand

	body      body
	head      Coord
	direction Direction
	foodState Flags

	beat int
}

// Option configures a Matrix at construction.
type Option func(*Matrix)

// WithRand sets the random source used by Seed.
func WithRand(r *rand.Rand) Option {
	return func(m *Matrix) {
		m.rng = r
	}
}

// WithSeed seeds the random source used by Seed with a fixed value.
func WithSeed(seed int64) Option {
	return func(m *Matrix) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

// New creates an empty width x height matrix. The snake has no body until
// the first SnakeTick.
func New(width, height int, opts ...Option) (*Matrix, error) {
	grid, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	m := &Matrix{grid: grid}
	for _, opt := range opts {
		opt(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return m, nil
}

// Width returns the number of columns.
func (m *Matrix) Width() int { return m.grid.width }

// Height returns the number of rows.
func (m *Matrix) Height() int { return m.grid.height }

// State returns the flags of the cell at c.
func (m *Matrix) State(c Coord) (Flags, error) { return m.grid.Get(c) }

// IsOnBeat reports whether c is in the active beat column.
func (m *Matrix) IsOnBeat(c Coord) (bool, error) { return m.grid.IsOnBeat(c) }

// IsSnake reports whether c is covered by the body.
func (m *Matrix) IsSnake(c Coord) (bool, error) { return m.grid.IsSnake(c) }

// IsFood reports whether c holds food of any kind.
func (m *Matrix) IsFood(c Coord) (bool, error) { return m.grid.IsFood(c) }

// IsSinFood reports whether c holds sin food.
func (m *Matrix) IsSinFood(c Coord) (bool, error) { return m.grid.IsSinFood(c) }

// IsTriangleFood reports whether c holds triangle food.
func (m *Matrix) IsTriangleFood(c Coord) (bool, error) { return m.grid.IsTriangleFood(c) }

// IsSquareFood reports whether c holds square food.
func (m *Matrix) IsSquareFood(c Coord) (bool, error) { return m.grid.IsSquareFood(c) }

// FoodState returns the food last eaten by the snake, or None.
// It only changes when the head lands on food.
func (m *Matrix) FoodState() Flags { return m.foodState }

// HeadPosition returns the snake's head, which is tracked even before the
// body has any segments.
func (m *Matrix) HeadPosition() Coord { return m.head }

// Direction returns the current direction of travel.
func (m *Matrix) Direction() Direction { return m.direction }

// BeatCursor returns the active beat column.
func (m *Matrix) BeatCursor() int { return m.beat }

// BodyLen returns the number of body segments.
func (m *Matrix) BodyLen() int { return m.body.Len() }

// Body returns a copy of the body, oldest segment first.
func (m *Matrix) Body() []Coord { return m.body.Slice() }

// Tap advances the food cycle of the cell at c:
// empty -> sin -> triangle -> square -> no food.
// Only a cell with no flags at all starts the cycle, so tapping a foodless
// cell that is on the beat or under the snake does nothing.
func (m *Matrix) Tap(c Coord) error {
	state, err := m.grid.Get(c)
	if err != nil {
		return err
	}

	switch {
	case state == None:
		m.grid.set(SinFood, c)
	case state.Any(SinFood):
		m.grid.clear(SinFood, c)
		m.grid.set(TriangleFood, c)
	case state.Any(TriangleFood):
		m.grid.clear(TriangleFood, c)
		m.grid.set(SquareFood, c)
	case state.Any(SquareFood):
		m.grid.clear(SquareFood, c)
	}
	return nil
}

// SetDirection sets the direction used by the next SnakeTick.
func (m *Matrix) SetDirection(d Direction) {
	m.direction = d
}

// Seed picks a random direction and head position from the matrix's
// random source. The body is left untouched.
func (m *Matrix) Seed() {
	m.SeedWith(m.rng)
}

// SeedWith is Seed with an explicit random source.
func (m *Matrix) SeedWith(r *rand.Rand) {
	m.direction = Directions[r.Intn(len(Directions))]
	m.head = Coord{X: r.Intn(m.grid.width), Y: r.Intn(m.grid.height)}
}

// BeatTick advances the beat cursor one column, wrapping at the right edge,
// and moves the OnBeat flag to the new column.
func (m *Matrix) BeatTick() {
	if m.beat == m.grid.width-1 {
		m.beat = 0
	} else {
		m.beat++
	}

	for y := 0; y < m.grid.height; y++ {
		for x := 0; x < m.grid.width; x++ {
			c := Coord{X: x, Y: y}
			if x == m.beat {
				m.grid.set(OnBeat, c)
			} else {
				m.grid.clear(OnBeat, c)
			}
		}
	}
}

// SnakeTick moves the snake one cell.
//
// The destination cell is inspected as it was before the move. Without
// food there the oldest segment is dropped, so the snake keeps its length;
// with food it grows by one. If the destination is already snake, segments
// are dropped from the tail until the tail is the destination or the body
// is empty. The new head is then appended, the food memory updated, and
// the Snake flags rebuilt from the body.
func (m *Matrix) SnakeTick() {
	m.head = m.step(m.head, m.direction)
	dest := m.grid.at(m.head)

	if !dest.Any(FoodMask) && m.body.Len() > 0 {
		m.body.PopFront()
	}

	if dest.Any(Snake) {
		for m.body.Len() > 0 && m.body.Front() != m.head {
			m.body.PopFront()
		}
	}

	m.body.PushBack(m.head)

	if dest.Any(FoodMask) {
		m.foodState = dest.Food()
	}

	m.syncSnake()
}

// step moves c one cell in d with wraparound on both axes.
func (m *Matrix) step(c Coord, d Direction) Coord {
	w, h := m.grid.width, m.grid.height
	switch d {
	case Up:
		if c.Y == 0 {
			c.Y = h - 1
		} else {
			c.Y--
		}
	case Right:
		if c.X == w-1 {
			c.X = 0
		} else {
			c.X++
		}
	case Down:
		if c.Y == h-1 {
			c.Y = 0
		} else {
			c.Y++
		}
	case Left:
		if c.X == 0 {
			c.X = w - 1
		} else {
			c.X--
		}
	}
	return c
}

// syncSnake rebuilds the Snake flag from the body.
func (m *Matrix) syncSnake() {
	m.grid.clearAll(Snake)
	for i := 0; i < m.body.Len(); i++ {
		m.grid.set(Snake, m.body.At(i))
	}
}
