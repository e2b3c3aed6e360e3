package matrix

import (
	"math/rand"
	"sync"
)

// Locked serializes every call into a Matrix with a mutex, for callers that
// reach the engine from more than one goroutine.
type Locked struct {
	mu sync.Mutex
	m  *Matrix
}

// NewLocked wraps m. The caller must not use m directly afterwards.
func NewLocked(m *Matrix) *Locked {
	return &Locked{m: m}
}

// Do runs fn with exclusive access to the engine.
func (l *Locked) Do(fn func(m *Matrix)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.m)
}

// Tap cycles the food at c.
func (l *Locked) Tap(c Coord) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.m.Tap(c)
}

// SetDirection steers the snake.
func (l *Locked) SetDirection(d Direction) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.m.SetDirection(d)
}

// SnakeTick moves the snake one cell.
func (l *Locked) SnakeTick() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.m.SnakeTick()
}

// BeatTick advances the beat column.
func (l *Locked) BeatTick() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.m.BeatTick()
}

// Seed picks a random head and direction.
func (l *Locked) Seed() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.m.Seed()
}

// SeedWith is Seed drawing from r.
func (l *Locked) SeedWith(r *rand.Rand) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.m.SeedWith(r)
}

// Width and Height are fixed at New and read without the lock.
func (l *Locked) Width() int  { return l.m.Width() }
func (l *Locked) Height() int { return l.m.Height() }

// State returns the flags of the cell at c.
func (l *Locked) State(c Coord) (Flags, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.m.State(c)
}

// IsSnake reports whether c is covered by the body.
func (l *Locked) IsSnake(c Coord) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.m.IsSnake(c)
}

// IsOnBeat reports whether c is in the active beat column.
func (l *Locked) IsOnBeat(c Coord) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.m.IsOnBeat(c)
}

// IsFood reports whether c holds food of any kind.
func (l *Locked) IsFood(c Coord) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.m.IsFood(c)
}

// IsSinFood reports whether c holds sin food.
func (l *Locked) IsSinFood(c Coord) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.m.IsSinFood(c)
}

// IsTriangleFood reports whether c holds triangle food.
func (l *Locked) IsTriangleFood(c Coord) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.m.IsTriangleFood(c)
}

// IsSquareFood reports whether c holds square food.
func (l *Locked) IsSquareFood(c Coord) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.m.IsSquareFood(c)
}

// FoodState returns the food last eaten, or None.
func (l *Locked) FoodState() Flags {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.m.FoodState()
}

// HeadPosition returns the snake's head.
func (l *Locked) HeadPosition() Coord {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.m.HeadPosition()
}

// BeatCursor returns the active beat column.
func (l *Locked) BeatCursor() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.m.BeatCursor()
}

// Direction returns the current direction of travel.
func (l *Locked) Direction() Direction {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.m.Direction()
}

// BodyLen returns the number of body segments.
func (l *Locked) BodyLen() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.m.BodyLen()
}

// Body returns a copy of the body, oldest segment first.
func (l *Locked) Body() []Coord {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.m.Body()
}

// Snapshot copies the engine state under the lock.
func (l *Locked) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.m.Snapshot()
}
