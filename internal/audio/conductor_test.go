package audio

import (
	"errors"
	"testing"

	"github.com/vovakirdan/snakematrix/internal/matrix"
)

type fakeVoices struct {
	mode    Mode
	playing map[int]bool
	calls   int
}

func newFakeVoices() *fakeVoices {
	return &fakeVoices{playing: make(map[int]bool)}
}

func (f *fakeVoices) SetMode(mode Mode) { f.mode = mode }
func (f *fakeVoices) Play(source int)   { f.playing[source] = true; f.calls++ }
func (f *fakeVoices) Stop(source int)   { f.playing[source] = false; f.calls++ }

type fakeSource struct {
	beat   int
	height int
	snake  map[matrix.Coord]bool
	food   matrix.Flags
	err    error
}

func (f fakeSource) BeatCursor() int         { return f.beat }
func (f fakeSource) Height() int             { return f.height }
func (f fakeSource) FoodState() matrix.Flags { return f.food }

func (f fakeSource) IsSnake(c matrix.Coord) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.snake[c], nil
}

func TestModeForFood(t *testing.T) {
	tests := []struct {
		food matrix.Flags
		want Mode
	}{
		{matrix.None, ModeSine},
		{matrix.SinFood, ModeSine},
		{matrix.TriangleFood, ModeTriangle},
		{matrix.SquareFood, ModeSquare},
		{matrix.Snake, ModeSine},
		{matrix.SinFood | matrix.SquareFood, ModeSine},
		{matrix.TriangleFood | matrix.SquareFood, ModeSine},
		{matrix.SquareFood | matrix.OnBeat, ModeSine},
	}

	for _, tt := range tests {
		if got := ModeForFood(tt.food); got != tt.want {
			t.Errorf("ModeForFood(%s) = %s, want %s", tt.food, got, tt.want)
		}
	}
}

func TestConductorPlaysSnakeRows(t *testing.T) {
	v := newFakeVoices()
	src := fakeSource{
		beat:   2,
		height: 4,
		snake: map[matrix.Coord]bool{
			matrix.C(2, 1): true,
			matrix.C(2, 3): true,
			matrix.C(1, 0): true, // Not in the beat column
		},
		food: matrix.SquareFood,
	}

	if err := NewConductor(v).OnBeat(src); err != nil {
		t.Fatalf("OnBeat() error = %v", err)
	}

	if v.mode != ModeSquare {
		t.Errorf("mode = %s, want square", v.mode)
	}
	want := map[int]bool{0: false, 1: true, 2: false, 3: true}
	for row, on := range want {
		if v.playing[row] != on {
			t.Errorf("row %d playing = %v, want %v", row, v.playing[row], on)
		}
	}
	if v.calls != 4 {
		t.Errorf("voice calls = %d, want one per row", v.calls)
	}
}

func TestConductorReportsSourceError(t *testing.T) {
	v := newFakeVoices()
	src := fakeSource{height: 2, err: matrix.ErrOutOfBounds}

	err := NewConductor(v).OnBeat(src)
	if !errors.Is(err, matrix.ErrOutOfBounds) {
		t.Errorf("OnBeat() error = %v, want ErrOutOfBounds", err)
	}
}

func TestConductorWithMatrix(t *testing.T) {
	m, err := matrix.New(8, 5, matrix.WithSeed(7))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	m.Seed()
	m.SnakeTick()
	head := m.HeadPosition()

	for i := 0; i < m.Width() && m.BeatCursor() != head.X; i++ {
		m.BeatTick()
	}
	if m.BeatCursor() != head.X {
		t.Fatalf("beat never reached column %d", head.X)
	}

	v := newFakeVoices()
	c := NewConductor(v)
	if err := c.OnBeat(m); err != nil {
		t.Fatalf("OnBeat(matrix) error = %v", err)
	}
	for row := 0; row < m.Height(); row++ {
		if want := row == head.Y; v.playing[row] != want {
			t.Errorf("row %d playing = %v, want %v", row, v.playing[row], want)
		}
	}

	// A snapshot drives the conductor the same way.
	v2 := newFakeVoices()
	if err := NewConductor(v2).OnBeat(m.Snapshot()); err != nil {
		t.Fatalf("OnBeat(snapshot) error = %v", err)
	}
	if !v2.playing[head.Y] {
		t.Errorf("snapshot: head row %d not playing", head.Y)
	}
}

func TestRowFrequencies(t *testing.T) {
	freqs, err := RowFrequencies("pentatonic", 220, 5)
	if err != nil {
		t.Fatalf("RowFrequencies() error = %v", err)
	}
	if len(freqs) != 5 {
		t.Fatalf("len = %d, want 5", len(freqs))
	}
	if freqs[4] != 220 {
		t.Errorf("bottom row = %v, want 220", freqs[4])
	}
	for i := 1; i < len(freqs); i++ {
		if freqs[i] >= freqs[i-1] {
			t.Errorf("row %d (%v) not below row %d (%v)", i, freqs[i], i-1, freqs[i-1])
		}
	}

	if _, err := RowFrequencies("dorian", 220, 5); err == nil {
		t.Error("unknown scale should fail")
	}
}
