package audio

import (
	"fmt"

	"github.com/vovakirdan/snakematrix/internal/matrix"
)

// BeatSource is the part of the matrix the conductor reads on each beat.
// Both *matrix.Matrix and matrix.Snapshot satisfy it.
type BeatSource interface {
	BeatCursor() int
	Height() int
	IsSnake(c matrix.Coord) (bool, error)
	FoodState() matrix.Flags
}

// Voices is what the conductor drives. *Mixer implements it.
type Voices interface {
	SetMode(mode Mode)
	Play(source int)
	Stop(source int)
}

// ModeForFood picks the waveform for the snake's food memory.
// Anything other than exactly one food flag plays a sine.
func ModeForFood(food matrix.Flags) Mode {
	switch food {
	case matrix.SinFood:
		return ModeSine
	case matrix.TriangleFood:
		return ModeTriangle
	case matrix.SquareFood:
		return ModeSquare
	default:
		return ModeSine
	}
}

// Conductor plays one column of the matrix per beat: each row whose cell
// in the beat column holds the snake sounds, every other row is silent.
type Conductor struct {
	voices Voices
}

// NewConductor creates a conductor driving v.
func NewConductor(v Voices) *Conductor {
	return &Conductor{voices: v}
}

// OnBeat sets the timbre from the food memory, then starts or stops the
// voice of every row for the current beat column.
func (c *Conductor) OnBeat(src BeatSource) error {
	c.voices.SetMode(ModeForFood(src.FoodState()))

	x := src.BeatCursor()
	for y := 0; y < src.Height(); y++ {
		snake, err := src.IsSnake(matrix.C(x, y))
		if err != nil {
			return fmt.Errorf("audio: beat column %d: %w", x, err)
		}
		if snake {
			c.voices.Play(y)
		} else {
			c.voices.Stop(y)
		}
	}
	return nil
}
