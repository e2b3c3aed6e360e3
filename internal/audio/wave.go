// Package audio turns the snake matrix into sound: one voice per row,
// started and stopped as the beat passes over snake cells, with a timbre
// picked from the food the snake ate last.
package audio

import (
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Mode selects the waveform shared by every voice.
type Mode int

const (
	ModeSine Mode = iota
	ModeTriangle
	ModeSquare
	ModeSaw
)

func (m Mode) String() string {
	switch m {
	case ModeSine:
		return "sine"
	case ModeTriangle:
		return "triangle"
	case ModeSquare:
		return "square"
	case ModeSaw:
		return "saw"
	default:
		return "unknown"
	}
}

// sample evaluates one period of the waveform at phase p in [0, 1).
func (m Mode) sample(p float64) float64 {
	switch m {
	case ModeTriangle:
		return 1 - 4*math.Abs(p-0.5)
	case ModeSquare:
		if p < 0.5 {
			return 1
		}
		return -1
	case ModeSaw:
		return 2 * (p - 0.5)
	default:
		return math.Sin(2 * math.Pi * p)
	}
}

// newVolume wraps s in a linear volume control.
// math.Log2(0) is -Inf, so zero volume is made silent instead.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
