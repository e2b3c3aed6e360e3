package audio

import (
	"fmt"

	"github.com/vovakirdan/snakematrix/internal/registry"
)

// DefaultScale is used when no scale is configured.
const DefaultScale = "pentatonic"

func init() {
	registry.Register(registry.Scale{
		ID:    "pentatonic",
		Title: "Major pentatonic",
		Steps: []int{0, 2, 4, 7, 9},
	})
	registry.Register(registry.Scale{
		ID:    "major",
		Title: "Major (Ionian)",
		Steps: []int{0, 2, 4, 5, 7, 9, 11},
	})
	registry.Register(registry.Scale{
		ID:    "minor",
		Title: "Natural minor (Aeolian)",
		Steps: []int{0, 2, 3, 5, 7, 8, 10},
	})
	registry.Register(registry.Scale{
		ID:    "chromatic",
		Title: "Chromatic",
		Steps: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
	})
}

// RowFrequencies returns one frequency per row for the named scale,
// highest first.
func RowFrequencies(scaleID string, base float64, rows int) ([]float64, error) {
	s, err := registry.Get(scaleID)
	if err != nil {
		return nil, fmt.Errorf("audio: %w", err)
	}
	return s.Frequencies(base, rows), nil
}
