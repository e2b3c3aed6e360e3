// Package registry provides a global registry of pitch scales.
// Scales register themselves in init() functions, allowing the CLI and the
// audio layer to look them up by name without hardcoded lists.
package registry

import (
	"fmt"
	"math"
	"sort"
	"sync"
)

// Scale assigns pitches to matrix rows.
type Scale struct {
	// ID is the unique identifier used in config files and flags
	// (e.g., "pentatonic").
	ID string

	// Title is a human-readable name for display.
	Title string

	// Steps lists semitone offsets above the root, ascending, within one
	// octave. The scale repeats one octave higher after the last step.
	Steps []int
}

// Semitones returns the offset of degree n from the root, continuing into
// higher octaves once the steps run out.
func (s Scale) Semitones(n int) int {
	if len(s.Steps) == 0 {
		return 12 * n
	}
	octave, idx := n/len(s.Steps), n%len(s.Steps)
	return 12*octave + s.Steps[idx]
}

// Frequencies returns one frequency per row with row 0 the highest pitch,
// so the top of the matrix sounds highest. base is the pitch of the
// bottom row in Hz.
func (s Scale) Frequencies(base float64, rows int) []float64 {
	freqs := make([]float64, rows)
	for row := range freqs {
		degree := rows - 1 - row
		freqs[row] = base * math.Pow(2, float64(s.Semitones(degree))/12)
	}
	return freqs
}

// ScaleInfo contains metadata about a registered scale.
type ScaleInfo struct {
	ID    string
	Title string
}

var (
	scales = make(map[string]Scale)
	mu     sync.RWMutex
)

// Register adds a scale to the registry.
// Typically called from an init() function.
// Panics if a scale with the same ID is already registered.
func Register(s Scale) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := scales[s.ID]; exists {
		panic(fmt.Sprintf("registry: scale %q already registered", s.ID))
	}

	steps := make([]int, len(s.Steps))
	copy(steps, s.Steps)
	s.Steps = steps
	scales[s.ID] = s
}

// List returns information about all registered scales, sorted by ID.
func List() []ScaleInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ScaleInfo, 0, len(scales))
	for id, s := range scales {
		result = append(result, ScaleInfo{
			ID:    id,
			Title: s.Title,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the scale registered under id.
// Returns an error if the ID is not registered.
func Get(id string) (Scale, error) {
	mu.RLock()
	defer mu.RUnlock()

	s, ok := scales[id]
	if !ok {
		return Scale{}, fmt.Errorf("registry: unknown scale %q", id)
	}

	return s, nil
}

// Exists checks if a scale with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := scales[id]
	return ok
}
