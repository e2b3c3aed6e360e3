package config

import (
	_ "embed"

	"github.com/vovakirdan/snakematrix/internal/matrix"
)

//go:embed defaults/snakematrix.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
// It matches defaults/snakematrix.yaml and is used if the embed fails to parse.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:  matrix.DefaultWidth,
			Height: matrix.DefaultHeight,
		},
		Timing: TimingConfig{
			BeatIntervalMs:  100,
			SnakeIntervalMs: 300,
			FrameRate:       30,
		},
		Audio: AudioConfig{
			Enabled:       true,
			SampleRate:    44100,
			BufferMs:      100,
			Volume:        0.3,
			Scale:         "pentatonic",
			BaseFrequency: 220,
			ReleaseMs:     40,
		},
	}
}
