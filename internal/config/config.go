// Package config provides YAML-based configuration loading for the
// snake matrix player.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/snakematrix/internal/matrix"
)

// Config contains all player configuration.
type Config struct {
	Grid   GridConfig   `yaml:"grid"`
	Timing TimingConfig `yaml:"timing"`
	Audio  AudioConfig  `yaml:"audio"`
}

// GridConfig defines the matrix dimensions.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines how often each clock fires.
type TimingConfig struct {
	BeatIntervalMs  int `yaml:"beat_interval_ms"`
	SnakeIntervalMs int `yaml:"snake_interval_ms"`
	FrameRate       int `yaml:"frame_rate"`
}

// AudioConfig defines the synthesizer and output device parameters.
type AudioConfig struct {
	Enabled       bool    `yaml:"enabled"`
	SampleRate    int     `yaml:"sample_rate"`
	BufferMs      int     `yaml:"buffer_ms"`
	Volume        float64 `yaml:"volume"`
	Scale         string  `yaml:"scale"`
	BaseFrequency float64 `yaml:"base_frequency"`
	ReleaseMs     int     `yaml:"release_ms"`
}

// BeatInterval returns the beat clock period.
func (t TimingConfig) BeatInterval() time.Duration {
	return time.Duration(t.BeatIntervalMs) * time.Millisecond
}

// SnakeInterval returns the snake clock period.
func (t TimingConfig) SnakeInterval() time.Duration {
	return time.Duration(t.SnakeIntervalMs) * time.Millisecond
}

// Buffer returns the speaker buffer length.
func (a AudioConfig) Buffer() time.Duration {
	return time.Duration(a.BufferMs) * time.Millisecond
}

// Release returns how long a stopped voice takes to fade out.
func (a AudioConfig) Release() time.Duration {
	return time.Duration(a.ReleaseMs) * time.Millisecond
}

// Validate reports every problem with c. Bad grid dimensions wrap
// matrix.ErrInvalidConfiguration.
func (c Config) Validate() error {
	var errs []error

	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		errs = append(errs, fmt.Errorf("config: grid %dx%d: %w",
			c.Grid.Width, c.Grid.Height, matrix.ErrInvalidConfiguration))
	}
	if c.Timing.BeatIntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("config: beat_interval_ms must be positive, got %d", c.Timing.BeatIntervalMs))
	}
	if c.Timing.SnakeIntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("config: snake_interval_ms must be positive, got %d", c.Timing.SnakeIntervalMs))
	}
	if c.Timing.FrameRate <= 0 {
		errs = append(errs, fmt.Errorf("config: frame_rate must be positive, got %d", c.Timing.FrameRate))
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("config: volume must be in [0, 1], got %v", c.Audio.Volume))
	}
	if c.Audio.Enabled {
		if c.Audio.SampleRate <= 0 {
			errs = append(errs, fmt.Errorf("config: sample_rate must be positive, got %d", c.Audio.SampleRate))
		}
		if c.Audio.BufferMs <= 0 {
			errs = append(errs, fmt.Errorf("config: buffer_ms must be positive, got %d", c.Audio.BufferMs))
		}
		if c.Audio.BaseFrequency <= 0 {
			errs = append(errs, fmt.Errorf("config: base_frequency must be positive, got %v", c.Audio.BaseFrequency))
		}
		if c.Audio.ReleaseMs < 0 {
			errs = append(errs, fmt.Errorf("config: release_ms must not be negative, got %d", c.Audio.ReleaseMs))
		}
		if c.Audio.Scale == "" {
			errs = append(errs, errors.New("config: scale must be set"))
		}
	}

	return errors.Join(errs...)
}
