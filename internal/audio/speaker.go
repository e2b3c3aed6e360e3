package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Speaker owns the process-wide audio device.
type Speaker struct {
	mu      sync.Mutex
	rate    beep.SampleRate
	buffer  time.Duration
	started bool
}

// NewSpeaker creates a speaker that has not yet opened the device.
func NewSpeaker(rate beep.SampleRate, buffer time.Duration) *Speaker {
	return &Speaker{rate: rate, buffer: buffer}
}

// Start opens the device and begins playing s.
func (sp *Speaker) Start(s beep.Streamer) error {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	if sp.started {
		return nil
	}
	if err := speaker.Init(sp.rate, sp.rate.N(sp.buffer)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(s)
	sp.started = true
	return nil
}

// Close stops playback and releases the device.
func (sp *Speaker) Close() {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	if !sp.started {
		return
	}
	speaker.Clear()
	speaker.Close()
	sp.started = false
}
