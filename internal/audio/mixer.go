package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
)

// voice is one row's oscillator.
type voice struct {
	freq    float64
	phase   float64
	gain    float64
	target  float64
	ping    int // samples left in a ping's decay, 0 when not pinging
	pingLen int
}

// Mixer sums one voice per matrix row into a single stream. Play, Stop,
// Ping and SetMode are called from the game loop while Stream runs on the
// speaker's goroutine, so all voice state sits behind mu.
type Mixer struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	ramp   float64
	mode   Mode
	voices []voice
}

// NewMixer creates a silent mixer with one voice per frequency.
// release is how long a stopped voice takes to fade out.
func NewMixer(rate beep.SampleRate, freqs []float64, release time.Duration) *Mixer {
	m := &Mixer{
		rate:   rate,
		ramp:   1,
		voices: make([]voice, len(freqs)),
	}
	if n := rate.N(release); n > 0 {
		m.ramp = 1 / float64(n)
	}
	for i, f := range freqs {
		m.voices[i].freq = f
	}
	return m
}

// Voices returns the number of voices.
func (m *Mixer) Voices() int {
	return len(m.voices)
}

// SetMode changes the waveform of every voice.
func (m *Mixer) SetMode(mode Mode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mode = mode
}

// Mode returns the current waveform.
func (m *Mixer) Mode() Mode {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mode
}

// Play sustains the voice for source until Stop. Unknown sources are ignored.
func (m *Mixer) Play(source int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if source < 0 || source >= len(m.voices) {
		return
	}
	v := &m.voices[source]
	v.target = 1
	v.ping = 0
}

// Stop fades the voice for source out. Unknown sources are ignored.
func (m *Mixer) Stop(source int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if source < 0 || source >= len(m.voices) {
		return
	}
	v := &m.voices[source]
	v.target = 0
	v.ping = 0
}

// Ping strikes the voice for source at full gain and lets it decay over d,
// like a bell.
func (m *Mixer) Ping(source int, d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if source < 0 || source >= len(m.voices) {
		return
	}
	n := m.rate.N(d)
	if n <= 0 {
		return
	}
	v := &m.voices[source]
	v.gain = 1
	v.target = 1
	v.ping = n
	v.pingLen = n
}

// Playing reports whether the voice for source is sounding or still fading.
func (m *Mixer) Playing(source int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if source < 0 || source >= len(m.voices) {
		return false
	}
	v := m.voices[source]
	return v.target > 0 || v.gain > 0
}

// Stream implements beep.Streamer. It never runs out.
func (m *Mixer) Stream(samples [][2]float64) (n int, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	norm := 1.0
	if len(m.voices) > 0 {
		norm = 1 / float64(len(m.voices))
	}

	for i := range samples {
		var sum float64
		for j := range m.voices {
			sum += m.next(&m.voices[j])
		}
		val := sum * norm
		samples[i][0] = val
		samples[i][1] = val
	}
	return len(samples), true
}

// next advances v by one sample and returns its output.
func (m *Mixer) next(v *voice) float64 {
	if v.ping > 0 {
		v.target = float64(v.ping) / float64(v.pingLen)
		v.ping--
		if v.ping == 0 {
			v.target = 0
		}
	}

	switch {
	case v.gain < v.target:
		v.gain = math.Min(v.gain+m.ramp, v.target)
	case v.gain > v.target:
		v.gain = math.Max(v.gain-m.ramp, v.target)
	}

	if v.gain == 0 {
		return 0
	}

	out := v.gain * m.mode.sample(v.phase)
	v.phase += v.freq / float64(m.rate)
	v.phase -= math.Floor(v.phase) // Keep in [0, 1)
	return out
}

// Err implements beep.Streamer.
func (m *Mixer) Err() error { return nil }

// Output returns the mixer scaled to the given master volume in [0, 1].
func (m *Mixer) Output(volume float64) beep.Streamer {
	return newVolume(m, volume)
}
