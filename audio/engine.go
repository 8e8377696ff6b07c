// Package audio plays short synthesized feedback sounds for editor and
// map interactions. Tones are generated on the fly, no sample assets
// are shipped.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Sound identifies one of the built-in feedback tones.
type Sound int

const (
	// SoundToggle is a short rising two-tone played when a map cell flips.
	SoundToggle Sound = iota
	// SoundBlip is a single click played when an editor binding is added.
	SoundBlip
	// SoundError is a low buzz played when persisting a config fails.
	SoundError
)

const speakerBufferMs = 100

// Engine owns the speaker and mixes feedback tones into it. All
// methods are safe to call before Init and after Close; they simply do
// nothing then.
type Engine struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	rate        beep.SampleRate
	initialized bool
}

// NewEngine creates an engine with the given config. The speaker is
// not touched until Init.
func NewEngine(cfg Config) *Engine {
	return &Engine{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		rate:  beep.SampleRate(cfg.SampleRate),
	}
}

// Init opens the speaker. Disabled engines succeed without opening
// anything. Speaker failures are returned so the caller can log and
// continue without audio.
func (e *Engine) Init() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized || !e.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(e.rate, e.rate.N(time.Millisecond*speakerBufferMs)); err != nil {
		return fmt.Errorf("moleman: init speaker: %w", err)
	}

	speaker.Play(e.mixer)
	e.initialized = true
	return nil
}

// Play queues a feedback tone. Returns false when the engine is not
// initialized or the sound is muted by config.
func (e *Engine) Play(s Sound) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized || e.cfg.MasterVolume <= 0 {
		return false
	}

	var streamer beep.Streamer
	switch s {
	case SoundToggle:
		streamer = beep.Take(e.rate.N(time.Millisecond*120), newSweepTone(e.rate, 440, 660, e.cfg.MasterVolume))
	case SoundBlip:
		streamer = beep.Take(e.rate.N(time.Millisecond*60), newSweepTone(e.rate, 880, 880, e.cfg.MasterVolume))
	case SoundError:
		streamer = beep.Take(e.rate.N(time.Millisecond*180), newBuzzTone(e.rate, 110, e.cfg.MasterVolume))
	default:
		return false
	}

	speaker.Lock()
	e.mixer.Add(streamer)
	speaker.Unlock()
	return true
}

// SetVolume updates the master volume, clamped to [0, 1].
func (e *Engine) SetVolume(vol float64) {
	e.mu.Lock()
	e.cfg.MasterVolume = clampVolume(vol)
	e.mu.Unlock()
}

// Volume reports the current master volume.
func (e *Engine) Volume() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cfg.MasterVolume
}

// Close silences the mixer. The speaker itself stays open; beep has no
// teardown for it.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}

	speaker.Lock()
	e.mixer.Clear()
	speaker.Unlock()
	e.initialized = false
}

// sweepTone is a sine sweep from one frequency to another with a short
// attack/release envelope. Equal frequencies give a plain tone.
type sweepTone struct {
	sr        beep.SampleRate
	from, to  float64
	volume    float64
	pos       int
	sweepSpan int
	phase     float64
}

func newSweepTone(sr beep.SampleRate, from, to, volume float64) *sweepTone {
	return &sweepTone{
		sr:        sr,
		from:      from,
		to:        to,
		volume:    volume,
		sweepSpan: sr.N(time.Millisecond * 120),
	}
}

func (g *sweepTone) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.sweepSpan), 1)
		freq := g.from + (g.to-g.from)*progress

		// Phase accumulation keeps the sweep click-free.
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		attack := math.Min(float64(g.pos)/(float64(g.sr)*0.005), 1)
		sample := 0.25 * g.volume * attack * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *sweepTone) Err() error { return nil }

// buzzTone layers a fundamental with two harmonics for a harsh buzz.
type buzzTone struct {
	sr     beep.SampleRate
	freq   float64
	volume float64
	pos    int
}

func newBuzzTone(sr beep.SampleRate, freq, volume float64) *buzzTone {
	return &buzzTone{sr: sr, freq: freq, volume: volume}
}

func (g *buzzTone) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		attack := math.Min(t/0.02, 1)
		sample *= attack * g.volume * 0.6

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *buzzTone) Err() error { return nil }
