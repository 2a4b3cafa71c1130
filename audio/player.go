package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/swish/config"
)

const (
	sampleRate    = beep.SampleRate(48000)
	speakerBuffer = 100 * time.Millisecond
)

// Player owns the speaker and mixes one-shot cues into it.
// A player that never started, or was disabled by configuration,
// treats every Play as a no-op so the game runs unchanged on
// machines without an audio device.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	disabled    bool
	muted       bool
	initialized bool
}

// NewPlayer creates a player honoring the audio configuration.
func NewPlayer(cfg config.AudioConfig) *Player {
	return &Player{
		mixer:    &beep.Mixer{},
		volume:   cfg.MasterVolume,
		disabled: !cfg.Enabled,
	}
}

// Start opens the speaker and attaches the mixer. Failure is
// reported but leaves the player in a safe silent state.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || p.disabled {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(speakerBuffer)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Stop drops all pending cues and silences the player.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.mixer.Clear()
	p.initialized = false
}

// Play schedules a cue for immediate playback.
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}

	s := cueStreamer(c)
	if s == nil {
		return
	}
	p.mixer.Add(newVolume(s, p.volume))
}

// ToggleMute flips the mute state, returning true if sound is now on.
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.muted = !p.muted
	return !p.muted
}

// Enabled reports whether cues will actually sound.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.initialized && !p.muted
}
