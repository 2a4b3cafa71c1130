package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType selects the oscillator shape
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// tone is a fixed-length oscillator with a percussive envelope:
// a short linear attack into an exponential decay. All game cues are
// built from these, mixed or sequenced.
type tone struct {
	wave   WaveType
	freq   float64
	gain   float64
	decay  float64 // decay exponent per second
	rate   beep.SampleRate
	phase  float64
	pos    int
	total  int
	attack int
	noise  uint32
}

func newTone(wave WaveType, freq, gain float64, dur, attack time.Duration, decay float64, rate beep.SampleRate) beep.Streamer {
	return &tone{
		wave:   wave,
		freq:   freq,
		gain:   gain,
		decay:  decay,
		rate:   rate,
		total:  rate.N(dur),
		attack: rate.N(attack),
		noise:  0x9d2c5680,
	}
}

func (g *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.total {
			return i, false
		}

		var val float64
		switch g.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * g.phase)
		case WaveSquare:
			if g.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (g.phase - 0.5)
		case WaveNoise:
			g.noise = g.noise*1664525 + 1013904223
			val = float64(g.noise)/float64(math.MaxUint32)*2 - 1
		}

		t := float64(g.pos) / float64(g.rate)
		env := math.Exp(-g.decay * t)
		if g.attack > 0 && g.pos < g.attack {
			env *= float64(g.pos) / float64(g.attack)
		}

		s := g.gain * env * val
		samples[i][0] = s
		samples[i][1] = s

		g.phase += g.freq / float64(g.rate)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *tone) Err() error { return nil }

// newVolume wraps a streamer in a logarithmic volume control.
// math.Log2(0) is -Inf, so zero volume switches to silent instead.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
