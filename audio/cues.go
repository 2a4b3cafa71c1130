package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Cue identifies one synthesized game sound
type Cue int

const (
	CueBounce Cue = iota
	CueRim
	CueBackboard
	CueSwish
	CueMiss
	CueHighScore
)

func (c Cue) String() string {
	switch c {
	case CueBounce:
		return "Bounce"
	case CueRim:
		return "Rim"
	case CueBackboard:
		return "Backboard"
	case CueSwish:
		return "Swish"
	case CueMiss:
		return "Miss"
	case CueHighScore:
		return "HighScore"
	default:
		return "Unknown"
	}
}

// Cue synthesis tuning
const (
	bounceFreqHz     = 95.0
	bounceGain       = 0.5
	bounceDuration   = 140 * time.Millisecond
	bounceThumpGain  = 0.12
	rimFreqHz        = 620.0
	rimOvertoneRatio = 2.006 // slightly sharp octave rings metallic
	rimGain          = 0.35
	rimDuration      = 350 * time.Millisecond
	boardFreqHz      = 170.0
	boardGain        = 0.3
	boardDuration    = 90 * time.Millisecond
	swishLowHz       = 739.99 // F#5
	swishHighHz      = 987.77 // B5
	swishGain        = 0.35
	swishAirGain     = 0.1
	missFreqHz       = 100.0
	missGain         = 0.3
	missDuration     = 180 * time.Millisecond
	attackFast       = 2 * time.Millisecond
)

// cueStreamer builds the one-shot streamer for a cue.
func cueStreamer(c Cue) beep.Streamer {
	switch c {
	case CueBounce:
		// Low thump with a noise tick on the impact
		return beep.Mix(
			newTone(WaveSine, bounceFreqHz, bounceGain, bounceDuration, attackFast, 18, sampleRate),
			newTone(WaveNoise, 0, bounceThumpGain, 30*time.Millisecond, 0, 60, sampleRate),
		)
	case CueRim:
		return beep.Mix(
			newTone(WaveSine, rimFreqHz, rimGain, rimDuration, attackFast, 9, sampleRate),
			newTone(WaveSine, rimFreqHz*rimOvertoneRatio, rimGain*0.45, rimDuration, attackFast, 13, sampleRate),
		)
	case CueBackboard:
		return newTone(WaveSquare, boardFreqHz, boardGain, boardDuration, attackFast, 30, sampleRate)
	case CueSwish:
		// Net rustle under a rising two-note chime
		return beep.Mix(
			newTone(WaveNoise, 0, swishAirGain, 120*time.Millisecond, 10*time.Millisecond, 16, sampleRate),
			beep.Seq(
				newTone(WaveSine, swishLowHz, swishGain, 90*time.Millisecond, attackFast, 10, sampleRate),
				newTone(WaveSine, swishHighHz, swishGain, 220*time.Millisecond, attackFast, 8, sampleRate),
			),
		)
	case CueMiss:
		return newTone(WaveSaw, missFreqHz, missGain, missDuration, attackFast, 10, sampleRate)
	case CueHighScore:
		// E5, A5, E6 arpeggio
		return beep.Seq(
			newTone(WaveSine, 659.26, swishGain, 100*time.Millisecond, attackFast, 8, sampleRate),
			newTone(WaveSine, 880.00, swishGain, 100*time.Millisecond, attackFast, 8, sampleRate),
			newTone(WaveSine, 1318.51, swishGain, 260*time.Millisecond, attackFast, 6, sampleRate),
		)
	default:
		return nil
	}
}
