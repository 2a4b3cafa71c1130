package events

import (
	"github.com/lixenwraith/swish/vmath"
)

// MissReason identifies which ball-state check ended a shot
type MissReason int

const (
	MissOutOfBounds MissReason = iota
	MissBelowFloor
	MissStalled
	MissTimeout
)

func (r MissReason) String() string {
	switch r {
	case MissOutOfBounds:
		return "OutOfBounds"
	case MissBelowFloor:
		return "BelowFloor"
	case MissStalled:
		return "Stalled"
	case MissTimeout:
		return "Timeout"
	default:
		return "Unknown"
	}
}

// Surface identifies what the ball hit
type Surface int

const (
	SurfaceGround Surface = iota
	SurfaceBackboard
	SurfaceRim
)

func (s Surface) String() string {
	switch s {
	case SurfaceGround:
		return "Ground"
	case SurfaceBackboard:
		return "Backboard"
	case SurfaceRim:
		return "Rim"
	default:
		return "Unknown"
	}
}

// PreviewPayload carries the raw launch force derived from the live gesture
type PreviewPayload struct {
	Force vmath.Vec3
}

// ShotPayload carries the raw launch force of a committed gesture
type ShotPayload struct {
	Force vmath.Vec3
}

// ScorePayload carries the score line after a made basket
type ScorePayload struct {
	Points int
	Streak int
	Best   int
}

// MissPayload carries why the shot ended without a score
type MissPayload struct {
	Reason MissReason
}

// HighScorePayload carries the newly persisted best
type HighScorePayload struct {
	Value int
}

// ContactPayload carries an impact for audio feedback
type ContactPayload struct {
	Against Surface
	Speed   float64
}
