package game

import (
	"time"

	"github.com/lixenwraith/swish/vmath"
)

// Snapshot is the immutable per-frame view renderers draw from
// Built once per tick after game logic. The trajectory slice is
// replaced wholesale on preview updates, never mutated in place,
// so handing the snapshot to another goroutine is safe
type Snapshot struct {
	Tick  uint64
	Phase Phase
	Score Score

	BallPosition vmath.Vec3
	BallRadius   float64

	RimCenter   vmath.Vec3
	RimRadius   float64
	BoardCenter vmath.Vec3
	BoardHalf   vmath.Vec3

	// Trajectory preview polyline, present only while aiming
	Trajectory []vmath.Vec3

	// PulseUntil is when the "+1" flash expires, zero when inactive
	PulseUntil time.Time

	Paused bool
}
