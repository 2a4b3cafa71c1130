package input

import (
	"github.com/lixenwraith/swish/config"
	"github.com/lixenwraith/swish/engine"
	"github.com/lixenwraith/swish/events"
	"github.com/lixenwraith/swish/vmath"
)

// Tracker turns pointer samples into shot gestures
// Device-agnostic: terminal mouse drags and browser touches feed the
// same three calls. Each frontend owns one tracker on its input
// goroutine; the tracker itself is not safe for concurrent use
type Tracker struct {
	queue *events.Queue
	clock engine.Clock

	screenScale float64
	strength    float64
	minSwipe    float64

	active  bool
	start   vmath.Vec2
	current vmath.Vec2
}

// NewTracker creates a tracker wired to the session event queue
func NewTracker(queue *events.Queue, clock engine.Clock, cfg config.GameConfig) *Tracker {
	return &Tracker{
		queue:       queue,
		clock:       clock,
		screenScale: cfg.ScreenScale,
		strength:    cfg.Strength,
		minSwipe:    cfg.MinSwipeDistance,
	}
}

// Start begins a pointer track at p
// Starting while a track is live restarts from p
func (t *Tracker) Start(p vmath.Vec2) {
	t.active = true
	t.start = p
	t.current = p
}

// Move updates the live track and publishes a preview force
// Pure notifier: never touches game state. Ignored when no track is live
func (t *Tracker) Move(p vmath.Vec2) {
	if !t.active {
		return
	}
	t.current = p

	t.queue.Push(events.Event{
		Type:      events.EventPreviewUpdated,
		Payload:   &events.PreviewPayload{Force: LaunchForce(t.start, p, t.screenScale, t.strength)},
		Timestamp: t.clock.Now(),
	})
}

// End finishes the track at p and always deactivates
// Tracks shorter than the minimum swipe distance are discarded as taps
func (t *Tracker) End(p vmath.Vec2) {
	if !t.active {
		return
	}
	t.active = false
	t.current = p

	if vmath.V2Dist(t.start, p) <= t.minSwipe {
		return
	}

	t.queue.Push(events.Event{
		Type:      events.EventShotCommitted,
		Payload:   &events.ShotPayload{Force: LaunchForce(t.start, p, t.screenScale, t.strength)},
		Timestamp: t.clock.Now(),
	})
}

// Active reports whether a pointer track is live
func (t *Tracker) Active() bool {
	return t.active
}

// Track returns the live track endpoints for drag rendering
func (t *Tracker) Track() (start, current vmath.Vec2, active bool) {
	return t.start, t.current, t.active
}

// LaunchForce derives a launch force from a screen-space swipe
// Screen deltas invert into court space (drag down-right to throw
// up-left) with a fixed forward component toward the hoop:
//
//	dx = (start.X - end.X) * screenScale
//	dy = (start.Y - end.Y) * screenScale
//	f  = (dx*strength, dy*strength, -strength)
//
// X is clamped to [-strength, +strength], Y to [0, 2*strength] so the
// ball never launches downward, Z to [-2*strength, 0] so it never
// flies backward
func LaunchForce(start, end vmath.Vec2, screenScale, strength float64) vmath.Vec3 {
	dx := (start.X - end.X) * screenScale
	dy := (start.Y - end.Y) * screenScale

	return vmath.Vec3{
		X: vmath.Clamp(dx*strength, -strength, strength),
		Y: vmath.Clamp(dy*strength, 0, 2*strength),
		Z: vmath.Clamp(-strength, -2*strength, 0),
	}
}
