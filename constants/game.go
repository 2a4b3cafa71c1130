package constants

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the simulation and render tick interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// SnapshotDivisor is how many ticks a web session waits between state broadcasts
	SnapshotDivisor = 2
)

// Event Queue
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

// Hoop Geometry
const (
	// TriggerZoneScale shrinks the rim radius into the scoring cylinder
	// so rim grazes do not count as makes
	TriggerZoneScale = 0.8

	// RimSampleCount is how many static spheres approximate the rim ring
	RimSampleCount = 12

	// RimTubeRadius is the collision radius of each rim sample sphere
	RimTubeRadius = 0.02

	// BackboardOffsetY and BackboardOffsetZ place the backboard center
	// relative to the rim center
	BackboardOffsetY = 0.45
	BackboardOffsetZ = -0.3
)

// HUD Feedback
const (
	// ScorePulseDuration is how long the "+1" flash stays on screen
	ScorePulseDuration = 600 * time.Millisecond

	// ContactCueMinSpeed is the impact speed below which no bounce sound plays
	ContactCueMinSpeed = 1.0
)
