package events

import (
	"time"
)

// EventType represents the type of game event
type EventType int

const (
	// EventPreviewUpdated carries the live launch force while aiming
	// Trigger: gesture tracker on pointer move
	// Consumer: Session (trajectory preview) | Payload: *PreviewPayload
	EventPreviewUpdated EventType = iota

	// EventShotCommitted signals a completed swipe above the minimum distance
	// Trigger: gesture tracker on pointer release
	// Consumer: Session (launch) | Payload: *ShotPayload
	EventShotCommitted

	// EventBasketScored signals a made basket
	// Trigger: Session basket check while shooting
	// Consumer: frontends (pulse, swish cue, ws push) | Payload: *ScorePayload
	EventBasketScored

	// EventShotMissed signals a dead ball without a score
	// Trigger: Session ball-state check while shooting
	// Consumer: frontends (miss cue) | Payload: *MissPayload
	EventShotMissed

	// EventBallReset signals the ball returned to its origin
	// Trigger: deferred reset task after Scored/Resetting | Payload: nil
	EventBallReset

	// EventHighScore signals a new persisted best
	// Trigger: Session score path when Points exceeds Best
	// Consumer: frontends (HUD highlight) | Payload: *HighScorePayload
	EventHighScore

	// EventBallContact signals a physical impact above the cue threshold
	// Trigger: Session draining world contacts
	// Consumer: frontends (bounce cue) | Payload: *ContactPayload
	EventBallContact
)

// Event represents a single game event with metadata
type Event struct {
	Type      EventType
	Payload   any
	Tick      uint64 // Session tick when emitted, zero for input events
	Timestamp time.Time
}
