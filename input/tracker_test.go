package input

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/swish/config"
	"github.com/lixenwraith/swish/engine"
	"github.com/lixenwraith/swish/events"
	"github.com/lixenwraith/swish/vmath"
)

func newTestTracker() (*Tracker, *events.Queue) {
	q := events.NewQueue()
	clock := engine.NewMockClock(time.Unix(0, 0))
	cfg := config.GameConfig{
		ScreenScale:      0.01,
		Strength:         2.0,
		MinSwipeDistance: 20,
	}
	return NewTracker(q, clock, cfg), q
}

func v3Close(a, b vmath.Vec3) bool {
	return math.Abs(a.X-b.X) < 1e-9 &&
		math.Abs(a.Y-b.Y) < 1e-9 &&
		math.Abs(a.Z-b.Z) < 1e-9
}

func TestLaunchForce(t *testing.T) {
	tests := []struct {
		name  string
		start vmath.Vec2
		end   vmath.Vec2
		want  vmath.Vec3
	}{
		{
			name:  "upward swipe clamps to double strength",
			start: vmath.Vec2{X: 200, Y: 400},
			end:   vmath.Vec2{X: 200, Y: 100},
			want:  vmath.Vec3{X: 0, Y: 4, Z: -2},
		},
		{
			name:  "gentle up-left swipe",
			start: vmath.Vec2{X: 300, Y: 300},
			end:   vmath.Vec2{X: 250, Y: 200},
			want:  vmath.Vec3{X: 1, Y: 2, Z: -2},
		},
		{
			name:  "hard right swipe clamps X",
			start: vmath.Vec2{X: 0, Y: 300},
			end:   vmath.Vec2{X: 500, Y: 300},
			want:  vmath.Vec3{X: -2, Y: 0, Z: -2},
		},
		{
			name:  "downward swipe clamps Y to zero",
			start: vmath.Vec2{X: 100, Y: 100},
			end:   vmath.Vec2{X: 100, Y: 400},
			want:  vmath.Vec3{X: 0, Y: 0, Z: -2},
		},
		{
			name:  "tap keeps only the forward component",
			start: vmath.Vec2{X: 50, Y: 50},
			end:   vmath.Vec2{X: 50, Y: 50},
			want:  vmath.Vec3{X: 0, Y: 0, Z: -2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LaunchForce(tt.start, tt.end, 0.01, 2.0)
			if !v3Close(got, tt.want) {
				t.Errorf("LaunchForce(%v, %v) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestTrackerCommitsLongSwipe(t *testing.T) {
	tr, q := newTestTracker()

	tr.Start(vmath.Vec2{X: 160, Y: 420})
	tr.Move(vmath.Vec2{X: 160, Y: 300})
	tr.End(vmath.Vec2{X: 160, Y: 220})

	evs := q.Consume()
	if len(evs) != 2 {
		t.Fatalf("events after swipe = %d, want 2 (preview + commit)", len(evs))
	}
	if evs[0].Type != events.EventPreviewUpdated {
		t.Errorf("first event type = %v, want EventPreviewUpdated", evs[0].Type)
	}
	if evs[1].Type != events.EventShotCommitted {
		t.Errorf("second event type = %v, want EventShotCommitted", evs[1].Type)
	}

	shot, ok := evs[1].Payload.(*events.ShotPayload)
	if !ok {
		t.Fatalf("commit payload type = %T, want *ShotPayload", evs[1].Payload)
	}
	// 200 px upward swipe: dy = 2.0, force Y = 4.0
	if want := (vmath.Vec3{X: 0, Y: 4, Z: -2}); !v3Close(shot.Force, want) {
		t.Errorf("committed force = %v, want %v", shot.Force, want)
	}
	if !evs[1].Timestamp.Equal(time.Unix(0, 0)) {
		t.Errorf("commit timestamp = %v, want clock time", evs[1].Timestamp)
	}
	if tr.Active() {
		t.Error("tracker still active after End")
	}
}

func TestTrackerMinSwipeDistance(t *testing.T) {
	tests := []struct {
		name       string
		end        vmath.Vec2
		wantEvents int
	}{
		{"tap discarded", vmath.Vec2{X: 103, Y: 96}, 0},
		{"exactly at threshold discarded", vmath.Vec2{X: 120, Y: 100}, 0},
		{"just past threshold commits", vmath.Vec2{X: 120.5, Y: 100}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, q := newTestTracker()
			tr.Start(vmath.Vec2{X: 100, Y: 100})
			tr.End(tt.end)

			if got := len(q.Consume()); got != tt.wantEvents {
				t.Errorf("events after End = %d, want %d", got, tt.wantEvents)
			}
			if tr.Active() {
				t.Error("tracker still active after End")
			}
		})
	}
}

func TestTrackerPreviewPerMove(t *testing.T) {
	tr, q := newTestTracker()

	// Moves without a live track are ignored
	tr.Move(vmath.Vec2{X: 10, Y: 10})
	if evs := q.Consume(); evs != nil {
		t.Fatalf("events before Start = %d, want none", len(evs))
	}

	tr.Start(vmath.Vec2{X: 100, Y: 400})
	tr.Move(vmath.Vec2{X: 100, Y: 350})
	tr.Move(vmath.Vec2{X: 100, Y: 250})

	evs := q.Consume()
	if len(evs) != 2 {
		t.Fatalf("preview events = %d, want 2", len(evs))
	}
	for i, ev := range evs {
		if ev.Type != events.EventPreviewUpdated {
			t.Errorf("event %d type = %v, want EventPreviewUpdated", i, ev.Type)
		}
	}

	// Latest preview reflects the latest pointer position
	preview := evs[1].Payload.(*events.PreviewPayload)
	if want := (vmath.Vec3{X: 0, Y: 3, Z: -2}); !v3Close(preview.Force, want) {
		t.Errorf("latest preview force = %v, want %v", preview.Force, want)
	}

	start, current, active := tr.Track()
	if !active {
		t.Error("Track() active = false during live track")
	}
	if start != (vmath.Vec2{X: 100, Y: 400}) || current != (vmath.Vec2{X: 100, Y: 250}) {
		t.Errorf("Track() = %v, %v, want anchor and latest point", start, current)
	}
}

func TestTrackerRestartReanchors(t *testing.T) {
	tr, q := newTestTracker()

	tr.Start(vmath.Vec2{X: 0, Y: 0})
	tr.Start(vmath.Vec2{X: 100, Y: 500})
	tr.End(vmath.Vec2{X: 100, Y: 200})

	evs := q.Consume()
	if len(evs) != 1 {
		t.Fatalf("events after restart swipe = %d, want 1", len(evs))
	}
	// Force derives from the second anchor: dy = 3.0, clamped Y = 4.0
	shot := evs[0].Payload.(*events.ShotPayload)
	if want := (vmath.Vec3{X: 0, Y: 4, Z: -2}); !v3Close(shot.Force, want) {
		t.Errorf("committed force = %v, want %v", shot.Force, want)
	}
}

func TestTrackerEndWithoutTrack(t *testing.T) {
	tr, q := newTestTracker()

	tr.End(vmath.Vec2{X: 400, Y: 0})
	if evs := q.Consume(); evs != nil {
		t.Errorf("events after orphan End = %d, want none", len(evs))
	}
	if tr.Active() {
		t.Error("tracker active after orphan End")
	}
}
