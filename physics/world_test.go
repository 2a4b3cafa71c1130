package physics

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/swish/vmath"
)

func newTestWorld() *World {
	return NewWorld(vmath.Vec3{Y: -9.8})
}

// TestStepIntegratesGravity verifies semi-implicit Euler over one second
func TestStepIntegratesGravity(t *testing.T) {
	w := newTestWorld()
	ball := w.CreateDynamicBody(Sphere{Radius: 0.12}, 0.62, 0.75, 0.92)
	if err := w.SetPosition(ball, vmath.Vec3{Y: 100}); err != nil {
		t.Fatalf("SetPosition: %v", err)
	}

	w.Step(time.Second)

	vel, _ := w.Velocity(ball)
	if math.Abs(vel.Y+9.8) > 1e-9 {
		t.Errorf("vel.Y after 1s = %v, want -9.8", vel.Y)
	}
	pos, _ := w.Position(ball)
	if math.Abs(pos.Y-90.2) > 1e-9 {
		t.Errorf("pos.Y after 1s = %v, want 90.2", pos.Y)
	}
}

// TestStepGroundBounce verifies the falling ball reflects off the ground plane
func TestStepGroundBounce(t *testing.T) {
	w := newTestWorld()
	w.CreateStaticBody(Plane{Normal: vmath.Vec3{Y: 1}, Offset: 0})
	ball := w.CreateDynamicBody(Sphere{Radius: 0.12}, 0.62, 0.75, 0.92)
	w.SetPosition(ball, vmath.Vec3{Y: 0.13})
	w.SetVelocity(ball, vmath.Vec3{X: 1, Y: -5})

	w.Step(16 * time.Millisecond)

	vel, _ := w.Velocity(ball)
	if vel.Y <= 0 {
		t.Errorf("vel.Y after bounce = %v, want positive", vel.Y)
	}
	pos, _ := w.Position(ball)
	if pos.Y < 0.12-1e-9 {
		t.Errorf("pos.Y after bounce = %v, ball inside ground", pos.Y)
	}

	contacts := w.DrainContacts()
	if len(contacts) != 1 {
		t.Fatalf("contacts = %d, want 1", len(contacts))
	}
	if contacts[0].Body != ball {
		t.Errorf("contact body = %d, want %d", contacts[0].Body, ball)
	}
	if contacts[0].Speed <= 0 {
		t.Errorf("contact speed = %v, want positive", contacts[0].Speed)
	}

	if again := w.DrainContacts(); again != nil {
		t.Errorf("second drain returned %d contacts, want none", len(again))
	}
}

// TestApplyImpulseScalesByMass verifies impulse/mass velocity change
func TestApplyImpulseScalesByMass(t *testing.T) {
	w := newTestWorld()
	ball := w.CreateDynamicBody(Sphere{Radius: 0.12}, 2.0, 0.75, 0.92)

	if err := w.ApplyImpulse(ball, vmath.Vec3{X: 2, Y: 4}); err != nil {
		t.Fatalf("ApplyImpulse: %v", err)
	}

	vel, _ := w.Velocity(ball)
	if vel.X != 1 || vel.Y != 2 {
		t.Errorf("vel = %v, want {1 2 0}", vel)
	}
}

// TestBodyHandleErrors verifies unknown and static handle failures
func TestBodyHandleErrors(t *testing.T) {
	w := newTestWorld()
	wall := w.CreateStaticBody(Box{HalfX: 1, HalfY: 1, HalfZ: 1})

	if err := w.SetVelocity(wall, vmath.Vec3{X: 1}); !errors.Is(err, ErrStaticBody) {
		t.Errorf("SetVelocity on static = %v, want ErrStaticBody", err)
	}
	if err := w.ApplyImpulse(wall, vmath.Vec3{X: 1}); !errors.Is(err, ErrStaticBody) {
		t.Errorf("ApplyImpulse on static = %v, want ErrStaticBody", err)
	}

	ball := w.CreateDynamicBody(Sphere{Radius: 0.12}, 0.62, 0.75, 0.92)
	w.Destroy(ball)

	if _, err := w.Position(ball); !errors.Is(err, ErrUnknownBody) {
		t.Errorf("Position after Destroy = %v, want ErrUnknownBody", err)
	}
	if err := w.SetPosition(ball, vmath.Vec3{}); !errors.Is(err, ErrUnknownBody) {
		t.Errorf("SetPosition after Destroy = %v, want ErrUnknownBody", err)
	}

	// Destroying an unknown handle is a no-op
	w.Destroy(Body(999))
}

// TestStaticBodiesNeverMove verifies gravity skips static geometry
func TestStaticBodiesNeverMove(t *testing.T) {
	w := newTestWorld()
	rim := w.CreateStaticBody(Sphere{Radius: 0.02})
	w.SetPosition(rim, vmath.Vec3{Y: 3.05})

	w.Step(time.Second)

	pos, _ := w.Position(rim)
	if pos.Y != 3.05 {
		t.Errorf("static pos.Y = %v, want 3.05", pos.Y)
	}
}

// TestSleepingBodyHoldsStill verifies sleep skips integration and an
// impulse wakes the body
func TestSleepingBodyHoldsStill(t *testing.T) {
	w := newTestWorld()
	ball := w.CreateDynamicBody(Sphere{Radius: 0.12}, 0.62, 0.75, 0.92)
	w.SetPosition(ball, vmath.Vec3{Y: 1.5})

	if err := w.SetSleeping(ball, true); err != nil {
		t.Fatalf("SetSleeping() error = %v", err)
	}
	w.Step(time.Second)

	pos, _ := w.Position(ball)
	if pos.Y != 1.5 {
		t.Errorf("sleeping pos.Y after step = %v, want 1.5", pos.Y)
	}

	// Impulse wakes: next step integrates again
	w.ApplyImpulse(ball, vmath.Vec3{Y: 0.62})
	w.Step(100 * time.Millisecond)

	pos, _ = w.Position(ball)
	if pos.Y <= 1.5 {
		t.Errorf("woken pos.Y after step = %v, want above 1.5", pos.Y)
	}

	ground := w.CreateStaticBody(Plane{Normal: vmath.Vec3{Y: 1}})
	if err := w.SetSleeping(ground, true); !errors.Is(err, ErrStaticBody) {
		t.Errorf("SetSleeping on static = %v, want ErrStaticBody", err)
	}
}
