package game

import (
	"testing"
	"time"

	"github.com/lixenwraith/swish/config"
	"github.com/lixenwraith/swish/physics"
	"github.com/lixenwraith/swish/vmath"
)

func newTestBall(t *testing.T) (*Ball, *physics.World) {
	t.Helper()
	cfg := config.Default()
	w := physics.NewWorld(vmath.Vec3{Y: cfg.Court.Gravity})
	ball, err := NewBall(w, cfg.Court)
	if err != nil {
		t.Fatalf("NewBall() error = %v", err)
	}
	return ball, w
}

func TestBallResetIdempotent(t *testing.T) {
	ball, _ := newTestBall(t)

	p := vmath.Vec3{X: 1, Y: 2, Z: 3}
	for i := 1; i <= 2; i++ {
		if err := ball.ResetTo(p); err != nil {
			t.Fatalf("ResetTo() call %d error = %v", i, err)
		}
		if got := ball.Position(); got != p {
			t.Errorf("Position() after reset %d = %v, want %v", i, got, p)
		}
		if got := ball.Velocity(); got != (vmath.Vec3{}) {
			t.Errorf("Velocity() after reset %d = %v, want zero", i, got)
		}
	}
}

func TestBallRestsUntilLaunched(t *testing.T) {
	ball, w := newTestBall(t)

	w.Step(time.Second)
	if got := ball.Position(); got != ball.Origin() {
		t.Errorf("resting Position() = %v, want origin %v", got, ball.Origin())
	}
	if ball.InFlight() {
		t.Error("InFlight() = true before any launch")
	}

	if err := ball.Launch(vmath.Vec3{Y: 3.1}); err != nil {
		t.Fatalf("Launch() error = %v", err)
	}
	if !ball.InFlight() {
		t.Error("InFlight() = false after Launch")
	}

	w.Step(100 * time.Millisecond)
	if got := ball.Position(); got.Y <= ball.Origin().Y {
		t.Errorf("Position().Y after launch = %v, want above %v", got.Y, ball.Origin().Y)
	}
}

func TestBallDisposeIdempotent(t *testing.T) {
	ball, _ := newTestBall(t)

	ball.Dispose()
	ball.Dispose()

	if got := ball.Position(); got != ball.Origin() {
		t.Errorf("disposed Position() = %v, want origin fallback", got)
	}
	if got := ball.Velocity(); got != (vmath.Vec3{}) {
		t.Errorf("disposed Velocity() = %v, want zero", got)
	}
	if err := ball.Launch(vmath.Vec3{Y: 1}); err != nil {
		t.Errorf("Launch() after dispose = %v, want nil no-op", err)
	}
	if err := ball.Reset(); err != nil {
		t.Errorf("Reset() after dispose = %v, want nil no-op", err)
	}
}
