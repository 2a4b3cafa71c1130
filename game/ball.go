package game

import (
	"github.com/lixenwraith/swish/config"
	"github.com/lixenwraith/swish/physics"
	"github.com/lixenwraith/swish/vmath"
)

// Ball wraps the dynamic body thrown at the hoop
// All methods run on the session tick
type Ball struct {
	space  Space
	body   physics.Body
	origin vmath.Vec3
	radius float64

	inFlight bool
	disposed bool
}

// NewBall creates the ball body and places it at its origin
func NewBall(space Space, cfg config.CourtConfig) (*Ball, error) {
	b := &Ball{
		space:  space,
		origin: vmath.Vec3{X: cfg.BallOriginX, Y: cfg.BallOriginY, Z: cfg.BallOriginZ},
		radius: cfg.BallRadius,
	}
	b.body = space.CreateDynamicBody(
		physics.Sphere{Radius: cfg.BallRadius},
		cfg.BallMass, cfg.BallRestitution, cfg.BallFriction,
	)
	if err := b.Reset(); err != nil {
		return nil, err
	}
	return b, nil
}

// Launch applies the shot impulse and marks the ball in flight
// The impulse wakes a resting body
func (b *Ball) Launch(force vmath.Vec3) error {
	if b.disposed {
		return nil
	}
	if err := b.space.ApplyImpulse(b.body, force); err != nil {
		return err
	}
	b.inFlight = true
	return nil
}

// Reset teleports the ball back to its origin with zero velocity
// Idempotent: resetting a resting ball is a no-op in effect
func (b *Ball) Reset() error {
	return b.ResetTo(b.origin)
}

// ResetTo teleports the ball to p with zero velocity and puts the
// body to sleep so it rests in place until the next launch
func (b *Ball) ResetTo(p vmath.Vec3) error {
	if b.disposed {
		return nil
	}
	if err := b.space.SetPosition(b.body, p); err != nil {
		return err
	}
	if err := b.space.SetVelocity(b.body, vmath.Vec3{}); err != nil {
		return err
	}
	if err := b.space.SetSleeping(b.body, true); err != nil {
		return err
	}
	b.inFlight = false
	return nil
}

// Position returns the ball center, or the origin once disposed
func (b *Ball) Position() vmath.Vec3 {
	if b.disposed {
		return b.origin
	}
	p, err := b.space.Position(b.body)
	if err != nil {
		return b.origin
	}
	return p
}

// Velocity returns the ball velocity, zero once disposed
func (b *Ball) Velocity() vmath.Vec3 {
	if b.disposed {
		return vmath.Vec3{}
	}
	v, err := b.space.Velocity(b.body)
	if err != nil {
		return vmath.Vec3{}
	}
	return v
}

// InFlight reports whether the ball has been launched since its last reset
func (b *Ball) InFlight() bool {
	return b.inFlight
}

// Origin returns the resting position the ball resets to
func (b *Ball) Origin() vmath.Vec3 {
	return b.origin
}

// Radius returns the ball collision radius
func (b *Ball) Radius() float64 {
	return b.radius
}

// Body returns the physics handle for contact attribution
func (b *Ball) Body() physics.Body {
	return b.body
}

// Dispose drops the body handle; further calls are no-ops
func (b *Ball) Dispose() {
	if b.disposed {
		return
	}
	b.space.Destroy(b.body)
	b.disposed = true
	b.body = 0
}
