package game

import (
	"time"

	"github.com/lixenwraith/swish/physics"
	"github.com/lixenwraith/swish/vmath"
)

// Space is the physics surface the session plays on
// *physics.World satisfies it; tests substitute fakes to inject
// body placement failures
type Space interface {
	CreateDynamicBody(shape physics.Shape, mass, restitution, friction float64) physics.Body
	CreateStaticBody(shape physics.Shape) physics.Body
	Destroy(b physics.Body)

	SetPosition(b physics.Body, p vmath.Vec3) error
	SetVelocity(b physics.Body, v vmath.Vec3) error
	SetSleeping(b physics.Body, sleeping bool) error
	Position(b physics.Body) (vmath.Vec3, error)
	Velocity(b physics.Body) (vmath.Vec3, error)
	ApplyImpulse(b physics.Body, impulse vmath.Vec3) error

	Step(dt time.Duration)
	DrainContacts() []physics.Contact
}
