package physics

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/swish/vmath"
)

// Body is an opaque handle to a world body
// Zero is never issued and means "no body"
type Body uint32

// ErrUnknownBody is returned for destroyed or never-issued handles
var ErrUnknownBody = errors.New("physics: unknown body")

// ErrStaticBody is returned when a motion operation targets static geometry
var ErrStaticBody = errors.New("physics: static body")

type bodyState struct {
	shape       Shape
	pos         vmath.Vec3
	vel         vmath.Vec3
	mass        float64
	restitution float64
	friction    float64
	dynamic     bool
	sleeping    bool
}

// Contact records a dynamic body impact resolved during Step
type Contact struct {
	Body    Body    // Dynamic body
	Against Body    // Static body hit
	Speed   float64 // Impact speed along the contact normal
}

// World is the in-process physics collaborator: bodies, gravity
// integration and collision of dynamic spheres against static geometry.
// Not safe for concurrent use; the session tick owns it.
type World struct {
	gravity  vmath.Vec3
	nextID   Body
	bodies   map[Body]*bodyState
	order    []Body // Insertion order, for deterministic stepping
	contacts []Contact
}

// NewWorld creates an empty world with the given gravity acceleration
func NewWorld(gravity vmath.Vec3) *World {
	return &World{
		gravity: gravity,
		bodies:  make(map[Body]*bodyState),
	}
}

// CreateDynamicBody registers a moving sphere. Mass must be positive
func (w *World) CreateDynamicBody(shape Shape, mass, restitution, friction float64) Body {
	if mass <= 0 {
		mass = 1
	}
	return w.add(&bodyState{
		shape:       shape,
		mass:        mass,
		restitution: restitution,
		friction:    friction,
		dynamic:     true,
	})
}

// CreateStaticBody registers immovable geometry (ground, backboard, rim)
func (w *World) CreateStaticBody(shape Shape) Body {
	return w.add(&bodyState{shape: shape})
}

func (w *World) add(b *bodyState) Body {
	w.nextID++
	w.bodies[w.nextID] = b
	w.order = append(w.order, w.nextID)
	return w.nextID
}

// Destroy removes a body. Destroying an unknown handle is a no-op
func (w *World) Destroy(b Body) {
	if _, ok := w.bodies[b]; !ok {
		return
	}
	delete(w.bodies, b)
	for i, id := range w.order {
		if id == b {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}

func (w *World) lookup(b Body) (*bodyState, error) {
	s, ok := w.bodies[b]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownBody, b)
	}
	return s, nil
}

// SetPosition teleports a body
func (w *World) SetPosition(b Body, p vmath.Vec3) error {
	s, err := w.lookup(b)
	if err != nil {
		return err
	}
	s.pos = p
	return nil
}

// SetVelocity overwrites a dynamic body's velocity
func (w *World) SetVelocity(b Body, v vmath.Vec3) error {
	s, err := w.lookup(b)
	if err != nil {
		return err
	}
	if !s.dynamic {
		return fmt.Errorf("%w: %d", ErrStaticBody, b)
	}
	s.vel = v
	return nil
}

// Position returns a body's current position
func (w *World) Position(b Body) (vmath.Vec3, error) {
	s, err := w.lookup(b)
	if err != nil {
		return vmath.Vec3{}, err
	}
	return s.pos, nil
}

// Velocity returns a body's current velocity
func (w *World) Velocity(b Body) (vmath.Vec3, error) {
	s, err := w.lookup(b)
	if err != nil {
		return vmath.Vec3{}, err
	}
	return s.vel, nil
}

// ApplyImpulse adds impulse/mass to a dynamic body's velocity
// A sleeping body wakes
func (w *World) ApplyImpulse(b Body, impulse vmath.Vec3) error {
	s, err := w.lookup(b)
	if err != nil {
		return err
	}
	if !s.dynamic {
		return fmt.Errorf("%w: %d", ErrStaticBody, b)
	}
	s.vel = vmath.V3Add(s.vel, vmath.V3Scale(impulse, 1.0/s.mass))
	s.sleeping = false
	return nil
}

// SetSleeping puts a dynamic body to sleep or wakes it
// Sleeping bodies skip integration and collision entirely; positions
// set while asleep hold until the body wakes
func (w *World) SetSleeping(b Body, sleeping bool) error {
	s, err := w.lookup(b)
	if err != nil {
		return err
	}
	if !s.dynamic {
		return fmt.Errorf("%w: %d", ErrStaticBody, b)
	}
	s.sleeping = sleeping
	return nil
}

// Step advances every dynamic body by dt: semi-implicit Euler
// (gravity into velocity, velocity into position) followed by collision
// resolution against all static bodies. Impacts are queued as contacts
// until DrainContacts
func (w *World) Step(dt time.Duration) {
	dtSec := dt.Seconds()
	if dtSec <= 0 {
		return
	}

	for _, id := range w.order {
		b := w.bodies[id]
		if b == nil || !b.dynamic || b.sleeping {
			continue
		}

		b.vel = vmath.V3Add(b.vel, vmath.V3Scale(w.gravity, dtSec))
		b.pos = vmath.V3Add(b.pos, vmath.V3Scale(b.vel, dtSec))

		sphere, ok := b.shape.(Sphere)
		if !ok {
			continue
		}

		for _, sid := range w.order {
			s := w.bodies[sid]
			if s == nil || s.dynamic {
				continue
			}
			w.collide(id, b, sphere.Radius, sid, s)
		}
	}
}

func (w *World) collide(id Body, b *bodyState, radius float64, sid Body, s *bodyState) {
	var speed float64
	var hit bool

	switch shape := s.shape.(type) {
	case Plane:
		speed, hit = ReflectSpherePlane(&b.pos, &b.vel, radius, shape, b.restitution, b.friction)
	case Sphere:
		speed, hit = ReflectSphereSphere(&b.pos, &b.vel, radius, s.pos, shape.Radius, b.restitution)
	case Box:
		speed, hit = ReflectSphereBox(&b.pos, &b.vel, radius, s.pos, shape, b.restitution)
	}

	if hit {
		w.contacts = append(w.contacts, Contact{Body: id, Against: sid, Speed: speed})
	}
}

// DrainContacts returns impacts accumulated since the last drain and clears them
func (w *World) DrainContacts() []Contact {
	if len(w.contacts) == 0 {
		return nil
	}
	out := w.contacts
	w.contacts = nil
	return out
}
