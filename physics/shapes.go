package physics

import (
	"github.com/lixenwraith/swish/vmath"
)

// Shape is the collision geometry attached to a body
// The world resolves dynamic spheres against static planes, boxes and spheres
type Shape interface {
	isShape()
}

// Sphere is a ball or a rim tube sample
type Sphere struct {
	Radius float64
}

func (Sphere) isShape() {}

// Box is an axis-aligned block centered on the body position (backboard)
type Box struct {
	HalfX, HalfY, HalfZ float64
}

func (Box) isShape() {}

// Plane is an infinite surface of points p with Dot(Normal, p) == Offset
// The ground is {Normal: (0,1,0), Offset: 0}
type Plane struct {
	Normal vmath.Vec3
	Offset float64
}

func (Plane) isShape() {}
