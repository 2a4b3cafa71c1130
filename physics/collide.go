package physics

import (
	"math"

	"github.com/lixenwraith/swish/vmath"
)

// ReflectSpherePlane resolves a moving sphere against an infinite plane.
// Position is clamped out of the surface; the normal velocity component
// reflects with restitution and the tangential component keeps friction
// of its magnitude. Returns (impact speed along the normal, hit).
func ReflectSpherePlane(pos, vel *vmath.Vec3, radius float64, plane Plane, restitution, friction float64) (float64, bool) {
	dist := vmath.V3Dot(plane.Normal, *pos) - plane.Offset
	if dist >= radius {
		return 0, false
	}

	// Push out of the surface
	*pos = vmath.V3Add(*pos, vmath.V3Scale(plane.Normal, radius-dist))

	vn := vmath.V3Dot(*vel, plane.Normal)
	if vn >= 0 {
		// Already separating, resting contact
		return 0, false
	}

	normalVel := vmath.V3Scale(plane.Normal, vn)
	tangentVel := vmath.V3Sub(*vel, normalVel)

	*vel = vmath.V3Add(
		vmath.V3Scale(normalVel, -restitution),
		vmath.V3Scale(tangentVel, friction),
	)
	return -vn, true
}

// ReflectSphereSphere resolves a moving sphere against a static sphere
// (rim tube samples). Overlap is pushed out along the center line and the
// approaching velocity reflects with restitution.
// Returns (impact speed along the normal, hit).
func ReflectSphereSphere(pos, vel *vmath.Vec3, radius float64, center vmath.Vec3, staticRadius, restitution float64) (float64, bool) {
	dx := pos.X - center.X
	dy := pos.Y - center.Y
	dz := pos.Z - center.Z

	distSq := dx*dx + dy*dy + dz*dz
	minDist := radius + staticRadius
	if distSq >= minDist*minDist || distSq == 0 {
		return 0, false
	}

	dist := math.Sqrt(distSq)
	invDist := 1.0 / dist
	nx, ny, nz := dx*invDist, dy*invDist, dz*invDist

	// Separate
	overlap := minDist - dist
	pos.X += nx * overlap
	pos.Y += ny * overlap
	pos.Z += nz * overlap

	vn := vel.X*nx + vel.Y*ny + vel.Z*nz
	if vn >= 0 {
		return 0, false
	}

	// Reflect and damp
	vel.X -= (1 + restitution) * vn * nx
	vel.Y -= (1 + restitution) * vn * ny
	vel.Z -= (1 + restitution) * vn * nz

	return -vn, true
}

// ReflectSphereBox resolves a moving sphere against a static axis-aligned
// box via the closest-point test. Returns (impact speed, hit).
func ReflectSphereBox(pos, vel *vmath.Vec3, radius float64, center vmath.Vec3, box Box, restitution float64) (float64, bool) {
	closest := vmath.Vec3{
		X: vmath.Clamp(pos.X, center.X-box.HalfX, center.X+box.HalfX),
		Y: vmath.Clamp(pos.Y, center.Y-box.HalfY, center.Y+box.HalfY),
		Z: vmath.Clamp(pos.Z, center.Z-box.HalfZ, center.Z+box.HalfZ),
	}

	delta := vmath.V3Sub(*pos, closest)
	distSq := vmath.V3MagSq(delta)
	if distSq >= radius*radius {
		return 0, false
	}

	var n vmath.Vec3
	var overlap float64
	if distSq > 0 {
		dist := math.Sqrt(distSq)
		n = vmath.V3Scale(delta, 1.0/dist)
		overlap = radius - dist
	} else {
		// Center inside the box: push out along the face the ball came from
		n = vmath.V3Normalize(vmath.V3Scale(*vel, -1))
		if n == (vmath.Vec3{}) {
			n = vmath.Vec3{Y: 1}
		}
		overlap = radius
	}

	*pos = vmath.V3Add(*pos, vmath.V3Scale(n, overlap))

	vn := vmath.V3Dot(*vel, n)
	if vn >= 0 {
		return 0, false
	}

	*vel = vmath.V3Sub(*vel, vmath.V3Scale(n, (1+restitution)*vn))
	return -vn, true
}
