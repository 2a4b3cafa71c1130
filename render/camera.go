package render

import (
	"math"

	"github.com/lixenwraith/swish/vmath"
)

const nearPlane = 0.5

// Camera projects world space onto the cell grid. The eye sits behind
// and above the shooting spot, pitched down toward the hoop so the
// floor stays on screen.
type Camera struct {
	X, Y, Z float64 // eye position
	Pitch   float64 // downward tilt in radians
	Focal   float64 // projection strength relative to screen height
	Aspect  float64 // cells are roughly twice as tall as they are wide
}

func DefaultCamera() Camera {
	return Camera{X: 0, Y: 2.6, Z: 7.5, Pitch: 12 * math.Pi / 180, Focal: 1.2, Aspect: 2.0}
}

// view transforms a world point into camera space: x right, y up,
// depth positive in front of the eye.
func (c Camera) view(p vmath.Vec3) (x, y, depth float64) {
	xv := p.X - c.X
	yv := p.Y - c.Y
	zv := p.Z - c.Z

	sin, cos := math.Sin(c.Pitch), math.Cos(c.Pitch)
	yc := yv*cos - zv*sin
	zc := yv*sin + zv*cos
	return xv, yc, -zc
}

// Project maps a world point to cell coordinates. ok is false when the
// point lies behind the near plane or outside the screen.
func (c Camera) Project(p vmath.Vec3, width, height int) (int, int, bool) {
	xv, yv, depth := c.view(p)
	if depth < nearPlane {
		return 0, 0, false
	}

	scale := float64(height) * c.Focal / depth
	x := float64(width)/2 + xv*scale*c.Aspect
	y := float64(height)/2 - yv*scale

	xi := int(math.Round(x))
	yi := int(math.Round(y))
	if xi < 0 || xi >= width || yi < 0 || yi >= height {
		return xi, yi, false
	}
	return xi, yi, true
}

// Depth returns the distance along the view axis, used to attenuate
// glyph size and color with distance.
func (c Camera) Depth(p vmath.Vec3) float64 {
	_, _, depth := c.view(p)
	return depth
}
