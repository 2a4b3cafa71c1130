package physics

import (
	"github.com/lixenwraith/swish/vmath"
)

// PredictArc samples the pure ballistic flight of a launch for the aiming
// preview. Closed-form integration: p(t) = origin + v*t + g*t²/2 on the
// vertical axis only, no collision response.
//
// The returned slice always has exactly samples points. Once a sample dips
// below groundY the remaining slots stay at origin, so consumers can draw
// a fixed-size polyline without length checks.
func PredictArc(origin, velocity vmath.Vec3, gravity float64, samples int, step float64, groundY float64) []vmath.Vec3 {
	points := make([]vmath.Vec3, samples)
	for i := range points {
		points[i] = origin
	}

	for i := 0; i < samples; i++ {
		t := step * float64(i+1)
		p := vmath.Vec3{
			X: origin.X + velocity.X*t,
			Y: origin.Y + velocity.Y*t + 0.5*gravity*t*t,
			Z: origin.Z + velocity.Z*t,
		}
		if p.Y < groundY {
			break
		}
		points[i] = p
	}
	return points
}
