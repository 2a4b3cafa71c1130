package game

import (
	"math"

	"github.com/lixenwraith/swish/config"
	"github.com/lixenwraith/swish/constants"
	"github.com/lixenwraith/swish/physics"
	"github.com/lixenwraith/swish/vmath"
)

// Hoop is the static goal: rim ring, backboard and the scoring cylinder
// Geometry is immutable after construction
type Hoop struct {
	rimCenter     vmath.Vec3
	rimRadius     float64
	triggerRadius float64
	triggerHalf   float64

	boardCenter vmath.Vec3
	boardHalf   vmath.Vec3

	rimBodies []physics.Body
	boardBody physics.Body
}

// NewHoop builds the hoop geometry and registers its static bodies
func NewHoop(space Space, cfg config.CourtConfig) (*Hoop, error) {
	h := &Hoop{
		rimCenter:     vmath.Vec3{X: cfg.RimX, Y: cfg.RimY, Z: cfg.RimZ},
		rimRadius:     cfg.RimRadius,
		triggerRadius: cfg.RimRadius * constants.TriggerZoneScale,
		triggerHalf:   cfg.TriggerHalfHeight,
	}

	// Rim ring approximated by evenly spaced sample spheres
	for i := 0; i < constants.RimSampleCount; i++ {
		angle := 2 * math.Pi * float64(i) / constants.RimSampleCount
		p := vmath.Vec3{
			X: h.rimCenter.X + math.Cos(angle)*h.rimRadius,
			Y: h.rimCenter.Y,
			Z: h.rimCenter.Z + math.Sin(angle)*h.rimRadius,
		}
		id := space.CreateStaticBody(physics.Sphere{Radius: constants.RimTubeRadius})
		if err := space.SetPosition(id, p); err != nil {
			return nil, err
		}
		h.rimBodies = append(h.rimBodies, id)
	}

	// Backboard behind and above the rim
	h.boardCenter = vmath.Vec3{
		X: h.rimCenter.X,
		Y: h.rimCenter.Y + constants.BackboardOffsetY,
		Z: h.rimCenter.Z + constants.BackboardOffsetZ,
	}
	h.boardHalf = vmath.Vec3{
		X: cfg.BackboardWidth / 2,
		Y: cfg.BackboardHeight / 2,
		Z: cfg.BackboardThickness / 2,
	}
	h.boardBody = space.CreateStaticBody(physics.Box{
		HalfX: h.boardHalf.X,
		HalfY: h.boardHalf.Y,
		HalfZ: h.boardHalf.Z,
	})
	if err := space.SetPosition(h.boardBody, h.boardCenter); err != nil {
		return nil, err
	}

	return h, nil
}

// CheckBasket tests whether p is inside the scoring cylinder
// Point-in-volume per frame: a ball crossing the whole cylinder between
// two ticks is not detected, which stays negligible at 60 Hz for the
// speeds this game produces
func (h *Hoop) CheckBasket(p vmath.Vec3) bool {
	if math.Abs(p.Y-h.rimCenter.Y) > h.triggerHalf {
		return false
	}
	dx := p.X - h.rimCenter.X
	dz := p.Z - h.rimCenter.Z
	return dx*dx+dz*dz <= h.triggerRadius*h.triggerRadius
}

// RimCenter returns the rim ring center
func (h *Hoop) RimCenter() vmath.Vec3 {
	return h.rimCenter
}

// RimRadius returns the rim ring radius
func (h *Hoop) RimRadius() float64 {
	return h.rimRadius
}

// TriggerRadius returns the scoring cylinder radius
func (h *Hoop) TriggerRadius() float64 {
	return h.triggerRadius
}

// TriggerHalfHeight returns half the scoring cylinder height
func (h *Hoop) TriggerHalfHeight() float64 {
	return h.triggerHalf
}

// BackboardCenter returns the backboard center
func (h *Hoop) BackboardCenter() vmath.Vec3 {
	return h.boardCenter
}

// BackboardHalf returns the backboard half extents
func (h *Hoop) BackboardHalf() vmath.Vec3 {
	return h.boardHalf
}

// RimBodies returns the static rim sample handles
func (h *Hoop) RimBodies() []physics.Body {
	return h.rimBodies
}

// BackboardBody returns the static backboard handle
func (h *Hoop) BackboardBody() physics.Body {
	return h.boardBody
}
