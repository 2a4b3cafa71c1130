package game

import (
	"testing"

	"github.com/lixenwraith/swish/config"
	"github.com/lixenwraith/swish/constants"
	"github.com/lixenwraith/swish/physics"
	"github.com/lixenwraith/swish/vmath"
)

func newTestHoop(t *testing.T) *Hoop {
	t.Helper()
	cfg := config.Default()
	w := physics.NewWorld(vmath.Vec3{Y: cfg.Court.Gravity})
	h, err := NewHoop(w, cfg.Court)
	if err != nil {
		t.Fatalf("NewHoop() error = %v", err)
	}
	return h
}

func TestCheckBasket(t *testing.T) {
	h := newTestHoop(t)
	center := h.RimCenter()

	tests := []struct {
		name string
		p    vmath.Vec3
		want bool
	}{
		{"exact rim center", center, true},
		{"just inside the trigger radius", vmath.V3Add(center, vmath.Vec3{X: h.TriggerRadius() * 0.99}), true},
		{"just outside the trigger radius", vmath.V3Add(center, vmath.Vec3{X: h.TriggerRadius() + 1e-6}), false},
		{"at the rim radius", vmath.V3Add(center, vmath.Vec3{Z: h.RimRadius()}), false},
		{"above the trigger slab", vmath.V3Add(center, vmath.Vec3{Y: h.TriggerHalfHeight() + 1e-6}), false},
		{"below the trigger slab", vmath.V3Add(center, vmath.Vec3{Y: -(h.TriggerHalfHeight() + 1e-6)}), false},
		{"off-center within the slab", vmath.V3Add(center, vmath.Vec3{X: -h.TriggerRadius() * 0.5, Y: h.TriggerHalfHeight() * 0.9}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := h.CheckBasket(tt.p); got != tt.want {
				t.Errorf("CheckBasket(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestHoopGeometry(t *testing.T) {
	h := newTestHoop(t)

	if got, want := h.TriggerRadius(), h.RimRadius()*constants.TriggerZoneScale; got != want {
		t.Errorf("TriggerRadius() = %v, want %v", got, want)
	}
	if got := len(h.RimBodies()); got != constants.RimSampleCount {
		t.Errorf("rim sample bodies = %d, want %d", got, constants.RimSampleCount)
	}
	if h.BackboardBody() == 0 {
		t.Error("BackboardBody() = 0, want a live handle")
	}
	if h.BackboardCenter().Z >= h.RimCenter().Z {
		t.Errorf("backboard Z = %v, want behind rim Z %v", h.BackboardCenter().Z, h.RimCenter().Z)
	}
	if h.BackboardCenter().Y <= h.RimCenter().Y {
		t.Errorf("backboard Y = %v, want above rim Y %v", h.BackboardCenter().Y, h.RimCenter().Y)
	}
}
