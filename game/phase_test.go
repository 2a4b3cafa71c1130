package game

import "testing"

func TestPhaseTransitions(t *testing.T) {
	valid := map[Phase][]Phase{
		PhaseIdle:      {PhaseAiming, PhaseShooting},
		PhaseAiming:    {PhaseIdle, PhaseShooting},
		PhaseShooting:  {PhaseScored, PhaseResetting},
		PhaseScored:    {PhaseIdle},
		PhaseResetting: {PhaseIdle},
	}
	for from, tos := range valid {
		for _, to := range tos {
			if !CanTransition(from, to) {
				t.Errorf("CanTransition(%v, %v) = false, want true", from, to)
			}
		}
	}

	invalid := []struct {
		from, to Phase
	}{
		{PhaseIdle, PhaseIdle},
		{PhaseIdle, PhaseScored},
		{PhaseIdle, PhaseResetting},
		{PhaseAiming, PhaseScored},
		{PhaseShooting, PhaseShooting},
		{PhaseShooting, PhaseIdle},
		{PhaseShooting, PhaseAiming},
		{PhaseScored, PhaseShooting},
		{PhaseScored, PhaseResetting},
		{PhaseResetting, PhaseScored},
	}
	for _, tt := range invalid {
		if CanTransition(tt.from, tt.to) {
			t.Errorf("CanTransition(%v, %v) = true, want false", tt.from, tt.to)
		}
	}
}

func TestPhaseString(t *testing.T) {
	names := map[Phase]string{
		PhaseIdle:      "Idle",
		PhaseAiming:    "Aiming",
		PhaseShooting:  "Shooting",
		PhaseScored:    "Scored",
		PhaseResetting: "Resetting",
		Phase(99):      "Unknown",
	}
	for phase, want := range names {
		if got := phase.String(); got != want {
			t.Errorf("Phase(%d).String() = %q, want %q", int(phase), got, want)
		}
	}
}
