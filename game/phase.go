package game

// Phase is the shot lifecycle state
// Exactly one per Session, mutated only on the session tick
type Phase int

const (
	// PhaseIdle: ball at origin, waiting for a gesture
	PhaseIdle Phase = iota

	// PhaseAiming: a live gesture is previewing a trajectory
	// Annotation only; commits are accepted from Idle and Aiming alike
	PhaseAiming

	// PhaseShooting: ball in flight, basket and dead-ball checks active
	PhaseShooting

	// PhaseScored: basket made, reset task pending
	PhaseScored

	// PhaseResetting: shot ended without a score, reset task pending
	PhaseResetting
)

// String returns the phase name for logs and debugging
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseAiming:
		return "Aiming"
	case PhaseShooting:
		return "Shooting"
	case PhaseScored:
		return "Scored"
	case PhaseResetting:
		return "Resetting"
	default:
		return "Unknown"
	}
}

// CanTransition checks if a phase transition is valid
func CanTransition(from, to Phase) bool {
	validTransitions := map[Phase][]Phase{
		PhaseIdle:      {PhaseAiming, PhaseShooting},
		PhaseAiming:    {PhaseIdle, PhaseShooting},
		PhaseShooting:  {PhaseScored, PhaseResetting},
		PhaseScored:    {PhaseIdle},
		PhaseResetting: {PhaseIdle},
	}

	for _, phase := range validTransitions[from] {
		if phase == to {
			return true
		}
	}
	return false
}
