package game

// Score is the running score line for one session
type Score struct {
	Points int // Made baskets this session
	Streak int // Consecutive makes, zeroed on a miss
	Best   int // Highest Points persisted across runs
}
