package combat

// State is the battle session lifecycle state. A session starts in
// StateNotStarted, runs in StateInProgress, and ends in exactly one of the
// three terminal states.
type State int

const (
	StateNotStarted State = iota
	StateInProgress
	StateHeroVictory
	StateEnemyVictory
	StateTimeout
)

// String returns a human-readable state label.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not started"
	case StateInProgress:
		return "in progress"
	case StateHeroVictory:
		return "hero victory"
	case StateEnemyVictory:
		return "enemy victory"
	case StateTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state ends the battle.
//
// Postcondition: Returns true iff s is HeroVictory, EnemyVictory, or Timeout.
func (s State) Terminal() bool {
	return s == StateHeroVictory || s == StateEnemyVictory || s == StateTimeout
}

// Result is the outcome of a completed battle session.
//
// Victory is true only for StateHeroVictory; EnemyVictory and Timeout both
// report as defeat at the outcome level, but State keeps them distinct for
// narration and reporting.
type Result struct {
	Victory bool
	State   State
	Turns   int
}
