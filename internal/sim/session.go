package sim

// Phase is the top-level state of the game state machine. The initial
// phase is Menu; it is never re-entered once a session starts.
type Phase int

const (
	Menu Phase = iota
	Playing
	GameOver
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case Menu:
		return "menu"
	case Playing:
		return "playing"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// SessionState holds the mutable per-session scalars. It is replaced
// wholesale on restart. Score is monotonically non-decreasing within a
// session; only a restart resets it.
type SessionState struct {
	Score         int
	scoreClock    float64 // accumulates toward the next periodic increment
	lastMilestone int     // highest milestone index already fired
	Elapsed       float64 // total simulated seconds spent in the Playing phase
	MaxDifficulty float64 // peak difficulty reached, for run history
}
