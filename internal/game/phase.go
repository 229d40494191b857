package game

// Phase is where the run stands.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseGameOver
	PhaseWon
	PhaseFailed
	PhaseQuit
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	case PhaseWon:
		return "won"
	case PhaseFailed:
		return "failed"
	case PhaseQuit:
		return "quit"
	}
	return "unknown"
}

// Over reports whether the run has ended.
func (p Phase) Over() bool { return p >= PhaseGameOver }
