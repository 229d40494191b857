package world

import "fmt"

// Status is the outcome reported by Init and Tick.
type Status int

const (
	StatusPlayerDied Status = iota
	StatusContinue
	StatusPlayerWon
	StatusFinishedLevel
	StatusLevelError
)

func (s Status) String() string {
	switch s {
	case StatusPlayerDied:
		return "player_died"
	case StatusContinue:
		return "continue"
	case StatusPlayerWon:
		return "player_won"
	case StatusFinishedLevel:
		return "finished_level"
	case StatusLevelError:
		return "level_error"
	}
	return "unknown"
}

// formatScore zero-pads to six characters, sign included.
func formatScore(score int) string {
	if score < 0 {
		return fmt.Sprintf("-%05d", -score)
	}
	return fmt.Sprintf("%06d", score)
}

func (w *World) refreshStatusLine() {
	var vaccines, flames, mines, infection int
	if p := w.player; p != nil {
		vaccines, flames, mines, infection = p.vaccines, p.flames, p.mines, p.infection
	}
	w.statusLine = fmt.Sprintf("Score: %s  Level: %d  Lives: %d  Vaccines: %d  Flames: %d  Mines: %d  Infected: %d",
		formatScore(w.progress.Score), w.progress.Level, w.progress.Lives,
		vaccines, flames, mines, infection)
}
