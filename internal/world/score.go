package world

// ScoreTable holds the point deltas applied by scoring events.
type ScoreTable struct {
	CitizenSaved      int
	CitizenLost       int
	DumbZombieKilled  int
	SmartZombieKilled int
	GoodiePicked      int
}

// DefaultScoreTable returns the stock point values.
func DefaultScoreTable() ScoreTable {
	return ScoreTable{
		CitizenSaved:      1000,
		CitizenLost:       -1000,
		DumbZombieKilled:  1000,
		SmartZombieKilled: 2000,
		GoodiePicked:      50,
	}
}

// Progress is the run-wide state that survives level transitions. The
// controller owns it; the world reads and updates it in place.
type Progress struct {
	Level int
	Lives int
	Score int
}
