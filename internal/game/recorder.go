package game

import "context"

// Level outcomes in a LevelReport.
const (
	LevelFinished = "finished"
	LevelDied     = "died"
)

// LevelReport summarises one finished attempt at a level.
type LevelReport struct {
	RunID   string
	Level   int
	Attempt int
	Name    string
	Outcome string
	Score   int
	Ticks   int
	Stats   Stats
}

// Recorder stores run history. It is only called between levels and when
// the run ends, never mid-level.
type Recorder interface {
	StartRun(ctx context.Context, runID, player string, seed int64) error
	RecordLevel(ctx context.Context, r LevelReport) error
	FinishRun(ctx context.Context, runID, outcome string, score, level int) error
}
