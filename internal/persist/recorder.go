package persist

import (
	"context"

	"github.com/zdash/zombiedash/internal/game"
)

// Recorder stores run history through the run and level repos.
type Recorder struct {
	runs   *RunRepo
	levels *LevelResultRepo
}

var _ game.Recorder = (*Recorder)(nil)

func NewRecorder(db *DB) *Recorder {
	return &Recorder{runs: NewRunRepo(db), levels: NewLevelResultRepo(db)}
}

func (r *Recorder) StartRun(ctx context.Context, runID, player string, seed int64) error {
	return r.runs.Create(ctx, runID, player, seed)
}

func (r *Recorder) RecordLevel(ctx context.Context, rep game.LevelReport) error {
	return r.levels.Insert(ctx, LevelResultRow{
		RunID:         rep.RunID,
		Level:         rep.Level,
		Attempt:       rep.Attempt,
		Name:          rep.Name,
		Outcome:       rep.Outcome,
		Score:         rep.Score,
		Ticks:         rep.Ticks,
		CitizensSaved: rep.Stats.CitizensSaved,
		CitizensLost:  rep.Stats.CitizensLost,
		ZombiesKilled: rep.Stats.ZombiesKilled,
	})
}

func (r *Recorder) FinishRun(ctx context.Context, runID, outcome string, score, level int) error {
	return r.runs.Finish(ctx, runID, outcome, score, level)
}
