package persist

import (
	"context"
	"time"
)

// Run outcomes as stored in game_runs.outcome.
const (
	OutcomeRunning = "running"
	OutcomeWon     = "won"
	OutcomeLost    = "game_over"
	OutcomeFailed  = "failed"
	OutcomeQuit    = "quit"
)

type RunRow struct {
	ID           string
	Player       string
	Seed         int64
	StartedAt    time.Time
	FinishedAt   *time.Time
	Outcome      string
	Score        int
	LevelReached int
}

type RunRepo struct {
	db *DB
}

func NewRunRepo(db *DB) *RunRepo {
	return &RunRepo{db: db}
}

func (r *RunRepo) Create(ctx context.Context, id, player string, seed int64) error {
	_, err := r.db.Pool.Exec(ctx,
		`INSERT INTO game_runs (id, player, seed) VALUES ($1, $2, $3)`,
		id, player, seed,
	)
	return err
}

// Finish closes a run with its final outcome.
func (r *RunRepo) Finish(ctx context.Context, id, outcome string, score, levelReached int) error {
	_, err := r.db.Pool.Exec(ctx,
		`UPDATE game_runs
		 SET finished_at = NOW(), outcome = $2, score = $3, level_reached = $4
		 WHERE id = $1`,
		id, outcome, score, levelReached,
	)
	return err
}

// Top returns the best finished runs, highest score first.
func (r *RunRepo) Top(ctx context.Context, limit int) ([]RunRow, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT id, player, seed, started_at, finished_at, outcome, score, level_reached
		 FROM game_runs
		 WHERE finished_at IS NOT NULL
		 ORDER BY score DESC, finished_at ASC
		 LIMIT $1`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunRow
	for rows.Next() {
		var row RunRow
		if err := rows.Scan(
			&row.ID, &row.Player, &row.Seed, &row.StartedAt, &row.FinishedAt,
			&row.Outcome, &row.Score, &row.LevelReached,
		); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
