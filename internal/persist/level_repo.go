package persist

import (
	"context"
	"fmt"
)

// LevelResultRow is one attempt at one level within a run.
type LevelResultRow struct {
	RunID         string
	Level         int
	Attempt       int
	Name          string
	Outcome       string // "finished" or "died"
	Score         int
	Ticks         int
	CitizensSaved int
	CitizensLost  int
	ZombiesKilled int
}

type LevelResultRepo struct {
	db *DB
}

func NewLevelResultRepo(db *DB) *LevelResultRepo {
	return &LevelResultRepo{db: db}
}

func (r *LevelResultRepo) Insert(ctx context.Context, row LevelResultRow) error {
	_, err := r.db.Pool.Exec(ctx,
		`INSERT INTO level_results
		   (run_id, level, attempt, name, outcome, score, ticks, citizens_saved, citizens_lost, zombies_killed)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		row.RunID, row.Level, row.Attempt, row.Name, row.Outcome, row.Score, row.Ticks,
		row.CitizensSaved, row.CitizensLost, row.ZombiesKilled,
	)
	if err != nil {
		return fmt.Errorf("insert level result %s/%d: %w", row.RunID, row.Level, err)
	}
	return nil
}

// ForRun lists a run's level attempts in play order.
func (r *LevelResultRepo) ForRun(ctx context.Context, runID string) ([]LevelResultRow, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT run_id, level, attempt, name, outcome, score, ticks, citizens_saved, citizens_lost, zombies_killed
		 FROM level_results WHERE run_id = $1
		 ORDER BY recorded_at, level, attempt`, runID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []LevelResultRow
	for rows.Next() {
		var row LevelResultRow
		if err := rows.Scan(
			&row.RunID, &row.Level, &row.Attempt, &row.Name, &row.Outcome, &row.Score, &row.Ticks,
			&row.CitizensSaved, &row.CitizensLost, &row.ZombiesKilled,
		); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
