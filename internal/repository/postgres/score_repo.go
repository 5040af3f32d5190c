package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
	"github.com/iamasit07/4-in-a-row/console/internal/service/score"
)

type ScoreRepo struct {
	DB *sql.DB
}

func NewScoreRepo(db *sql.DB) *ScoreRepo {
	return &ScoreRepo{DB: db}
}

// RecordWin adds one win for playerName, creating the row on first win.
func (r *ScoreRepo) RecordWin(ctx context.Context, playerName string) error {
	if err := score.ValidateName(playerName); err != nil {
		return err
	}

	query := `
	INSERT INTO high_scores (player_name, wins)
	VALUES ($1, 1)
	ON CONFLICT (player_name) DO UPDATE SET
		wins = high_scores.wins + 1,
		updated_at = CURRENT_TIMESTAMP;
	`
	if _, err := r.DB.ExecContext(ctx, query, playerName); err != nil {
		return fmt.Errorf("%w: failed to record win for %s: %v", domain.ErrScoreStore, playerName, err)
	}
	return nil
}

func (r *ScoreRepo) Standings(ctx context.Context, limit int) ([]score.Standing, error) {
	if limit <= 0 {
		limit = score.DefaultStandingsLimit
	}

	query := `
	SELECT
		ROW_NUMBER() OVER (ORDER BY wins DESC, player_name ASC) AS rank,
		player_name,
		wins
	FROM high_scores
	ORDER BY wins DESC, player_name ASC
	LIMIT $1;
	`
	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query standings: %v", domain.ErrScoreStore, err)
	}
	defer rows.Close()

	standings := make([]score.Standing, 0)
	for rows.Next() {
		var s score.Standing
		if err := rows.Scan(&s.Rank, &s.PlayerName, &s.Wins); err != nil {
			return nil, fmt.Errorf("%w: failed to scan standings row: %v", domain.ErrScoreStore, err)
		}
		standings = append(standings, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrScoreStore, err)
	}

	return standings, nil
}
