package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/aykutsen/groupstage/internal/domain/game"
)

type GameRepository struct {
	db *sqlx.DB
}

func NewGameRepository(db *sqlx.DB) *GameRepository {
	return &GameRepository{db: db}
}

func (r *GameRepository) List(ctx context.Context) ([]game.Game, error) {
	const query = `
		SELECT id, week, home_team_id, away_team_id, home_goals, away_goals, is_played
		FROM games ORDER BY week, id`

	var rows []gameTableModel
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, crerr.Wrap(err, "select games")
	}

	out := make([]game.Game, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *GameRepository) GetByID(ctx context.Context, gameID string) (game.Game, bool, error) {
	const query = `
		SELECT id, week, home_team_id, away_team_id, home_goals, away_goals, is_played
		FROM games WHERE id = $1`

	var row gameTableModel
	if err := r.db.GetContext(ctx, &row, query, gameID); err != nil {
		if isNotFound(err) {
			return game.Game{}, false, nil
		}
		return game.Game{}, false, crerr.Wrap(err, "select game by id")
	}

	return row.toDomain(), true, nil
}

// ReplaceAll clears the previous schedule and inserts the new one inside a
// single transaction, so concurrent readers never observe a partial mix.
func (r *GameRepository) ReplaceAll(ctx context.Context, games []game.Game) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return crerr.Wrap(err, "begin replace schedule tx")
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM games`); err != nil {
		return crerr.Wrap(err, "delete previous schedule")
	}

	const insert = `
		INSERT INTO games (id, week, home_team_id, away_team_id, home_goals, away_goals, is_played)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for _, g := range games {
		_, err := tx.ExecContext(ctx, insert,
			g.ID, g.Week, g.HomeTeamID, g.AwayTeamID,
			nullableGoals(g.HomeGoals), nullableGoals(g.AwayGoals), g.Played)
		if err != nil {
			return crerr.Wrapf(err, "insert game %s", g.ID)
		}
	}

	if err := tx.Commit(); err != nil {
		return crerr.Wrap(err, "commit replace schedule tx")
	}
	return nil
}

func (r *GameRepository) RecordResult(ctx context.Context, gameID string, homeGoals, awayGoals int) error {
	const query = `
		UPDATE games SET home_goals = $2, away_goals = $3, is_played = TRUE
		WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, gameID, homeGoals, awayGoals); err != nil {
		return crerr.Wrap(err, "update game result")
	}
	return nil
}

func (r *GameRepository) ResetResults(ctx context.Context) error {
	const query = `UPDATE games SET home_goals = NULL, away_goals = NULL, is_played = FALSE`

	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return crerr.Wrap(err, "reset game results")
	}
	return nil
}

func (r *GameRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM games`); err != nil {
		return crerr.Wrap(err, "delete games")
	}
	return nil
}
