package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/aykutsen/groupstage/internal/domain/team"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	const query = `SELECT id, name, power FROM teams ORDER BY name, id`

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, crerr.Wrap(err, "select teams")
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	const query = `SELECT id, name, power FROM teams WHERE id = $1`

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, teamID); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, crerr.Wrap(err, "select team by id")
	}

	return row.toDomain(), true, nil
}

func (r *TeamRepository) UpdatePower(ctx context.Context, teamID string, power int) error {
	const query = `UPDATE teams SET power = $2 WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, teamID, power); err != nil {
		return crerr.Wrap(err, "update team power")
	}
	return nil
}

// UpsertTeams seeds or refreshes the roster, used at startup against an
// empty database.
func (r *TeamRepository) UpsertTeams(ctx context.Context, teams []team.Team) error {
	const query = `
		INSERT INTO teams (id, name, power)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, power = EXCLUDED.power`

	for _, t := range teams {
		if _, err := r.db.ExecContext(ctx, query, t.ID, t.Name, t.Power); err != nil {
			return crerr.Wrapf(err, "upsert team %s", t.ID)
		}
	}
	return nil
}
