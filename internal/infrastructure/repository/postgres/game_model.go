package postgres

import (
	"database/sql"

	"github.com/aykutsen/groupstage/internal/domain/game"
)

type gameTableModel struct {
	ID         string        `db:"id"`
	Week       int           `db:"week"`
	HomeTeamID string        `db:"home_team_id"`
	AwayTeamID string        `db:"away_team_id"`
	HomeGoals  sql.NullInt64 `db:"home_goals"`
	AwayGoals  sql.NullInt64 `db:"away_goals"`
	IsPlayed   bool          `db:"is_played"`
}

func (m gameTableModel) toDomain() game.Game {
	g := game.Game{
		ID:         m.ID,
		Week:       m.Week,
		HomeTeamID: m.HomeTeamID,
		AwayTeamID: m.AwayTeamID,
		Played:     m.IsPlayed,
	}
	if m.HomeGoals.Valid {
		v := int(m.HomeGoals.Int64)
		g.HomeGoals = &v
	}
	if m.AwayGoals.Valid {
		v := int(m.AwayGoals.Int64)
		g.AwayGoals = &v
	}
	return g
}

func nullableGoals(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
