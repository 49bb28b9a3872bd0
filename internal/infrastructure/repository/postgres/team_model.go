package postgres

import "github.com/aykutsen/groupstage/internal/domain/team"

type teamTableModel struct {
	ID    string `db:"id"`
	Name  string `db:"name"`
	Power int    `db:"power"`
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:    m.ID,
		Name:  m.Name,
		Power: m.Power,
	}
}
