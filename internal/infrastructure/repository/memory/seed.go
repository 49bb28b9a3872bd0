package memory

import "github.com/aykutsen/groupstage/internal/domain/team"

// SeedTeams is the canonical demo roster: four Premier League sides with
// power ratings in rough strength order.
func SeedTeams() []team.Team {
	return []team.Team{
		{ID: "eng-liv", Name: "Liverpool", Power: 90},
		{ID: "eng-mci", Name: "Manchester City", Power: 88},
		{ID: "eng-ars", Name: "Arsenal", Power: 85},
		{ID: "eng-che", Name: "Chelsea", Power: 80},
	}
}
