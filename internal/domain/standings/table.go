package standings

import (
	"sort"

	"github.com/aykutsen/groupstage/internal/domain/game"
	"github.com/aykutsen/groupstage/internal/domain/team"
)

// Compute folds played games into one row per team and orders the result by
// the ranking rule, positions assigned 1..N with no gaps. Played games with
// missing goals are skipped rather than aborting the whole table; that
// tolerates partially corrupt records.
func Compute(teams []team.Team, games []game.Game) []Row {
	rowsByID := make(map[string]Row, len(teams))
	for _, t := range teams {
		rowsByID[t.ID] = Row{TeamID: t.ID, TeamName: t.Name}
	}

	for _, g := range games {
		if !g.HasResult() {
			continue
		}
		home, okHome := rowsByID[g.HomeTeamID]
		away, okAway := rowsByID[g.AwayTeamID]
		if !okHome || !okAway {
			continue
		}

		homeGoals, awayGoals := *g.HomeGoals, *g.AwayGoals

		home.Played++
		home.GoalsFor += homeGoals
		home.GoalsAgainst += awayGoals

		away.Played++
		away.GoalsFor += awayGoals
		away.GoalsAgainst += homeGoals

		switch {
		case homeGoals > awayGoals:
			home.Won++
			home.Points += 3
			away.Lost++
		case homeGoals < awayGoals:
			away.Won++
			away.Points += 3
			home.Lost++
		default:
			home.Drawn++
			home.Points++
			away.Drawn++
			away.Points++
		}

		rowsByID[g.HomeTeamID] = home
		rowsByID[g.AwayTeamID] = away
	}

	rows := make([]Row, 0, len(rowsByID))
	for _, row := range rowsByID {
		// Goal difference is derived from the folded totals in one place,
		// never accumulated incrementally.
		row.GoalDifference = row.GoalsFor - row.GoalsAgainst
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return Less(rows[i], rows[j])
	})
	for i := range rows {
		rows[i].Position = i + 1
	}

	return rows
}
