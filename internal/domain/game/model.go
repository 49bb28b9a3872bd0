package game

// Game represents one scheduled match between two teams.
// HomeGoals/AwayGoals are nil until the game has been played; a played game
// always carries both scores.
type Game struct {
	ID         string
	Week       int
	HomeTeamID string
	AwayTeamID string
	HomeGoals  *int
	AwayGoals  *int
	Played     bool
}

// HasResult reports whether the game carries a usable scoreline. Played games
// with missing goals exist only in corrupt data and are treated as unplayed
// by every aggregation.
func (g Game) HasResult() bool {
	return g.Played && g.HomeGoals != nil && g.AwayGoals != nil
}

// CurrentWeek derives the week the season has reached: the highest week with
// any played game plus one, capped at totalWeeks. A season with no played
// games is in week 1.
func CurrentWeek(games []Game, totalWeeks int) int {
	highest := 0
	for _, g := range games {
		if g.Played && g.Week > highest {
			highest = g.Week
		}
	}

	current := highest + 1
	if current > totalWeeks {
		current = totalWeeks
	}
	if current < 1 {
		current = 1
	}
	return current
}

// Unplayed filters the fixture list down to games still waiting for a result.
func Unplayed(games []Game) []Game {
	out := make([]Game, 0, len(games))
	for _, g := range games {
		if !g.Played {
			out = append(out, g)
		}
	}
	return out
}

// ForWeek filters the fixture list down to one week.
func ForWeek(games []Game, week int) []Game {
	out := make([]Game, 0, 2)
	for _, g := range games {
		if g.Week == week {
			out = append(out, g)
		}
	}
	return out
}
