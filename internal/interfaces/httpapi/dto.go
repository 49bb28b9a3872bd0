package httpapi

import (
	"github.com/aykutsen/groupstage/internal/domain/game"
	"github.com/aykutsen/groupstage/internal/domain/prediction"
	"github.com/aykutsen/groupstage/internal/domain/standings"
	"github.com/aykutsen/groupstage/internal/domain/team"
)

type teamDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Power int    `json:"power"`
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{ID: t.ID, Name: t.Name, Power: t.Power}
}

type gameDTO struct {
	ID         string `json:"id"`
	Week       int    `json:"week"`
	HomeTeamID string `json:"home_team_id"`
	AwayTeamID string `json:"away_team_id"`
	HomeGoals  *int   `json:"home_goals"`
	AwayGoals  *int   `json:"away_goals"`
	IsPlayed   bool   `json:"is_played"`
}

func gameToDTO(g game.Game) gameDTO {
	return gameDTO{
		ID:         g.ID,
		Week:       g.Week,
		HomeTeamID: g.HomeTeamID,
		AwayTeamID: g.AwayTeamID,
		HomeGoals:  g.HomeGoals,
		AwayGoals:  g.AwayGoals,
		IsPlayed:   g.Played,
	}
}

func gamesToDTO(games []game.Game) []gameDTO {
	out := make([]gameDTO, 0, len(games))
	for _, g := range games {
		out = append(out, gameToDTO(g))
	}
	return out
}

type standingsRowDTO struct {
	Position       int    `json:"position"`
	TeamID         string `json:"team_id"`
	TeamName       string `json:"team_name"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
	Points         int    `json:"points"`
}

func standingsRowToDTO(row standings.Row) standingsRowDTO {
	return standingsRowDTO{
		Position:       row.Position,
		TeamID:         row.TeamID,
		TeamName:       row.TeamName,
		Played:         row.Played,
		Won:            row.Won,
		Drawn:          row.Drawn,
		Lost:           row.Lost,
		GoalsFor:       row.GoalsFor,
		GoalsAgainst:   row.GoalsAgainst,
		GoalDifference: row.GoalDifference,
		Points:         row.Points,
	}
}

type predictionRowDTO struct {
	TeamID      string  `json:"team_id"`
	TeamName    string  `json:"team_name"`
	Probability float64 `json:"probability"`
}

func predictionRowToDTO(row prediction.Row) predictionRowDTO {
	return predictionRowDTO{
		TeamID:      row.TeamID,
		TeamName:    row.TeamName,
		Probability: row.Probability,
	}
}
