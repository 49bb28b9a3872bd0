package usecase

import (
	"fmt"

	"github.com/aykutsen/groupstage/internal/domain/game"
	"github.com/aykutsen/groupstage/internal/domain/season"
	"github.com/aykutsen/groupstage/internal/domain/team"
	"github.com/aykutsen/groupstage/internal/infrastructure/repository/memory"
	"github.com/aykutsen/groupstage/internal/platform/logging"
)

type sequentialIDs struct {
	next int
}

func (g *sequentialIDs) NewID() (string, error) {
	g.next++
	return fmt.Sprintf("game-%03d", g.next), nil
}

func fourTeams() []team.Team {
	return []team.Team{
		{ID: "t1", Name: "Alpha", Power: 90},
		{ID: "t2", Name: "Bravo", Power: 80},
		{ID: "t3", Name: "Charlie", Power: 70},
		{ID: "t4", Name: "Delta", Power: 60},
	}
}

func testSettings() season.Settings {
	return season.Settings{TeamCount: 4, TotalWeeks: 6, PredictionWindow: 3, Trials: 50}
}

type serviceFixture struct {
	teamRepo    *memory.TeamRepository
	gameRepo    *memory.GameRepository
	schedules   *ScheduleService
	matches     *MatchService
	teams       *TeamService
	standings   *StandingsService
	predictions *PredictionService
}

func newServiceFixture(teams []team.Team, seed int64) *serviceFixture {
	settings := testSettings()
	logger := logging.NewNop()
	rngs := NewRandFactory(seed)

	teamRepo := memory.NewTeamRepository(teams)
	gameRepo := memory.NewGameRepository(nil)

	return &serviceFixture{
		teamRepo:    teamRepo,
		gameRepo:    gameRepo,
		schedules:   NewScheduleService(teamRepo, gameRepo, settings, &sequentialIDs{}, rngs, logger),
		matches:     NewMatchService(teamRepo, gameRepo, settings, rngs, logger),
		teams:       NewTeamService(teamRepo, logger),
		standings:   NewStandingsService(teamRepo, gameRepo, logger),
		predictions: NewPredictionService(teamRepo, gameRepo, settings, rngs, logger),
	}
}

func countPlayed(games []game.Game) int {
	played := 0
	for _, g := range games {
		if g.Played {
			played++
		}
	}
	return played
}
