package usecase

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"

	"github.com/aykutsen/groupstage/internal/domain/game"
	"github.com/aykutsen/groupstage/internal/domain/outcome"
	"github.com/aykutsen/groupstage/internal/domain/prediction"
	"github.com/aykutsen/groupstage/internal/domain/season"
	"github.com/aykutsen/groupstage/internal/domain/standings"
	"github.com/aykutsen/groupstage/internal/domain/team"
	"github.com/aykutsen/groupstage/internal/platform/logging"
)

// PredictionService estimates each team's championship probability by
// Monte-Carlo completion of the remaining season. Trials are independent
// full-season folds, so they fan out over a worker pool with one RNG per
// trial and atomic win counters.
type PredictionService struct {
	teamRepo team.Repository
	gameRepo game.Repository
	settings season.Settings
	rngs     *RandFactory
	logger   *logging.Logger
}

func NewPredictionService(
	teamRepo team.Repository,
	gameRepo game.Repository,
	settings season.Settings,
	rngs *RandFactory,
	logger *logging.Logger,
) *PredictionService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PredictionService{
		teamRepo: teamRepo,
		gameRepo: gameRepo,
		settings: settings,
		rngs:     rngs,
		logger:   logger,
	}
}

// Championship returns one probability row per team once the season has
// reached the prediction window, and an empty list before that. The early
// emptiness is deliberate: too much of the season is still stochastic for
// the estimate to mean anything.
func (s *PredictionService) Championship(ctx context.Context) ([]prediction.Row, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionService.Championship")
	defer span.End()

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	if len(teams) == 0 {
		return []prediction.Row{}, nil
	}

	games, err := s.gameRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}

	currentWeek := game.CurrentWeek(games, s.settings.TotalWeeks)
	if len(games) == 0 || currentWeek < s.settings.PredictionStartWeek() {
		return []prediction.Row{}, nil
	}

	powerByID := make(map[string]int, len(teams))
	indexByID := make(map[string]int, len(teams))
	for i, t := range teams {
		powerByID[t.ID] = t.Power
		indexByID[t.ID] = i
	}

	wins := make([]atomic.Int64, len(teams))

	workerCount := runtime.GOMAXPROCS(0)
	if workerCount > s.settings.Trials {
		workerCount = s.settings.Trials
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for trial := 0; trial < s.settings.Trials; trial++ {
		rng := s.rngs.New()
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			champion := s.runTrial(teams, games, powerByID, rng)
			if idx, ok := indexByID[champion]; ok {
				wins[idx].Add(1)
			}
		}); err != nil {
			workers.Done()
			return nil, fmt.Errorf("submit trial to worker pool: %w", err)
		}
	}
	workers.Wait()

	rows := make([]prediction.Row, 0, len(teams))
	for i, t := range teams {
		probability := float64(wins[i].Load()) / float64(s.settings.Trials) * 100
		rows = append(rows, prediction.Row{
			TeamID:      t.ID,
			TeamName:    t.Name,
			Probability: math.Round(probability*10) / 10,
		})
	}

	s.logger.InfoContext(ctx, "championship probabilities computed",
		"week", currentWeek, "trials", s.settings.Trials)
	return rows, nil
}

// runTrial completes one hypothetical season: recorded results stay fixed,
// every unplayed game gets an outcome-model draw, and the combined set is
// folded with the exact table rules. The top row is the trial's champion.
func (s *PredictionService) runTrial(
	teams []team.Team,
	games []game.Game,
	powerByID map[string]int,
	rng *rand.Rand,
) string {
	completed := make([]game.Game, len(games))
	copy(completed, games)

	for i := range completed {
		if completed[i].HasResult() {
			continue
		}

		homeGoals, awayGoals := outcome.Simulate(
			powerByID[completed[i].HomeTeamID],
			powerByID[completed[i].AwayTeamID],
			rng,
		)
		completed[i].HomeGoals = &homeGoals
		completed[i].AwayGoals = &awayGoals
		completed[i].Played = true
	}

	rows := standings.Compute(teams, completed)
	if len(rows) == 0 {
		return ""
	}
	return rows[0].TeamID
}
