package usecase

import (
	"context"
	"fmt"

	"github.com/aykutsen/groupstage/internal/domain/game"
	"github.com/aykutsen/groupstage/internal/domain/outcome"
	"github.com/aykutsen/groupstage/internal/domain/season"
	"github.com/aykutsen/groupstage/internal/domain/team"
	"github.com/aykutsen/groupstage/internal/platform/logging"
)

// MatchService mutates game results: manual entry, simulated weeks, and
// resets. Simulation uses the shared outcome model with each team's current
// power rating.
type MatchService struct {
	teamRepo team.Repository
	gameRepo game.Repository
	settings season.Settings
	rngs     *RandFactory
	logger   *logging.Logger
}

func NewMatchService(
	teamRepo team.Repository,
	gameRepo game.Repository,
	settings season.Settings,
	rngs *RandFactory,
	logger *logging.Logger,
) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}

	return &MatchService{
		teamRepo: teamRepo,
		gameRepo: gameRepo,
		settings: settings,
		rngs:     rngs,
		logger:   logger,
	}
}

// RecordResult stores a manually entered scoreline. Scores are rejected
// before any record is touched.
func (s *MatchService) RecordResult(ctx context.Context, gameID string, homeGoals, awayGoals int) (game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.RecordResult")
	defer span.End()

	if homeGoals < 0 || awayGoals < 0 {
		return game.Game{}, fmt.Errorf("%w: goals must be non-negative, got %d-%d",
			ErrInvalidInput, homeGoals, awayGoals)
	}

	g, exists, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return game.Game{}, fmt.Errorf("get game: %w", err)
	}
	if !exists {
		return game.Game{}, fmt.Errorf("%w: game=%s", ErrNotFound, gameID)
	}

	if err := s.gameRepo.RecordResult(ctx, gameID, homeGoals, awayGoals); err != nil {
		return game.Game{}, fmt.Errorf("record result: %w", err)
	}

	g.HomeGoals = &homeGoals
	g.AwayGoals = &awayGoals
	g.Played = true

	s.logger.InfoContext(ctx, "result recorded",
		"game_id", gameID, "week", g.Week, "score", fmt.Sprintf("%d-%d", homeGoals, awayGoals))
	return g, nil
}

// PlayWeek simulates every unplayed game in the given week. Already played
// games are left alone, so replaying a week is an idempotent no-op.
func (s *MatchService) PlayWeek(ctx context.Context, week int) ([]game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.PlayWeek")
	defer span.End()

	if week < 1 || week > s.settings.TotalWeeks {
		return nil, fmt.Errorf("%w: week must be within [1,%d], got %d",
			ErrInvalidInput, s.settings.TotalWeeks, week)
	}

	games, err := s.gameRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}

	played, err := s.simulate(ctx, game.Unplayed(game.ForWeek(games, week)))
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "week played", "week", week, "simulated", len(played))
	return played, nil
}

// PlayNextWeek simulates the week the season is currently in.
func (s *MatchService) PlayNextWeek(ctx context.Context) ([]game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.PlayNextWeek")
	defer span.End()

	games, err := s.gameRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	if len(games) == 0 {
		return nil, fmt.Errorf("%w: no schedule generated", ErrNotFound)
	}

	return s.PlayWeek(ctx, game.CurrentWeek(games, s.settings.TotalWeeks))
}

// PlayAllRemaining simulates every unplayed game in the schedule.
func (s *MatchService) PlayAllRemaining(ctx context.Context) ([]game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.PlayAllRemaining")
	defer span.End()

	games, err := s.gameRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}

	played, err := s.simulate(ctx, game.Unplayed(games))
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "season completed", "simulated", len(played))
	return played, nil
}

// ResetResults clears goals and played flags while keeping the fixture list
// itself intact.
func (s *MatchService) ResetResults(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ResetResults")
	defer span.End()

	if err := s.gameRepo.ResetResults(ctx); err != nil {
		return fmt.Errorf("reset results: %w", err)
	}

	s.logger.InfoContext(ctx, "results reset")
	return nil
}

func (s *MatchService) simulate(ctx context.Context, unplayed []game.Game) ([]game.Game, error) {
	if len(unplayed) == 0 {
		return nil, nil
	}

	powerByID, err := s.teamPowers(ctx)
	if err != nil {
		return nil, err
	}

	rng := s.rngs.New()
	played := make([]game.Game, 0, len(unplayed))
	for _, g := range unplayed {
		homePower, okHome := powerByID[g.HomeTeamID]
		awayPower, okAway := powerByID[g.AwayTeamID]
		if !okHome || !okAway {
			return nil, fmt.Errorf("%w: game %s references unknown team", ErrConfiguration, g.ID)
		}

		homeGoals, awayGoals := outcome.Simulate(homePower, awayPower, rng)
		if err := s.gameRepo.RecordResult(ctx, g.ID, homeGoals, awayGoals); err != nil {
			return nil, fmt.Errorf("record simulated result: %w", err)
		}

		g.HomeGoals = &homeGoals
		g.AwayGoals = &awayGoals
		g.Played = true
		played = append(played, g)
	}

	return played, nil
}

func (s *MatchService) teamPowers(ctx context.Context) (map[string]int, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	powerByID := make(map[string]int, len(teams))
	for _, t := range teams {
		powerByID[t.ID] = t.Power
	}
	return powerByID, nil
}
