package usecase

import (
	"context"
	"fmt"

	"github.com/aykutsen/groupstage/internal/domain/game"
	"github.com/aykutsen/groupstage/internal/domain/schedule"
	"github.com/aykutsen/groupstage/internal/domain/season"
	"github.com/aykutsen/groupstage/internal/domain/team"
	"github.com/aykutsen/groupstage/internal/platform/logging"
)

// ScheduleService owns the fixture lifecycle: generating a fresh double
// round-robin schedule and tearing it down.
type ScheduleService struct {
	teamRepo team.Repository
	gameRepo game.Repository
	settings season.Settings
	ids      schedule.IDGenerator
	rngs     *RandFactory
	logger   *logging.Logger
}

func NewScheduleService(
	teamRepo team.Repository,
	gameRepo game.Repository,
	settings season.Settings,
	ids schedule.IDGenerator,
	rngs *RandFactory,
	logger *logging.Logger,
) *ScheduleService {
	if logger == nil {
		logger = logging.Default()
	}

	return &ScheduleService{
		teamRepo: teamRepo,
		gameRepo: gameRepo,
		settings: settings,
		ids:      ids,
		rngs:     rngs,
		logger:   logger,
	}
}

// Generate replaces any existing schedule with a freshly drawn one. The swap
// is a single repository call, so readers never observe a mix of old and new
// fixtures; on any failure existing state is left untouched.
func (s *ScheduleService) Generate(ctx context.Context) ([]game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.Generate")
	defer span.End()

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	if len(teams) != s.settings.TeamCount {
		return nil, fmt.Errorf("%w: roster has %d teams, need %d",
			ErrConfiguration, len(teams), s.settings.TeamCount)
	}

	games, err := schedule.Generate(teams, s.ids, s.rngs.New())
	if err != nil {
		return nil, fmt.Errorf("generate schedule: %w", err)
	}

	if err := s.gameRepo.ReplaceAll(ctx, games); err != nil {
		return nil, fmt.Errorf("replace schedule: %w", err)
	}

	s.logger.InfoContext(ctx, "schedule generated", "games", len(games))
	return games, nil
}

// Clear drops the whole schedule and every recorded result with it.
func (s *ScheduleService) Clear(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.Clear")
	defer span.End()

	if err := s.gameRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("delete schedule: %w", err)
	}

	s.logger.InfoContext(ctx, "schedule cleared")
	return nil
}

// List returns the current fixture set in week order.
func (s *ScheduleService) List(ctx context.Context) ([]game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.List")
	defer span.End()

	games, err := s.gameRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}

	return games, nil
}
