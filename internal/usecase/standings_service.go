package usecase

import (
	"context"
	"fmt"

	"github.com/aykutsen/groupstage/internal/domain/standings"
	"github.com/aykutsen/groupstage/internal/domain/team"
	"github.com/aykutsen/groupstage/internal/platform/logging"

	"github.com/aykutsen/groupstage/internal/domain/game"
)

// StandingsService recomputes the league table from scratch on every read.
type StandingsService struct {
	teamRepo team.Repository
	gameRepo game.Repository
	logger   *logging.Logger
}

func NewStandingsService(teamRepo team.Repository, gameRepo game.Repository, logger *logging.Logger) *StandingsService {
	if logger == nil {
		logger = logging.Default()
	}

	return &StandingsService{teamRepo: teamRepo, gameRepo: gameRepo, logger: logger}
}

func (s *StandingsService) Table(ctx context.Context) ([]standings.Row, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Table")
	defer span.End()

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	games, err := s.gameRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}

	return standings.Compute(teams, games), nil
}
