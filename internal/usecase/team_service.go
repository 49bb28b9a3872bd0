package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/aykutsen/groupstage/internal/domain/team"
	"github.com/aykutsen/groupstage/internal/platform/logging"
)

type TeamService struct {
	teamRepo team.Repository
	logger   *logging.Logger
}

func NewTeamService(teamRepo team.Repository, logger *logging.Logger) *TeamService {
	if logger == nil {
		logger = logging.Default()
	}

	return &TeamService{teamRepo: teamRepo, logger: logger}
}

func (s *TeamService) List(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.List")
	defer span.End()

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	return teams, nil
}

// UpdatePower is the single sanctioned edit to a team between simulation
// runs.
func (s *TeamService) UpdatePower(ctx context.Context, teamID string, power int) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.UpdatePower")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if power < team.MinPower || power > team.MaxPower {
		return team.Team{}, fmt.Errorf("%w: power must be within [%d,%d], got %d",
			ErrInvalidInput, team.MinPower, team.MaxPower, power)
	}

	t, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	if err := s.teamRepo.UpdatePower(ctx, teamID, power); err != nil {
		return team.Team{}, fmt.Errorf("update team power: %w", err)
	}

	s.logger.InfoContext(ctx, "team power updated", "team_id", teamID, "power", power)
	t.Power = power
	return t, nil
}
