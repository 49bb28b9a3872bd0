package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aykutsen/groupstage/internal/config"
	"github.com/aykutsen/groupstage/internal/domain/game"
	"github.com/aykutsen/groupstage/internal/domain/team"
	"github.com/aykutsen/groupstage/internal/infrastructure/repository/memory"
	"github.com/aykutsen/groupstage/internal/infrastructure/repository/postgres"
	"github.com/aykutsen/groupstage/internal/interfaces/httpapi"
	idgen "github.com/aykutsen/groupstage/internal/platform/id"
	"github.com/aykutsen/groupstage/internal/platform/logging"
	"github.com/aykutsen/groupstage/internal/usecase"
)

type repositories struct {
	teams team.Repository
	games game.Repository
	close func() error
}

// NewHTTPServer wires repositories, services and the router into a ready
// http.Server. The returned cleanup releases the database handle when one was
// opened; callers invoke it after shutdown.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, err := newRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	rngs := usecase.NewRandFactory(cfg.SimSeed)

	handler := httpapi.NewHandler(
		usecase.NewTeamService(repos.teams, logger),
		usecase.NewScheduleService(repos.teams, repos.games, cfg.League, idgen.NewRandomGenerator(), rngs, logger),
		usecase.NewMatchService(repos.teams, repos.games, cfg.League, rngs, logger),
		usecase.NewStandingsService(repos.teams, repos.games, logger),
		usecase.NewPredictionService(repos.teams, repos.games, cfg.League, rngs, logger),
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = repos.close()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, repos.close, nil
}

func newRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (*repositories, error) {
	if cfg.DBURL == "" {
		logger.Info("using in-memory repositories", "reason", "DB_URL empty")
		return &repositories{
			teams: memory.NewTeamRepository(memory.SeedTeams()),
			games: memory.NewGameRepository(nil),
			close: func() error { return nil },
		}, nil
	}

	db, err := openDB(cfg)
	if err != nil {
		return nil, err
	}

	teamRepo := postgres.NewTeamRepository(db)
	if err := teamRepo.UpsertTeams(ctx, memory.SeedTeams()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("seed roster: %w", err)
	}

	logger.Info("using postgres repositories", "db", dbNameFromURL(cfg.DBURL))
	return &repositories{
		teams: teamRepo,
		games: postgres.NewGameRepository(db),
		close: db.Close,
	}, nil
}
