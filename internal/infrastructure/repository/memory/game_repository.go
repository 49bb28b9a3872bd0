package memory

import (
	"context"
	"sync"

	"github.com/aykutsen/groupstage/internal/domain/game"
)

type GameRepository struct {
	mu    sync.RWMutex
	games []game.Game
}

func NewGameRepository(games []game.Game) *GameRepository {
	out := make([]game.Game, len(games))
	copy(out, games)
	return &GameRepository{games: out}
}

func (r *GameRepository) List(_ context.Context) ([]game.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]game.Game, 0, len(r.games))
	out = append(out, r.games...)
	return out, nil
}

func (r *GameRepository) GetByID(_ context.Context, gameID string) (game.Game, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.games {
		if item.ID == gameID {
			return item, true, nil
		}
	}

	return game.Game{}, false, nil
}

// ReplaceAll swaps the whole schedule under one lock, so readers see either
// the previous fixture set or the new one in full.
func (r *GameRepository) ReplaceAll(_ context.Context, games []game.Game) error {
	next := make([]game.Game, len(games))
	copy(next, games)

	r.mu.Lock()
	r.games = next
	r.mu.Unlock()
	return nil
}

func (r *GameRepository) RecordResult(_ context.Context, gameID string, homeGoals, awayGoals int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for idx := range r.games {
		if r.games[idx].ID != gameID {
			continue
		}
		hg, ag := homeGoals, awayGoals
		r.games[idx].HomeGoals = &hg
		r.games[idx].AwayGoals = &ag
		r.games[idx].Played = true
		return nil
	}

	return nil
}

func (r *GameRepository) ResetResults(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for idx := range r.games {
		r.games[idx].HomeGoals = nil
		r.games[idx].AwayGoals = nil
		r.games[idx].Played = false
	}
	return nil
}

func (r *GameRepository) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	r.games = nil
	r.mu.Unlock()
	return nil
}
