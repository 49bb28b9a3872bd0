package game

import "context"

// Repository exposes fixture persistence. ReplaceAll swaps the entire
// schedule in one atomic step: callers either observe the previous schedule
// or the new one, never a partial mix.
type Repository interface {
	List(ctx context.Context) ([]Game, error)
	GetByID(ctx context.Context, gameID string) (Game, bool, error)
	ReplaceAll(ctx context.Context, games []Game) error
	RecordResult(ctx context.Context, gameID string, homeGoals, awayGoals int) error
	ResetResults(ctx context.Context) error
	DeleteAll(ctx context.Context) error
}
