package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/aykutsen/groupstage/internal/domain/game"
)

func TestMatchServiceRecordResult(t *testing.T) {
	fix := newServiceFixture(fourTeams(), 11)
	ctx := context.Background()

	games, err := fix.schedules.Generate(ctx)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	updated, err := fix.matches.RecordResult(ctx, games[0].ID, 3, 1)
	if err != nil {
		t.Fatalf("RecordResult: %v", err)
	}
	if !updated.Played || *updated.HomeGoals != 3 || *updated.AwayGoals != 1 {
		t.Fatalf("updated = %+v", updated)
	}

	stored, exists, err := fix.gameRepo.GetByID(ctx, games[0].ID)
	if err != nil || !exists {
		t.Fatalf("GetByID: exists=%v err=%v", exists, err)
	}
	if !stored.Played || *stored.HomeGoals != 3 {
		t.Fatalf("stored = %+v", stored)
	}
}

func TestMatchServiceRecordResultValidation(t *testing.T) {
	fix := newServiceFixture(fourTeams(), 11)
	ctx := context.Background()

	if _, err := fix.matches.RecordResult(ctx, "any", -1, 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("negative goals: err = %v, want ErrInvalidInput", err)
	}
	if _, err := fix.matches.RecordResult(ctx, "missing", 1, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown game: err = %v, want ErrNotFound", err)
	}
}

func TestMatchServicePlayWeek(t *testing.T) {
	fix := newServiceFixture(fourTeams(), 11)
	ctx := context.Background()

	if _, err := fix.schedules.Generate(ctx); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	played, err := fix.matches.PlayWeek(ctx, 1)
	if err != nil {
		t.Fatalf("PlayWeek: %v", err)
	}
	if len(played) != 2 {
		t.Fatalf("played %d games, want 2", len(played))
	}
	for _, g := range played {
		if g.Week != 1 || !g.Played || g.HomeGoals == nil || *g.HomeGoals < 0 {
			t.Fatalf("played game = %+v", g)
		}
	}

	// Replaying an already played week touches nothing.
	again, err := fix.matches.PlayWeek(ctx, 1)
	if err != nil {
		t.Fatalf("replay PlayWeek: %v", err)
	}
	if len(again) != 0 {
		t.Fatalf("replay simulated %d games, want 0", len(again))
	}
}

func TestMatchServicePlayWeekOutOfRange(t *testing.T) {
	fix := newServiceFixture(fourTeams(), 11)
	ctx := context.Background()

	for _, week := range []int{0, -1, 7} {
		if _, err := fix.matches.PlayWeek(ctx, week); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("week %d: err = %v, want ErrInvalidInput", week, err)
		}
	}
}

func TestMatchServicePlayNextWeekAdvances(t *testing.T) {
	fix := newServiceFixture(fourTeams(), 11)
	ctx := context.Background()

	if _, err := fix.schedules.Generate(ctx); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	for week := 1; week <= 6; week++ {
		played, err := fix.matches.PlayNextWeek(ctx)
		if err != nil {
			t.Fatalf("PlayNextWeek round %d: %v", week, err)
		}
		for _, g := range played {
			if g.Week != week {
				t.Fatalf("round %d simulated week-%d game", week, g.Week)
			}
		}
	}

	games, _ := fix.gameRepo.List(ctx)
	if played := countPlayed(games); played != 12 {
		t.Fatalf("season finished with %d played games, want 12", played)
	}
}

func TestMatchServicePlayNextWeekWithoutSchedule(t *testing.T) {
	fix := newServiceFixture(fourTeams(), 11)

	if _, err := fix.matches.PlayNextWeek(context.Background()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestMatchServicePlayAllRemaining(t *testing.T) {
	fix := newServiceFixture(fourTeams(), 11)
	ctx := context.Background()

	games, err := fix.schedules.Generate(ctx)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	// Pin one result manually; PlayAllRemaining must leave it untouched.
	if _, err := fix.matches.RecordResult(ctx, games[0].ID, 9, 0); err != nil {
		t.Fatalf("RecordResult: %v", err)
	}

	played, err := fix.matches.PlayAllRemaining(ctx)
	if err != nil {
		t.Fatalf("PlayAllRemaining: %v", err)
	}
	if len(played) != 11 {
		t.Fatalf("simulated %d games, want 11", len(played))
	}

	pinned, _, err := fix.gameRepo.GetByID(ctx, games[0].ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if *pinned.HomeGoals != 9 || *pinned.AwayGoals != 0 {
		t.Fatalf("manual result overwritten: %+v", pinned)
	}
}

func TestMatchServiceResetResults(t *testing.T) {
	fix := newServiceFixture(fourTeams(), 11)
	ctx := context.Background()

	if _, err := fix.schedules.Generate(ctx); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := fix.matches.PlayAllRemaining(ctx); err != nil {
		t.Fatalf("PlayAllRemaining: %v", err)
	}

	if err := fix.matches.ResetResults(ctx); err != nil {
		t.Fatalf("ResetResults: %v", err)
	}

	games, _ := fix.gameRepo.List(ctx)
	if len(games) != 12 {
		t.Fatalf("reset dropped fixtures: %d games", len(games))
	}
	for _, g := range games {
		if g.Played || g.HomeGoals != nil || g.AwayGoals != nil {
			t.Fatalf("game still has a result: %+v", g)
		}
	}
}

func TestMatchServiceSimulateUnknownTeam(t *testing.T) {
	fix := newServiceFixture(fourTeams(), 11)
	ctx := context.Background()

	orphan := game.Game{ID: "orphan", Week: 1, HomeTeamID: "t1", AwayTeamID: "ghost"}
	if err := fix.gameRepo.ReplaceAll(ctx, []game.Game{orphan}); err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}

	if _, err := fix.matches.PlayWeek(ctx, 1); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("err = %v, want ErrConfiguration", err)
	}
}
