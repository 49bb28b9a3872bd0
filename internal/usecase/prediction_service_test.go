package usecase

import (
	"context"
	"testing"
)

func TestPredictionServiceEmptyBeforeWindow(t *testing.T) {
	fix := newServiceFixture(fourTeams(), 19)
	ctx := context.Background()

	// No schedule at all.
	rows, err := fix.predictions.Championship(ctx)
	if err != nil {
		t.Fatalf("Championship: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("got %d rows without a schedule, want 0", len(rows))
	}

	if _, err := fix.schedules.Generate(ctx); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	// Weeks 1-3 are before the window (window of 3 over 6 weeks opens at week 4).
	for week := 1; week <= 3; week++ {
		rows, err = fix.predictions.Championship(ctx)
		if err != nil {
			t.Fatalf("Championship before week %d: %v", week, err)
		}
		if len(rows) != 0 {
			t.Fatalf("week %d: got %d rows, want 0", week, len(rows))
		}
		if _, err := fix.matches.PlayNextWeek(ctx); err != nil {
			t.Fatalf("PlayNextWeek: %v", err)
		}
	}
}

func TestPredictionServiceInsideWindow(t *testing.T) {
	fix := newServiceFixture(fourTeams(), 19)
	ctx := context.Background()

	if _, err := fix.schedules.Generate(ctx); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for week := 1; week <= 3; week++ {
		if _, err := fix.matches.PlayNextWeek(ctx); err != nil {
			t.Fatalf("PlayNextWeek: %v", err)
		}
	}

	rows, err := fix.predictions.Championship(ctx)
	if err != nil {
		t.Fatalf("Championship: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want one per team", len(rows))
	}

	var total float64
	for _, row := range rows {
		if row.Probability < 0 || row.Probability > 100 {
			t.Fatalf("probability out of range: %+v", row)
		}
		total += row.Probability
	}
	// Rounded per-row values; the sum can drift slightly around 100.
	if total < 99 || total > 101 {
		t.Fatalf("probabilities sum to %.1f, want ~100", total)
	}
}

func TestPredictionServiceDecidedSeason(t *testing.T) {
	fix := newServiceFixture(fourTeams(), 19)
	ctx := context.Background()

	games, err := fix.schedules.Generate(ctx)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	// Hand every win to t1. With all games played, each trial folds the same
	// completed table, so t1 must take all the probability mass.
	for _, g := range games {
		home, away := 0, 3
		if g.HomeTeamID == "t1" {
			home, away = 3, 0
		}
		if g.AwayTeamID != "t1" && g.HomeTeamID != "t1" {
			home, away = 0, 0
		}
		if _, err := fix.matches.RecordResult(ctx, g.ID, home, away); err != nil {
			t.Fatalf("RecordResult: %v", err)
		}
	}

	rows, err := fix.predictions.Championship(ctx)
	if err != nil {
		t.Fatalf("Championship: %v", err)
	}

	for _, row := range rows {
		want := 0.0
		if row.TeamID == "t1" {
			want = 100.0
		}
		if row.Probability != want {
			t.Fatalf("team %s probability = %.1f, want %.1f", row.TeamID, row.Probability, want)
		}
	}
}

func TestPredictionServiceReproducibleWithSeed(t *testing.T) {
	run := func() []float64 {
		fix := newServiceFixture(fourTeams(), 23)
		ctx := context.Background()

		if _, err := fix.schedules.Generate(ctx); err != nil {
			t.Fatalf("Generate: %v", err)
		}
		for week := 1; week <= 4; week++ {
			if _, err := fix.matches.PlayNextWeek(ctx); err != nil {
				t.Fatalf("PlayNextWeek: %v", err)
			}
		}

		rows, err := fix.predictions.Championship(ctx)
		if err != nil {
			t.Fatalf("Championship: %v", err)
		}

		probs := make([]float64, 0, len(rows))
		for _, row := range rows {
			probs = append(probs, row.Probability)
		}
		return probs
	}

	first := run()
	second := run()
	if len(first) != len(second) {
		t.Fatalf("row counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("row %d differs across seeded runs: %.1f vs %.1f", i, first[i], second[i])
		}
	}
}
