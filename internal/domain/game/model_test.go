package game

import "testing"

func intPtr(v int) *int { return &v }

func TestCurrentWeek(t *testing.T) {
	testCases := []struct {
		name  string
		games []Game
		want  int
	}{
		{
			name:  "no games",
			games: nil,
			want:  1,
		},
		{
			name: "nothing played",
			games: []Game{
				{Week: 1}, {Week: 2},
			},
			want: 1,
		},
		{
			name: "mid season",
			games: []Game{
				{Week: 1, Played: true, HomeGoals: intPtr(1), AwayGoals: intPtr(0)},
				{Week: 3, Played: true, HomeGoals: intPtr(2), AwayGoals: intPtr(2)},
				{Week: 4},
			},
			want: 4,
		},
		{
			name: "season complete caps at total weeks",
			games: []Game{
				{Week: 6, Played: true, HomeGoals: intPtr(0), AwayGoals: intPtr(0)},
			},
			want: 6,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CurrentWeek(tc.games, 6); got != tc.want {
				t.Fatalf("CurrentWeek = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestHasResult(t *testing.T) {
	if (Game{Played: true}).HasResult() {
		t.Fatal("played game without goals must not have a result")
	}
	if (Game{HomeGoals: intPtr(1), AwayGoals: intPtr(0)}).HasResult() {
		t.Fatal("unplayed game must not have a result")
	}
	if !(Game{Played: true, HomeGoals: intPtr(1), AwayGoals: intPtr(0)}).HasResult() {
		t.Fatal("played game with both goals must have a result")
	}
}

func TestUnplayedAndForWeek(t *testing.T) {
	games := []Game{
		{ID: "g1", Week: 1, Played: true, HomeGoals: intPtr(1), AwayGoals: intPtr(1)},
		{ID: "g2", Week: 1},
		{ID: "g3", Week: 2},
	}

	unplayed := Unplayed(games)
	if len(unplayed) != 2 {
		t.Fatalf("expected 2 unplayed games, got %d", len(unplayed))
	}

	week1 := ForWeek(games, 1)
	if len(week1) != 2 {
		t.Fatalf("expected 2 week-1 games, got %d", len(week1))
	}
}
