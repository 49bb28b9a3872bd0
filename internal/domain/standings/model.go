package standings

// Row is one league table entry. Derived data: recomputed on every read,
// never persisted.
type Row struct {
	TeamID         string
	TeamName       string
	Position       int
	Played         int
	Won            int
	Drawn          int
	Lost           int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
}
