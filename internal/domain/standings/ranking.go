package standings

// Less is the single ranking rule shared by the live table and champion
// resolution: points, then goal difference, then goals scored, then team
// name ascending. The name step makes the order total, so two rows with
// distinct names never tie.
func Less(a, b Row) bool {
	if a.Points != b.Points {
		return a.Points > b.Points
	}
	if a.GoalDifference != b.GoalDifference {
		return a.GoalDifference > b.GoalDifference
	}
	if a.GoalsFor != b.GoalsFor {
		return a.GoalsFor > b.GoalsFor
	}
	return a.TeamName < b.TeamName
}
