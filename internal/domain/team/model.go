package team

import "fmt"

const (
	MinPower = 0
	MaxPower = 100
)

// Team is one club competing in the group stage. Power is its relative
// strength rating and drives the goal expectations of simulated matches.
type Team struct {
	ID    string
	Name  string
	Power int
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	if t.Power < MinPower || t.Power > MaxPower {
		return fmt.Errorf("team power must be within [%d,%d], got %d", MinPower, MaxPower, t.Power)
	}

	return nil
}
