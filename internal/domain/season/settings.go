package season

import "fmt"

// Settings carries the league dimensions as explicit configuration so the
// same logic can run at other sizes without recompilation.
type Settings struct {
	TeamCount        int
	TotalWeeks       int
	PredictionWindow int
	Trials           int
}

// Default returns the canonical 4-team double round-robin configuration.
func Default() Settings {
	return Settings{
		TeamCount:        4,
		TotalWeeks:       6,
		PredictionWindow: 3,
		Trials:           300,
	}
}

func (s Settings) Validate() error {
	if s.TeamCount < 2 {
		return fmt.Errorf("team count must be at least 2, got %d", s.TeamCount)
	}
	if s.TotalWeeks < 1 {
		return fmt.Errorf("total weeks must be at least 1, got %d", s.TotalWeeks)
	}
	if s.PredictionWindow < 1 || s.PredictionWindow > s.TotalWeeks {
		return fmt.Errorf("prediction window must be within [1,%d], got %d", s.TotalWeeks, s.PredictionWindow)
	}
	if s.Trials < 1 {
		return fmt.Errorf("trial count must be at least 1, got %d", s.Trials)
	}

	return nil
}

// PredictionStartWeek is the first week championship probabilities become
// visible. Earlier weeks yield empty predictions rather than noisy ones.
func (s Settings) PredictionStartWeek() int {
	return s.TotalWeeks - s.PredictionWindow + 1
}
