package season

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettingsValid(t *testing.T) {
	settings := Default()
	require.NoError(t, settings.Validate())

	assert.Equal(t, 4, settings.TeamCount)
	assert.Equal(t, 6, settings.TotalWeeks)
	assert.Equal(t, 4, settings.PredictionStartWeek())
}

func TestSettingsValidate(t *testing.T) {
	cases := []struct {
		name     string
		settings Settings
		wantErr  string
	}{
		{"too few teams", Settings{TeamCount: 1, TotalWeeks: 6, PredictionWindow: 3, Trials: 300}, "team count"},
		{"no weeks", Settings{TeamCount: 4, TotalWeeks: 0, PredictionWindow: 3, Trials: 300}, "total weeks"},
		{"window too small", Settings{TeamCount: 4, TotalWeeks: 6, PredictionWindow: 0, Trials: 300}, "prediction window"},
		{"window exceeds season", Settings{TeamCount: 4, TotalWeeks: 6, PredictionWindow: 7, Trials: 300}, "prediction window"},
		{"no trials", Settings{TeamCount: 4, TotalWeeks: 6, PredictionWindow: 3, Trials: 0}, "trial count"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.settings.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestPredictionStartWeek(t *testing.T) {
	cases := []struct {
		totalWeeks int
		window     int
		want       int
	}{
		{6, 3, 4},
		{6, 6, 1},
		{6, 1, 6},
		{10, 4, 7},
	}

	for _, tc := range cases {
		settings := Settings{TeamCount: 4, TotalWeeks: tc.totalWeeks, PredictionWindow: tc.window, Trials: 1}
		assert.Equal(t, tc.want, settings.PredictionStartWeek(),
			"weeks=%d window=%d", tc.totalWeeks, tc.window)
	}
}
