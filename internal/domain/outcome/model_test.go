package outcome

import (
	"math"
	"math/rand"
	"testing"
)

func TestExpectedGoals_EqualPowers(t *testing.T) {
	// At 80 vs 80 the home multiplier alone sets the gap.
	home, away := ExpectedGoals(80, 80)

	wantHome := 1.4 + (80*1.10-80)/100.0
	wantAway := 1.1 - (80*1.10-80)/200.0

	if math.Abs(home-wantHome) > 1e-9 {
		t.Fatalf("unexpected home expectation: got %f want %f", home, wantHome)
	}
	if math.Abs(away-wantAway) > 1e-9 {
		t.Fatalf("unexpected away expectation: got %f want %f", away, wantAway)
	}
}

func TestExpectedGoals_ClampsExtremeGaps(t *testing.T) {
	testCases := []struct {
		name      string
		homePower int
		awayPower int
	}{
		{name: "max gap home", homePower: 100, awayPower: 0},
		{name: "max gap away", homePower: 0, awayPower: 100},
		{name: "level minnows", homePower: 0, awayPower: 0},
		{name: "level giants", homePower: 100, awayPower: 100},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			home, away := ExpectedGoals(tc.homePower, tc.awayPower)
			if home < 0.2 || home > 3.5 {
				t.Fatalf("home expectation %f outside [0.2,3.5]", home)
			}
			if away < 0.2 || away > 3.0 {
				t.Fatalf("away expectation %f outside [0.2,3.0]", away)
			}
		})
	}
}

func TestSimulate_SampleMeanTracksExpectation(t *testing.T) {
	const samples = 10000

	rng := rand.New(rand.NewSource(42))
	wantHome, wantAway := ExpectedGoals(75, 75)

	var sumHome, sumAway int
	for i := 0; i < samples; i++ {
		homeGoals, awayGoals := Simulate(75, 75, rng)
		if homeGoals < 0 || awayGoals < 0 {
			t.Fatalf("negative goal count: %d-%d", homeGoals, awayGoals)
		}
		sumHome += homeGoals
		sumAway += awayGoals
	}

	meanHome := float64(sumHome) / samples
	meanAway := float64(sumAway) / samples

	// 10k Poisson draws keep the sample mean within a few standard errors.
	if math.Abs(meanHome-wantHome) > 0.1 {
		t.Fatalf("home sample mean %f too far from expectation %f", meanHome, wantHome)
	}
	if math.Abs(meanAway-wantAway) > 0.1 {
		t.Fatalf("away sample mean %f too far from expectation %f", meanAway, wantAway)
	}
}

func TestSamplePoisson_NeverNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, lambda := range []float64{0.2, 1.0, 3.5} {
		for i := 0; i < 1000; i++ {
			if k := samplePoisson(lambda, rng); k < 0 {
				t.Fatalf("negative sample %d at lambda %f", k, lambda)
			}
		}
	}
}
