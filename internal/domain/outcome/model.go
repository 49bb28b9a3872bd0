package outcome

import (
	"math"
	"math/rand"
)

const (
	homeAdvantage = 1.10

	baseHomeGoals = 1.4
	baseAwayGoals = 1.1

	minExpectedGoals     = 0.2
	maxExpectedHomeGoals = 3.5
	maxExpectedAwayGoals = 3.0
)

// ExpectedGoals converts two power ratings into Poisson means for the home
// and away side. The home rating gets a fixed advantage multiplier and both
// expectations are clamped so extreme power gaps stay inside a plausible
// scoring range.
func ExpectedGoals(homePower, awayPower int) (home, away float64) {
	diff := (float64(homePower)*homeAdvantage - float64(awayPower)) / 100

	home = clamp(baseHomeGoals+diff, minExpectedGoals, maxExpectedHomeGoals)
	away = clamp(baseAwayGoals-diff/2, minExpectedGoals, maxExpectedAwayGoals)
	return home, away
}

// Simulate draws one scoreline for a match between the two ratings. It is a
// pure function of its inputs and the supplied randomness source and never
// fails; every integer rating is a valid input.
func Simulate(homePower, awayPower int, rng *rand.Rand) (homeGoals, awayGoals int) {
	lambdaHome, lambdaAway := ExpectedGoals(homePower, awayPower)
	return samplePoisson(lambdaHome, rng), samplePoisson(lambdaAway, rng)
}

// samplePoisson draws from Poisson(lambda) via Knuth's product-of-uniforms
// method. Fine for the small lambdas the clamp guarantees.
func samplePoisson(lambda float64, rng *rand.Rand) int {
	threshold := math.Exp(-lambda)
	p := 1.0
	k := 0
	for {
		p *= rng.Float64()
		if p <= threshold {
			return k
		}
		k++
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
