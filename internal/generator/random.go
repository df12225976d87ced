package generator

import (
	"math/rand"

	"github.com/shopspring/decimal"
)

// uniform draws from [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// weightedIndex picks an index with probability proportional to its weight.
// Weights must be non-negative with a positive sum.
func weightedIndex(rng *rand.Rand, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	r := rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r < 0 {
			return i
		}
	}
	return len(weights) - 1
}

// round2 rounds a monetary amount to 2 decimal places exactly, avoiding
// float drift in serialized values.
func round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
