package generator

import (
	"math/rand"

	"staygen/internal/config"
	"staygen/internal/model"
)

// platformPoolSize is how many biased platform draws are pre-materialized
// for the occupancy-fill pass.
const platformPoolSize = 10000

// BuildPlatforms materializes the static booking-channel dimension.
func BuildPlatforms(cfg *config.Config) []model.Platform {
	platforms := make([]model.Platform, 0, len(cfg.Platforms))
	for i, p := range cfg.Platforms {
		platforms = append(platforms, model.Platform{
			PlatformID: i + 1,
			Name:       p.Name,
			Bias:       p.Bias,
		})
	}
	return platforms
}

// weightedPlatformPool pre-draws a large pool of platform ids where each
// channel appears proportionally to its bias. Phase 2 samples this pool
// uniformly instead of re-running a weighted draw per booking.
func weightedPlatformPool(rng *rand.Rand, platforms []model.Platform, size int) []int {
	weights := make([]float64, len(platforms))
	for i, p := range platforms {
		weights[i] = p.Bias
	}
	pool := make([]int, size)
	for i := range pool {
		pool[i] = platforms[weightedIndex(rng, weights)].PlatformID
	}
	return pool
}
