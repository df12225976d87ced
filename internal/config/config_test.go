package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfigIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestValidateRejectsReversedWindow(t *testing.T) {
	cfg := Default()
	cfg.StartDate = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	cfg.EndDate = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsNonPositiveCounts(t *testing.T) {
	cfg := Default()
	cfg.NumProperties = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.NumTenants = -5
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsOccupancyOutOfRange(t *testing.T) {
	cfg := Default()
	cfg.PropertyTypes[0].TargetOccupancy = 1.3
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsDegenerateOwnerRange(t *testing.T) {
	cfg := Default()
	cfg.OwnerCategories[2].MaxProps = 1 // below MinProps of 2
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsBadShareSum(t *testing.T) {
	cfg := Default()
	cfg.OwnerCategories[0].Share = 0.9
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsUnknownDefaultCategory(t *testing.T) {
	cfg := Default()
	cfg.DefaultCategory = "Conglomerate"
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsBadRatingWeights(t *testing.T) {
	cfg := Default()
	cfg.RatingDistribution[0].Weight = 0.5
	assert.Error(t, cfg.Validate())
}

func TestNormalizeCategoryCountsSumsToTotal(t *testing.T) {
	cfg := Default()
	counts, err := NormalizeCategoryCounts(150, cfg.OwnerCategories, cfg.DefaultCategory)
	assert.NoError(t, err)

	total := 0
	for _, n := range counts {
		total += n
	}
	assert.Equal(t, 150, total)
}

func TestNormalizeCategoryCountsAbsorbsRemainderIntoDefault(t *testing.T) {
	cfg := Default()
	// 0.40*150 = 60, 0.20*150 = 30, 0.20*150 = 30, 0.15*150 = 22 (floored),
	// 0.05*150 = 7 (floored); the 1-owner remainder lands on the default.
	counts, err := NormalizeCategoryCounts(150, cfg.OwnerCategories, SoleProprietor)
	assert.NoError(t, err)
	assert.Equal(t, 61, counts[SoleProprietor])
	assert.Equal(t, 30, counts[Family1])
	assert.Equal(t, 30, counts[FamilyFew])
	assert.Equal(t, 22, counts[FamilyMany])
	assert.Equal(t, 7, counts[FamilyLots])
}

func TestNormalizeCategoryCountsUnknownDefault(t *testing.T) {
	cfg := Default()
	_, err := NormalizeCategoryCounts(150, cfg.OwnerCategories, "Conglomerate")
	assert.Error(t, err)
}

func TestTotalDays(t *testing.T) {
	cfg := Default()
	cfg.StartDate = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	cfg.EndDate = time.Date(2020, 1, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 10, cfg.TotalDays())
}
