package generator

import (
	"math/rand"

	"staygen/internal/config"
	"staygen/internal/model"
)

// Reviews land between 1 and reviewDelayMaxDays days after check-out,
// clipped to the corpus end.
const reviewDelayMaxDays = 14

// ReviewGenerator samples a fixed fraction of completed bookings and attaches
// a rating and a matching templated comment to each.
type ReviewGenerator struct {
	cfg *config.Config
	cal *Calendar
}

func NewReviewGenerator(cfg *config.Config, cal *Calendar) *ReviewGenerator {
	return &ReviewGenerator{cfg: cfg, cal: cal}
}

// Generate builds the review fact table. Sampling uses its own fixed-seed
// source so the chosen subset is identical across runs for the same booking
// table, independent of the pipeline seed.
func (g *ReviewGenerator) Generate(bookings []model.Booking) []model.Review {
	rng := rand.New(rand.NewSource(g.cfg.ReviewSeed))

	// Only stays completed strictly before the corpus end are reviewable.
	var completed []model.Booking
	for _, b := range bookings {
		if b.CheckOut.Before(g.cal.End()) {
			completed = append(completed, b)
		}
	}

	n := int(float64(len(completed)) * g.cfg.ReviewRate)
	if n == 0 {
		return nil
	}
	sampled := rng.Perm(len(completed))[:n]

	reviews := make([]model.Review, 0, n)
	id := 1
	for _, idx := range sampled {
		b := completed[idx]
		rating := g.drawRating(rng)
		pool := g.cfg.RatingComments[rating]

		reviewDate := b.CheckOut.AddDate(0, 0, rng.Intn(reviewDelayMaxDays)+1)
		if reviewDate.After(g.cal.End()) {
			reviewDate = g.cal.End()
		}
		dateID, ok := g.cal.Lookup(reviewDate)
		if !ok {
			continue
		}

		reviews = append(reviews, model.Review{
			ReviewID:     id,
			BookingID:    b.BookingID,
			TenantID:     b.TenantID,
			PropertyID:   b.PropertyID,
			ReviewDateID: dateID,
			Rating:       rating,
			Text:         pool[rng.Intn(len(pool))],
			ReviewDate:   reviewDate,
		})
		id++
	}
	return reviews
}

func (g *ReviewGenerator) drawRating(rng *rand.Rand) int {
	weights := make([]float64, len(g.cfg.RatingDistribution))
	for i, rw := range g.cfg.RatingDistribution {
		weights[i] = rw.Weight
	}
	return g.cfg.RatingDistribution[weightedIndex(rng, weights)].Rating
}
