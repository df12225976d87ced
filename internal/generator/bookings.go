package generator

import (
	"math"
	"math/rand"
	"time"

	"staygen/internal/config"
	"staygen/internal/model"
)

// Damage cost band in dollars when a stay causes damage.
const (
	damageCostMin = 50
	damageCostMax = 500
)

// fillBuffer is the extra share of phase-2 bookings generated on top of the
// occupancy target to absorb rows dropped at window edges. It is added even
// when phase 1 already overshot the target, so booking volume runs slightly
// hot rather than short.
const fillBuffer = 0.1

// BookingGenerator builds the booking fact table in two passes: a
// guaranteed-coverage pass that gives every property at least one booking in
// every calendar year, then a weighted fill pass toward the per-type
// occupancy targets.
type BookingGenerator struct {
	cfg        *config.Config
	rng        *rand.Rand
	cal        *Calendar
	platforms  []model.Platform
	properties []model.Property
	tenants    []model.Tenant

	history *tenantHistory
}

func NewBookingGenerator(cfg *config.Config, rng *rand.Rand, cal *Calendar,
	platforms []model.Platform, properties []model.Property, tenants []model.Tenant) *BookingGenerator {
	return &BookingGenerator{
		cfg:        cfg,
		rng:        rng,
		cal:        cal,
		platforms:  platforms,
		properties: properties,
		tenants:    tenants,
		history:    newTenantHistory(cfg.RepeatWindow),
	}
}

// Generate runs both passes and finalizes the table. Row counts are targets,
// not guarantees: a stay whose clipped dates fail the calendar lookup is
// dropped rather than retried, and the phase-2 buffer absorbs the loss.
func (g *BookingGenerator) Generate() []model.Booking {
	bookings := g.guaranteedCoverage()
	bookings = g.occupancyFill(bookings)

	// Final sweep mirrors the nights > 0 filter of the source table build.
	out := bookings[:0]
	for _, b := range bookings {
		if b.Nights > 0 {
			out = append(out, b)
		}
	}
	return out
}

// guaranteedCoverage synthesizes one booking per property per calendar year
// intersecting the corpus window, so no property/year group is empty.
func (g *BookingGenerator) guaranteedCoverage() []model.Booking {
	var bookings []model.Booking
	id := 1
	for year := g.cal.Start().Year(); year <= g.cal.End().Year(); year++ {
		yearStart := maxDate(g.cal.Start(), time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC))
		yearEnd := minDate(g.cal.End(), time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC))
		yearDays := daysBetween(yearStart, yearEnd) + 1
		if yearDays <= 0 {
			continue
		}
		for _, prop := range g.properties {
			offsetRange := yearDays - g.cfg.AvgBookingNights
			if offsetRange < 0 {
				offsetRange = 0
			}
			checkIn := yearStart.AddDate(0, 0, g.rng.Intn(offsetRange+1))

			nights := g.stayNights()
			checkOut := checkIn.AddDate(0, 0, nights)
			if checkOut.After(yearEnd) {
				checkOut = yearEnd
				nights = daysBetween(checkIn, checkOut)
			}
			if nights < 1 {
				continue
			}

			b := model.Booking{
				PropertyID: prop.PropertyID,
				PlatformID: g.platforms[g.rng.Intn(len(g.platforms))].PlatformID,
				TenantID:   g.tenants[g.rng.Intn(len(g.tenants))].TenantID,
				CheckIn:    checkIn,
				CheckOut:   checkOut,
				Nights:     nights,
				Revenue:    round2(float64(nights) * g.cfg.AvgDailyRate * uniform(g.rng, 0.8, 1.2)),
			}
			if g.emit(&b, &id) {
				bookings = append(bookings, b)
			}
		}
	}
	return bookings
}

// occupancyFill tops the table up toward the per-type occupancy targets with
// weighted property selection, biased platform draws and repeat guests.
func (g *BookingGenerator) occupancyFill(bookings []model.Booking) []model.Booking {
	propsByType := make(map[string][]model.Property)
	for _, p := range g.properties {
		propsByType[p.Type] = append(propsByType[p.Type], p)
	}

	target := g.fillTarget(propsByType)
	remaining := target - len(bookings)
	if remaining < 0 {
		remaining = 0
	}
	remaining += int(float64(target) * fillBuffer)

	typeWeights := make([]float64, len(g.cfg.PropertyTypes))
	for i, tc := range g.cfg.PropertyTypes {
		typeWeights[i] = tc.TargetOccupancy * float64(len(propsByType[tc.Name]))
	}
	platformPool := weightedPlatformPool(g.rng, g.platforms, platformPoolSize)

	id := 1
	if n := len(bookings); n > 0 {
		id = bookings[n-1].BookingID + 1
	}
	for i := 0; i < remaining; i++ {
		typeCfg := g.cfg.PropertyTypes[weightedIndex(g.rng, typeWeights)]
		candidates := propsByType[typeCfg.Name]
		if len(candidates) == 0 {
			continue
		}
		prop := candidates[g.rng.Intn(len(candidates))]

		tenantID := g.tenants[g.rng.Intn(len(g.tenants))].TenantID
		if g.rng.Float64() < g.cfg.TenantRepeatProb && id > g.cfg.RepeatWarmup {
			if recent, ok := g.history.Sample(g.rng); ok {
				tenantID = recent
			}
		}

		offsetRange := g.cal.Days() - g.cfg.AvgBookingNights
		offset := 0
		if offsetRange > 0 {
			offset = g.rng.Intn(offsetRange)
		}
		checkIn := g.cal.Start().AddDate(0, 0, offset)

		nights := g.stayNights()
		checkOut := checkIn.AddDate(0, 0, nights)
		if checkOut.After(g.cal.End()) {
			checkOut = g.cal.End()
			nights = daysBetween(checkIn, checkOut)
			if nights < 1 {
				continue
			}
		}

		b := model.Booking{
			PropertyID: prop.PropertyID,
			PlatformID: platformPool[g.rng.Intn(len(platformPool))],
			TenantID:   tenantID,
			CheckIn:    checkIn,
			CheckOut:   checkOut,
			Nights:     nights,
			// Anchored to the property's own price, with a wider band than
			// the portfolio-average pricing of the coverage pass.
			Revenue: round2(float64(nights) * prop.BasePrice * uniform(g.rng, 0.9, 1.3)),
		}
		if g.emit(&b, &id) {
			bookings = append(bookings, b)
		}
	}
	return bookings
}

// fillTarget converts each type's occupancy target into a booking count:
// available nights for the type times occupancy, divided by the average
// stay length.
func (g *BookingGenerator) fillTarget(propsByType map[string][]model.Property) int {
	total := 0
	for _, tc := range g.cfg.PropertyTypes {
		availableNights := len(propsByType[tc.Name]) * g.cal.Days()
		targetNights := int(float64(availableNights) * tc.TargetOccupancy)
		total += targetNights / g.cfg.AvgBookingNights
	}
	return total
}

// emit resolves both stay dates through the calendar, fills the shared
// attributes and assigns the next id. A lookup miss drops the booking.
func (g *BookingGenerator) emit(b *model.Booking, id *int) bool {
	inID, inOK := g.cal.Lookup(b.CheckIn)
	outID, outOK := g.cal.Lookup(b.CheckOut)
	if !inOK || !outOK {
		return false
	}
	b.CheckInDateID = inID
	b.CheckOutDateID = outID
	b.Purpose = g.cfg.BookingPurposes[g.rng.Intn(len(g.cfg.BookingPurposes))]
	if g.rng.Float64() < g.cfg.DamageProb {
		b.DamageFlag = 1
		b.DamageCost = round2(uniform(g.rng, damageCostMin, damageCostMax))
	}
	if g.rng.Float64() < g.cfg.TurnoverProb {
		b.TurnoverFlag = 1
	}
	b.BookingID = *id
	*id++
	g.history.Append(b.TenantID)
	return true
}

// stayNights draws a stay length from a normal distribution centered on the
// configured average with half of it as standard deviation, floored at one
// night.
func (g *BookingGenerator) stayNights() int {
	mean := float64(g.cfg.AvgBookingNights)
	nights := int(math.Round(g.rng.NormFloat64()*mean/2 + mean))
	if nights < 1 {
		nights = 1
	}
	return nights
}
