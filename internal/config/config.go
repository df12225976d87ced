package config

import (
	"fmt"
	"math"
	"time"
)

// PropertyTypeConfig describes one property type: how its nightly rate
// relates to the portfolio average, how booked it should end up, and how
// likely it is to carry luxury amenities.
type PropertyTypeConfig struct {
	Name            string
	PriceFactor     float64
	TargetOccupancy float64
	LuxuryProb      float64
	// LargeOutdoor marks types that can plausibly carry pools, private
	// beaches and rooftop terraces.
	LargeOutdoor bool
}

// OwnerCategoryConfig describes an ownership-size tier. Min == Max == 1
// means a fixed single-property owner.
type OwnerCategoryConfig struct {
	Name     string
	Share    float64
	MinProps int
	MaxProps int
}

// PlatformConfig is a booking channel and its sampling bias. Bias > 1 makes
// the channel proportionally more likely in the occupancy-fill pass.
type PlatformConfig struct {
	Name string
	Bias float64
}

// RatingWeight pairs a star rating with its draw probability. Kept as an
// ordered slice so weighted draws are deterministic under a fixed seed.
type RatingWeight struct {
	Rating int
	Weight float64
}

// Config is the full generation surface. It is built once, validated once,
// and treated as immutable by every stage.
type Config struct {
	StartDate time.Time
	EndDate   time.Time

	NumProperties int
	NumOwners     int
	NumTenants    int

	// AvgDailyRate is the portfolio-wide base nightly rate all type pricing
	// factors multiply against.
	AvgDailyRate     float64
	MinBasePrice     float64
	AvgBookingNights int

	TenantRepeatProb float64
	// RepeatWindow is how many recent bookings the repeat-guest draw looks
	// back over; RepeatWarmup is how many bookings must exist before repeat
	// draws start.
	RepeatWindow int
	RepeatWarmup int

	DamageProb   float64
	TurnoverProb float64

	ReviewRate float64
	// ReviewSeed seeds the review sampling independently of the pipeline
	// seed, so the sampled subset is reproducible for a given booking table.
	ReviewSeed int64

	Seed      int64
	OutputDir string

	PropertyTypes   []PropertyTypeConfig
	OwnerCategories []OwnerCategoryConfig
	// DefaultCategory absorbs the rounding remainder when category shares do
	// not divide the owner count exactly.
	DefaultCategory string
	Platforms       []PlatformConfig

	BasicAmenities []string
	LuxuryGeneral  []string
	LuxuryOutdoor  []string

	Countries       []string
	BookingPurposes []string

	RatingDistribution []RatingWeight
	RatingComments     map[int][]string
}

// Owner category names.
const (
	SoleProprietor = "Sole Proprietor"
	Family1        = "Family (1 Property)"
	FamilyFew      = "Family (>1 Property)"
	FamilyMany     = "Family (>5 Properties)"
	FamilyLots     = "Family (>10 Properties)"
)

// Default returns the stock marketplace configuration: four years of
// activity across 600 properties, 150 owners and 1000 tenants.
func Default() *Config {
	return &Config{
		StartDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),

		NumProperties: 600,
		NumOwners:     150,
		NumTenants:    1000,

		AvgDailyRate:     190,
		MinBasePrice:     50,
		AvgBookingNights: 5,

		TenantRepeatProb: 0.3,
		RepeatWindow:     500,
		RepeatWarmup:     100,

		DamageProb:   0.02,
		TurnoverProb: 0.25,

		ReviewRate: 0.7,
		ReviewSeed: 42,

		Seed:      1,
		OutputDir: "synthetic_booking_data",

		PropertyTypes: []PropertyTypeConfig{
			{Name: "Apartment", PriceFactor: 0.8, TargetOccupancy: 0.70, LuxuryProb: 0.2, LargeOutdoor: false},
			{Name: "House", PriceFactor: 1.0, TargetOccupancy: 0.55, LuxuryProb: 0.4, LargeOutdoor: true},
			{Name: "Villa", PriceFactor: 1.5, TargetOccupancy: 0.40, LuxuryProb: 0.7, LargeOutdoor: true},
			{Name: "Cabin", PriceFactor: 0.9, TargetOccupancy: 0.50, LuxuryProb: 0.3, LargeOutdoor: false},
			{Name: "Townhouse", PriceFactor: 0.95, TargetOccupancy: 0.60, LuxuryProb: 0.3, LargeOutdoor: true},
			{Name: "Resort", PriceFactor: 1.8, TargetOccupancy: 0.45, LuxuryProb: 0.8, LargeOutdoor: true},
		},

		OwnerCategories: []OwnerCategoryConfig{
			{Name: SoleProprietor, Share: 0.40, MinProps: 1, MaxProps: 1},
			{Name: Family1, Share: 0.20, MinProps: 1, MaxProps: 1},
			{Name: FamilyFew, Share: 0.20, MinProps: 2, MaxProps: 4},
			{Name: FamilyMany, Share: 0.15, MinProps: 5, MaxProps: 9},
			{Name: FamilyLots, Share: 0.05, MinProps: 10, MaxProps: 15},
		},
		DefaultCategory: SoleProprietor,

		Platforms: []PlatformConfig{
			{Name: "Airbnb", Bias: 1.2},
			{Name: "Booking.com", Bias: 1.1},
			{Name: "Direct Website", Bias: 0.8},
			{Name: "Expedia", Bias: 0.9},
			{Name: "Vrbo", Bias: 1.0},
			{Name: "TripAdvisor", Bias: 0.6},
			{Name: "Agoda", Bias: 0.5},
		},

		BasicAmenities: []string{"WiFi", "Hot Water", "Air Conditioning", "Balcony", "Kitchenette", "Parking"},
		LuxuryGeneral:  []string{"Fireplace", "Gym", "Hot Tub", "Game Room", "Home Theater"},
		LuxuryOutdoor:  []string{"Swimming Pool", "Private Beach Access", "Rooftop Terrace"},

		Countries:       []string{"USA", "Canada"},
		BookingPurposes: []string{"Holiday Fun", "Business Meeting", "Personal Getaway", "Family Gathering", "Event Accommodation"},

		RatingDistribution: []RatingWeight{
			{Rating: 5, Weight: 0.60},
			{Rating: 4, Weight: 0.20},
			{Rating: 3, Weight: 0.10},
			{Rating: 2, Weight: 0.05},
			{Rating: 1, Weight: 0.05},
		},
		RatingComments: map[int][]string{
			5: {"Absolutely loved it!", "Fantastic stay, highly recommend.", "Perfect in every way.", "Will definitely be back!", "Exceeded expectations."},
			4: {"Very good, just a minor issue with X.", "Enjoyed our stay, comfortable.", "Pleasant experience overall.", "Great location and amenities.", "Would stay again."},
			3: {"Decent stay, nothing special.", "It was okay, a bit noisy.", "Could use some improvements.", "Met basic needs.", "Average experience."},
			2: {"Disappointing, amenities not as described.", "Had issues with cleanliness.", "Not worth the price.", "Poor communication.", "Wouldn't recommend."},
			1: {"Horrible experience, avoid at all costs.", "Filthy and uncomfortable.", "Completely unacceptable.", "Misleading listing.", "Worst stay ever."},
		},
	}
}

// Validate checks the configuration once, before any generation runs.
func (c *Config) Validate() error {
	if c.EndDate.Before(c.StartDate) {
		return fmt.Errorf("end date %s is before start date %s",
			c.EndDate.Format("2006-01-02"), c.StartDate.Format("2006-01-02"))
	}
	if c.NumProperties <= 0 || c.NumOwners <= 0 || c.NumTenants <= 0 {
		return fmt.Errorf("property, owner and tenant counts must be positive")
	}
	if c.AvgDailyRate <= 0 {
		return fmt.Errorf("average daily rate must be positive, got %.2f", c.AvgDailyRate)
	}
	if c.AvgBookingNights < 1 {
		return fmt.Errorf("average booking duration must be at least 1 night, got %d", c.AvgBookingNights)
	}
	if c.TenantRepeatProb < 0 || c.TenantRepeatProb > 1 {
		return fmt.Errorf("tenant repeat probability must be in [0,1], got %.2f", c.TenantRepeatProb)
	}
	if c.ReviewRate < 0 || c.ReviewRate > 1 {
		return fmt.Errorf("review rate must be in [0,1], got %.2f", c.ReviewRate)
	}
	if len(c.PropertyTypes) == 0 {
		return fmt.Errorf("at least one property type is required")
	}
	for _, pt := range c.PropertyTypes {
		if pt.TargetOccupancy < 0 || pt.TargetOccupancy > 1 {
			return fmt.Errorf("property type %q: target occupancy must be in [0,1], got %.2f", pt.Name, pt.TargetOccupancy)
		}
		if pt.LuxuryProb < 0 || pt.LuxuryProb > 1 {
			return fmt.Errorf("property type %q: luxury probability must be in [0,1], got %.2f", pt.Name, pt.LuxuryProb)
		}
		if pt.PriceFactor <= 0 {
			return fmt.Errorf("property type %q: price factor must be positive, got %.2f", pt.Name, pt.PriceFactor)
		}
	}
	if len(c.OwnerCategories) == 0 {
		return fmt.Errorf("at least one owner category is required")
	}
	shareSum := 0.0
	defaultFound := false
	for _, cat := range c.OwnerCategories {
		if cat.MinProps < 1 || cat.MaxProps < cat.MinProps {
			return fmt.Errorf("owner category %q: invalid property range [%d,%d]", cat.Name, cat.MinProps, cat.MaxProps)
		}
		if cat.Share < 0 || cat.Share > 1 {
			return fmt.Errorf("owner category %q: share must be in [0,1], got %.2f", cat.Name, cat.Share)
		}
		shareSum += cat.Share
		if cat.Name == c.DefaultCategory {
			defaultFound = true
		}
	}
	if math.Abs(shareSum-1) > 1e-6 {
		return fmt.Errorf("owner category shares must sum to 1, got %.4f", shareSum)
	}
	if !defaultFound {
		return fmt.Errorf("default owner category %q is not among the configured categories", c.DefaultCategory)
	}
	if len(c.Platforms) == 0 {
		return fmt.Errorf("at least one platform is required")
	}
	for _, p := range c.Platforms {
		if p.Bias <= 0 {
			return fmt.Errorf("platform %q: bias must be positive, got %.2f", p.Name, p.Bias)
		}
	}
	weightSum := 0.0
	for _, rw := range c.RatingDistribution {
		if rw.Rating < 1 || rw.Rating > 5 {
			return fmt.Errorf("rating distribution contains rating %d outside 1..5", rw.Rating)
		}
		if rw.Weight < 0 {
			return fmt.Errorf("rating %d has negative weight %.2f", rw.Rating, rw.Weight)
		}
		if len(c.RatingComments[rw.Rating]) == 0 {
			return fmt.Errorf("rating %d has no comment templates", rw.Rating)
		}
		weightSum += rw.Weight
	}
	if math.Abs(weightSum-1) > 1e-6 {
		return fmt.Errorf("rating weights must sum to 1, got %.4f", weightSum)
	}
	return nil
}

// TotalDays is the inclusive length of the corpus window in days.
func (c *Config) TotalDays() int {
	return int(c.EndDate.Sub(c.StartDate).Hours()/24) + 1
}

// NormalizeCategoryCounts turns category population shares into exact owner
// counts summing to total. Shares are floored and any remainder is absorbed
// into the default category, matching the documented tie-breaking rule.
func NormalizeCategoryCounts(total int, categories []OwnerCategoryConfig, defaultCategory string) (map[string]int, error) {
	counts := make(map[string]int, len(categories))
	assigned := 0
	for _, cat := range categories {
		n := int(float64(total) * cat.Share)
		counts[cat.Name] = n
		assigned += n
	}
	if _, ok := counts[defaultCategory]; !ok {
		return nil, fmt.Errorf("default category %q not found", defaultCategory)
	}
	counts[defaultCategory] += total - assigned
	if counts[defaultCategory] < 0 {
		return nil, fmt.Errorf("category shares allocate more than the %d requested owners", total)
	}
	return counts, nil
}
