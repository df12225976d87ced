package generator

import (
	"math/rand"
	"sort"
	"strings"

	"staygen/internal/config"
	"staygen/internal/identity"
	"staygen/internal/model"
)

// amenityPremium is the per-amenity price bump for each luxury amenity
// beyond the basic set.
const amenityPremium = 20

// PropertyGenerator allocates the property dimension across the owner
// population while honoring each owner category's property-count range.
type PropertyGenerator struct {
	cfg *config.Config
	rng *rand.Rand
	ids *identity.Issuer
}

// PropertyResult carries the generated rows plus any shortfall against the
// requested target when the owner population ran out of capacity.
type PropertyResult struct {
	Properties []model.Property
	Shortfall  int
}

func NewPropertyGenerator(cfg *config.Config, rng *rand.Rand, ids *identity.Issuer) *PropertyGenerator {
	return &PropertyGenerator{cfg: cfg, rng: rng, ids: ids}
}

// Generate walks each owner category (owners shuffled within it), draws a
// property count per owner from the category range capped at the remaining
// target, then synthesizes each property's type, amenities, price and
// location.
func (g *PropertyGenerator) Generate(owners []model.Owner) PropertyResult {
	usCities := g.cityPool(g.cfg.NumProperties / 8)
	caCities := g.cityPool(g.cfg.NumProperties / 12)

	ownersByCategory := make(map[string][]int)
	for _, o := range owners {
		ownersByCategory[o.Category] = append(ownersByCategory[o.Category], o.OwnerID)
	}

	properties := make([]model.Property, 0, g.cfg.NumProperties)
	id := 1
	assigned := 0
	for _, cat := range g.cfg.OwnerCategories {
		ownerIDs := ownersByCategory[cat.Name]
		g.rng.Shuffle(len(ownerIDs), func(i, j int) {
			ownerIDs[i], ownerIDs[j] = ownerIDs[j], ownerIDs[i]
		})
		for _, ownerID := range ownerIDs {
			if assigned >= g.cfg.NumProperties {
				break
			}
			count := cat.MinProps
			if cat.MaxProps > cat.MinProps {
				count = cat.MinProps + g.rng.Intn(cat.MaxProps-cat.MinProps+1)
			}
			if remaining := g.cfg.NumProperties - assigned; count > remaining {
				count = remaining
			}
			for i := 0; i < count; i++ {
				properties = append(properties, g.newProperty(id, ownerID, usCities, caCities))
				id++
				assigned++
			}
		}
	}

	return PropertyResult{
		Properties: properties,
		Shortfall:  g.cfg.NumProperties - assigned,
	}
}

func (g *PropertyGenerator) newProperty(id, ownerID int, usCities, caCities []string) model.Property {
	typeCfg := g.cfg.PropertyTypes[g.rng.Intn(len(g.cfg.PropertyTypes))]

	amenities := g.drawAmenities(typeCfg)
	extra := len(amenities) - len(g.cfg.BasicAmenities)

	price := g.cfg.AvgDailyRate*typeCfg.PriceFactor*uniform(g.rng, 0.9, 1.1) + float64(extra)*amenityPremium
	price = round2(price)
	if price < g.cfg.MinBasePrice {
		price = g.cfg.MinBasePrice
	}

	country := g.cfg.Countries[g.rng.Intn(len(g.cfg.Countries))]
	cities := usCities
	if country == "Canada" {
		cities = caCities
	}

	return model.Property{
		PropertyID:       id,
		OwnerID:          ownerID,
		Type:             typeCfg.Name,
		Country:          country,
		City:             cities[g.rng.Intn(len(cities))],
		DistanceToCenter: round2(uniform(g.rng, 1, 20)),
		Amenities:        strings.Join(amenities, ", "),
		BasePrice:        price,
	}
}

// drawAmenities starts from the basic set, adds one general luxury amenity
// with the type's luxury probability, and for large-outdoor-compatible types
// adds one outdoor amenity with a further 50% chance. The result is deduped
// and sorted.
func (g *PropertyGenerator) drawAmenities(typeCfg config.PropertyTypeConfig) []string {
	amenities := append([]string(nil), g.cfg.BasicAmenities...)
	if g.rng.Float64() < typeCfg.LuxuryProb {
		amenities = append(amenities, g.cfg.LuxuryGeneral[g.rng.Intn(len(g.cfg.LuxuryGeneral))])
		if typeCfg.LargeOutdoor && g.rng.Float64() < 0.5 {
			amenities = append(amenities, g.cfg.LuxuryOutdoor[g.rng.Intn(len(g.cfg.LuxuryOutdoor))])
		}
	}
	return sortedUnique(amenities)
}

func (g *PropertyGenerator) cityPool(size int) []string {
	if size < 1 {
		size = 1
	}
	cities := make([]string, size)
	for i := range cities {
		cities[i] = g.ids.City()
	}
	return cities
}

func sortedUnique(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := values[:0]
	for _, v := range values {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
