package generator

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"staygen/internal/config"
	"staygen/internal/identity"
	"staygen/internal/model"
)

// Dataset is the fully materialized star schema for one run. Tables are
// built once and never mutated afterwards.
type Dataset struct {
	Dates      []model.DateRecord
	Owners     []model.Owner
	Platforms  []model.Platform
	Properties []model.Property
	Tenants    []model.Tenant
	Bookings   []model.Booking
	Reviews    []model.Review

	// PropertyShortfall is how far the property table fell short of the
	// configured target because the owner population ran out of capacity.
	PropertyShortfall int
}

// Pipeline runs the dependency-ordered generation stages sequentially. All
// randomness flows from one seeded source so runs are reproducible
// end-to-end.
type Pipeline struct {
	cfg *config.Config
	log *logrus.Logger
}

func NewPipeline(cfg *config.Config, log *logrus.Logger) *Pipeline {
	return &Pipeline{cfg: cfg, log: log}
}

func (p *Pipeline) Run() (*Dataset, error) {
	if err := p.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	rng := rand.New(rand.NewSource(p.cfg.Seed))
	ids := identity.NewIssuer(rng.Int63())

	cal, err := BuildCalendar(p.cfg.StartDate, p.cfg.EndDate)
	if err != nil {
		return nil, err
	}
	p.stageDone("dim_date", len(cal.Records()))

	owners, err := NewOwnerGenerator(p.cfg, ids).Generate()
	if err != nil {
		return nil, err
	}
	p.stageDone("dim_owner", len(owners))

	platforms := BuildPlatforms(p.cfg)
	p.stageDone("dim_platform", len(platforms))

	props := NewPropertyGenerator(p.cfg, rng, ids).Generate(owners)
	if props.Shortfall > 0 {
		p.log.WithFields(logrus.Fields{
			"target":    p.cfg.NumProperties,
			"generated": len(props.Properties),
			"shortfall": props.Shortfall,
		}).Warn("owner population exhausted before property target was met")
	}
	p.stageDone("dim_property", len(props.Properties))

	tenants := NewTenantGenerator(p.cfg, ids).Generate()
	p.stageDone("dim_tenant", len(tenants))

	bookings := NewBookingGenerator(p.cfg, rng, cal, platforms, props.Properties, tenants).Generate()
	p.stageDone("fact_bookings", len(bookings))

	reviews := NewReviewGenerator(p.cfg, cal).Generate(bookings)
	p.stageDone("fact_reviews", len(reviews))

	return &Dataset{
		Dates:             cal.Records(),
		Owners:            owners,
		Platforms:         platforms,
		Properties:        props.Properties,
		Tenants:           tenants,
		Bookings:          bookings,
		Reviews:           reviews,
		PropertyShortfall: props.Shortfall,
	}, nil
}

func (p *Pipeline) stageDone(table string, rows int) {
	p.log.WithFields(logrus.Fields{"table": table, "rows": rows}).Info("table generated")
}
