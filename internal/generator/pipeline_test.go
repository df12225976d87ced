package generator

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staygen/internal/config"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func pipelineConfig() *config.Config {
	cfg := config.Default()
	cfg.StartDate = day(2020, 1, 1)
	cfg.EndDate = day(2021, 12, 31)
	cfg.NumProperties = 25
	cfg.NumOwners = 10
	cfg.NumTenants = 80
	return cfg
}

func TestPipelineRejectsInvalidConfig(t *testing.T) {
	cfg := pipelineConfig()
	cfg.NumOwners = 0
	_, err := NewPipeline(cfg, quietLogger()).Run()
	assert.Error(t, err)
}

func TestPipelineReferentialIntegrity(t *testing.T) {
	cfg := pipelineConfig()
	ds, err := NewPipeline(cfg, quietLogger()).Run()
	require.NoError(t, err)

	require.Len(t, ds.Dates, cfg.TotalDays())
	require.Len(t, ds.Owners, cfg.NumOwners)
	require.Len(t, ds.Tenants, cfg.NumTenants)
	require.Len(t, ds.Platforms, len(cfg.Platforms))
	require.Equal(t, cfg.NumProperties-ds.PropertyShortfall, len(ds.Properties))
	require.NotEmpty(t, ds.Bookings)
	require.NotEmpty(t, ds.Reviews)

	dateIDs := make(map[int]bool)
	for _, d := range ds.Dates {
		dateIDs[d.DateID] = true
	}
	ownerIDs := make(map[int]bool)
	for _, o := range ds.Owners {
		ownerIDs[o.OwnerID] = true
	}
	platformIDs := make(map[int]bool)
	for _, p := range ds.Platforms {
		platformIDs[p.PlatformID] = true
	}
	propertyIDs := make(map[int]bool)
	for _, p := range ds.Properties {
		propertyIDs[p.PropertyID] = true
		assert.True(t, ownerIDs[p.OwnerID], "property %d references unknown owner %d", p.PropertyID, p.OwnerID)
	}
	tenantIDs := make(map[int]bool)
	for _, tn := range ds.Tenants {
		tenantIDs[tn.TenantID] = true
	}

	bookingIDs := make(map[int]bool)
	for _, b := range ds.Bookings {
		bookingIDs[b.BookingID] = true
		assert.True(t, propertyIDs[b.PropertyID], "booking %d references unknown property", b.BookingID)
		assert.True(t, platformIDs[b.PlatformID], "booking %d references unknown platform", b.BookingID)
		assert.True(t, tenantIDs[b.TenantID], "booking %d references unknown tenant", b.BookingID)
		assert.True(t, dateIDs[b.CheckInDateID], "booking %d check-in id not in dim_date", b.BookingID)
		assert.True(t, dateIDs[b.CheckOutDateID], "booking %d check-out id not in dim_date", b.BookingID)
	}
	for _, r := range ds.Reviews {
		assert.True(t, bookingIDs[r.BookingID], "review %d references unknown booking", r.ReviewID)
		assert.True(t, tenantIDs[r.TenantID], "review %d references unknown tenant", r.ReviewID)
		assert.True(t, propertyIDs[r.PropertyID], "review %d references unknown property", r.ReviewID)
		assert.True(t, dateIDs[r.ReviewDateID], "review %d date id not in dim_date", r.ReviewID)
	}
}

func TestPipelineIsReproducibleForSeed(t *testing.T) {
	cfg := pipelineConfig()
	first, err := NewPipeline(cfg, quietLogger()).Run()
	require.NoError(t, err)
	second, err := NewPipeline(cfg, quietLogger()).Run()
	require.NoError(t, err)

	assert.Equal(t, first.Owners, second.Owners)
	assert.Equal(t, first.Properties, second.Properties)
	assert.Equal(t, first.Tenants, second.Tenants)
	assert.Equal(t, first.Bookings, second.Bookings)
	assert.Equal(t, first.Reviews, second.Reviews)
}

func TestPipelinePropertyYearCoverage(t *testing.T) {
	cfg := pipelineConfig()
	ds, err := NewPipeline(cfg, quietLogger()).Run()
	require.NoError(t, err)

	type propYear struct {
		property, year int
	}
	covered := make(map[propYear]bool)
	for _, b := range ds.Bookings {
		covered[propYear{b.PropertyID, b.CheckIn.Year()}] = true
	}
	for _, p := range ds.Properties {
		for year := 2020; year <= 2021; year++ {
			assert.True(t, covered[propYear{p.PropertyID, year}],
				"property %d has no booking in %d", p.PropertyID, year)
		}
	}
}

func TestPipelineReportsPropertyShortfall(t *testing.T) {
	cfg := pipelineConfig()
	cfg.NumOwners = 2
	cfg.NumProperties = 500
	ds, err := NewPipeline(cfg, quietLogger()).Run()
	require.NoError(t, err)

	assert.Greater(t, ds.PropertyShortfall, 0)
	assert.Equal(t, cfg.NumProperties-len(ds.Properties), ds.PropertyShortfall)
}
