package export

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"staygen/internal/config"
	"staygen/internal/generator"
	"staygen/internal/model"
)

func testDataset(t *testing.T) *generator.Dataset {
	t.Helper()
	cfg := config.Default()
	cfg.StartDate = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	cfg.EndDate = time.Date(2020, 6, 30, 0, 0, 0, 0, time.UTC)
	cfg.NumProperties = 8
	cfg.NumOwners = 4
	cfg.NumTenants = 30

	log := logrus.New()
	log.SetOutput(io.Discard)
	ds, err := generator.NewPipeline(cfg, log).Run()
	require.NoError(t, err)
	return ds
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteCSVProducesSevenTables(t *testing.T) {
	ds := testDataset(t)
	dir := filepath.Join(t.TempDir(), "out")
	require.NoError(t, WriteCSV(dir, ds))

	expected := map[string]int{
		"dim_date":      len(ds.Dates),
		"dim_owner":     len(ds.Owners),
		"dim_platform":  len(ds.Platforms),
		"dim_property":  len(ds.Properties),
		"dim_tenant":    len(ds.Tenants),
		"fact_bookings": len(ds.Bookings),
		"fact_reviews":  len(ds.Reviews),
	}
	for name, rows := range expected {
		got := readCSV(t, filepath.Join(dir, name+".csv"))
		assert.Len(t, got, rows+1, "%s row count including header", name)
	}
}

func TestWriteCSVHeadersAndFormats(t *testing.T) {
	ds := testDataset(t)
	dir := t.TempDir()
	require.NoError(t, WriteCSV(dir, ds))

	dates := readCSV(t, filepath.Join(dir, "dim_date.csv"))
	assert.Equal(t, []string{"date_id", "date", "year", "quarter", "month", "day", "weekday"}, dates[0])
	assert.Equal(t, "0", dates[1][0])
	assert.Equal(t, "2020-01-01", dates[1][1])

	bookings := readCSV(t, filepath.Join(dir, "fact_bookings.csv"))
	assert.Equal(t, []string{"booking_id", "property_id", "platform_id", "tenant_id",
		"check_in_date_id", "check_out_date_id", "check_in", "check_out",
		"nights", "revenue", "purpose_of_stay", "damage_flag", "damage_cost", "turnover_flag"}, bookings[0])
	// Monetary cells carry exactly two decimals.
	assert.Regexp(t, `^\d+\.\d\d$`, bookings[1][9])
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, bookings[1][6])
	assert.Contains(t, []string{"0", "1"}, bookings[1][11])

	reviews := readCSV(t, filepath.Join(dir, "fact_reviews.csv"))
	assert.Equal(t, []string{"review_id", "booking_id", "tenant_id", "property_id",
		"review_date_id", "rating", "review_text", "review_date"}, reviews[0])
}

func TestFormatCell(t *testing.T) {
	assert.Equal(t, "abc", formatCell("abc"))
	assert.Equal(t, "42", formatCell(42))
	assert.Equal(t, "19.50", formatCell(19.5))
	assert.Equal(t, "0.00", formatCell(0.0))
}

func TestWriteWorkbook(t *testing.T) {
	ds := testDataset(t)
	path := filepath.Join(t.TempDir(), "dataset.xlsx")
	require.NoError(t, WriteWorkbook(path, ds))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.ElementsMatch(t, []string{"dim_date", "dim_owner", "dim_platform",
		"dim_property", "dim_tenant", "fact_bookings", "fact_reviews"}, sheets)

	rows, err := f.GetRows("dim_owner")
	require.NoError(t, err)
	assert.Len(t, rows, len(ds.Owners)+1)
	assert.Equal(t, "owner_id", rows[0][0])
}

func TestDatabaseLoadRoundTrip(t *testing.T) {
	ds := testDataset(t)
	db, err := OpenDatabase(":memory:")
	require.NoError(t, err)
	require.NoError(t, LoadDatabase(db, ds))

	tables := map[string]int{
		"dim_date":      len(ds.Dates),
		"dim_owner":     len(ds.Owners),
		"dim_platform":  len(ds.Platforms),
		"dim_property":  len(ds.Properties),
		"dim_tenant":    len(ds.Tenants),
		"fact_bookings": len(ds.Bookings),
		"fact_reviews":  len(ds.Reviews),
	}
	for name, want := range tables {
		var count int64
		require.NoError(t, db.Table(name).Count(&count).Error)
		assert.Equal(t, int64(want), count, "table %s", name)
	}

	var owner model.Owner
	require.NoError(t, db.First(&owner, "owner_id = ?", 1).Error)
	assert.Equal(t, ds.Owners[0].Email, owner.Email)
}

func TestOpenDatabaseRequiresDSN(t *testing.T) {
	_, err := OpenDatabase("")
	assert.Error(t, err)
}
