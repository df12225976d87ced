package export

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"staygen/internal/generator"
	"staygen/internal/model"
)

const insertBatchSize = 500

// OpenDatabase opens the export target. Postgres DSNs are recognized by
// scheme; anything else is treated as a sqlite file path (":memory:" works).
func OpenDatabase(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL not set in environment or .env file")
	}
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
}

// LoadDatabase migrates the star schema and inserts every table in batches.
func LoadDatabase(db *gorm.DB, ds *generator.Dataset) error {
	if err := db.AutoMigrate(
		&model.DateRecord{},
		&model.Owner{},
		&model.Platform{},
		&model.Property{},
		&model.Tenant{},
		&model.Booking{},
		&model.Review{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %v", err)
	}

	if err := insertAll(db, ds.Dates); err != nil {
		return err
	}
	if err := insertAll(db, ds.Owners); err != nil {
		return err
	}
	if err := insertAll(db, ds.Platforms); err != nil {
		return err
	}
	if err := insertAll(db, ds.Properties); err != nil {
		return err
	}
	if err := insertAll(db, ds.Tenants); err != nil {
		return err
	}
	if err := insertAll(db, ds.Bookings); err != nil {
		return err
	}
	return insertAll(db, ds.Reviews)
}

func insertAll[T any](db *gorm.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	if err := db.CreateInBatches(rows, insertBatchSize).Error; err != nil {
		var zero T
		return fmt.Errorf("failed to insert rows of %T: %v", zero, err)
	}
	return nil
}
