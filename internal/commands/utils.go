package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"staygen/internal/config"
)

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetLevel(logrus.InfoLevel)
	log.SetOutput(os.Stdout)
	return log
}

// addConfigFlags registers the generation flags shared by generate and load.
// Defaults come from the stock configuration.
func addConfigFlags(cmd *cobra.Command) {
	defaults := config.Default()
	cmd.Flags().String("start", defaults.StartDate.Format("2006-01-02"), "Corpus window start date (YYYY-MM-DD)")
	cmd.Flags().String("end", defaults.EndDate.Format("2006-01-02"), "Corpus window end date (YYYY-MM-DD)")
	cmd.Flags().Int("properties", defaults.NumProperties, "Target property count")
	cmd.Flags().Int("owners", defaults.NumOwners, "Owner count")
	cmd.Flags().Int("tenants", defaults.NumTenants, "Tenant count")
	cmd.Flags().Int64("seed", defaults.Seed, "Pipeline random seed")
	cmd.Flags().String("out", defaults.OutputDir, "Output directory for CSV files")
}

// configFromFlags builds and validates a Config from the command flags.
func configFromFlags(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()

	startStr, _ := cmd.Flags().GetString("start")
	start, err := time.Parse("2006-01-02", startStr)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %v", startStr, err)
	}
	cfg.StartDate = start

	endStr, _ := cmd.Flags().GetString("end")
	end, err := time.Parse("2006-01-02", endStr)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %v", endStr, err)
	}
	cfg.EndDate = end

	cfg.NumProperties, _ = cmd.Flags().GetInt("properties")
	cfg.NumOwners, _ = cmd.Flags().GetInt("owners")
	cfg.NumTenants, _ = cmd.Flags().GetInt("tenants")
	cfg.Seed, _ = cmd.Flags().GetInt64("seed")
	cfg.OutputDir, _ = cmd.Flags().GetString("out")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// databaseURL resolves the export DSN: flag first, DATABASE_URL env second
// (.env already loaded by main).
func databaseURL(cmd *cobra.Command) string {
	dsn, _ := cmd.Flags().GetString("database-url")
	if dsn == "" {
		dsn = os.Getenv("DATABASE_URL")
	}
	return dsn
}
