package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"staygen/internal/export"
	"staygen/internal/generator"
)

func GenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the synthetic dataset and export it as CSV files",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configFromFlags(cmd)
			if err != nil {
				return err
			}
			log := newLogger()

			ds, err := generator.NewPipeline(cfg, log).Run()
			if err != nil {
				return err
			}

			if err := export.WriteCSV(cfg.OutputDir, ds); err != nil {
				return err
			}
			log.WithField("dir", cfg.OutputDir).Info("CSV export complete")

			if xlsx, _ := cmd.Flags().GetBool("xlsx"); xlsx {
				path := filepath.Join(cfg.OutputDir, "synthetic_booking_data.xlsx")
				if err := export.WriteWorkbook(path, ds); err != nil {
					return err
				}
				log.WithField("path", path).Info("Excel export complete")
			}

			if dsn := databaseURL(cmd); dsn != "" {
				db, err := export.OpenDatabase(dsn)
				if err != nil {
					return fmt.Errorf("failed to open database: %v", err)
				}
				if err := export.LoadDatabase(db, ds); err != nil {
					return err
				}
				log.Info("database load complete")
			}
			return nil
		},
	}
	addConfigFlags(cmd)
	cmd.Flags().Bool("xlsx", false, "Also write a single Excel workbook")
	cmd.Flags().String("database-url", "", "Also load the dataset into this database (sqlite path or postgres DSN)")
	return cmd
}
