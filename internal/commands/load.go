package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"staygen/internal/export"
	"staygen/internal/generator"
)

func LoadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Generate the dataset and load it into a database, skipping file export",
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

			db, err := export.OpenDatabase(databaseURL(cmd))
			if err != nil {
				return fmt.Errorf("failed to open database: %v", err)
			}
			if err := export.LoadDatabase(db, ds); err != nil {
				return err
			}
			log.Info("database load complete")
			return nil
		},
	}
	addConfigFlags(cmd)
	cmd.Flags().String("database-url", "", "Target database (sqlite path or postgres DSN); falls back to DATABASE_URL")
	return cmd
}
