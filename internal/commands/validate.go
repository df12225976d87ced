package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func ValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the generation configuration without running it",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configFromFlags(cmd)
			if err != nil {
				return err
			}
			fmt.Printf("Configuration is valid.\n")
			fmt.Printf("%-12s  %s .. %s (%d days)\n", "Window", cfg.StartDate.Format("2006-01-02"), cfg.EndDate.Format("2006-01-02"), cfg.TotalDays())
			fmt.Printf("%-12s  %d properties, %d owners, %d tenants, %d platforms\n", "Population", cfg.NumProperties, cfg.NumOwners, cfg.NumTenants, len(cfg.Platforms))
			fmt.Printf("%-12s  %d\n", "Seed", cfg.Seed)
			fmt.Printf("%-12s  %s\n", "Output", cfg.OutputDir)
			return nil
		},
	}
	addConfigFlags(cmd)
	return cmd
}
