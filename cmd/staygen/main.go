package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"staygen/internal/commands"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "staygen",
		Short: "Synthetic vacation-rental star-schema dataset generator",
	}

	rootCmd.AddCommand(
		commands.GenerateCmd(),
		commands.ValidateCmd(),
		commands.LoadCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
