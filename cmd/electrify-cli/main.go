// Package main is the entry point for the electrify-cli application.
// It registers the tax, currency, validation and database sub-commands
// and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/fredriick/Electrify-sub009/cmd/electrify-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "electrify-cli",
		Short: "Operations tooling for the Electrify marketplace",
		Long: `electrify-cli resolves tax rates and converts currencies offline against
rate files exported from the admin console, validates supplier contact details
and migrates the marketplace database.`,
		SilenceUsage: true,
	}

	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}
	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitTaxCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize tax commands: %w", err)
	}
	if err := commands.InitCurrencyCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize currency commands: %w", err)
	}
	if err := commands.InitValidateCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize validate commands: %w", err)
	}
	if err := commands.InitDBCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize db commands: %w", err)
	}
	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
