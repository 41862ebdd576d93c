package commands

import (
	"fmt"

	"github.com/fredriick/Electrify-sub009/internal/infrastructure/persistence"
	"github.com/fredriick/Electrify-sub009/internal/pkg/config"

	"github.com/spf13/cobra"
)

// MigrateCmd creates or updates the marketplace schema of the configured database
func MigrateCmd(cmd *cobra.Command, _ []string) error {
	configPath, _ := cmd.Flags().GetString("config")

	loggerInstance, err := setupLogger()
	if err != nil {
		return err
	}

	cfg, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to create db connection: %w", err)
	}
	defer func() {
		if err := persistence.CloseDB(db); err != nil {
			loggerInstance.Warn("Failed to close database: ", err)
		}
	}()

	if err := persistence.AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	loggerInstance.Info("Database migrations completed successfully")
	return nil
}

// InitDBCommands registers the db sub-commands
func InitDBCommands(rootCmd *cobra.Command) error {
	dbCmd := &cobra.Command{
		Use:   "db",
		Short: "Database maintenance",
	}

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the marketplace schema",
		RunE:  MigrateCmd,
	}
	migrateCmd.Flags().String("config", "configs/rest-app.yaml", "Path to the REST API configuration file")
	dbCmd.AddCommand(migrateCmd)

	rootCmd.AddCommand(dbCmd)
	return nil
}
