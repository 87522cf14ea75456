package cmd

import (
	"fmt"

	"shadow-sync/core/database"
	"shadow-sync/core/shadow"
	"shadow-sync/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Prepare the configured shadow backend",
	Long:  `Creates the shadows table for the database backend or the bucket for the object backend.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadRuntime()
		if err != nil {
			return err
		}
		defer logg.Sync()

		switch cfg.Shadow.Backend {
		case shadow.BackendObject:
			client, err := storage.NewClient(cfg.Storage)
			if err != nil {
				return fmt.Errorf("failed to create storage client: %w", err)
			}
			created, err := storage.EnsureBucket(cmd.Context(), client, cfg.Storage.Bucket, cfg.Storage.Region)
			if err != nil {
				return err
			}
			logg.Info("Bucket ready", zap.String("bucket", cfg.Storage.Bucket), zap.Bool("created", created))
		case shadow.BackendMemory:
			logg.Info("Memory backend needs no migration")
		default:
			db, err := database.Connect(cfg.Database)
			if err != nil {
				return err
			}
			if err := shadow.Migrate(db); err != nil {
				return fmt.Errorf("failed to migrate shadows table: %w", err)
			}
			logg.Info("Shadows table ready", zap.String("driver", cfg.Database.Driver))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}
