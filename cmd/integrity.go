package cmd

import (
	"log"

	"shadow-sync/core/database"
	"shadow-sync/core/shadow"
	"shadow-sync/core/storage"
	"shadow-sync/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on the shadow backend",
	Long:  `Checks that the shadow bucket exists and that the shadows table matches its model.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logg, err := loadRuntime()
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		defer logg.Sync()
		ctx := cmd.Context()

		var client storage.Client
		if cfg.Shadow.Backend == shadow.BackendObject {
			if client, err = storage.NewClient(cfg.Storage); err != nil {
				logg.Fatal("Failed to create storage client", zap.Error(err))
			}
		}

		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
		}

		svc := integrity.NewService(client, cfg.Storage.Bucket, cfg.Storage.Region, db, logg)

		if svc.HasStorage() {
			logg.Info("Checking shadow bucket...")
			report, err := svc.CheckBucket(ctx)
			if err != nil {
				logg.Fatal("Bucket check failed", zap.Error(err))
			}
			switch {
			case report.Exists:
				logg.Info("Bucket is present.", zap.String("bucket", report.Bucket))
			case fixFlag:
				if _, err := svc.FixBucket(ctx); err != nil {
					logg.Fatal("Failed to create bucket", zap.Error(err))
				}
				logg.Info("Bucket created.", zap.String("bucket", report.Bucket))
			default:
				logg.Warn("Bucket is missing. Run with --fix to create it.", zap.String("bucket", report.Bucket))
			}
		}

		if svc.HasDatabase() {
			logg.Info("Checking shadows table schema...")
			report, err := svc.CheckSchema()
			if err != nil {
				logg.Fatal("Schema check failed", zap.Error(err))
			}
			if report.Matched {
				logg.Info("Schema matches expected definition.", zap.String("table", report.Table))
				return
			}
			logg.Warn("Schema mismatches found", zap.String("table", report.Table))
			if len(report.MissingColumns) > 0 {
				logg.Warn("Missing Columns", zap.Strings("columns", report.MissingColumns))
			}
			if len(report.TypeMismatches) > 0 {
				logg.Warn("Type Mismatches", zap.Strings("mismatches", report.TypeMismatches))
			}
			for _, e := range report.Errors {
				logg.Error("Inspection Error", zap.String("error", e))
			}
		}
	},
}

func init() {
	integrityCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the bucket when missing")
	RootCmd.AddCommand(integrityCmd)
}
