package cmd

import (
	"fmt"

	"shadow-sync/core/config"
	"shadow-sync/core/database"
	"shadow-sync/core/logger"
	"shadow-sync/core/shadow"
	"shadow-sync/core/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// backend bundles the connections behind the configured shadow store.
type backend struct {
	store  shadow.Store
	db     *gorm.DB
	client storage.Client
}

// openBackend connects whatever the selected shadow backend needs. The
// database and the object store are both optional for the other backends.
func openBackend(cfg *config.Config, logg *zap.Logger) (*backend, error) {
	b := &backend{}
	if cfg.Shadow.Backend == "" {
		cfg.Shadow.Backend = shadow.BackendDatabase
	}

	if conn, err := database.Connect(cfg.Database); err != nil {
		if cfg.Shadow.Backend == shadow.BackendDatabase {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		logg.Warn("Optional database connection failed", zap.Error(err))
	} else {
		b.db = conn
		logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))
	}

	if cfg.Shadow.Backend == shadow.BackendObject {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		b.client = client
	}

	store, err := shadow.NewStore(cfg.Shadow, b.db, b.client, cfg.Storage.Bucket)
	if err != nil {
		return nil, err
	}
	b.store = store
	logg.Info("Shadow store ready", zap.String("backend", cfg.Shadow.Backend))
	return b, nil
}

// loadRuntime loads configuration and builds the logger shared by all commands.
func loadRuntime() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init logger: %w", err)
	}
	return cfg, logg, nil
}
