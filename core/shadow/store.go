package shadow

import (
	"context"
	"errors"
	"fmt"

	"shadow-sync/core/apperror"
	"shadow-sync/core/metrics"
	"shadow-sync/core/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Backend names accepted by Config.Backend.
const (
	BackendDatabase = "database"
	BackendObject   = "object"
	BackendMemory   = "memory"
)

// ErrConflict is returned when a compare-and-swap update keeps losing to
// concurrent writers.
var ErrConflict = errors.New("shadow modified concurrently")

// Config holds configuration for the shadow store.
type Config struct {
	// Backend selects the store implementation (database, object, memory).
	Backend string `mapstructure:"backend" default:"database"`
	// Prefix is the object key prefix used by the object backend.
	Prefix string `mapstructure:"prefix" default:"shadows/"`
	// MaxConflictRetries bounds compare-and-swap retries inside a backend.
	MaxConflictRetries int `mapstructure:"max_conflict_retries" default:"3"`
}

// Store reads and merge-updates device shadows.
type Store interface {
	// Get returns the shadow for deviceID, or nil if none exists.
	Get(ctx context.Context, deviceID string) (*Document, error)
	// Update merges patch into the shadow, creating it if needed, and returns
	// the merged document.
	Update(ctx context.Context, deviceID string, patch Patch) (*Document, error)
}

// NewStore builds the backend selected by cfg. db and client are only
// required by the backends that use them.
func NewStore(cfg Config, db *gorm.DB, client storage.Client, bucket string) (Store, error) {
	var store Store
	switch cfg.Backend {
	case BackendMemory:
		store = NewMemoryStore()
	case BackendDatabase, "":
		if db == nil {
			return nil, fmt.Errorf("shadow backend %q requires a database connection", BackendDatabase)
		}
		store = NewDatabaseStore(db, cfg.MaxConflictRetries)
	case BackendObject:
		if client == nil {
			return nil, fmt.Errorf("shadow backend %q requires a storage client", BackendObject)
		}
		store = NewObjectStore(client, bucket, cfg.Prefix)
	default:
		return nil, fmt.Errorf("unknown shadow backend: %s", cfg.Backend)
	}
	if cfg.Backend == "" {
		cfg.Backend = BackendDatabase
	}
	return Instrument(cfg.Backend, store), nil
}

// Instrument wraps store so every call is timed into the store latency histogram.
func Instrument(backend string, store Store) Store {
	return &instrumented{backend: backend, next: store}
}

type instrumented struct {
	backend string
	next    Store
}

func (s *instrumented) Get(ctx context.Context, deviceID string) (*Document, error) {
	timer := metrics.NewTimer()
	defer timer.ObserveStore(s.backend, "get")
	return s.next.Get(ctx, deviceID)
}

func (s *instrumented) Update(ctx context.Context, deviceID string, patch Patch) (*Document, error) {
	timer := metrics.NewTimer()
	defer timer.ObserveStore(s.backend, "update")
	return s.next.Update(ctx, deviceID, patch)
}

// TriggerDelta sends an empty update so the store re-publishes the current
// delta. A client token is generated when none is given.
func TriggerDelta(ctx context.Context, store Store, deviceID, clientToken string) (*Document, string, error) {
	if deviceID == "" {
		return nil, "", apperror.Validation("device id is required")
	}
	if clientToken == "" {
		clientToken = uuid.NewString()
	}
	doc, err := store.Update(ctx, deviceID, Patch{ClientToken: clientToken})
	if err != nil {
		return nil, clientToken, err
	}
	return doc, clientToken, nil
}
