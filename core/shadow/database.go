package shadow

import (
	"context"
	"errors"
	"time"

	"shadow-sync/core/apperror"

	"github.com/goccy/go-json"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record is the row backing a shadow in the database backend.
type Record struct {
	DeviceID  string         `gorm:"column:device_id;type:varchar(128);primaryKey"`
	Document  datatypes.JSON `gorm:"column:document;type:json"`
	Version   int64          `gorm:"column:version;type:bigint;not null"`
	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
}

func (Record) TableName() string { return "shadows" }

// DatabaseStore keeps shadows in a gorm-managed table. Updates are a
// read-merge-write guarded by the version column.
type DatabaseStore struct {
	db      *gorm.DB
	retries int
	now     func() time.Time
}

// NewDatabaseStore creates a DatabaseStore. retries bounds the number of
// additional attempts after losing a compare-and-swap.
func NewDatabaseStore(db *gorm.DB, retries int) *DatabaseStore {
	if retries < 0 {
		retries = 0
	}
	return &DatabaseStore{db: db, retries: retries, now: time.Now}
}

// Migrate creates or updates the shadows table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Record{})
}

func (s *DatabaseStore) Get(ctx context.Context, deviceID string) (*Document, error) {
	rec, err := s.load(ctx, deviceID)
	if err != nil || rec == nil {
		return nil, err
	}
	doc, err := decodeDocument(rec.Document)
	if err != nil {
		return nil, apperror.Store(err, "failed to decode shadow %s", deviceID)
	}
	return doc, nil
}

func (s *DatabaseStore) Update(ctx context.Context, deviceID string, patch Patch) (*Document, error) {
	for attempt := 0; attempt <= s.retries; attempt++ {
		doc, ok, err := s.tryUpdate(ctx, deviceID, patch)
		if err != nil {
			return nil, err
		}
		if ok {
			return doc, nil
		}
	}
	return nil, apperror.Store(ErrConflict, "failed to update shadow %s after %d attempts", deviceID, s.retries+1)
}

// tryUpdate performs one compare-and-swap round. ok is false when another
// writer got there first.
func (s *DatabaseStore) tryUpdate(ctx context.Context, deviceID string, patch Patch) (doc *Document, ok bool, err error) {
	rec, err := s.load(ctx, deviceID)
	if err != nil {
		return nil, false, err
	}

	var current *Document
	if rec != nil {
		current, err = decodeDocument(rec.Document)
		if err != nil {
			return nil, false, apperror.Store(err, "failed to decode shadow %s", deviceID)
		}
		current.Version = rec.Version
	}

	now := s.now()
	next, err := Apply(current, patch, now)
	if err != nil {
		return nil, false, apperror.Store(err, "failed to update shadow %s", deviceID)
	}
	data, err := json.Marshal(next)
	if err != nil {
		return nil, false, apperror.Store(err, "failed to encode shadow %s", deviceID)
	}

	db := s.db.WithContext(ctx)
	if rec == nil {
		res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&Record{
			DeviceID:  deviceID,
			Document:  datatypes.JSON(data),
			Version:   next.Version,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if res.Error != nil {
			return nil, false, apperror.Store(res.Error, "failed to create shadow %s", deviceID)
		}
		return next, res.RowsAffected > 0, nil
	}

	res := db.Model(&Record{}).
		Where("device_id = ? AND version = ?", deviceID, rec.Version).
		Updates(map[string]any{
			"document":   datatypes.JSON(data),
			"version":    next.Version,
			"updated_at": now,
		})
	if res.Error != nil {
		return nil, false, apperror.Store(res.Error, "failed to write shadow %s", deviceID)
	}
	return next, res.RowsAffected > 0, nil
}

func (s *DatabaseStore) load(ctx context.Context, deviceID string) (*Record, error) {
	var rec Record
	err := s.db.WithContext(ctx).Where("device_id = ?", deviceID).Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.Store(err, "failed to read shadow %s", deviceID)
	}
	return &rec, nil
}
