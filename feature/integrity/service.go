package integrity

import (
	"context"

	"shadow-sync/core/storage"
	"shadow-sync/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	client storage.Client
	bucket string
	region string
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new integrity service. client and db may be nil when
// the active shadow backend does not use them.
func NewService(client storage.Client, bucket, region string, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		region: region,
		db:     db,
		logger: logger,
	}
}

// HasStorage reports whether an object store is configured.
func (s *Service) HasStorage() bool {
	return s.client != nil
}

// HasDatabase reports whether a database is configured.
func (s *Service) HasDatabase() bool {
	return s.db != nil
}

// CheckBucket reports whether the shadow bucket exists.
func (s *Service) CheckBucket(ctx context.Context) (*checks.BucketReport, error) {
	return checks.CheckBucket(ctx, s.client, s.bucket)
}

// FixBucket creates the shadow bucket if needed.
func (s *Service) FixBucket(ctx context.Context) (*checks.BucketReport, error) {
	return checks.FixBucket(ctx, s.client, s.bucket, s.region, s.logger)
}

// CheckSchema compares the shadows table with its model.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db)
}
