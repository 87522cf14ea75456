package checks

import (
	"context"
	"fmt"

	"shadow-sync/core/storage"

	"go.uber.org/zap"
)

// BucketReport is the result of a bucket check.
type BucketReport struct {
	Bucket  string `json:"bucket"`
	Exists  bool   `json:"exists"`
	Created bool   `json:"created,omitempty"`
}

// CheckBucket reports whether the shadow bucket exists.
func CheckBucket(ctx context.Context, client storage.Client, bucket string) (*BucketReport, error) {
	if client == nil {
		return nil, fmt.Errorf("storage client is nil")
	}
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	return &BucketReport{Bucket: bucket, Exists: exists}, nil
}

// FixBucket creates the shadow bucket when it is missing.
func FixBucket(ctx context.Context, client storage.Client, bucket, region string, logger *zap.Logger) (*BucketReport, error) {
	if client == nil {
		return nil, fmt.Errorf("storage client is nil")
	}
	created, err := storage.EnsureBucket(ctx, client, bucket, region)
	if err != nil {
		logger.Error("Failed to create bucket", zap.String("bucket", bucket), zap.Error(err))
		return nil, err
	}
	if created {
		logger.Info("Created missing bucket", zap.String("bucket", bucket))
	}
	return &BucketReport{Bucket: bucket, Exists: true, Created: created}, nil
}
