// Package storage wraps the MinIO client used for S3-compatible object storage.
//
// The Client interface is deliberately small: shadow documents are read and
// written whole, and the integrity check only needs bucket existence. A
// testify mock lives in core/storage/mocks.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	created, err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
package storage
