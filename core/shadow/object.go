package shadow

import (
	"bytes"
	"context"
	"io"
	"strings"
	"time"

	"shadow-sync/core/apperror"
	"shadow-sync/core/storage"

	"github.com/goccy/go-json"
	"github.com/minio/minio-go/v7"
)

// ObjectStore keeps one JSON object per shadow in a bucket.
type ObjectStore struct {
	client storage.Client
	bucket string
	prefix string
	now    func() time.Time
}

// NewObjectStore creates an ObjectStore writing under prefix in bucket.
func NewObjectStore(client storage.Client, bucket, prefix string) *ObjectStore {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &ObjectStore{client: client, bucket: bucket, prefix: prefix, now: time.Now}
}

// ObjectName returns the object key holding deviceID's shadow.
func (s *ObjectStore) ObjectName(deviceID string) string {
	return s.prefix + deviceID + ".json"
}

func (s *ObjectStore) Get(ctx context.Context, deviceID string) (*Document, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.ObjectName(deviceID), minio.GetObjectOptions{})
	if err != nil {
		if isNoSuchKey(err) {
			return nil, nil
		}
		return nil, apperror.Store(err, "failed to read shadow %s", deviceID)
	}
	defer obj.Close()

	// minio reports a missing key lazily, on first read.
	data, err := io.ReadAll(obj)
	if err != nil {
		if isNoSuchKey(err) {
			return nil, nil
		}
		return nil, apperror.Store(err, "failed to read shadow %s", deviceID)
	}
	doc, err := decodeDocument(data)
	if err != nil {
		return nil, apperror.Store(err, "failed to decode shadow %s", deviceID)
	}
	return doc, nil
}

// Update reads, merges and writes the object. Object storage offers no
// conditional put here, so concurrent writers to one device are last-write-wins.
func (s *ObjectStore) Update(ctx context.Context, deviceID string, patch Patch) (*Document, error) {
	current, err := s.Get(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	next, err := Apply(current, patch, s.now())
	if err != nil {
		return nil, apperror.Store(err, "failed to update shadow %s", deviceID)
	}
	data, err := json.Marshal(next)
	if err != nil {
		return nil, apperror.Store(err, "failed to encode shadow %s", deviceID)
	}
	_, err = s.client.PutObject(ctx, s.bucket, s.ObjectName(deviceID), bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return nil, apperror.Store(err, "failed to write shadow %s", deviceID)
	}
	return next, nil
}

func isNoSuchKey(err error) bool {
	return minio.ToErrorResponse(err).Code == "NoSuchKey"
}
