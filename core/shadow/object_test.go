package shadow

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"shadow-sync/core/apperror"
	"shadow-sync/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestObjectStore_ObjectName(t *testing.T) {
	assert.Equal(t, "shadows/dev-1.json", NewObjectStore(nil, "b", "shadows").ObjectName("dev-1"))
	assert.Equal(t, "dev-1.json", NewObjectStore(nil, "b", "").ObjectName("dev-1"))
}

func TestObjectStore_GetMissing(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "bucket", "shadows/dev-1.json", mock.Anything).
		Return(nil, minio.ErrorResponse{Code: "NoSuchKey"})

	doc, err := NewObjectStore(client, "bucket", "shadows/").Get(context.Background(), "dev-1")
	assert.NoError(t, err)
	assert.Nil(t, doc)
}

func TestObjectStore_GetReadError(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "bucket", "shadows/dev-1.json", mock.Anything).
		Return(nil, errors.New("timeout"))

	doc, err := NewObjectStore(client, "bucket", "shadows/").Get(context.Background(), "dev-1")
	assert.Nil(t, doc)
	assert.Equal(t, apperror.KindStore, apperror.KindOf(err))
}

func TestObjectStore_Update(t *testing.T) {
	stored := `{"state":{"desired":{"dsrdVrs":3},"reported":{"env":"prod"}},"version":4}`

	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "bucket", "shadows/dev-1.json", mock.Anything).
		Return(io.NopCloser(strings.NewReader(stored)), nil)

	var written []byte
	client.On("PutObject", mock.Anything, "bucket", "shadows/dev-1.json", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			data, err := io.ReadAll(args.Get(3).(io.Reader))
			require.NoError(t, err)
			assert.Equal(t, int64(len(data)), args.Get(4).(int64))
			assert.Equal(t, "application/json", args.Get(5).(minio.PutObjectOptions).ContentType)
			written = data
		}).
		Return(minio.UploadInfo{}, nil)

	doc, err := NewObjectStore(client, "bucket", "shadows/").Update(context.Background(), "dev-1", Patch{
		Desired: map[string]any{"dsrdVrs": 4},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), doc.Version)
	assert.Equal(t, 4.0, doc.State.Desired["dsrdVrs"])
	assert.Equal(t, "prod", doc.State.Reported["env"])

	var persisted Document
	require.NoError(t, json.Unmarshal(written, &persisted))
	assert.Equal(t, doc.State, persisted.State)
	client.AssertExpectations(t)
}

func TestObjectStore_UpdateWriteError(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "bucket", "dev-1.json", mock.Anything).
		Return(nil, minio.ErrorResponse{Code: "NoSuchKey"})
	client.On("PutObject", mock.Anything, "bucket", "dev-1.json", mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("quota exceeded"))

	doc, err := NewObjectStore(client, "bucket", "").Update(context.Background(), "dev-1", Patch{Desired: map[string]any{"a": 1}})
	assert.Nil(t, doc)
	assert.Equal(t, apperror.KindStore, apperror.KindOf(err))
	assert.Contains(t, err.Error(), "quota exceeded")
}
