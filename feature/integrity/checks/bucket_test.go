package checks

import (
	"context"
	"testing"

	"shadow-sync/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestCheckBucket(t *testing.T) {
	ctx := context.Background()

	t.Run("Exists", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "shadows").Return(true, nil)

		report, err := CheckBucket(ctx, client, "shadows")
		assert.NoError(t, err)
		assert.True(t, report.Exists)
	})

	t.Run("Missing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "shadows").Return(false, nil)

		report, err := CheckBucket(ctx, client, "shadows")
		assert.NoError(t, err)
		assert.False(t, report.Exists)
	})

	t.Run("Error", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "shadows").Return(false, assert.AnError)

		_, err := CheckBucket(ctx, client, "shadows")
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("NilClient", func(t *testing.T) {
		_, err := CheckBucket(ctx, nil, "shadows")
		assert.Error(t, err)
	})
}

func TestFixBucket(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("Creates", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "shadows").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "shadows", mock.Anything).Return(nil)

		report, err := FixBucket(ctx, client, "shadows", "us-east-1", logger)
		assert.NoError(t, err)
		assert.True(t, report.Created)
		client.AssertExpectations(t)
	})

	t.Run("AlreadyThere", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "shadows").Return(true, nil)

		report, err := FixBucket(ctx, client, "shadows", "", logger)
		assert.NoError(t, err)
		assert.False(t, report.Created)
		client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("CreateFails", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "shadows").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "shadows", mock.Anything).Return(assert.AnError)

		_, err := FixBucket(ctx, client, "shadows", "", logger)
		assert.ErrorIs(t, err, assert.AnError)
	})
}
