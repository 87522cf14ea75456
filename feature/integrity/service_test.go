package integrity

import (
	"context"
	"testing"

	"shadow-sync/core/storage/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// setupMockDB creates a mock GORM DB for testing.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestService_Bucket(t *testing.T) {
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, "test-bucket", "", nil, zap.NewNop())
	assert.True(t, svc.HasStorage())
	assert.False(t, svc.HasDatabase())

	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, nil)
	mockClient.On("MakeBucket", mock.Anything, "test-bucket", mock.Anything).Return(nil)

	report, err := svc.CheckBucket(context.Background())
	require.NoError(t, err)
	assert.False(t, report.Exists)

	report, err = svc.FixBucket(context.Background())
	require.NoError(t, err)
	assert.True(t, report.Created)
}

func TestService_Schema(t *testing.T) {
	db, sqlMock := setupMockDB(t)
	svc := NewService(nil, "", "", db, zap.NewNop())
	assert.False(t, svc.HasStorage())

	sqlMock.ExpectQuery("SHOW COLUMNS FROM `shadows`").WillReturnRows(
		sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
			AddRow("device_id", "varchar(128)", "NO", "PRI", nil, ""),
	)

	report, err := svc.CheckSchema()
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.Contains(t, report.MissingColumns, "document")
}
