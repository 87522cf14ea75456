package checks

import (
	"testing"

	"shadow-sync/core/shadow"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

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

func showColumns() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
}

func TestCheckSchema_NilDB(t *testing.T) {
	report, err := CheckSchema(nil)
	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestCheckSchema_Matched(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := showColumns().
		AddRow("device_id", "varchar(128)", "NO", "PRI", nil, "").
		AddRow("document", "json", "YES", "", nil, "").
		AddRow("version", "bigint(20)", "NO", "", nil, "").
		AddRow("created_at", "datetime(3)", "YES", "", nil, "").
		AddRow("updated_at", "datetime(3)", "YES", "", nil, "")
	mock.ExpectQuery("SHOW COLUMNS FROM `shadows`").WillReturnRows(rows)

	report, err := CheckSchema(db)
	require.NoError(t, err)
	assert.True(t, report.Matched)
	assert.Equal(t, "shadows", report.Table)
	assert.Empty(t, report.MissingColumns)
	assert.Empty(t, report.TypeMismatches)
}

func TestCheckSchema_MissingAndMismatched(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := showColumns().
		AddRow("device_id", "varchar(128)", "NO", "PRI", nil, "").
		AddRow("document", "longtext", "YES", "", nil, "")
	mock.ExpectQuery("SHOW COLUMNS FROM `shadows`").WillReturnRows(rows)

	report, err := CheckSchema(db)
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.Equal(t, []string{"version", "created_at", "updated_at"}, report.MissingColumns)
	assert.Equal(t, []string{"document: expected json, got longtext"}, report.TypeMismatches)
}

func TestCheckSchema_InspectFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery("SHOW COLUMNS FROM `shadows`").WillReturnError(assert.AnError)

	report, err := CheckSchema(db)
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.Len(t, report.Errors, 1)
}

func TestCheckSchema_SQLite(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	report, err := CheckSchema(db)
	require.NoError(t, err)
	assert.False(t, report.Matched, "table not created yet")

	require.NoError(t, shadow.Migrate(db))
	report, err = CheckSchema(db)
	require.NoError(t, err)
	assert.True(t, report.Matched, "%+v", report)
}

func TestParseGormTags(t *testing.T) {
	assert.Equal(t, "device_id", parseGormColumn("column:device_id;type:varchar(128);primaryKey"))
	assert.Equal(t, "", parseGormColumn("primaryKey"))
	assert.Equal(t, "bigint", parseGormType("column:version;type:bigint;not null"))
	assert.Equal(t, "", parseGormType("column:created_at"))
}
