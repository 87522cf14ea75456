package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetTableColumns(t *testing.T) {
	cfg := Config{
		Driver: "sqlite",
		Name:   ":memory:",
	}
	db, err := Connect(cfg)
	assert.NoError(t, err)
	assert.NotNil(t, db)

	err = db.Exec("CREATE TABLE test_devices (id INTEGER PRIMARY KEY, name TEXT NOT NULL, description TEXT)").Error
	assert.NoError(t, err)

	columns, err := GetTableColumns(db, "test_devices")
	assert.NoError(t, err)
	assert.Len(t, columns, 3)

	colMap := make(map[string]string)
	for _, col := range columns {
		colMap[col.Field] = col.Type
	}

	assert.Equal(t, "integer", colMap["id"])
	assert.Equal(t, "text", colMap["name"])
	assert.Equal(t, "text", colMap["description"])
	assert.Equal(t, "PRI", columns[0].Key)
	assert.Equal(t, "NO", columns[1].Null)
	assert.Equal(t, "YES", columns[2].Null)

	cols, err := GetTableColumns(db, "non_existent")
	// PRAGMA table_info returns empty result for non-existent table in SQLite, implies no error but empty columns
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestMissingColumns(t *testing.T) {
	columns := []ColumnInfo{{Field: "device_id"}, {Field: "document"}}

	assert.Empty(t, MissingColumns(columns, []string{"device_id", "Document"}))
	assert.Equal(t, []string{"version", "updated_at"}, MissingColumns(columns, []string{"device_id", "version", "updated_at"}))
}
