package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE translations (id INTEGER PRIMARY KEY, locale TEXT, key TEXT, value TEXT)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "translations")
	require.NoError(t, err)
	assert.Len(t, columns, 4)

	colMap := make(map[string]string)
	for _, col := range columns {
		colMap[col.Field] = col.Type
	}
	assert.Equal(t, "integer", colMap["id"])
	assert.Equal(t, "text", colMap["key"])

	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestRequireColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE TABLE translations (id INTEGER PRIMARY KEY, locale TEXT, key TEXT)").Error)

	assert.NoError(t, RequireColumns(db, "translations", "locale", "KEY"))

	err = RequireColumns(db, "translations", "locale", "key", "value")
	assert.ErrorContains(t, err, "missing columns: value")

	err = RequireColumns(db, "absent", "locale")
	assert.ErrorContains(t, err, "missing columns: locale")
}
