package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/justsurfingit/job-portal/internal/config"
	"github.com/justsurfingit/job-portal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectAndMigrate_SQLite(t *testing.T) {
	cfg := &config.Config{
		DBDriver:     config.DriverSQLite,
		DatabasePath: filepath.Join(t.TempDir(), "portal.db"),
		LogLevel:     "error",
	}

	db, err := Connect(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, Migrate(context.Background(), db))
	require.NoError(t, Ping(context.Background(), db))

	for _, m := range models.CoreModels() {
		assert.True(t, db.Migrator().HasTable(m))
	}
	assert.False(t, db.Migrator().HasTable(&models.SavedSearch{}), "saved searches are created on demand")
}
