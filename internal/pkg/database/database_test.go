package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"member-query/internal/pkg/config"
)

func TestOpen_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "member.db")
	db, err := Open(&config.DatabaseConfig{Driver: "sqlite", Database: path, AutoMigrate: true})
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})

	assert.True(t, db.Migrator().HasTable("members"))
	assert.True(t, db.Migrator().HasTable("teams"))
	assert.True(t, db.Migrator().HasColumn("members", "team_id"))
}

func TestOpen_WithoutMigrate(t *testing.T) {
	db, err := Open(&config.DatabaseConfig{Driver: "sqlite", Database: ":memory:"})
	require.NoError(t, err)

	assert.False(t, db.Migrator().HasTable("members"))
	require.NoError(t, Migrate(db))
	assert.True(t, db.Migrator().HasTable("members"))
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(&config.DatabaseConfig{Driver: "oracle"})
	assert.ErrorContains(t, err, "oracle")
}

func TestInitAndClose(t *testing.T) {
	require.NoError(t, Init(&config.DatabaseConfig{Driver: "sqlite", Database: ":memory:", AutoMigrate: true}))
	assert.NotNil(t, GetDB())
	assert.NoError(t, Close())
	DB = nil
}

func TestGetLogLevel(t *testing.T) {
	assert.Equal(t, logger.Error, getLogLevel("error"))
	assert.Equal(t, logger.Warn, getLogLevel("warn"))
	assert.Equal(t, logger.Info, getLogLevel("info"))
	assert.Equal(t, logger.Silent, getLogLevel(""))
}
