package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormlogger "gorm.io/gorm/logger"

	"pkrms_db/internal/models"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.True(t, cfg.Database.LinkLocks)
	assert.Equal(t, int64(64<<20), cfg.MaxBodyBytes)
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.CORSOrigins)
	assert.Equal(t, "host=localhost user=postgres password=password dbname=pkrms port=5432 sslmode=disable TimeZone=UTC", cfg.Database.DSN())
}

func TestLoad_EnvFileAndOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DB_DRIVER=sqlite\nSQLITE_PATH=/tmp/pkrms.db\nPORT=9000\n"), 0o600))
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("LINK_LOCKS", "false")
	t.Cleanup(func() {
		os.Unsetenv("DB_DRIVER")
		os.Unsetenv("SQLITE_PATH")
		os.Unsetenv("PORT")
	})

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "/tmp/pkrms.db", cfg.Database.DSN())
	assert.False(t, cfg.Database.LinkLocks)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorContains(t, err, "DB_DRIVER")
}

func TestInitDB_SQLite(t *testing.T) {
	opts := DatabaseOptions{Driver: DriverSQLite, SQLitePath: filepath.Join(t.TempDir(), "pkrms.db")}
	db, err := InitDB(opts, gormlogger.Discard)
	require.NoError(t, err)

	for _, m := range models.All() {
		assert.True(t, db.Migrator().HasTable(m), "%T", m)
	}
	assert.True(t, db.Migrator().HasTable("link"))
	assert.True(t, db.Migrator().HasTable("road_condition"))
}
