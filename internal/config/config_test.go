package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDatabase_SecretWins(t *testing.T) {
	// Подготовка
	dir := t.TempDir()
	secretPath := filepath.Join(dir, "database_url")
	require.NoError(t, os.WriteFile(secretPath, []byte("postgres://secret@db.example/app\n"), 0o600))
	t.Setenv("CG_TEST_DATABASE_URL", "postgres://env@db.example/app")

	// Действие
	target := ResolveDatabase(
		SecretFileSource(secretPath),
		EnvSource("CG_TEST_DATABASE_URL"),
		LocalFileSource(filepath.Join(dir, "reports.db")),
	)

	// Проверки
	assert.Equal(t, DriverPostgres, target.Driver)
	assert.Equal(t, "postgres://secret@db.example/app", target.DSN)
	assert.Equal(t, "secret", target.Source)
	assert.True(t, target.Configured())
}

func TestResolveDatabase_EnvBeforeLocalFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CG_TEST_DATABASE_URL", "postgresql://env@db.example/app")

	target := ResolveDatabase(
		SecretFileSource(filepath.Join(dir, "missing")),
		EnvSource("CG_TEST_DATABASE_URL"),
		LocalFileSource(filepath.Join(dir, "reports.db")),
	)

	assert.Equal(t, DriverPostgres, target.Driver)
	assert.Equal(t, "env", target.Source)
}

func TestResolveDatabase_LocalFileDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reports.db")

	target := ResolveDatabase(
		SecretFileSource(filepath.Join(dir, "missing")),
		EnvSource("CG_TEST_UNSET_DATABASE_URL"),
		LocalFileSource(path),
	)

	assert.Equal(t, DriverSQLite, target.Driver)
	assert.Equal(t, path, target.DSN)
	assert.Equal(t, "local-file", target.Source)
}

func TestResolveDatabase_Nothing(t *testing.T) {
	target := ResolveDatabase(EnvSource("CG_TEST_UNSET_DATABASE_URL"))

	assert.False(t, target.Configured())
	assert.Equal(t, DriverNone, target.Driver)
}

func TestResolveDatabase_UnknownScheme(t *testing.T) {
	t.Setenv("CG_TEST_DATABASE_URL", "mysql://root@localhost/app")

	target := ResolveDatabase(EnvSource("CG_TEST_DATABASE_URL"))

	assert.False(t, target.Configured())
}

func TestClassifyDSN(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		driver Driver
		dsn    string
	}{
		{name: "postgres url", raw: "postgres://u@db.example/app", driver: DriverPostgres, dsn: "postgres://u@db.example/app"},
		{name: "postgres key value", raw: "host=db.example dbname=app user=u", driver: DriverPostgres, dsn: "host=db.example dbname=app user=u"},
		{name: "sqlite scheme", raw: "sqlite://data/reports.db", driver: DriverSQLite, dsn: "data/reports.db"},
		{name: "relative path", raw: "data/reports.db", driver: DriverSQLite, dsn: "data/reports.db"},
		{name: "bare file name", raw: "reports.sqlite3", driver: DriverSQLite, dsn: "reports.sqlite3"},
		{name: "absolute path without extension", raw: "/var/lib/civic/store", driver: DriverSQLite, dsn: "/var/lib/civic/store"},
		{name: "incomplete key value", raw: "user=x password=y host=h", driver: DriverNone},
		{name: "bare word", raw: "localhost", driver: DriverNone},
		{name: "unknown scheme", raw: "mysql://root@localhost/app", driver: DriverNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			driver, dsn := classifyDSN(tt.raw)

			assert.Equal(t, tt.driver, driver)
			if tt.driver != DriverNone {
				assert.Equal(t, tt.dsn, dsn)
			}
		})
	}
}

func TestResolveDatabase_IncompleteKeyValueIsNotConfigured(t *testing.T) {
	t.Setenv("CG_TEST_DATABASE_URL", "user=x password=y host=h")

	target := ResolveDatabase(EnvSource("CG_TEST_DATABASE_URL"))

	assert.False(t, target.Configured())
	assert.Equal(t, "env", target.Source)
}

func TestLoadConfig_DefaultsAndDisabledLocalStore(t *testing.T) {
	t.Setenv("DATABASE_URL_FILE", filepath.Join(t.TempDir(), "missing"))
	t.Setenv("LOCAL_STORE_DISABLED", "true")
	t.Setenv("STORE_TIMEOUT", "750ms")
	t.Setenv("API_KEYS", " admin-1, admin-2 ,")
	t.Setenv("DATABASE_URL", "")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.False(t, cfg.Database.Configured())
	assert.Equal(t, 750*time.Millisecond, cfg.StoreTimeout)
	assert.Equal(t, []string{"admin-1", "admin-2"}, cfg.APIKeys)
	assert.Equal(t, defaultSSLRequiredHosts, cfg.SSLRequiredHosts)
	assert.Equal(t, 9.337060, cfg.DefaultLat)
}
