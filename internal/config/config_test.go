package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tool-rental-backend/internal/pricing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, CatalogSourceDefault, cfg.Catalog.Source)
	assert.Equal(t, pricing.ChargeWindowInclusive, cfg.ChargeWindow())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, ":8080", cfg.GetServerAddress())
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
server:
  host: 127.0.0.1
  port: 9090
catalog:
  source: file
  file: tools.yaml
pricing:
  charge_window: after_checkout
log:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", cfg.GetServerAddress())
	assert.Equal(t, CatalogSourceFile, cfg.Catalog.Source)
	assert.Equal(t, "tools.yaml", cfg.Catalog.File)
	assert.Equal(t, pricing.ChargeWindowAfterCheckout, cfg.ChargeWindow())
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("CATALOG_SOURCE", "postgres")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_USER", "rental")
	t.Setenv("DB_NAME", "tools")
	t.Setenv("CHARGE_WINDOW", "after_checkout")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, CatalogSourcePostgres, cfg.Catalog.Source)
	assert.Equal(t, "postgres://rental:@db:5432/tools?sslmode=disable", cfg.GetDatabaseConnectionString())
	assert.Equal(t, pricing.ChargeWindowAfterCheckout, cfg.ChargeWindow())
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("Bad YAML", func(t *testing.T) {
		_, err := Load(writeConfig(t, "server: ["))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})

	t.Run("File source without file", func(t *testing.T) {
		_, err := Load(writeConfig(t, "catalog:\n  source: file\n"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "catalog file is required")
	})

	t.Run("Postgres source without database", func(t *testing.T) {
		_, err := Load(writeConfig(t, "catalog:\n  source: postgres\n"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "database host is required")
	})

	t.Run("Unknown source", func(t *testing.T) {
		_, err := Load(writeConfig(t, "catalog:\n  source: redis\n"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unknown catalog source")
	})

	t.Run("Unknown charge window", func(t *testing.T) {
		_, err := Load(writeConfig(t, "pricing:\n  charge_window: weekly\n"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unknown charge window")
	})

	t.Run("Bad port", func(t *testing.T) {
		_, err := Load(writeConfig(t, "server:\n  port: 70000\n"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid server port")
	})
}

func TestLoad_InvalidEnvPort(t *testing.T) {
	t.Run("Server port", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "abc")
		cfg, err := Load("")
		assert.Nil(t, cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid SERVER_PORT")
	})

	t.Run("Database port", func(t *testing.T) {
		t.Setenv("DB_PORT", "5432x")
		cfg, err := Load("")
		assert.Nil(t, cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid DB_PORT")
	})
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, CatalogSourceDefault, cfg.Catalog.Source)
}
