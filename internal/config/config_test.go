package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3001", cfg.Recommender.BaseURL)
	assert.Equal(t, time.Duration(0), cfg.Recommender.RequestTimeout())
	assert.Equal(t, "localhost:8080", cfg.Server.Addr())
	assert.False(t, cfg.Database.Enabled)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "vehiclefinder:stream:submissions", cfg.Redis.Stream)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "finder.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
recommender:
  base_url: https://recommend.example.com/
  timeout: 15
server:
  port: 9090
redis:
  enabled: true
`), 0o600))

	t.Setenv("SERVER_HOST", "0.0.0.0")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://recommend.example.com", cfg.Recommender.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Recommender.RequestTimeout())
	assert.Equal(t, "0.0.0.0:9090", cfg.Server.Addr())
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
}

func TestLoad_EnvBaseURL(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("RECOMMENDER_BASE_URL", "http://10.0.0.5:3001")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.5:3001", cfg.Recommender.BaseURL)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDatabaseDSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, Name: "leads", User: "u", Password: "p"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=leads sslmode=disable", d.DSN())
}
