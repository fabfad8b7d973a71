package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "RealEstateDb", cfg.Mongo.Database)
	assert.Equal(t, 10, cfg.Mongo.TimeoutSeconds)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: "9090"
  env: production
  cors_origins:
    - https://listings.example.com
mongo:
  uri: mongodb://db:27017
  database: ListingsDb
  timeout_seconds: 30
logging:
  level: debug
  json: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, []string{"https://listings.example.com"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "mongodb://db:27017", cfg.Mongo.URI)
	assert.Equal(t, "ListingsDb", cfg.Mongo.Database)
	assert.Equal(t, 30*time.Second, cfg.Mongo.GetTimeout())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.JSON)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a map"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: \"9090\"\n"), 0o644))

	t.Setenv("PORT", "7070")
	t.Setenv("APP_ENV", "Production")
	t.Setenv("CORS_ORIGINS", " https://a.example.com , https://b.example.com ")
	t.Setenv("MONGO_URI", "mongodb://env:27017")
	t.Setenv("MONGO_DATABASE", "EnvDb")
	t.Setenv("SKIP_DB_INIT", "true")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.True(t, cfg.IsProduction(), "env comparison is case insensitive")
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "mongodb://env:27017", cfg.Mongo.URI)
	assert.Equal(t, "EnvDb", cfg.Mongo.Database)
	assert.True(t, cfg.Mongo.SkipInit)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestGetTimeoutFloor(t *testing.T) {
	cfg := MongoConfig{TimeoutSeconds: 0}
	assert.Equal(t, 10*time.Second, cfg.GetTimeout())

	cfg.TimeoutSeconds = -5
	assert.Equal(t, 10*time.Second, cfg.GetTimeout())
}
