package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/employee-service/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_NAME", "APP_ENV", "APP_HOST", "PORT", "APP_VERSION", "HTTP_REQUEST_TIMEOUT_SECONDS",
		"MONGO_URL", "MONGO_DATABASE", "MONGO_COLLECTION_NAME", "MONGO_CONNECT_TIMEOUT_SECONDS",
		"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "REDIS_EVENTS_CHANNEL",
		"LOG_LEVEL", "CORS_ALLOWED_ORIGIN", "SWAGGER_SERVER_URL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("MONGO_URL", "mongodb://localhost:27017")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, time.Duration(0), cfg.App.RequestTimeout())
	assert.Equal(t, "employeedatabase", cfg.Mongo.Database)
	assert.Equal(t, "employees", cfg.Mongo.Collection)
	assert.Equal(t, 10*time.Second, cfg.Mongo.ConnectTimeout())
	assert.Equal(t, "http://localhost:3000", cfg.CORS.AllowedOrigin)
	assert.Equal(t, "http://localhost:8080", cfg.Docs.ServerURL)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, "employees.events", cfg.Redis.EventsChannel)
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "5000")
	t.Setenv("MONGO_URL", "mongodb://db:27017")
	t.Setenv("MONGO_DATABASE", "hr")
	t.Setenv("MONGO_COLLECTION_NAME", "staff")
	t.Setenv("CORS_ALLOWED_ORIGIN", "https://hr.example.com")
	t.Setenv("SWAGGER_SERVER_URL", "https://api.example.com")
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "15")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "2")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:5000", cfg.App.Addr())
	assert.Equal(t, 15*time.Second, cfg.App.RequestTimeout())
	assert.Equal(t, "mongodb://db:27017", cfg.Mongo.URL)
	assert.Equal(t, "hr", cfg.Mongo.Database)
	assert.Equal(t, "staff", cfg.Mongo.Collection)
	assert.Equal(t, "https://hr.example.com", cfg.CORS.AllowedOrigin)
	assert.Equal(t, "https://api.example.com", cfg.Docs.ServerURL)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 2, cfg.Redis.DB)
}

func TestLoad_MissingMongoURL(t *testing.T) {
	clearEnv(t)

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MONGO_URL is required")
}

func TestLoad_InvalidRedisDB(t *testing.T) {
	clearEnv(t)
	t.Setenv("MONGO_URL", "mongodb://localhost:27017")
	t.Setenv("REDIS_DB", "zero")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid REDIS_DB")
}
