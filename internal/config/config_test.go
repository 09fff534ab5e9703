package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/events")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, FailureNote, cfg.ExportFailurePolicy)
	assert.Equal(t, 4, cfg.ExportMaxParallel)
	assert.Equal(t, 5*time.Minute, cfg.DashboardCacheTTL)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "Asia/Ho_Chi_Minh", cfg.ExportLocation.String())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/events")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("EXPORT_FAILURE_POLICY", "ABORT")
	t.Setenv("EXPORT_MAX_PARALLEL", "8")
	t.Setenv("DASHBOARD_CACHE_TTL", "30s")
	t.Setenv("EXPORT_TIMEZONE", "UTC")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, FailureAbort, cfg.ExportFailurePolicy)
	assert.Equal(t, 8, cfg.ExportMaxParallel)
	assert.Equal(t, 30*time.Second, cfg.DashboardCacheTTL)
	assert.Equal(t, time.UTC, cfg.ExportLocation)
}

func TestLoad_DotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("EXPORT_FAILURE_POLICY=skip\n"), 0o600))
	t.Setenv("DB_DSN", "postgres://localhost/events")
	// godotenv не перетирает уже заданные переменные, t.Setenv вернёт значение после теста.
	t.Setenv("EXPORT_FAILURE_POLICY", "")
	require.NoError(t, os.Unsetenv("EXPORT_FAILURE_POLICY"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, FailureSkip, cfg.ExportFailurePolicy)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing dsn", env: map[string]string{"DB_DSN": ""}},
		{name: "bad policy", env: map[string]string{"EXPORT_FAILURE_POLICY": "retry"}},
		{name: "bad parallel", env: map[string]string{"EXPORT_MAX_PARALLEL": "0"}},
		{name: "bad log level", env: map[string]string{"LOG_LEVEL": "loud"}},
		{name: "bad timezone", env: map[string]string{"EXPORT_TIMEZONE": "Mars/Olympus"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DB_DSN", "postgres://localhost/events")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			assert.Error(t, err)
		})
	}
}
