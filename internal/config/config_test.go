package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "GIN_MODE", "DB_DRIVER", "DATABASE_PATH", "DATABASE_URL",
		"GEMINI_API_KEY", "GEMINI_MODEL", "LLM_TEMPERATURE", "CORS_ALLOWED_ORIGINS",
		"LOG_LEVEL", "LOG_FORMAT", "HTTP_READ_TIMEOUT", "HTTP_WRITE_TIMEOUT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "jobportal.db", cfg.DatabasePath)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
	assert.InDelta(t, 0.2, cfg.LLMTemperature, 1e-9)
	assert.Equal(t, 15*time.Second, cfg.ReadTimeout)
	assert.Empty(t, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.AIEnabled())
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("DATABASE_URL", "host=localhost dbname=jobs")
	t.Setenv("GEMINI_API_KEY", "key")
	t.Setenv("LLM_TEMPERATURE", "0.7")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://jobs.example.com ,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.True(t, cfg.AIEnabled())
	assert.InDelta(t, 0.7, cfg.LLMTemperature, 1e-9)
	assert.Equal(t, []string{"http://localhost:3000", "https://jobs.example.com"}, cfg.CORSAllowedOrigins)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "bad temperature", env: map[string]string{"LLM_TEMPERATURE": "warm"}},
		{name: "temperature out of range", env: map[string]string{"LLM_TEMPERATURE": "3"}},
		{name: "bad timeout", env: map[string]string{"HTTP_READ_TIMEOUT": "soon"}},
		{name: "unknown driver", env: map[string]string{"DB_DRIVER": "mysql"}},
		{name: "postgres without url", env: map[string]string{"DB_DRIVER": "postgres"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
