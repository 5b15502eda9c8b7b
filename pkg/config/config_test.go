package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears keys for the duration of the test
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	unsetEnv(t, "PORT", "DATABASE_URL", "AI_TIMEOUT", "AI_VISION_TIMEOUT", "STORAGE_ENDPOINT", "ENVIRONMENT")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "one_on_one.db", cfg.Database.URL)
	assert.Equal(t, 30*time.Second, cfg.AI.Timeout)
	assert.Equal(t, 60*time.Second, cfg.AI.VisionTimeout)
	assert.False(t, cfg.StorageEnabled())
	assert.NoError(t, cfg.Validate())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com,https://b.example.com")
	t.Setenv("DATABASE_URL", "postgres://user:pass@db:5432/app")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("AI_TIMEOUT", "5s")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Server.AllowedOrigins)
	assert.False(t, cfg.Server.AllowsAnyOrigin())
	assert.Equal(t, "sk-test", cfg.AI.OpenAIKey)
	assert.Equal(t, 5*time.Second, cfg.AI.Timeout)

	dialect, err := cfg.Database.Dialect()
	require.NoError(t, err)
	assert.Equal(t, "postgres", dialect)
}

func TestDatabaseDialect(t *testing.T) {
	tests := []struct {
		url     string
		want    string
		wantErr bool
	}{
		{url: "one_on_one.db", want: "sqlite"},
		{url: "sqlite://data/app.db", want: "sqlite"},
		{url: "file::memory:?cache=shared", want: "sqlite"},
		{url: "postgresql://localhost/app", want: "postgres"},
		{url: "mysql://localhost/app", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			got, err := DatabaseConfig{URL: tt.url}.Dialect()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate_ProductionRequiresSecrets(t *testing.T) {
	unsetEnv(t, "JWT_ACCESS_SECRET", "JWT_REFRESH_SECRET", "DATABASE_URL")
	cfg, err := FromEnv()
	require.NoError(t, err)

	cfg.Server.Environment = "production"
	assert.Error(t, cfg.Validate())

	cfg.JWT.AccessSecret = "prod-access"
	cfg.JWT.RefreshSecret = "prod-refresh"
	assert.NoError(t, cfg.Validate())
}
