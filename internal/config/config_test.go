package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "from-env")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, SessionStoreSQLite, cfg.Session.Store)
	assert.Equal(t, 75, cfg.Mock.StudentCount)
	assert.Equal(t, "admin@example.com", cfg.Admin.Email)
	assert.Equal(t, time.Hour, cfg.AccessTokenTTL())
	assert.Equal(t, 7*24*time.Hour, cfg.RefreshTokenTTL())
	assert.Equal(t, 500*time.Millisecond, cfg.MutationLatency())
	assert.Equal(t, time.Second, cfg.LoginLatency())
}

func TestLoadConfig_FileThenEnv(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9090"
  allowed_origin: "https://crm.example.com"
jwt:
  secret: "file-secret"
  access_token_expiration: "30m"
session:
  store: memory
mock:
  seed: 42
  student_count: 10
  mutation_latency: "0s"
ratelimit:
  login_per_minute: 3
`)
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("MOCK_SEED", "7")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port, "env wins over the file")
	assert.Equal(t, "https://crm.example.com", cfg.Server.AllowedOrigin)
	assert.Equal(t, "file-secret", cfg.JWT.Secret)
	assert.Equal(t, 30*time.Minute, cfg.AccessTokenTTL())
	assert.Equal(t, SessionStoreMemory, cfg.Session.Store)
	assert.Equal(t, int64(7), cfg.Mock.Seed)
	assert.Equal(t, 10, cfg.Mock.StudentCount)
	assert.Zero(t, cfg.MutationLatency())
	assert.Equal(t, 3, cfg.RateLimit.LoginPerMinute)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		env  map[string]string
		want string
	}{
		{"missing secret", "jwt:\n  secret: \"\"\n", nil, "JWT secret is required"},
		{"bad expiration", "jwt:\n  secret: s\n  access_token_expiration: soon\n", nil, "access token expiration"},
		{"unknown store", "jwt:\n  secret: s\nsession:\n  store: redis\n", nil, "unknown session store"},
		{"sqlite without path", "jwt:\n  secret: s\nsession:\n  path: \"\"\n", nil, "session path is required"},
		{"negative latency", "jwt:\n  secret: s\nmock:\n  login_latency: -1s\n", nil, "invalid mock login latency"},
		{"bad env integer", "jwt:\n  secret: s\n", map[string]string{"MOCK_STUDENT_COUNT": "many"}, "MOCK_STUDENT_COUNT"},
		{"malformed yaml", "jwt: [", nil, "failed to parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("CRM_TEST_VALUE", "set")
	assert.Equal(t, "set", GetEnv("CRM_TEST_VALUE", "default"))
	assert.Equal(t, "default", GetEnv("CRM_TEST_UNSET_VALUE", "default"))
}
