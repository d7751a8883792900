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
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"WRITEASSESS_PORT", "WRITEASSESS_ALLOW_ORIGINS", "WRITEASSESS_CREDENTIALS_BACKEND",
		"OPENAI_BASE_URL", "OPENAI_MODEL", "OPENAI_TIMEOUT_SECONDS",
		"MONGO_URI", "REDIS_ADDR", "REDIS_PASSWORD", "LOG_MODE",
	} {
		t.Setenv(name, "")
	}
}

func TestLoadConfigAppliesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadConfig(writeConfig(t, "server:\n  port: 9000\n"))
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "gpt-4o-mini", cfg.Openai.Model)
	assert.Equal(t, "https://api.openai.com/v1", cfg.Openai.BaseURL)
	assert.Equal(t, CredentialsMemory, cfg.Credentials.Backend)
	assert.Equal(t, 120*time.Second, cfg.Timeout())
	assert.Equal(t, 24*time.Hour, cfg.SessionIdle())
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	t.Setenv("WRITEASSESS_PORT", "8088")
	t.Setenv("WRITEASSESS_ALLOW_ORIGINS", "http://a.test, http://b.test")

	cfg, err := LoadConfig(writeConfig(t, "openai:\n  model: ignored\n"))
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o", cfg.Openai.Model)
	assert.Equal(t, 8088, cfg.Server.Port)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowOrigins)
}

func TestLoadConfigRejectsIncompleteBackends(t *testing.T) {
	clearEnv(t)
	_, err := LoadConfig(writeConfig(t, "credentials:\n  backend: mongo\n"))
	assert.ErrorContains(t, err, "database.uri")

	_, err = LoadConfig(writeConfig(t, "credentials:\n  backend: redis\n"))
	assert.ErrorContains(t, err, "redis.addr")

	_, err = LoadConfig(writeConfig(t, "credentials:\n  backend: etcd\n"))
	assert.ErrorContains(t, err, "unknown credentials backend")

	cfg, err := LoadConfig(writeConfig(t, "credentials:\n  backend: redis\nredis:\n  addr: localhost:6379\n"))
	require.NoError(t, err)
	assert.Equal(t, CredentialsRedis, cfg.Credentials.Backend)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestLoadConfigWithoutFile(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 1313, cfg.Server.Port)
}
