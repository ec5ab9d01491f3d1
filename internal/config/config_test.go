package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "logframe.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().LogFormat, cfg.LogFormat)
	assert.Equal(t, "en", cfg.Language)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logframe.yaml")
	content := `
log_level: debug
language: hi
rubric_path: rubric.yaml
catalog:
  dir: ./library
  redis:
    addr: localhost:6379
    prefix: "lf:"
    ttl: 24h
records:
  dir: ./records
  redact: [email, phone]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat, "unset keys keep their default")
	assert.Equal(t, "hi", cfg.Language)
	assert.Equal(t, "./library", cfg.Catalog.Dir)
	assert.Equal(t, "lf:", cfg.Catalog.Redis.Prefix)
	assert.Equal(t, "24h", cfg.Catalog.Redis.TTL)
	assert.Equal(t, "./records", cfg.Records.Dir)
	assert.Equal(t, []string{"email", "phone"}, cfg.Records.Redact)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logframe.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: [oops"), 0644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvLogLevel:  "warn",
		EnvLanguage:  "ta",
		EnvRedisAddr: "redis:6379",
		EnvRedisDB:   "2",
	}
	cfg := Default()
	require.NoError(t, cfg.applyEnv(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}))

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "ta", cfg.Language)
	assert.Equal(t, "redis:6379", cfg.Catalog.Redis.Addr)
	assert.Equal(t, 2, cfg.Catalog.Redis.DB)
}

func TestApplyEnv_InvalidDB(t *testing.T) {
	cfg := Default()
	err := cfg.applyEnv(func(k string) (string, bool) {
		if k == EnvRedisDB {
			return "two", true
		}
		return "", false
	})
	assert.Error(t, err)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv(EnvLanguage, "bn")
	cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "bn", cfg.Language)
}
