package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_API_TOKEN", "")
	t.Setenv("DATABASE_URL", "")

	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "assets/data/verbs.json", cfg.VerbsJSONPath)
	assert.Equal(t, 20, cfg.DB.MaxConnections)
	assert.Equal(t, 30*time.Second, cfg.DB.MaxConnLifetime)
	assert.Equal(t, 2*time.Hour, cfg.Quiz.SessionTTL)
	assert.Equal(t, 10*time.Minute, cfg.Quiz.SweepInterval)
	assert.Empty(t, cfg.Metrics.Addr)

	assert.ErrorIs(t, cfg.ValidateBot(), ErrMissingEnvironmentVariables)
	_, err = cfg.DB.DSN()
	assert.ErrorIs(t, err, ErrMissingEnvironmentVariables)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := "env: production\n" +
		"verbs_json_path: /data/verbs.json\n" +
		"quiz:\n" +
		"  session_ttl: 45m\n" +
		"metrics:\n" +
		"  addr: \":9100\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))

	t.Setenv("TELEGRAM_API_TOKEN", "token")
	t.Setenv("DATABASE_URL", "postgres://localhost/conjugar")
	t.Setenv("APP_ENV", "")

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "/data/verbs.json", cfg.VerbsJSONPath)
	assert.Equal(t, 45*time.Minute, cfg.Quiz.SessionTTL)
	assert.Equal(t, ":9100", cfg.Metrics.Addr)
	assert.Equal(t, "token", cfg.TelegramAPIToken)
	require.NoError(t, cfg.ValidateBot())

	dsn, err := cfg.DB.DSN()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/conjugar", dsn)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("env: [\n"), 0o600))

	_, err := LoadFrom(dir)
	assert.Error(t, err)
}
