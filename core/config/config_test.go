package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "fs", cfg.Locales.Backend)
	assert.Equal(t, "config/locales", cfg.Locales.Dir)
	assert.Equal(t, "yaml", cfg.Locales.Format)
	assert.Equal(t, "base.yml", cfg.Locales.BaseFile)
	assert.Equal(t, "files", cfg.Source.Kind)
	assert.Equal(t, []string{"config/locales"}, cfg.Source.Dirs)
	assert.Equal(t, "app", cfg.Usage.Root)
	assert.Equal(t, []string{".rb", ".erb"}, cfg.Usage.Extensions)
	assert.False(t, cfg.Source.AutoMigrate)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOCALES_DIR", "i18n")
	t.Setenv("SOURCE_DIRS", "a,b")
	t.Setenv("SOURCE_CACHE_TTL_SECONDS", "30")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "i18n", cfg.Locales.Dir)
	assert.Equal(t, []string{"a", "b"}, cfg.Source.Dirs)
	assert.Equal(t, 30, cfg.Source.CacheTTLSeconds)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("USAGE_ROOT=src\nLOG_FORMAT=console\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("USAGE_ROOT")
		os.Unsetenv("LOG_FORMAT")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "src", cfg.Usage.Root)
	assert.Equal(t, "console", cfg.Log.Format)
}
