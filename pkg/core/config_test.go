package core

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.yaml")
	require.NoError(t, os.WriteFile(path, []byte("kernel_module: other_mod\n"), 0644))
	t.Setenv(ConfigEnv, path)

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "other_mod", cfg.KernelModule)
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `status_path: /tmp/status
catalog_dirs:
  - /srv/lists
debug: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/status", cfg.StatusPath)
	assert.Equal(t, []string{"/srv/lists"}, cfg.CatalogDirs)
	assert.True(t, cfg.Debug)
	assert.Equal(t, DefaultCatalogPattern, cfg.CatalogPattern)
	assert.Equal(t, DefaultSentinelPackage, cfg.SentinelPackage)
	assert.Equal(t, DefaultSessionService, cfg.SessionService)
}

func TestLoadConfigRejectsBadPattern(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("catalog_pattern: \"([\"\n"), 0644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog_pattern")
}

func TestLoadConfigRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("catalog_dirs: [unterminated\n"), 0644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.SentinelPackage = "libcamera-apps"

	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestErrorFormatting(t *testing.T) {
	err := &Error{Op: "install", Package: "libcamera", Err: ErrCommandFailed}
	assert.Equal(t, "install libcamera: command failed", err.Error())
	assert.True(t, errors.Is(err, ErrCommandFailed))

	err = &Error{Op: "sync", Err: ErrSyncFailed}
	assert.Equal(t, "sync: package list synchronization failed", err.Error())
}
