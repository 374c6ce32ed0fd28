package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	assert.NotNil(t, loader)
	assert.NotNil(t, loader.v)
}

func TestLoaderLoad(t *testing.T) {
	t.Run("loads config from file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")

		content := `
platform:
  root: /opt/loom
  runtimeVersion: "2.1"
cacheDir: /custom/cache
`
		require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))

		loader := NewLoader()
		cfg, err := loader.Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "/opt/loom", cfg.Platform.Root)
		assert.Equal(t, "2.1", cfg.Platform.RuntimeVersion)
		assert.Equal(t, "/custom/cache", cfg.CacheDir)
	})

	t.Run("returns empty config for missing file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "nonexistent.yaml")

		loader := NewLoader()
		cfg, err := loader.Load(configFile)

		require.NoError(t, err)
		assert.Empty(t, cfg.Platform.Root)
		assert.Empty(t, cfg.CacheDir)
	})

	t.Run("loads from environment variables", func(t *testing.T) {
		t.Setenv("RELKIT_PLATFORM_ROOT", "/env/loom")
		t.Setenv("RELKIT_RUNTIME_VERSION", "3.0")
		t.Setenv("RELKIT_CACHE_DIR", "/env/cache")

		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "empty.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte(""), 0o644))

		loader := NewLoader()
		cfg, err := loader.Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "/env/loom", cfg.Platform.Root)
		assert.Equal(t, "3.0", cfg.Platform.RuntimeVersion)
		assert.Equal(t, "/env/cache", cfg.CacheDir)
	})

	t.Run("env vars override file values", func(t *testing.T) {
		t.Setenv("RELKIT_PLATFORM_ROOT", "/env/loom")

		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")
		content := `
platform:
  root: /file/loom
`
		require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))

		loader := NewLoader()
		cfg, err := loader.Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "/env/loom", cfg.Platform.Root)
	})
}

func TestLoaderLoadWithDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "empty.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(""), 0o644))

	loader := NewLoader()
	cfg, err := loader.LoadWithDefaults(configFile)

	require.NoError(t, err)
	assert.Equal(t, DefaultPlatformRoot, cfg.Platform.Root)
	assert.NotEmpty(t, cfg.CacheDir)
}

func TestConfigFileExists(t *testing.T) {
	t.Run("existing file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("cacheDir: /x"), 0o644))

		exists, err := ConfigFileExists(configFile)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("missing file", func(t *testing.T) {
		tmpDir := t.TempDir()

		exists, err := ConfigFileExists(filepath.Join(tmpDir, "missing.yaml"))
		require.NoError(t, err)
		assert.False(t, exists)
	})
}
