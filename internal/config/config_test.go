// Package config provides configuration loading and management.
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NotNil(t, cfg)

	assert.Equal(t, DefaultPlatformRoot, cfg.Platform.Root)
	assert.Empty(t, cfg.Platform.RuntimeVersion) // No default override
	assert.Empty(t, cfg.CacheDir)
}

func TestConfig_Fields(t *testing.T) {
	cfg := &Config{
		Platform: PlatformConfig{
			Root:           "/opt/loom",
			RuntimeVersion: "2.1",
		},
		CacheDir: "/custom/cache",
	}

	assert.Equal(t, "/opt/loom", cfg.Platform.Root)
	assert.Equal(t, "2.1", cfg.Platform.RuntimeVersion)
	assert.Equal(t, "/custom/cache", cfg.CacheDir)
}

func TestWithDefaults(t *testing.T) {
	t.Run("fills empty platform root", func(t *testing.T) {
		cfg := (&Config{}).WithDefaults()
		assert.Equal(t, DefaultPlatformRoot, cfg.Platform.Root)
	})

	t.Run("keeps explicit platform root", func(t *testing.T) {
		cfg := (&Config{Platform: PlatformConfig{Root: "/opt/loom"}}).WithDefaults()
		assert.Equal(t, "/opt/loom", cfg.Platform.Root)
	})

	t.Run("does not mutate the receiver", func(t *testing.T) {
		orig := &Config{}
		_ = orig.WithDefaults()
		assert.Empty(t, orig.Platform.Root)
	})
}

func TestValidator(t *testing.T) {
	validator, err := NewValidator()
	require.NoError(t, err)

	t.Run("accepts a valid config", func(t *testing.T) {
		cfg := &Config{
			Platform: PlatformConfig{Root: "/opt/loom", RuntimeVersion: "2.1.3"},
			CacheDir: "/tmp/cache",
		}
		assert.NoError(t, validator.Validate(cfg))
	})

	t.Run("accepts the zero config", func(t *testing.T) {
		assert.NoError(t, validator.Validate(&Config{}))
	})

	t.Run("rejects a relative platform root", func(t *testing.T) {
		cfg := &Config{Platform: PlatformConfig{Root: "relative/loom"}}
		assert.Error(t, validator.Validate(cfg))
	})

	t.Run("rejects a malformed runtime version", func(t *testing.T) {
		cfg := &Config{Platform: PlatformConfig{Root: "/opt/loom", RuntimeVersion: "two.one"}}
		assert.Error(t, validator.Validate(cfg))
	})
}
