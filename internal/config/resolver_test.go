package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePlatformRoot_FlagPrecedence(t *testing.T) {
	t.Setenv("RELKIT_PLATFORM_ROOT", "/env/loom")

	result := ResolvePlatformRoot(ResolvePlatformRootOptions{
		FlagValue:   "/flag/loom",
		ConfigValue: "/config/loom",
	})

	assert.Equal(t, "/flag/loom", result.Root)
	assert.Equal(t, SourceFlag, result.Source)
	assert.Equal(t, "/env/loom", result.Shadowed[SourceEnv])
	assert.Equal(t, "/config/loom", result.Shadowed[SourceConfig])
}

func TestResolvePlatformRoot_EnvPrecedence(t *testing.T) {
	t.Setenv("RELKIT_PLATFORM_ROOT", "/env/loom")

	result := ResolvePlatformRoot(ResolvePlatformRootOptions{
		FlagValue:   "", // No flag
		ConfigValue: "/config/loom",
	})

	assert.Equal(t, "/env/loom", result.Root)
	assert.Equal(t, SourceEnv, result.Source)
	assert.Equal(t, "/config/loom", result.Shadowed[SourceConfig])
	assert.NotContains(t, result.Shadowed, SourceFlag)
}

func TestResolvePlatformRoot_ConfigFallback(t *testing.T) {
	t.Setenv("RELKIT_PLATFORM_ROOT", "")

	result := ResolvePlatformRoot(ResolvePlatformRootOptions{
		FlagValue:   "",
		ConfigValue: "/config/loom",
	})

	assert.Equal(t, "/config/loom", result.Root)
	assert.Equal(t, SourceConfig, result.Source)
	assert.Empty(t, result.Shadowed)
}

func TestResolvePlatformRoot_Default(t *testing.T) {
	t.Setenv("RELKIT_PLATFORM_ROOT", "")

	result := ResolvePlatformRoot(ResolvePlatformRootOptions{
		FlagValue:   "",
		ConfigValue: "",
	})

	assert.Equal(t, DefaultPlatformRoot, result.Root)
	assert.Equal(t, SourceDefault, result.Source)
}

func TestResolveConfigPath_FlagPrecedence(t *testing.T) {
	t.Setenv("RELKIT_CONFIG", "/env/path/config.yaml")

	result, err := ResolveConfigPath(ResolveConfigPathOptions{
		FlagValue: "/flag/path/config.yaml",
	})
	require.NoError(t, err)

	assert.Equal(t, "/flag/path/config.yaml", result.ConfigPath)
	assert.Equal(t, SourceFlag, result.Source)
	assert.Equal(t, "/env/path/config.yaml", result.Shadowed[SourceEnv])
	assert.NotEmpty(t, result.Shadowed[SourceDefault])
}

func TestResolveConfigPath_EnvPrecedence(t *testing.T) {
	t.Setenv("RELKIT_CONFIG", "/env/path/config.yaml")

	result, err := ResolveConfigPath(ResolveConfigPathOptions{
		FlagValue: "", // No flag
	})
	require.NoError(t, err)

	assert.Equal(t, "/env/path/config.yaml", result.ConfigPath)
	assert.Equal(t, SourceEnv, result.Source)
	assert.NotEmpty(t, result.Shadowed[SourceDefault])
}

func TestResolveConfigPath_Default(t *testing.T) {
	t.Setenv("RELKIT_CONFIG", "")

	result, err := ResolveConfigPath(ResolveConfigPathOptions{
		FlagValue: "",
	})
	require.NoError(t, err)

	assert.Contains(t, result.ConfigPath, ".relkit")
	assert.Contains(t, result.ConfigPath, "config.yaml")
	assert.Equal(t, SourceDefault, result.Source)
	assert.Empty(t, result.Shadowed)
}

func TestSource_String(t *testing.T) {
	assert.Equal(t, "flag", string(SourceFlag))
	assert.Equal(t, "env", string(SourceEnv))
	assert.Equal(t, "config", string(SourceConfig))
	assert.Equal(t, "default", string(SourceDefault))
}
