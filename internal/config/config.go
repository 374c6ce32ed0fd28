// Package config provides configuration loading and management.
package config

// PlatformConfig contains settings for the Loom platform installation that
// release builds resolve installed libraries from.
type PlatformConfig struct {
	// Root is the platform installation directory.
	// Env: RELKIT_PLATFORM_ROOT, Default: /usr/lib/loom
	Root string `json:"root,omitempty"`

	// RuntimeVersion overrides the runtime version read from <root>/VERSION.
	// Env: RELKIT_RUNTIME_VERSION
	RuntimeVersion string `json:"runtimeVersion,omitempty"`
}

// Config represents the relkit CLI configuration.
// Loaded from ~/.relkit/config.yaml, merged with environment variables.
type Config struct {
	// Platform contains platform installation settings.
	Platform PlatformConfig `json:"platform,omitempty"`

	// CacheDir is the directory for build scratch space.
	// Env: RELKIT_CACHE_DIR, Default: ~/.relkit/cache
	CacheDir string `json:"cacheDir,omitempty"`
}

// DefaultPlatformRoot is the conventional install location of the Loom runtime.
const DefaultPlatformRoot = "/usr/lib/loom"

// DefaultConfig returns a Config with all default values populated.
func DefaultConfig() *Config {
	return &Config{
		Platform: PlatformConfig{
			Root: DefaultPlatformRoot,
		},
	}
}

// WithDefaults returns a copy of the config with defaults applied to any
// unset fields.
func (c *Config) WithDefaults() *Config {
	out := *c

	if out.Platform.Root == "" {
		out.Platform.Root = DefaultPlatformRoot
	}

	if out.CacheDir == "" {
		if cacheDir, err := GetCacheDir(); err == nil {
			out.CacheDir = cacheDir
		}
	}

	return &out
}
