package templates

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderLauncher(t *testing.T) {
	data := LauncherData{
		ReleaseName:    "svc",
		ReleaseVersion: "1.0.0",
		MainComponent:  "svc",
		RuntimeVersion: "27.1",
	}

	t.Run("renders an executable script", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bin", "run")

		require.NoError(t, RenderLauncher(path, data))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
	})

	t.Run("substitutes release parameters", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "run")

		require.NoError(t, RenderLauncher(path, data))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		script := string(content)
		assert.True(t, strings.HasPrefix(script, "#!/bin/sh"))
		assert.Contains(t, script, `REL_NAME="svc"`)
		assert.Contains(t, script, `REL_VSN="1.0.0"`)
		assert.Contains(t, script, `RUNTIME_VSN="27.1"`)
		assert.NotContains(t, script, "{{")
	})

	t.Run("covers every launcher subcommand", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "run")

		require.NoError(t, RenderLauncher(path, data))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		script := string(content)
		for _, sub := range []string{"start)", "console)", "foreground)", "eval)", "version)", "remote)"} {
			assert.Contains(t, script, sub)
		}
		assert.Contains(t, script, "exit 1")
	})

	t.Run("honors the documented environment overrides", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "run")

		require.NoError(t, RenderLauncher(path, data))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		script := string(content)
		for _, env := range []string{
			"LOOM_NODE", "LOOM_COOKIE", "LOOM_LOG_DIR", "LOOM_POLL",
			"LOOM_ASYNC_THREADS", "LOOM_EXTRA_FLAGS", "LOOM_BOOT_MODE",
		} {
			assert.Contains(t, script, env)
		}
	})

	t.Run("identical data renders identical bytes", func(t *testing.T) {
		first := filepath.Join(t.TempDir(), "run")
		second := filepath.Join(t.TempDir(), "run")

		require.NoError(t, RenderLauncher(first, data))
		require.NoError(t, RenderLauncher(second, data))

		a, err := os.ReadFile(first)
		require.NoError(t, err)
		b, err := os.ReadFile(second)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})
}
