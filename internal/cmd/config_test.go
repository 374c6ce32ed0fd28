package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withConfigFlag points the global --config flag at a temp path for the
// duration of one test.
func withConfigFlag(t *testing.T, path string) {
	t.Helper()
	prev := configFlag
	configFlag = path
	t.Cleanup(func() { configFlag = prev })
}

func TestConfigInit(t *testing.T) {
	t.Run("creates a default config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		withConfigFlag(t, path)

		require.NoError(t, runConfigInit(false))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "platform:")
		assert.Contains(t, string(data), "root:")
	})

	t.Run("refuses to overwrite without force", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		withConfigFlag(t, path)

		require.NoError(t, runConfigInit(false))
		err := runConfigInit(false)

		require.Error(t, err)
		assert.Equal(t, ExitGeneralError, ExitCodeFromError(err))

		require.NoError(t, runConfigInit(true))
	})
}

func TestConfigVet(t *testing.T) {
	t.Run("default config passes", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		withConfigFlag(t, path)

		require.NoError(t, runConfigInit(false))
		require.NoError(t, runConfigVet())
	})

	t.Run("missing file reports not found", func(t *testing.T) {
		withConfigFlag(t, filepath.Join(t.TempDir(), "absent.yaml"))

		err := runConfigVet()

		require.Error(t, err)
		assert.Equal(t, ExitNotFound, ExitCodeFromError(err))
	})

	t.Run("relative platform root is rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("platform:\n  root: relative/path\n"), 0o644))
		withConfigFlag(t, path)

		err := runConfigVet()

		require.Error(t, err)
		assert.Equal(t, ExitInputError, ExitCodeFromError(err))
	})
}
