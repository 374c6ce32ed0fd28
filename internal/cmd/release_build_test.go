package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunReleaseBuild_FormatFlag(t *testing.T) {
	t.Run("unknown format is rejected", func(t *testing.T) {
		err := runReleaseBuild(releaseBuildOpts{
			mainDir: t.TempDir(),
			version: "1.0.0",
			format:  "bogus",
		})

		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, ExitGeneralError, exitErr.Code)
		assert.Contains(t, err.Error(), "bogus")
	})

	t.Run("yaml is not a build format", func(t *testing.T) {
		err := runReleaseBuild(releaseBuildOpts{
			mainDir: t.TempDir(),
			version: "1.0.0",
			format:  "yaml",
		})

		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, ExitGeneralError, exitErr.Code)
	})
}
