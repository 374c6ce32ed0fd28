package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd(t *testing.T) {
	root := NewRootCmd()

	assert.Equal(t, "relkit", root.Use)
	assert.True(t, root.SilenceUsage)
	assert.True(t, root.SilenceErrors)

	var names []string
	for _, sub := range root.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "release")
	assert.Contains(t, names, "bundle")
	assert.Contains(t, names, "config")
	assert.Contains(t, names, "version")
}

func TestReleaseCmdWiring(t *testing.T) {
	releaseCmd := NewReleaseCmd()

	build, _, err := releaseCmd.Find([]string{"build"})
	require.NoError(t, err)
	assert.Equal(t, "build", build.Name())
	assert.NotNil(t, build.Flags().Lookup("version"))
	assert.NotNil(t, build.Flags().Lookup("dep"))
	assert.NotNil(t, build.Flags().Lookup("extra-lib"))

	diffCmd, _, err := releaseCmd.Find([]string{"diff"})
	require.NoError(t, err)
	assert.Equal(t, "diff", diffCmd.Name())
}

func TestBundleCmdWiring(t *testing.T) {
	bundleCmd := NewBundleCmd()

	assemble, _, err := bundleCmd.Find([]string{"assemble"})
	require.NoError(t, err)
	assert.NotNil(t, assemble.Flags().Lookup("artifacts"))
	assert.NotNil(t, assemble.Flags().Lookup("config"))

	verify, _, err := bundleCmd.Find([]string{"verify"})
	require.NoError(t, err)
	assert.NotNil(t, verify.Flags().Lookup("format"))
}
