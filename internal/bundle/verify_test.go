package bundle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assembled(t *testing.T) (*Bundle, string) {
	t.Helper()
	root := t.TempDir()
	main, artifacts := buildFixture(t, root)

	outDir := filepath.Join(root, "bundle")
	b, err := Assemble(Options{
		Main:           main,
		ReleaseName:    "svc",
		ReleaseVersion: "1.0.0",
		RuntimeVersion: "27.1",
		Artifacts:      artifacts,
		OutDir:         outDir,
	})
	require.NoError(t, err)

	return b, outDir
}

func TestVerify(t *testing.T) {
	t.Run("clean bundle passes", func(t *testing.T) {
		_, dir := assembled(t)

		report, err := Verify(dir)

		require.NoError(t, err)
		assert.True(t, report.OK())
		assert.Equal(t, "svc", report.ReleaseName)
		assert.Equal(t, "1.0.0", report.ReleaseVersion)
		assert.Empty(t, report.Missing)
		assert.Empty(t, report.Extra)
		assert.NotEmpty(t, report.Digest)
		// kernel and stdlib come from the platform installation, not lib/
		assert.ElementsMatch(t, []string{"kernel", "stdlib"}, report.PlatformProvided)
	})

	t.Run("missing boot artifact is reported", func(t *testing.T) {
		_, dir := assembled(t)
		require.NoError(t, os.Remove(filepath.Join(dir, "releases", "1.0.0", "start.boot")))

		report, err := Verify(dir)

		require.NoError(t, err)
		assert.False(t, report.OK())
		assert.Contains(t, report.Missing, filepath.Join("releases", "1.0.0", "start.boot"))
	})

	t.Run("stray lib directory is reported", func(t *testing.T) {
		_, dir := assembled(t)
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "lib", "ghost-9.9.9"), 0o755))

		report, err := Verify(dir)

		require.NoError(t, err)
		assert.False(t, report.OK())
		assert.Contains(t, report.Extra, filepath.Join("lib", "ghost-9.9.9"))
		assert.Contains(t, report.Summary(), "unexpected")
	})

	t.Run("version mismatch shows as unexpected", func(t *testing.T) {
		_, dir := assembled(t)
		require.NoError(t, os.Rename(
			filepath.Join(dir, "lib", "lib_a-2.3.0"),
			filepath.Join(dir, "lib", "lib_a-2.4.0"),
		))

		report, err := Verify(dir)

		require.NoError(t, err)
		assert.Contains(t, report.Extra, filepath.Join("lib", "lib_a-2.4.0"))
		assert.Contains(t, report.PlatformProvided, "lib_a")
	})

	t.Run("directory without a release spec fails", func(t *testing.T) {
		_, err := Verify(t.TempDir())
		require.Error(t, err)
	})
}

func TestTreeDigest(t *testing.T) {
	t.Run("independent of assembly location", func(t *testing.T) {
		_, dir1 := assembled(t)
		_, dir2 := assembled(t)

		digest1, err := TreeDigest(dir1)
		require.NoError(t, err)
		digest2, err := TreeDigest(dir2)
		require.NoError(t, err)

		assert.Equal(t, digest1, digest2)
		assert.Regexp(t, `^sha256:[0-9a-f]{64}$`, digest1)
	})

	t.Run("content changes change the digest", func(t *testing.T) {
		_, dir := assembled(t)

		before, err := TreeDigest(dir)
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(filepath.Join(dir, "lib", "svc-1.0.0", "ebin", "svc.beam"), []byte("changed"), 0o644))

		after, err := TreeDigest(dir)
		require.NoError(t, err)
		assert.NotEqual(t, before, after)
	})
}
