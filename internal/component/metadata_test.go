package component

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMetadata(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestParse(t *testing.T) {
	parser := NewParser()

	t.Run("full declaration", func(t *testing.T) {
		content := `
component: {
	name:         "web"
	vsn:          "1.2.0"
	description:  "HTTP front end"
	dependencies: ["kernel", "stdlib", "httpd"]
	included:     ["web_admin"]
}
`
		meta, err := parser.Parse([]byte(content), "web.app.cue")
		require.NoError(t, err)

		assert.Equal(t, "web", meta.Name)
		assert.Equal(t, "1.2.0", meta.Version)
		assert.Equal(t, "HTTP front end", meta.Description)
		assert.Equal(t, []string{"kernel", "stdlib", "httpd"}, meta.Dependencies)
		assert.Equal(t, []string{"web_admin"}, meta.Included)
	})

	t.Run("absent vsn defaults to unknown version", func(t *testing.T) {
		content := `
component: {
	name: "web"
	dependencies: ["kernel"]
}
`
		meta, err := parser.Parse([]byte(content), "web.app.cue")
		require.NoError(t, err)

		assert.Equal(t, UnknownVersion, meta.Version)
	})

	t.Run("absent lists default to empty", func(t *testing.T) {
		content := `
component: {
	name: "web"
	vsn:  "1.0.0"
}
`
		meta, err := parser.Parse([]byte(content), "web.app.cue")
		require.NoError(t, err)

		assert.Empty(t, meta.Dependencies)
		assert.Empty(t, meta.Included)
	})

	t.Run("extra fields are ignored", func(t *testing.T) {
		content := `
component: {
	name:      "web"
	vsn:       "1.0.0"
	env:       {cacheSize: 128}
	modules:   ["web_handler", "web_router"]
}
`
		meta, err := parser.Parse([]byte(content), "web.app.cue")
		require.NoError(t, err)
		assert.Equal(t, "web", meta.Name)
	})

	t.Run("missing component declaration", func(t *testing.T) {
		_, err := parser.Parse([]byte(`application: {name: "web"}`), "web.app.cue")
		assert.ErrorContains(t, err, "missing component declaration")
	})

	t.Run("malformed content", func(t *testing.T) {
		_, err := parser.Parse([]byte(`component: {name: `), "web.app.cue")
		assert.Error(t, err)
	})

	t.Run("non-list dependencies", func(t *testing.T) {
		_, err := parser.Parse([]byte(`component: {name: "web", dependencies: "kernel"}`), "web.app.cue")
		assert.ErrorContains(t, err, "dependencies is not a list")
	})
}

func TestMetadataCandidates(t *testing.T) {
	candidates := MetadataCandidates("/build/web", "web")

	require.Len(t, candidates, 2)
	assert.Equal(t, filepath.Join("/build/web", "web.app.cue"), candidates[0])
	assert.Equal(t, filepath.Join("/build/web", "ebin", "web.app.cue"), candidates[1])
}

func TestLocateMetadata(t *testing.T) {
	t.Run("flat location wins", func(t *testing.T) {
		dir := t.TempDir()
		writeMetadata(t, filepath.Join(dir, "web.app.cue"), `component: {name: "web"}`)
		writeMetadata(t, filepath.Join(dir, "ebin", "web.app.cue"), `component: {name: "web"}`)

		path, ok := LocateMetadata(dir, "web")
		require.True(t, ok)
		assert.Equal(t, filepath.Join(dir, "web.app.cue"), path)
	})

	t.Run("falls back to nested location", func(t *testing.T) {
		dir := t.TempDir()
		writeMetadata(t, filepath.Join(dir, "ebin", "web.app.cue"), `component: {name: "web"}`)

		path, ok := LocateMetadata(dir, "web")
		require.True(t, ok)
		assert.Equal(t, filepath.Join(dir, "ebin", "web.app.cue"), path)
	})

	t.Run("not found", func(t *testing.T) {
		_, ok := LocateMetadata(t.TempDir(), "web")
		assert.False(t, ok)
	})

	t.Run("directories are not artifacts", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "web.app.cue"), 0o755))

		_, ok := LocateMetadata(dir, "web")
		assert.False(t, ok)
	})
}

func TestLoad(t *testing.T) {
	parser := NewParser()

	t.Run("found and parsed", func(t *testing.T) {
		dir := t.TempDir()
		writeMetadata(t, filepath.Join(dir, "web.app.cue"), `
component: {
	name: "web"
	vsn:  "2.0.1"
}
`)

		meta, found, err := parser.Load(dir, "web")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "2.0.1", meta.Version)
	})

	t.Run("not found", func(t *testing.T) {
		meta, found, err := parser.Load(t.TempDir(), "web")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, meta)
	})

	t.Run("found but malformed", func(t *testing.T) {
		dir := t.TempDir()
		writeMetadata(t, filepath.Join(dir, "web.app.cue"), `component: {`)

		_, found, err := parser.Load(dir, "web")
		assert.True(t, found)
		assert.Error(t, err)
	})
}

func TestComponentMetadataPath(t *testing.T) {
	t.Run("recorded location wins", func(t *testing.T) {
		dir := t.TempDir()
		writeMetadata(t, filepath.Join(dir, "build-svc.app.cue"), `component: {name: "svc"}`)

		c := &Component{Name: "svc", Dir: dir, MetadataFile: "build-svc.app.cue"}

		path, ok := c.MetadataPath()
		require.True(t, ok)
		assert.Equal(t, filepath.Join(dir, "build-svc.app.cue"), path)
	})

	t.Run("probes candidates when nothing is recorded", func(t *testing.T) {
		dir := t.TempDir()
		writeMetadata(t, filepath.Join(dir, "svc.app.cue"), `component: {name: "svc"}`)

		c := &Component{Name: "svc", Dir: dir}

		path, ok := c.MetadataPath()
		require.True(t, ok)
		assert.Equal(t, filepath.Join(dir, "svc.app.cue"), path)
	})

	t.Run("not found", func(t *testing.T) {
		c := &Component{Name: "svc", Dir: t.TempDir()}

		_, ok := c.MetadataPath()
		assert.False(t, ok)
	})
}

func TestComponentRef(t *testing.T) {
	c := &Component{Name: "web", Version: "1.2.0"}
	assert.Equal(t, "web-1.2.0", c.Ref())
}

func TestComponentAbsPaths(t *testing.T) {
	c := &Component{
		Name:      "web",
		Dir:       "/build/web",
		Files:     []string{"ebin/web.lbc", "ebin/web_sup.lbc"},
		Resources: []string{"priv/static/index.html"},
	}

	assert.Equal(t, []string{
		filepath.Join("/build/web", "ebin", "web.lbc"),
		filepath.Join("/build/web", "ebin", "web_sup.lbc"),
	}, c.AbsFiles())

	assert.Equal(t, []string{
		filepath.Join("/build/web", "priv", "static", "index.html"),
	}, c.AbsResources())
}
