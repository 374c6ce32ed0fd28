package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderFileTree(t *testing.T) {
	t.Run("empty input renders nothing", func(t *testing.T) {
		assert.Empty(t, RenderFileTree("bundle", nil))
	})

	t.Run("renders root with trailing slash", func(t *testing.T) {
		out := RenderFileTree("bundle", map[string]string{"bin/run": "launcher"})
		assert.True(t, strings.HasPrefix(stripANSI(out), "bundle/"), "root line should come first")
	})

	t.Run("renders nested directories with connectors", func(t *testing.T) {
		files := map[string]string{
			"bin/run":                  "launcher",
			"releases/svc.rel":         "release spec",
			"lib/web-1.2.0/ebin/a.lbc": "",
		}
		out := RenderFileTree("bundle", files)

		assert.Contains(t, out, "bin/")
		assert.Contains(t, out, "releases/")
		assert.Contains(t, out, "lib/")
		assert.Contains(t, out, "web-1.2.0/")
		assert.Contains(t, out, treeLast)
		assert.Contains(t, out, treeEdge)
	})

	t.Run("directories sort before files", func(t *testing.T) {
		files := map[string]string{
			"sys.config":       "",
			"releases/svc.rel": "",
		}
		out := stripANSI(RenderFileTree("bundle", files))

		relIdx := strings.Index(out, "releases/")
		cfgIdx := strings.Index(out, "sys.config")
		assert.Less(t, relIdx, cfgIdx, "directory entries should precede files")
	})

	t.Run("descriptions are aligned", func(t *testing.T) {
		out := stripANSI(RenderFileTree("bundle", map[string]string{"bin/run": "launcher"}))
		line := ""
		for _, l := range strings.Split(out, "\n") {
			if strings.Contains(l, "run") {
				line = l
				break
			}
		}
		assert.NotEmpty(t, line)
		assert.GreaterOrEqual(t, strings.Index(line, "launcher"), descriptionColumn-1)
	})
}

func TestRenderSimpleTree(t *testing.T) {
	out := RenderSimpleTree("bundle", []string{"bin/run", "sys.config"})
	assert.Contains(t, out, "run")
	assert.Contains(t, out, "sys.config")
}

// stripANSI removes escape sequences so tests can assert on layout.
func stripANSI(s string) string {
	var sb strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
