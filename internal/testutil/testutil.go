// Package testutil provides test helpers for relkit tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/loomrt/relkit/internal/component"
	"github.com/loomrt/relkit/internal/platform"
)

// WriteFile creates a file with the given content in the specified
// directory, creating parent directories as needed, and returns its path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// Metadata renders a component metadata artifact. An empty vsn omits the
// version field entirely.
func Metadata(name, vsn string, deps, included []string) string {
	var b strings.Builder
	b.WriteString("component: {\n")
	fmt.Fprintf(&b, "\tname: %q\n", name)
	if vsn != "" {
		fmt.Fprintf(&b, "\tvsn: %q\n", vsn)
	}
	fmt.Fprintf(&b, "\tdependencies: %s\n", cueList(deps))
	fmt.Fprintf(&b, "\tincluded: %s\n", cueList(included))
	b.WriteString("}\n")
	return b.String()
}

func cueList(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = fmt.Sprintf("%q", item)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// WriteComponent creates a component build directory under root with a
// flat metadata artifact, and returns the component.
func WriteComponent(t *testing.T, root, name, vsn string, deps, included []string) *component.Component {
	t.Helper()
	dir := filepath.Join(root, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("failed to create component dir %s: %v", dir, err)
	}
	WriteFile(t, dir, name+component.MetadataSuffix, Metadata(name, vsn, deps, included))
	return &component.Component{Name: name, Dir: dir}
}

// BareComponent creates a component build directory with no metadata
// artifact at all.
func BareComponent(t *testing.T, root, name string) *component.Component {
	t.Helper()
	dir := filepath.Join(root, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("failed to create component dir %s: %v", dir, err)
	}
	return &component.Component{Name: name, Dir: dir}
}

// WriteLibrary creates an installed platform library under root/lib with a
// nested metadata artifact, and returns the library directory.
func WriteLibrary(t *testing.T, root, name, vsn string, deps []string) string {
	t.Helper()
	dir := filepath.Join(root, "lib", fmt.Sprintf("%s-%s", name, vsn))
	if err := os.MkdirAll(filepath.Join(dir, "ebin"), 0o755); err != nil {
		t.Fatalf("failed to create library dir %s: %v", dir, err)
	}
	WriteFile(t, dir, filepath.Join("ebin", name+component.MetadataSuffix), Metadata(name, vsn, deps, nil))
	return dir
}

// WriteInstallation creates a platform installation root with a VERSION
// file and an empty lib directory, and returns the root.
func WriteInstallation(t *testing.T, runtime string) string {
	t.Helper()
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "lib"), 0o755); err != nil {
		t.Fatalf("failed to create installation lib dir: %v", err)
	}
	WriteFile(t, root, platform.VersionFile, runtime+"\n")
	return root
}
