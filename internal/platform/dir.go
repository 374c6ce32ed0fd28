package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/mod/semver"

	"github.com/loomrt/relkit/internal/output"
)

// VersionFile is the file under the platform root holding the runtime
// version string.
const VersionFile = "VERSION"

// DirIndex is an Index over an installed platform tree:
//
//	<root>/VERSION
//	<root>/lib/<name>-<version>/ebin/<name>.app.cue
//
// The lib directory is scanned once, lazily; when several versions of a
// library are installed, the highest one wins.
type DirIndex struct {
	root            string
	runtimeOverride string

	mu        sync.Mutex
	scanned   bool
	libraries map[string]Library
}

// DirIndexOption configures a DirIndex.
type DirIndexOption func(*DirIndex)

// WithRuntimeVersion overrides the runtime version read from the VERSION file.
func WithRuntimeVersion(version string) DirIndexOption {
	return func(ix *DirIndex) {
		ix.runtimeOverride = version
	}
}

// NewDirIndex creates an index over the platform installation at root.
func NewDirIndex(root string, opts ...DirIndexOption) *DirIndex {
	ix := &DirIndex{root: root}
	for _, opt := range opts {
		opt(ix)
	}
	return ix
}

// Root returns the platform installation directory.
func (ix *DirIndex) Root() string {
	return ix.root
}

// Check verifies the installation is usable: the root and its lib directory
// must exist.
func (ix *DirIndex) Check() error {
	info, err := os.Stat(ix.root)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("platform root not found: %s", ix.root)
	}

	libDir := filepath.Join(ix.root, "lib")
	info, err = os.Stat(libDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("platform root has no lib directory: %s", libDir)
	}

	return nil
}

// Resolve implements Index.
func (ix *DirIndex) Resolve(name string) (Library, bool) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	if !ix.scanned {
		ix.scan()
	}

	lib, ok := ix.libraries[name]
	return lib, ok
}

// RuntimeVersion implements Index. The override wins; otherwise the VERSION
// file under the root is read.
func (ix *DirIndex) RuntimeVersion() (string, error) {
	if ix.runtimeOverride != "" {
		return ix.runtimeOverride, nil
	}

	content, err := os.ReadFile(filepath.Join(ix.root, VersionFile))
	if err != nil {
		return "", fmt.Errorf("reading runtime version: %w", err)
	}

	version := strings.TrimSpace(string(content))
	if version == "" {
		return "", fmt.Errorf("runtime version file is empty: %s", filepath.Join(ix.root, VersionFile))
	}

	return version, nil
}

// scan walks <root>/lib once and records the highest installed version of
// each library. Entries that do not match <name>-<version> are skipped.
func (ix *DirIndex) scan() {
	ix.scanned = true
	ix.libraries = make(map[string]Library)

	libDir := filepath.Join(ix.root, "lib")
	entries, err := os.ReadDir(libDir)
	if err != nil {
		output.Debug("platform lib scan failed", "dir", libDir, "error", err)
		return
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		name, version, ok := splitLibDir(entry.Name())
		if !ok {
			output.Debug("skipping unrecognized lib entry", "entry", entry.Name())
			continue
		}

		lib := Library{
			Name:    name,
			Version: version,
			Dir:     filepath.Join(libDir, entry.Name()),
		}

		if existing, present := ix.libraries[name]; present {
			if compareVersions(version, existing.Version) <= 0 {
				continue
			}
		}
		ix.libraries[name] = lib
	}
}

// splitLibDir splits a versioned library directory name into identifier and
// version. The split happens at the last dash followed by a digit, so
// identifiers containing dashes keep them: "my-lib-1.2.0" -> ("my-lib", "1.2.0").
func splitLibDir(entry string) (name, version string, ok bool) {
	for i := len(entry) - 2; i > 0; i-- {
		if entry[i] != '-' {
			continue
		}
		rest := entry[i+1:]
		if rest[0] >= '0' && rest[0] <= '9' {
			return entry[:i], rest, true
		}
	}
	return "", "", false
}

// compareVersions orders two version strings, preferring semver comparison
// and falling back to plain string order for non-semver versions.
func compareVersions(a, b string) int {
	va, vb := "v"+a, "v"+b
	if semver.IsValid(va) && semver.IsValid(vb) {
		return semver.Compare(va, vb)
	}
	return strings.Compare(a, b)
}
