// Package component models compiled Loom components as handed over by the
// build layer, and parses their metadata artifacts.
package component

import (
	"fmt"
	"path/filepath"
)

// Component is a compiled component: the unit the release engine assembles
// releases and bundles from. Instances are constructed by the build
// orchestration layer; release resolution fills in Version and
// MetadataFile.
type Component struct {
	// Name is the component identifier, unique within one release build.
	Name string

	// Version is the resolved version string. Filled in during release
	// resolution; may be UnknownVersion when no metadata declared one.
	Version string

	// Dir is the component's build output directory.
	Dir string

	// Files are the binary module artifacts, as paths relative to Dir,
	// in the order the build layer produced them.
	Files []string

	// MetadataFile is the discovered metadata artifact path, relative to
	// Dir. Empty until located.
	MetadataFile string

	// Resources are resource files to ship under priv/, relative to Dir.
	Resources []string

	// Deps are the direct dependencies, as resolved component references.
	Deps []*Component
}

// Ref returns the canonical name-version pair, e.g. "web-1.2.0".
func (c *Component) Ref() string {
	return fmt.Sprintf("%s-%s", c.Name, c.Version)
}

// MetadataPath returns the component's metadata artifact path. The
// recorded location wins when known; otherwise the candidate locations
// are probed. The artifact is named after the build directory, so
// probing by Name alone misses it once metadata has renamed the
// component.
func (c *Component) MetadataPath() (string, bool) {
	if c.MetadataFile != "" {
		return filepath.Join(c.Dir, c.MetadataFile), true
	}
	return LocateMetadata(c.Dir, c.Name)
}

// AbsFiles returns the module artifact paths joined onto the component dir.
func (c *Component) AbsFiles() []string {
	out := make([]string, len(c.Files))
	for i, f := range c.Files {
		out[i] = filepath.Join(c.Dir, f)
	}
	return out
}

// AbsResources returns the resource paths joined onto the component dir.
func (c *Component) AbsResources() []string {
	out := make([]string, len(c.Resources))
	for i, r := range c.Resources {
		out[i] = filepath.Join(c.Dir, r)
	}
	return out
}
