// Package release implements release resolution: computing the dependency
// closure of a main component, resolving per-component versions, detecting
// platform libraries, ordering the application list, and emitting the
// release artifacts the bundle assembler consumes.
package release

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/loomrt/relkit/internal/component"
)

// FoundationLibs are the libraries every release depends on unconditionally.
// They occupy the first application list positions, in this order.
var FoundationLibs = []string{"kernel", "stdlib"}

// IsFoundation reports whether name is one of the foundational libraries.
func IsFoundation(name string) bool {
	for _, lib := range FoundationLibs {
		if name == lib {
			return true
		}
	}
	return false
}

// Config describes one release build request.
type Config struct {
	// Name is the release name; artifact files are named after it.
	Name string `validate:"required"`

	// Version is the release version. It doubles as the fallback version
	// for a main component whose metadata declares none.
	Version string `validate:"required"`

	// Main is the component the release is built around. It is always the
	// final application list entry.
	Main *component.Component `validate:"required"`

	// Deps are the explicitly declared direct dependencies.
	Deps []*component.Component

	// ExtraLibs are platform libraries requested beyond auto-detection.
	ExtraLibs []string

	// OutDir is the directory release artifacts are written to.
	OutDir string `validate:"required"`

	// Silent suppresses boot compiler progress output.
	Silent bool

	// SkipModuleCheck skips the boot compiler's search-path verification.
	SkipModuleCheck bool
}

var validate = validator.New()

// Validate checks the request shape. It runs before any resolution work;
// every failure is an InputError.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return &InputError{ReleaseName: c.Name, Message: "missing required fields", Cause: err}
	}
	if strings.ContainsAny(c.Name, `/\`) {
		return &InputError{ReleaseName: c.Name, Message: fmt.Sprintf("release name %q contains a path separator", c.Name)}
	}
	if c.Main.Name == "" {
		return &InputError{ReleaseName: c.Name, Message: "main component has no name"}
	}
	if IsFoundation(c.Main.Name) {
		return &InputError{ReleaseName: c.Name, Message: fmt.Sprintf("main component %q collides with a foundational library", c.Main.Name)}
	}
	for i, dep := range c.Deps {
		if dep == nil {
			return &InputError{ReleaseName: c.Name, Message: fmt.Sprintf("dependency %d is nil", i)}
		}
		if dep.Name == "" {
			return &InputError{ReleaseName: c.Name, Message: fmt.Sprintf("dependency %d has no name", i)}
		}
	}
	for _, lib := range c.ExtraLibs {
		if lib == "" {
			return &InputError{ReleaseName: c.Name, Message: "extra platform library with empty identifier"}
		}
		if lib == c.Main.Name {
			return &InputError{ReleaseName: c.Name, Message: fmt.Sprintf("extra platform library %q is the main component", lib)}
		}
	}
	return nil
}

// Table is the versioned dependency table of one release build: every
// component in the closure, keyed by identifier, versions resolved.
type Table map[string]*component.Component

// Names returns the table's identifiers in sorted order.
func (t Table) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Versions flattens the table to the identifier → version mapping the
// release manifest records.
func (t Table) Versions() map[string]string {
	out := make(map[string]string, len(t))
	for name, c := range t {
		out[name] = c.Version
	}
	return out
}

// AppEntry is one ordered entry of a release application list.
type AppEntry struct {
	// Name is the component identifier.
	Name string `json:"name"`

	// Version is the resolved version string.
	Version string `json:"version"`

	// Origin records how the entry earned its place (output.Origin*).
	Origin string `json:"origin"`
}

// Ref returns the canonical name-version pair, e.g. "web-1.2.0".
func (e AppEntry) Ref() string {
	return fmt.Sprintf("%s-%s", e.Name, e.Version)
}

// AppList is the ordered application inventory of a release: foundational
// libraries first, then platform libraries, then remaining dependencies,
// with the main component last.
type AppList []AppEntry

// Names returns the entry identifiers in list order.
func (l AppList) Names() []string {
	out := make([]string, len(l))
	for i, e := range l {
		out[i] = e.Name
	}
	return out
}

// Contains reports whether the list has an entry for name.
func (l AppList) Contains(name string) bool {
	for _, e := range l {
		if e.Name == name {
			return true
		}
	}
	return false
}
