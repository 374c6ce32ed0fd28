// Package platform resolves identifiers against a Loom platform
// installation: the ambient set of installed libraries a release build may
// pull in beyond the components it was handed directly.
package platform

// Library describes one installed platform library.
type Library struct {
	// Name is the library identifier.
	Name string

	// Version is the installed version string.
	Version string

	// Dir is the versioned library directory, e.g. <root>/lib/httpd-2.3.0.
	Dir string
}

// Index is the injectable capability for querying the ambient platform
// installation. Production code uses DirIndex; tests substitute a MapIndex.
type Index interface {
	// Resolve returns the installed library for an identifier. Unknown
	// identifiers return false.
	Resolve(name string) (Library, bool)

	// RuntimeVersion returns the platform runtime version string.
	RuntimeVersion() (string, error)
}

// MapIndex is an in-memory Index backed by a map, for synthetic
// installations and tests.
type MapIndex struct {
	// Libraries maps identifiers to installed libraries.
	Libraries map[string]Library

	// Runtime is the runtime version string to report.
	Runtime string
}

// Resolve implements Index.
func (m *MapIndex) Resolve(name string) (Library, bool) {
	lib, ok := m.Libraries[name]
	return lib, ok
}

// RuntimeVersion implements Index.
func (m *MapIndex) RuntimeVersion() (string, error) {
	return m.Runtime, nil
}
