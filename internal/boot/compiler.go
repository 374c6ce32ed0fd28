// Package boot defines the boot-sequence compiler a release build delegates
// to, and provides the standard script compiler implementation.
//
// The release engine treats the compiler as a black box: it hands over the
// ordered application list and search paths, and receives a result that is
// success, success with warnings, or failure.
package boot

import "strings"

// App is one ordered entry of the application list handed to the compiler.
type App struct {
	Name    string
	Version string
}

// Request carries the inputs for one boot-sequence compilation.
type Request struct {
	// ReleaseName and ReleaseVersion identify the release being compiled.
	ReleaseName    string
	ReleaseVersion string

	// RuntimeVersion is the platform runtime the release targets.
	RuntimeVersion string

	// Apps is the ordered application list: foundational libraries first,
	// the main application last.
	Apps []App

	// SearchPaths are the module artifact directories, one per
	// contributing component.
	SearchPaths []string

	// OutDir is where the script and boot artifacts are written.
	OutDir string

	// Silent suppresses informational logging.
	Silent bool

	// SkipModuleCheck disables verification that every search path exists.
	SkipModuleCheck bool
}

// Result is the discriminated outcome of a compilation.
//
// Err nil and no warnings is plain success; Err nil with warnings is success
// the caller should surface; Err non-nil is failure.
type Result struct {
	// Warnings are non-fatal findings, in the order they were detected.
	Warnings []string

	// Err is the failure reason, nil on success.
	Err error
}

// OK reports whether the compilation succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// Summary renders the warnings as a single line for logging.
func (r Result) Summary() string {
	return strings.Join(r.Warnings, "; ")
}

// Compiler generates the boot script and binary boot artifact for a release.
type Compiler interface {
	// Check verifies the compiler can run in this environment. Release
	// builds call it once, before any other work.
	Check() error

	// Compile generates <ReleaseName>.script and <ReleaseName>.boot in
	// the request's OutDir.
	Compile(req Request) Result
}
