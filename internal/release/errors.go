package release

import (
	"fmt"
	"strings"
)

// BuildError is a base interface for release build failures.
// All build-specific errors implement this interface.
type BuildError interface {
	error

	// Release returns the release name the failure belongs to.
	Release() string
}

// InputError indicates malformed top-level input, rejected before any
// resolution work begins.
type InputError struct {
	// ReleaseName is the release being built, when known.
	ReleaseName string

	// Message describes what is malformed.
	Message string

	// Cause is the underlying validation error, if any.
	Cause error
}

func (e *InputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid release input: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid release input: %s", e.Message)
}

func (e *InputError) Release() string {
	return e.ReleaseName
}

func (e *InputError) Unwrap() error {
	return e.Cause
}

// EnvError indicates the execution environment cannot support a release
// build: the boot compiler's platform support is unavailable. This is
// probed once, before any other work.
type EnvError struct {
	// ReleaseName is the release being built.
	ReleaseName string

	// Cause is the probe failure.
	Cause error
}

func (e *EnvError) Error() string {
	return fmt.Sprintf("release %q: build environment unavailable: %v", e.ReleaseName, e.Cause)
}

func (e *EnvError) Release() string {
	return e.ReleaseName
}

func (e *EnvError) Unwrap() error {
	return e.Cause
}

// BootError indicates the boot-sequence compiler reported a structured
// failure. The whole build is aborted; no partial artifacts are valid.
type BootError struct {
	// ReleaseName is the release being built.
	ReleaseName string

	// Cause is the compiler's failure payload.
	Cause error
}

func (e *BootError) Error() string {
	return fmt.Sprintf("release %q: boot sequence compilation failed: %v", e.ReleaseName, e.Cause)
}

func (e *BootError) Release() string {
	return e.ReleaseName
}

func (e *BootError) Unwrap() error {
	return e.Cause
}

// AssemblyError indicates release artifacts could not be materialized: a
// write failed, or a declared artifact is missing on disk after the boot
// compiler reported success.
type AssemblyError struct {
	// ReleaseName is the release being built.
	ReleaseName string

	// Message describes which step failed.
	Message string

	// Missing lists declared artifact paths absent on disk, when
	// post-compilation verification is what failed.
	Missing []string

	// Cause is the underlying I/O or encoding error, if any.
	Cause error
}

func (e *AssemblyError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("release %q: %s: %s", e.ReleaseName, e.Message, strings.Join(e.Missing, ", "))
	}
	if e.Cause != nil {
		return fmt.Sprintf("release %q: %s: %v", e.ReleaseName, e.Message, e.Cause)
	}
	return fmt.Sprintf("release %q: %s", e.ReleaseName, e.Message)
}

func (e *AssemblyError) Release() string {
	return e.ReleaseName
}

func (e *AssemblyError) Unwrap() error {
	return e.Cause
}
