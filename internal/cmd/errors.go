package cmd

import (
	"errors"
	"fmt"

	"github.com/loomrt/relkit/internal/release"
)

// Sentinel errors for known conditions.
var (
	// ErrNotFound indicates a file, release, or bundle was not found.
	ErrNotFound = errors.New("not found")

	// ErrInvalidBundle indicates a bundle failed verification.
	ErrInvalidBundle = errors.New("invalid bundle")
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int

	// Printed marks that the command layer already reported the error,
	// so main must not print it again.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates an ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var (
		inputErr    *release.InputError
		envErr      *release.EnvError
		bootErr     *release.BootError
		assemblyErr *release.AssemblyError
	)
	switch {
	case errors.As(err, &inputErr):
		return ExitInputError
	case errors.As(err, &envErr):
		return ExitEnvError
	case errors.As(err, &bootErr):
		return ExitBootError
	case errors.As(err, &assemblyErr):
		return ExitAssemblyError
	case errors.Is(err, ErrInvalidBundle):
		return ExitAssemblyError
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	default:
		return ExitGeneralError
	}
}

// WrapNotFound wraps an error with ErrNotFound.
func WrapNotFound(err error, msg string) error {
	return fmt.Errorf("%s: %w: %w", msg, ErrNotFound, err)
}

// exitify maps any error to an ExitError carrying the appropriate code, so
// main reports a meaningful process exit.
func exitify(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	return NewExitError(err, ExitCodeFromError(err))
}
