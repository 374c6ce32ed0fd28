// Package cmd provides the relkit command implementations.
package cmd

// Exit codes, one per failure family of a release or bundle build.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitInputError indicates malformed top-level input, rejected
	// before any resolution work.
	ExitInputError = 2

	// ExitEnvError indicates the build environment is unavailable: no
	// platform installation or boot compiler support.
	ExitEnvError = 3

	// ExitBootError indicates the boot-sequence compiler reported a
	// failure.
	ExitBootError = 4

	// ExitAssemblyError indicates artifacts or the bundle tree could not
	// be materialized, or a bundle failed verification.
	ExitAssemblyError = 5

	// ExitNotFound indicates a named file, release, or bundle was not
	// found.
	ExitNotFound = 6
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitInputError:
		return "Invalid Input"
	case ExitEnvError:
		return "Environment Unavailable"
	case ExitBootError:
		return "Boot Compilation Failed"
	case ExitAssemblyError:
		return "Assembly Error"
	case ExitNotFound:
		return "Not Found"
	default:
		return "Unknown"
	}
}
