// Package exitcode maps errors to process exit codes.
package exitcode

import (
	"errors"
	"os/exec"
)

// FromError returns the exit code a command should terminate with for the
// given error. An *exec.ExitError anywhere in the chain propagates the
// underlying command's exit code verbatim; any other error maps to 1.
func FromError(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 1
}
