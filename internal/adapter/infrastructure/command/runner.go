// Package command provides a process execution adapter implementation.
package command

import (
	"context"
	"fmt"
	"os/exec"

	"hampter-link/internal/port"
)

// RunnerAdapter is an adapter that implements the CommandRunner port using
// the standard os/exec package.
type RunnerAdapter struct{}

// Ensure RunnerAdapter implements the CommandRunner port
var _ port.CommandRunner = (*RunnerAdapter)(nil)

// NewRunnerAdapter creates a new command runner adapter.
func NewRunnerAdapter() *RunnerAdapter {
	return &RunnerAdapter{}
}

// Output runs the named command and returns its combined output. On a
// non-zero exit the output produced so far is returned alongside an error
// wrapping the *exec.ExitError, so callers can both print the output and
// propagate the exit code.
func (r *RunnerAdapter) Output(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		return string(out), fmt.Errorf("%s failed: %w", name, err)
	}
	return string(out), nil
}
