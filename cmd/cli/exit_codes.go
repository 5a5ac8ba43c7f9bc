package cli

import (
	"errors"
	"fmt"
)

// Process exit codes reported by the lunara binary.
const (
	ExitCodeSuccess      = 0
	ExitCodeError        = 1
	ExitCodeUsage        = 2
	ExitCodeChecksFailed = 10
)

const (
	unknownCommandTemplateConstant = "unknown command %q for %q"
)

// ExitError carries the process exit code a command failure maps to.
type ExitError struct {
	Code  int
	Cause error
}

// Error returns the message of the underlying failure.
func (exitError ExitError) Error() string {
	if exitError.Cause == nil {
		return fmt.Sprintf("exit status %d", exitError.Code)
	}
	return exitError.Cause.Error()
}

// Unwrap exposes the underlying failure.
func (exitError ExitError) Unwrap() error {
	return exitError.Cause
}

// ExitCodeFor maps an execution error to a process exit code. Errors without an ExitError map to ExitCodeError.
func ExitCodeFor(executionError error) int {
	if executionError == nil {
		return ExitCodeSuccess
	}
	var exitError ExitError
	if errors.As(executionError, &exitError) {
		return exitError.Code
	}
	return ExitCodeError
}

func usageError(cause error) error {
	return ExitError{Code: ExitCodeUsage, Cause: cause}
}
