package cli

import (
	"errors"
	"fmt"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing arguments, unparsable flag values.
	ExitUsage = 2

	// ExitNotFound indicates a requested item was not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed stored data.
	// Use for: A board that fails its invariants on load.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Blank item text, empty ids, out of range positions.
	ExitValidation = 5
)

// ExitCodeError carries the process exit code for a failed command.
// Reported is set once the OutputFormatter has printed the error.
type ExitCodeError struct {
	Code     int
	Err      error
	Reported bool
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("exit %d: %v", e.Code, e.Err)
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// WithExitCode wraps err so that ExitCode reports code
func WithExitCode(code int, err error) error {
	return &ExitCodeError{Code: code, Err: err}
}

// UsageError tags err as a command usage mistake
func UsageError(err error) error {
	return WithExitCode(ExitUsage, err)
}

// Reported reports whether err was already printed to the user
func Reported(err error) bool {
	var exitErr *ExitCodeError
	return errors.As(err, &exitErr) && exitErr.Reported
}

// ExitCode returns the process exit code for err
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitError
}
