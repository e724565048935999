package cli

import "fmt"

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: file errors or any unexpected failure.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing arguments, invalid flag combinations.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: a replay step referencing an alias that was never bound.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Replay scripts that are not valid YAML.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Unknown replay steps or missing step fields.
	ExitValidation = 5
)

// ExitCodeError pairs an error with the process exit code it should produce.
type ExitCodeError struct {
	Code int
	Err  error
}

// WithExitCode wraps err so main exits with code.
func WithExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &ExitCodeError{Code: code, Err: err}
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("%v (exit %d)", e.Err, e.Code)
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}
