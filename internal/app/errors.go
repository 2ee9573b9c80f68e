package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrAlreadyRunning indicates the application is already running.
	ErrAlreadyRunning = errors.New("application already running")

	// ErrNoBackend indicates Run was called without a backend.
	ErrNoBackend = errors.New("no backend")

	// ErrNoFilename indicates a save without a target path.
	ErrNoFilename = errors.New("no filename specified")

	// ErrUnknownCommand indicates a command line that matches no command.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrUsage indicates a command with malformed arguments.
	ErrUsage = errors.New("usage")

	// ErrReadOnly indicates a write while the help text is shown.
	ErrReadOnly = errors.New("help is read-only")

	// ErrNoRewriter indicates a prompt command without a configured model.
	ErrNoRewriter = errors.New("no rewrite model configured")
)

// OperationError represents an error that occurred during a specific operation.
type OperationError struct {
	Op     string // Operation name (e.g., "save", "open")
	Target string // Target of the operation (e.g., file path)
	Err    error  // Underlying error
}

// NewOperationError creates a new OperationError.
func NewOperationError(op, target string, err error) *OperationError {
	return &OperationError{Op: op, Target: target, Err: err}
}

func (e *OperationError) Error() string {
	if e.Target != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Target, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// usage returns an ErrUsage error showing the expected form.
func usage(form string) error {
	return fmt.Errorf("%w: %s", ErrUsage, form)
}
