package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates a bad project type, name, or pattern argument.
	ErrValidation = errors.New("validation error")

	// ErrConflict indicates the target directory already exists.
	ErrConflict = errors.New("target conflict")

	// ErrCancelled indicates the user aborted an interactive prompt.
	ErrCancelled = errors.New("cancelled")

	// ErrGeneration indicates an I/O failure while writing the project tree.
	ErrGeneration = errors.New("generation error")

	// ErrToolUnavailable indicates an external tool is missing or exited non-zero.
	ErrToolUnavailable = errors.New("tool unavailable")

	// ErrNotFound indicates a file or config was not found.
	ErrNotFound = errors.New("not found")
)
