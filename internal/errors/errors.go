package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Exit codes for CLI applications.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitUser indicates a user-related error (unknown path, invalid input, etc.).
	ExitUser = 1

	// ExitSystem indicates a system-related error (I/O, permissions, etc.).
	ExitSystem = 2
)

// Sentinel errors for the configuration engine.
var (
	// ErrPathNotFound indicates a get resolved to a missing key, an index
	// out of bounds, or a segment kind that does not match the node it was
	// applied to.
	ErrPathNotFound = errors.New("path not found")

	// ErrIndexOutOfRange indicates a set addressed a sequence index at or
	// beyond the sequence's current length. Sequences are never grown
	// implicitly.
	ErrIndexOutOfRange = errors.New("sequence index out of range")

	// ErrDecode indicates a backing store held malformed content.
	ErrDecode = errors.New("malformed config document")

	// ErrPathConflict indicates a component of a store locator that should
	// be a directory is a regular file.
	ErrPathConflict = errors.New("store path conflicts with existing file")

	// ErrWrite indicates a failure creating directories for, opening, or
	// writing a backing store.
	ErrWrite = errors.New("writing config store")

	// ErrUnbindableStream indicates writeback was requested on an open
	// stream that has no locator to reopen later.
	ErrUnbindableStream = errors.New("cannot bind writeback to unnamed stream")
)

// Wrapping helpers re-exported from cockroachdb/errors so most callers need a
// single errors import.

// New creates an error with a simple message.
func New(msg string) error { return errors.New(msg) }

// Newf creates an error with a formatted message.
func Newf(format string, args ...any) error { return errors.Newf(format, args...) }

// Wrap annotates err with a message, preserving the chain for errors.Is.
func Wrap(err error, msg string) error { return errors.Wrap(err, msg) }

// Wrapf annotates err with a formatted message.
func Wrapf(err error, format string, args ...any) error {
	return errors.Wrapf(err, format, args...)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return errors.Is(err, target) }

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool { return errors.As(err, target) }

// ExitError wraps an error with an exit code and optional suggestion for CLI
// applications. It implements the error interface and supports unwrapping via
// errors.Unwrap.
type ExitError struct {
	// Err is the underlying error that caused the exit.
	Err error

	// Code is the exit code to return to the operating system.
	Code int

	// Suggestion is an optional actionable suggestion for the user.
	Suggestion string
}

// NewExitError creates an ExitError with the given underlying error and exit code.
// If err is nil, the returned ExitError will have a nil Err field.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{
		Err:  err,
		Code: code,
	}
}

// NewUserError creates an ExitError with ExitUser code and a suggestion.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: suggestion,
	}
}

// NewSystemError creates an ExitError with ExitSystem code and a suggestion.
func NewSystemError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitSystem,
		Suggestion: suggestion,
	}
}

// Error returns the error message from the underlying error.
// If the underlying error is nil, it returns a generic message with the exit code.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error, enabling errors.Is and errors.As
// to examine the error chain.
func (e *ExitError) Unwrap() error {
	return e.Err
}
