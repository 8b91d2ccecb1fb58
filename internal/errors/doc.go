// Package errors provides error handling conventions for dotconf.
//
// This package defines sentinel errors for the configuration engine's
// failure taxonomy, an ExitError type for CLI exit code handling, and exit
// code constants following standard Unix conventions.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific error conditions
// using [Is]:
//
//	if errors.Is(err, dcerrors.ErrPathNotFound) {
//	    // handle unknown path
//	}
//
// Two conditions are intentionally NOT errors anywhere in the engine:
// reading a backing store that does not exist yet (the first-run case), and
// deleting an entry that is already absent (idempotent delete). Both are
// silent no-ops.
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion for CLI applications. It supports error unwrapping via
// [errors.Unwrap] and [errors.As]:
//
//	var exitErr *dcerrors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
