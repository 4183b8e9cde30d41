// Package errors provides error handling conventions for the ocfg CLI.
//
// This package defines sentinel errors for the failure taxonomy shared by
// the import and backup services, an ExitError type for CLI exit code
// handling, and exit code constants following standard Unix conventions.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific error conditions
// using [errors.Is]:
//
//	if errors.Is(err, ocfgerrors.ErrArchiveMissing) {
//	    // archive was deleted between list and restore
//	}
//
// The taxonomy splits into two propagation styles: scan and load paths
// recover locally and report ErrSourceMissing / ErrUnreadable as status
// values, while backup, restore and delete surface their failures so the
// caller can inform the user before anything destructive happens.
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion. It supports unwrapping via [errors.Unwrap] and [errors.As]:
//
//	var exitErr *ocfgerrors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
