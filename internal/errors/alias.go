package errors

import "github.com/cockroachdb/errors"

// Re-exports of cockroachdb/errors helpers so callers can import a single
// errors package for both the sentinels above and wrapping.
var (
	New       = errors.New
	Newf      = errors.Newf
	Wrap      = errors.Wrap
	Wrapf     = errors.Wrapf
	Is        = errors.Is
	As        = errors.As
	Unwrap    = errors.Unwrap
	UnwrapAll = errors.UnwrapAll
	Join      = errors.Join
)
