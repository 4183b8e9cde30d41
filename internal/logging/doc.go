// Package logging provides structured logging for ocfg built on log/slog.
//
// The default text handler is TTY-aware: it colorizes output when stderr is
// a terminal (respecting NO_COLOR and TERM=dumb) and masks attribute values
// that look like credentials. A JSON handler is available for machine
// consumption, and MultiHandler fans records out to several destinations,
// which the CLI uses to mirror logs into a file.
package logging
