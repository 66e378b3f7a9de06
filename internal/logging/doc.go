// Package logging assembles the slog loggers used by the nflvis CLI and its
// internal packages.
//
// It owns the console and JSON handlers, level parsing, and output routing
// (stderr plus an optional log file), and provides attribute helpers,
// component loggers, correlation ids carried on a context, and a no-op
// logger for tests and wiring code that cannot fail.
package logging
