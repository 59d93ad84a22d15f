// Package logging provides structured logging helpers for resolution
// tracing, built on Go's standard library log/slog.
package logging
