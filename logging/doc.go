// Package logging provides structured logging using Go's standard library
// log/slog, with configurable level and output format (JSON or text).
package logging
