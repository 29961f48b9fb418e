// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured
// text or JSON logging with configurable log levels, and carries loggers
// through context.Context so storage code logs with the caller's attributes.
package logger
