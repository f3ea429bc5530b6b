// Package logger configures the process-wide slog JSON logger and carries
// loggers through request contexts.
package logger
