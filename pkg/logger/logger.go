// Package logger provides structured logging for secreport.
package logger

import (
	"log/slog"
	"os"
)

// Logger is the logging interface used throughout secreport. It is
// satisfied by the slog-backed implementation below and by MockLogger
// in tests.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
}

// slogLogger wraps *slog.Logger to satisfy the Logger interface.
type slogLogger struct {
	logger *slog.Logger
}

// Debug logs a debug message.
func (s *slogLogger) Debug(msg string, args ...any) { s.logger.Debug(msg, args...) }

// Info logs an info message.
func (s *slogLogger) Info(msg string, args ...any) { s.logger.Info(msg, args...) }

// Warn logs a warning message.
func (s *slogLogger) Warn(msg string, args ...any) { s.logger.Warn(msg, args...) }

// Error logs an error message.
func (s *slogLogger) Error(msg string, args ...any) { s.logger.Error(msg, args...) }

// With returns a new logger with additional attributes.
func (s *slogLogger) With(args ...any) Logger {
	return &slogLogger{logger: s.logger.With(args...)}
}

var globalLogger Logger = &slogLogger{
	logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})),
}

// Setup configures the global logger.
func Setup(debug bool, format string) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default:
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	globalLogger = &slogLogger{logger: slog.New(handler)}
}

// GetGlobalLogger returns the global logger instance.
func GetGlobalLogger() Logger {
	return globalLogger
}

// SetGlobalLogger replaces the global logger. Intended for tests.
func SetGlobalLogger(l Logger) {
	globalLogger = l
}

// Debug logs a debug message on the global logger.
func Debug(msg string, args ...any) {
	globalLogger.Debug(msg, args...)
}

// Info logs an info message on the global logger.
func Info(msg string, args ...any) {
	globalLogger.Info(msg, args...)
}

// Warn logs a warning message on the global logger.
func Warn(msg string, args ...any) {
	globalLogger.Warn(msg, args...)
}

// Error logs an error message on the global logger.
func Error(msg string, args ...any) {
	globalLogger.Error(msg, args...)
}

// WithTool returns a logger with tool context.
func WithTool(tool string) Logger {
	return globalLogger.With("tool", tool)
}
