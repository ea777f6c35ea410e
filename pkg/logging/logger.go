package logging

import (
	"context"
)

// Level represents log severity
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// Fields represents structured log fields
type Fields map[string]any

// Logger is the structured logger handed to the comparator and the CLI.
// Every call carries the caller's context.
type Logger interface {
	Debug(ctx context.Context, msg string, fields Fields)
	Info(ctx context.Context, msg string, fields Fields)
	Warn(ctx context.Context, msg string, fields Fields)
	Error(ctx context.Context, msg string, err error, fields Fields)

	// WithFields returns a logger that adds fields to every entry
	WithFields(fields Fields) Logger

	// Close flushes and closes the logger
	Close() error
}

var (
	_ Logger = (*NullLogger)(nil)
	_ Logger = (*FileLogger)(nil)
)

// NullLogger discards everything; it is used when logging is disabled
type NullLogger struct{}

// NewNullLogger creates a new null logger
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (l *NullLogger) Debug(context.Context, string, Fields)        {}
func (l *NullLogger) Info(context.Context, string, Fields)         {}
func (l *NullLogger) Warn(context.Context, string, Fields)         {}
func (l *NullLogger) Error(context.Context, string, error, Fields) {}

func (l *NullLogger) WithFields(Fields) Logger {
	return l
}

func (l *NullLogger) Close() error {
	return nil
}
