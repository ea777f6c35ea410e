package logging

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// Format represents the log output format
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// FileLoggerConfig holds configuration for file logging
type FileLoggerConfig struct {
	// Path is the log file path
	Path string
	// Format is the output format (json or text)
	Format Format
	// Level is the minimum log level
	Level Level
	// MaxSize is the maximum size in bytes before rotation (0 = no rotation)
	MaxSize int64
	// MaxBackups is the maximum number of backup files to keep
	MaxBackups int
}

// sink is the destination shared by a logger and all loggers derived from it
type sink struct {
	mu          sync.Mutex
	config      FileLoggerConfig
	file        *os.File // nil for stream loggers
	writer      io.Writer
	currentSize int64
}

// FileLogger implements Logger with line-oriented JSON or text output
type FileLogger struct {
	sink   *sink
	fields Fields
}

// NewFileLogger creates a logger appending to a file, rotating it by size
func NewFileLogger(config FileLoggerConfig) (*FileLogger, error) {
	if err := os.MkdirAll(filepath.Dir(config.Path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(config.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to stat log file: %w", err)
	}

	return &FileLogger{
		sink: &sink{
			config:      config,
			file:        file,
			writer:      file,
			currentSize: info.Size(),
		},
	}, nil
}

// NewStreamLogger creates a logger writing to w (typically os.Stderr).
// Stream loggers never rotate and do not close w.
func NewStreamLogger(w io.Writer, format Format, level Level) *FileLogger {
	return &FileLogger{
		sink: &sink{
			config: FileLoggerConfig{Format: format, Level: level},
			writer: w,
		},
	}
}

// Debug logs a debug message
func (l *FileLogger) Debug(ctx context.Context, msg string, fields Fields) {
	l.log(DebugLevel, msg, nil, fields)
}

// Info logs an info message
func (l *FileLogger) Info(ctx context.Context, msg string, fields Fields) {
	l.log(InfoLevel, msg, nil, fields)
}

// Warn logs a warning message
func (l *FileLogger) Warn(ctx context.Context, msg string, fields Fields) {
	l.log(WarnLevel, msg, nil, fields)
}

// Error logs an error message
func (l *FileLogger) Error(ctx context.Context, msg string, err error, fields Fields) {
	l.log(ErrorLevel, msg, err, fields)
}

// WithFields returns a logger with additional fields sharing the same output
func (l *FileLogger) WithFields(fields Fields) Logger {
	return &FileLogger{
		sink:   l.sink,
		fields: mergeFields(l.fields, fields),
	}
}

// Close flushes and closes the log file
func (l *FileLogger) Close() error {
	s := l.sink
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file != nil {
		err := s.file.Close()
		s.file = nil
		s.writer = io.Discard
		return err
	}
	return nil
}

func (l *FileLogger) log(level Level, msg string, err error, fields Fields) {
	s := l.sink
	if level < s.config.Level {
		return
	}

	var line []byte
	if s.config.Format == FormatJSON {
		var jsonErr error
		line, jsonErr = formatJSON(level, msg, err, mergeFields(l.fields, fields))
		if jsonErr != nil {
			return
		}
	} else {
		line = formatText(level, msg, err, mergeFields(l.fields, fields))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file != nil && s.config.MaxSize > 0 && s.currentSize >= s.config.MaxSize {
		s.rotate()
	}

	n, _ := s.writer.Write(line)
	s.currentSize += int64(n)
}

func mergeFields(base, extra Fields) Fields {
	merged := make(Fields, len(base)+len(extra))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}

func formatJSON(level Level, msg string, err error, fields Fields) ([]byte, error) {
	entry := map[string]interface{}{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"level":     levelString(level),
		"message":   msg,
	}

	if err != nil {
		entry["error"] = err.Error()
	}

	for k, v := range fields {
		entry[k] = v
	}

	data, jsonErr := json.Marshal(entry)
	if jsonErr != nil {
		return nil, jsonErr
	}

	return append(data, '\n'), nil
}

// formatText renders "timestamp [LEVEL] message key=value ..." with sorted keys
func formatText(level Level, msg string, err error, fields Fields) []byte {
	var b strings.Builder
	b.WriteString(time.Now().UTC().Format("2006-01-02T15:04:05.000Z"))
	fmt.Fprintf(&b, " [%s] %s", levelString(level), msg)

	if err != nil {
		fmt.Fprintf(&b, " error=%q", err.Error())
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, fields[k])
	}

	b.WriteByte('\n')
	return []byte(b.String())
}

// rotate rotates the log file (must be called with lock held)
func (s *sink) rotate() {
	s.file.Close()

	for i := s.config.MaxBackups - 1; i >= 1; i-- {
		os.Rename(fmt.Sprintf("%s.%d", s.config.Path, i), fmt.Sprintf("%s.%d", s.config.Path, i+1))
	}
	os.Rename(s.config.Path, s.config.Path+".1")

	if s.config.MaxBackups > 0 {
		os.Remove(fmt.Sprintf("%s.%d", s.config.Path, s.config.MaxBackups+1))
	}

	file, err := os.OpenFile(s.config.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		s.file = nil
		s.writer = io.Discard
		return
	}

	s.file = file
	s.writer = file
	s.currentSize = 0
}

// levelString returns the string representation of a log level
func levelString(level Level) string {
	switch level {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a log level string
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return DebugLevel
	case "info":
		return InfoLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}
