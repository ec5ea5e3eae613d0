package logging

import (
	"bytes"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// LogLevel defines the severity of the message
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

// Logger interface defines logging operations
//
//go:generate mockery --name=Logger --output=./mocks
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
	SetOutput(w io.Writer)
	SetLevel(level LogLevel)
}

// DefaultLogger provides the standard implementation, backed by zerolog.
type DefaultLogger struct {
	zlog zerolog.Logger
}

// NewDefaultLogger creates a new logger writing structured output to stderr
func NewDefaultLogger() *DefaultLogger {
	return newLogger(os.Stderr, INFO)
}

// NewConsoleLogger creates a logger with human-readable console output,
// intended for interactive CLI use.
func NewConsoleLogger() *DefaultLogger {
	writer := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return newLogger(writer, INFO)
}

// NewMockLogger returns a convenient logger for testing that writes to a buffer
func NewMockLogger() *DefaultLogger {
	return newLogger(bytes.NewBufferString(""), INFO)
}

func newLogger(w io.Writer, level LogLevel) *DefaultLogger {
	return &DefaultLogger{
		zlog: zerolog.New(w).With().Timestamp().Logger().Level(toZerologLevel(level)),
	}
}

// Debug logs debug messages
func (l *DefaultLogger) Debug(format string, args ...any) {
	l.zlog.Debug().Msgf(format, args...)
}

// Info logs informational messages
func (l *DefaultLogger) Info(format string, args ...any) {
	l.zlog.Info().Msgf(format, args...)
}

// Warn logs warning messages
func (l *DefaultLogger) Warn(format string, args ...any) {
	l.zlog.Warn().Msgf(format, args...)
}

// Error logs error messages
func (l *DefaultLogger) Error(format string, args ...any) {
	l.zlog.Error().Msgf(format, args...)
}

// SetOutput sets the output destination for the logger
func (l *DefaultLogger) SetOutput(w io.Writer) {
	l.zlog = l.zlog.Output(w)
}

// SetLevel sets the logging level
func (l *DefaultLogger) SetLevel(level LogLevel) {
	l.zlog = l.zlog.Level(toZerologLevel(level))
}

// toZerologLevel maps a LogLevel to the zerolog equivalent
func toZerologLevel(level LogLevel) zerolog.Level {
	switch level {
	case DEBUG:
		return zerolog.DebugLevel
	case WARN:
		return zerolog.WarnLevel
	case ERROR:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// StringToLogLevel converts a string representation to a LogLevel
func StringToLogLevel(level string) LogLevel {
	switch level {
	case "debug":
		return DEBUG
	case "info":
		return INFO
	case "warn":
		return WARN
	case "error":
		return ERROR
	default:
		return INFO
	}
}
