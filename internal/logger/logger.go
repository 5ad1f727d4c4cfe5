// Package logger wraps zerolog behind a small structured-logging facade.
// Handlers and services log through it with plain field maps; child loggers
// carry request and component context.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is a leveled structured logger. Build one with New; the zero value
// discards nothing and is not meant to be used directly.
type Logger struct {
	z zerolog.Logger
}

// New creates a Logger for the given environment. Development gets colored
// console output at debug level, test discards all output, and any other
// environment gets JSON at info level.
func New(env string) *Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	var output io.Writer = os.Stdout
	switch env {
	case "development":
		output = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
			NoColor:    false,
		}
	case "test":
		output = io.Discard
	}

	z := zerolog.New(output).
		Level(levelFor(env)).
		With().
		Timestamp().
		Logger()

	return &Logger{z: z}
}

func levelFor(env string) zerolog.Level {
	if env == "development" {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

// Debug logs a debug message with optional fields.
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	emit(l.z.Debug(), msg, fields)
}

// Info logs an info message with optional fields.
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	emit(l.z.Info(), msg, fields)
}

// Warn logs a warning message with optional fields.
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	emit(l.z.Warn(), msg, fields)
}

// Error logs an error with a message and optional fields.
func (l *Logger) Error(msg string, err error, fields map[string]interface{}) {
	emit(l.z.Error().Err(err), msg, fields)
}

// Fatal logs an error and exits the application.
func (l *Logger) Fatal(msg string, err error, fields map[string]interface{}) {
	emit(l.z.Fatal().Err(err), msg, fields)
}

func emit(event *zerolog.Event, msg string, fields map[string]interface{}) {
	for key, value := range fields {
		event = event.Interface(key, value)
	}
	event.Msg(msg)
}

// WithRequestID creates a child logger that stamps every entry with the
// request ID.
func (l *Logger) WithRequestID(requestID string) *Logger {
	return &Logger{z: l.z.With().Str("request_id", requestID).Logger()}
}

// WithComponent creates a child logger that stamps every entry with a
// component name, e.g. "simulation" or "earthdata".
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{z: l.z.With().Str("component", component).Logger()}
}
