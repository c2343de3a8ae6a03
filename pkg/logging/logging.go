// Package logging provides the structured logger used across the SDK. It
// wraps zerolog with a small context-aware interface so packages never
// depend on the logging backend directly.
package logging

import (
	"context"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/Ingenimax/orgcontext-go/pkg/multitenancy"
)

// Logger is the logging interface used throughout the SDK. Fields may be
// nil. Implementations pull request-scoped identifiers (org ID) from the
// context when present.
type Logger interface {
	Debug(ctx context.Context, msg string, fields map[string]interface{})
	Info(ctx context.Context, msg string, fields map[string]interface{})
	Warn(ctx context.Context, msg string, fields map[string]interface{})
	Error(ctx context.Context, msg string, fields map[string]interface{})
}

// jsonEnabled forces JSON output when set, overriding environment settings.
var jsonEnabled atomic.Bool

// SetZeroLogJsonEnabled forces JSON log output for loggers created after
// the call, regardless of LOG_FORMAT / LOG_JSON environment variables.
func SetZeroLogJsonEnabled() {
	jsonEnabled.Store(true)
}

// zerologLogger implements Logger on top of zerolog.
type zerologLogger struct {
	logger zerolog.Logger
}

// Option configures a logger created by New.
type Option func(*zerolog.Logger)

// WithLevel sets the minimum level emitted by the logger.
func WithLevel(level zerolog.Level) Option {
	return func(l *zerolog.Logger) {
		*l = l.Level(level)
	}
}

// New creates a logger. Output is human-readable console format by default
// and JSON when LOG_FORMAT=json, LOG_JSON is truthy, or
// SetZeroLogJsonEnabled has been called.
func New(options ...Option) Logger {
	var logger zerolog.Logger
	if useJSON() {
		logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
		logger = zerolog.New(writer).With().Timestamp().Logger()
	}

	logger = logger.Level(levelFromEnv())

	for _, option := range options {
		option(&logger)
	}

	return &zerologLogger{logger: logger}
}

func useJSON() bool {
	if jsonEnabled.Load() {
		return true
	}
	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "json") {
		return true
	}
	switch strings.ToLower(os.Getenv("LOG_JSON")) {
	case "true", "1", "yes":
		return true
	}
	return false
}

func levelFromEnv() zerolog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Debug logs a message at debug level.
func (l *zerologLogger) Debug(ctx context.Context, msg string, fields map[string]interface{}) {
	l.emit(ctx, l.logger.Debug(), msg, fields)
}

// Info logs a message at info level.
func (l *zerologLogger) Info(ctx context.Context, msg string, fields map[string]interface{}) {
	l.emit(ctx, l.logger.Info(), msg, fields)
}

// Warn logs a message at warn level.
func (l *zerologLogger) Warn(ctx context.Context, msg string, fields map[string]interface{}) {
	l.emit(ctx, l.logger.Warn(), msg, fields)
}

// Error logs a message at error level.
func (l *zerologLogger) Error(ctx context.Context, msg string, fields map[string]interface{}) {
	l.emit(ctx, l.logger.Error(), msg, fields)
}

func (l *zerologLogger) emit(ctx context.Context, event *zerolog.Event, msg string, fields map[string]interface{}) {
	if ctx != nil {
		if orgID, err := multitenancy.GetOrgID(ctx); err == nil && orgID != "" {
			event = event.Str("org_id", orgID)
		}
	}
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(msg)
}
