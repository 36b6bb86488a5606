package logger

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Context keys set by the API middleware. Gin copies c.Set values into
// c.Value lookups, so a *gin.Context works as ctx here.
const (
	RequestIDKey = "request_id"
	ViewerKey    = "viewer"
)

// Logger wraps logrus for structured logging with context support
type Logger struct {
	*logrus.Entry
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// WithContext creates a logger carrying the request id and viewer found in ctx
func WithContext(ctx context.Context) *Logger {
	logger := New()
	if ctx == nil {
		return logger
	}

	if id, ok := ctx.Value(RequestIDKey).(string); ok && id != "" {
		logger.Entry = logger.Entry.WithField(RequestIDKey, id)
	}

	if viewer, ok := ctx.Value(ViewerKey).(string); ok && viewer != "" {
		logger.Entry = logger.Entry.WithField("user", viewer)
	} else {
		logger.Entry = logger.Entry.WithField("user", "anonymous")
	}

	return logger
}

// ContextWith returns a copy of ctx carrying value under key, for code
// that only passes the request context down
func ContextWith(ctx context.Context, key, value string) context.Context {
	return context.WithValue(ctx, key, value) //nolint:staticcheck // same string keys as gin.Context.Set
}

// WithComponent tags log lines with the subsystem emitting them
func WithComponent(name string) *Logger {
	return New().WithField("component", name)
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}

// WithError attaches err under the standard logrus error key
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Entry: l.Entry.WithError(err),
	}
}

// Setup configures the standard logrus logger for the given level name
func Setup(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
