package log

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Fields is an alias for logrus.Fields
type Fields logrus.Fields

// Logger defines the logging methods used across the service
type Logger interface {
	WithField(key string, value interface{}) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	WithContext(ctx context.Context) Logger

	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(format string, args ...interface{})
}

// contextKey for storing the correlation ID in the context
type contextKey string

// CorrelationIDKey is the context key holding the correlation ID
const CorrelationIDKey contextKey = "correlation_id"
const correlationIDField = "correlation_id"

// logger implements Logger on top of logrus
type logger struct {
	entry *logrus.Entry
}

// L is a global Logger instance for direct use
var L Logger = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}

// IsDevelopment reports whether we are running in a development environment
func IsDevelopment() bool {
	env := os.Getenv("APP_ENV")
	return env == "" || env == "development" || env == "dev"
}

// SetupTestLogger configures a compact logger for tests
func SetupTestLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: false,
		PadLevelText:  true,
	})

	logrus.SetLevel(logrus.DebugLevel)
	logrus.SetReportCaller(false)

	L = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}
}

// WithField adds a single field to the Logger
func (l *logger) WithField(key string, value interface{}) Logger {
	return &logger{entry: l.entry.WithField(key, value)}
}

// WithFields adds multiple fields to the Logger
func (l *logger) WithFields(fields Fields) Logger {
	return &logger{entry: l.entry.WithFields(logrus.Fields(fields))}
}

// WithError adds an error to the Logger
func (l *logger) WithError(err error) Logger {
	return &logger{entry: l.entry.WithError(err)}
}

// WithContext extracts request-scoped information from the context
func (l *logger) WithContext(ctx context.Context) Logger {
	if ctx == nil {
		return l
	}

	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return l.WithField(correlationIDField, correlationID)
	}

	return l
}

func (l *logger) Debug(args ...interface{}) {
	l.entry.Debug(args...)
}

func (l *logger) Debugf(format string, args ...interface{}) {
	l.entry.Debugf(format, args...)
}

func (l *logger) Info(args ...interface{}) {
	l.entry.Info(args...)
}

func (l *logger) Infof(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

func (l *logger) Warn(args ...interface{}) {
	l.entry.Warn(args...)
}

func (l *logger) Warnf(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

func (l *logger) Error(args ...interface{}) {
	l.entry.Error(args...)
}

func (l *logger) Errorf(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

func (l *logger) Fatal(args ...interface{}) {
	l.entry.Fatal(args...)
}

func (l *logger) Fatalf(format string, args ...interface{}) {
	l.entry.Fatalf(format, args...)
}

// WithCorrelationID adds a new correlation ID to the context
func WithCorrelationID(ctx context.Context) (context.Context, string) {
	correlationID := uuid.New().String()
	return context.WithValue(ctx, CorrelationIDKey, correlationID), correlationID
}

// GetCorrelationID returns the correlation ID stored in the context, if any
func GetCorrelationID(ctx context.Context) string {
	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}
	return ""
}

// ForContext creates a logger carrying the context's correlation ID
func ForContext(ctx context.Context) Logger {
	return L.WithContext(ctx)
}
