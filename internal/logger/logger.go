package logger

import (
	"quillpost-api/internal/utils"

	"github.com/sirupsen/logrus"
)

// Logger is the application logger handed to services and handlers
type Logger struct {
	log *logrus.Logger
}

// New creates a Logger backed by log
func New(log *logrus.Logger) *Logger {
	return &Logger{log: log}
}

// SecureLog records a failed operation with a correlation id, the route and the
// error text. Request bodies and credentials are never passed in.
func (l *Logger) SecureLog(err error, message string, route string) {
	l.log.WithFields(logrus.Fields{
		"request_id": utils.GenerateShortID(),
		"route":      route,
		"error_msg":  err.Error(),
	}).Error(message)
}

// WithField returns an entry carrying key=value
func (l *Logger) WithField(key string, value any) *logrus.Entry {
	return l.log.WithField(key, value)
}

// WithFields returns an entry carrying every field
func (l *Logger) WithFields(fields logrus.Fields) *logrus.Entry {
	return l.log.WithFields(fields)
}

// WithError returns an entry carrying err under the "error" key
func (l *Logger) WithError(err error) *logrus.Entry {
	return l.log.WithError(err)
}

// Info logs at info level
func (l *Logger) Info(args ...any) {
	l.log.Info(args...)
}

// Infof logs a formatted message at info level
func (l *Logger) Infof(format string, args ...any) {
	l.log.Infof(format, args...)
}

// Warn logs at warning level
func (l *Logger) Warn(args ...any) {
	l.log.Warn(args...)
}

// Warnf logs a formatted message at warning level
func (l *Logger) Warnf(format string, args ...any) {
	l.log.Warnf(format, args...)
}

// Error logs at error level; the Sentry hook forwards these
func (l *Logger) Error(args ...any) {
	l.log.Error(args...)
}

// Errorf logs a formatted message at error level
func (l *Logger) Errorf(format string, args ...any) {
	l.log.Errorf(format, args...)
}
