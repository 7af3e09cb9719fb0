// Package logging wraps github.com/go-logr/logr behind a small facade so
// the codec packages only depend on four verbs (Trace, Debug, Warn, Error)
// instead of the full logr surface.
package logging

import (
	"github.com/go-logr/logr"
)

// Verbosity levels passed to logr.Logger.V. Higher is chattier.
const (
	LevelInfo  = 0
	LevelDebug = 1
	LevelTrace = 2
)

// NewLogger wraps an existing logr.Logger. A zero-value logr.Logger (no
// sink configured) is replaced with a discarding logger so callers never
// need a nil check.
func NewLogger(log logr.Logger) *Logger {
	if log.GetSink() == nil {
		log = logr.Discard()
	}
	return &Logger{log: log}
}

// DefaultLogger returns a Logger that discards everything written to it.
// Parse and Serialize always log through *Logger; silence is opt-out, not
// a special case.
func DefaultLogger() *Logger {
	return &Logger{log: logr.Discard()}
}

// Logger is the facade the codec packages log through.
type Logger struct {
	log logr.Logger
}

// Debug logs at LevelDebug.
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.log.V(LevelDebug).Info(msg, keysAndValues...)
}

// Info logs at the default verbosity.
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Info(msg, keysAndValues...)
}

// Trace logs at LevelTrace, the per-field decision detail the codec emits
// while walking a parsed record.
func (l *Logger) Trace(msg string, keysAndValues ...interface{}) {
	l.log.V(LevelTrace).Info(msg, keysAndValues...)
}

// Warn logs a non-fatal inconsistency (e.g. a header-size mismatch accepted
// under WithLenientHeader) at the default verbosity, tagged so it reads
// differently from an ordinary Info line.
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.log.Info("warning: "+msg, keysAndValues...)
}

// Error logs a failure that is about to be returned to the caller as an
// error value.
func (l *Logger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error(err, msg, keysAndValues...)
}
