package log

import "fmt"

// WrappedLogger wraps a Logger with helpers for each level, eg: trace, debug, info, etc.
type WrappedLogger struct {
	Logger

	// level is the minimum level which is forwarded to the Logger.
	level Level
}

// NewWrappedLogger returns a WrappedLogger which forwards statements at or above the given level. If logger is nil
// then nothing is logged.
func NewWrappedLogger(logger Logger, level Level) WrappedLogger {
	if logger == nil {
		logger = nopLogger{}
	}

	return WrappedLogger{Logger: logger, level: level}
}

// Log forwards the statement to the wrapped Logger if its level is enabled.
func (w *WrappedLogger) Log(level Level, format string, args ...any) {
	if level < w.level {
		return
	}

	w.Logger.Log(level, format, args...)
}

// Tracef logs the provided information at the trace level.
func (w *WrappedLogger) Tracef(format string, args ...any) {
	w.Log(LevelTrace, format, args...)
}

// Debugf logs the provided information at the debug level.
func (w *WrappedLogger) Debugf(format string, args ...any) {
	w.Log(LevelDebug, format, args...)
}

// Infof logs the provided information at the info level.
func (w *WrappedLogger) Infof(format string, args ...any) {
	w.Log(LevelInfo, format, args...)
}

// Warnf logs the provided information at the warn level.
func (w *WrappedLogger) Warnf(format string, args ...any) {
	w.Log(LevelWarning, format, args...)
}

// Errorf logs the provided information at the error level.
func (w *WrappedLogger) Errorf(format string, args ...any) {
	w.Log(LevelError, format, args...)
}

// Panicf logs the provided information at the panic level, then panics.
func (w *WrappedLogger) Panicf(format string, args ...any) {
	w.Log(LevelPanic, format, args...)
	panic(fmt.Sprintf(format, args...))
}
