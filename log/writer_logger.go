package log

import (
	"fmt"
	"io"
	"time"
)

// WriterLogger prints each statement on its own line, prefixed with the time and the level, to the given writer.
type WriterLogger struct {
	w   io.Writer
	now func() time.Time
}

// NewWriterLogger returns a WriterLogger which writes to w.
func NewWriterLogger(w io.Writer) *WriterLogger {
	return &WriterLogger{w: w, now: time.Now}
}

// Log writes the formatted statement, write errors are ignored.
func (l *WriterLogger) Log(level Level, format string, args ...any) {
	fmt.Fprintf(l.w, "%s %s: %s\n", l.now().Format(time.RFC3339Nano), level, fmt.Sprintf(format, args...))
}
