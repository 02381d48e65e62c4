package log

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	levels []Level
	lines  []string
}

func (r *recordingLogger) Log(level Level, format string, args ...any) {
	r.levels = append(r.levels, level)
	r.lines = append(r.lines, format)
}

func TestLevelString(t *testing.T) {
	tests := map[Level]string{
		LevelTrace:   "TRAC",
		LevelDebug:   "DEBU",
		LevelInfo:    "INFO",
		LevelWarning: "WARN",
		LevelError:   "ERRO",
		LevelPanic:   "PNIC",
		Level(42):    "UNKN",
	}

	for level, expected := range tests {
		require.Equal(t, expected, level.String())
	}
}

func TestWrappedLoggerNil(t *testing.T) {
	logger := NewWrappedLogger(nil, LevelTrace)

	require.NotPanics(t, func() { logger.Infof("discarded") })
}

func TestWrappedLoggerLevel(t *testing.T) {
	var (
		recorder = &recordingLogger{}
		logger   = NewWrappedLogger(recorder, LevelInfo)
	)

	logger.Tracef("trace")
	logger.Debugf("debug")
	logger.Infof("info")
	logger.Warnf("warn")
	logger.Errorf("error")

	require.Equal(t, []Level{LevelInfo, LevelWarning, LevelError}, recorder.levels)
	require.Equal(t, []string{"info", "warn", "error"}, recorder.lines)
}

func TestWrappedLoggerPanicf(t *testing.T) {
	var (
		recorder = &recordingLogger{}
		logger   = NewWrappedLogger(recorder, LevelError)
	)

	require.PanicsWithValue(t, "fatal 42", func() { logger.Panicf("fatal %d", 42) })
	require.Equal(t, []Level{LevelPanic}, recorder.levels)
}

func TestWriterLogger(t *testing.T) {
	var (
		buf    = &bytes.Buffer{}
		logger = NewWriterLogger(buf)
	)

	logger.now = func() time.Time { return time.Date(2023, 7, 11, 15, 33, 2, 0, time.UTC) }

	logger.Log(LevelWarning, "peeked %d", 20)

	require.Equal(t, "2023-07-11T15:33:02Z WARN: peeked 20\n", buf.String())
}
