// Package logger is a small leveled logging facade with a single global
// verbosity switch.
//
// Verbosity levels, in increasing order:
//
//	Error < Info < Debug < Trace
//
// Records are emitted through log/slog so they carry a level attribute and can
// be redirected with SetOutput.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

// Level is a verbosity level. Higher values log more.
type Level int

const (
	Error Level = iota
	Info
	Debug
	Trace
)

// levelTrace sits below slog's debug level.
const levelTrace = slog.LevelDebug - 4

var (
	mu      sync.RWMutex
	current = Info
	out     = newLogger(os.Stderr)
)

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: levelTrace}))
}

// SetVerbosity sets the global verbosity. Values outside [Error, Trace] are clamped.
func SetVerbosity(v int) {
	l := Level(v)
	if l < Error {
		l = Error
	}
	if l > Trace {
		l = Trace
	}
	mu.Lock()
	current = l
	mu.Unlock()
}

// SetOutput redirects all records to w.
func SetOutput(w io.Writer) {
	mu.Lock()
	out = newLogger(w)
	mu.Unlock()
}

// Enabled reports whether messages at l are currently logged.
func Enabled(l Level) bool {
	mu.RLock()
	defer mu.RUnlock()
	return current >= l
}

func (l Level) slogLevel() slog.Level {
	switch l {
	case Error:
		return slog.LevelError
	case Info:
		return slog.LevelInfo
	case Debug:
		return slog.LevelDebug
	}
	return levelTrace
}

func logf(l Level, format string, args ...any) {
	mu.RLock()
	enabled, lg := current >= l, out
	mu.RUnlock()
	if !enabled {
		return
	}
	lg.Log(context.Background(), l.slogLevel(), fmt.Sprintf(format, args...))
}

// Errorf logs failures that need attention.
func Errorf(format string, args ...any) {
	logf(Error, format, args...)
}

// Infof logs major lifecycle events.
func Infof(format string, args ...any) {
	logf(Info, format, args...)
}

// Debugf logs diagnostic detail.
func Debugf(format string, args ...any) {
	logf(Debug, format, args...)
}

// Tracef logs very fine-grained detail.
func Tracef(format string, args ...any) {
	logf(Trace, format, args...)
}
