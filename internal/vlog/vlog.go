// Package vlog provides the structured logging used when --logging is set.
package vlog

import (
	"io"
	"log/slog"
	"os"
	"runtime"
)

// Logger wraps slog with the source-site/errno/message shape spec.md §7 requires.
type Logger struct {
	base    *slog.Logger
	enabled bool
}

// Disabled returns a Logger that discards everything, used when --logging is absent.
func Disabled() *Logger {
	return &Logger{base: slog.New(slog.NewTextHandler(io.Discard, nil)), enabled: false}
}

// New opens a logger writing to path in text form, one line per entry.
func New(path string) (*Logger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return &Logger{base: slog.New(h), enabled: true}, nil
}

// Enabled reports whether logging was turned on via --logging.
func (l *Logger) Enabled() bool {
	return l != nil && l.enabled
}

// Error logs a failure with its call site, captured errno-equivalent, and message.
func (l *Logger) Error(msg string, err error) {
	if l == nil {
		return
	}
	_, file, line, _ := runtime.Caller(1)
	l.base.Error(msg, "site", callSite(file, line), "err", errString(err))
}

// Info logs an informational line with its call site.
func (l *Logger) Info(msg string, args ...any) {
	if l == nil {
		return
	}
	_, file, line, _ := runtime.Caller(1)
	all := append([]any{"site", callSite(file, line)}, args...)
	l.base.Info(msg, all...)
}

func callSite(file string, line int) string {
	return file + ":" + itoa(line)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
