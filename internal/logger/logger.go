// Package logger provides a small leveled logger for the service layer.
// A Logger is constructed once and injected into each service rather than
// accessed as ambient process state, so tests and embedders control where
// log output goes.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Logger writes leveled log lines to a single writer.
// The zero value is not usable; use New.
type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	verbose bool
}

// New creates a logger writing to out. When verbose is false, Debug
// messages are suppressed.
func New(out io.Writer, verbose bool) *Logger {
	if out == nil {
		out = os.Stderr
	}
	return &Logger{out: out, verbose: verbose}
}

// Discard returns a logger that writes nothing. Useful as a default
// dependency in tests.
func Discard() *Logger {
	return &Logger{out: io.Discard}
}

// Verbose reports whether debug logging is enabled.
func (l *Logger) Verbose() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.verbose
}

// Debug prints a message if verbose mode is enabled.
func (l *Logger) Debug(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.verbose {
		fmt.Fprintf(l.out, "[DEBUG] "+format+"\n", args...)
	}
}

// Info prints an informational message.
func (l *Logger) Info(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "[INFO] "+format+"\n", args...)
}

// Warn prints a warning message.
func (l *Logger) Warn(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "[WARN] "+format+"\n", args...)
}

// Error prints an error message.
func (l *Logger) Error(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "[ERROR] "+format+"\n", args...)
}
