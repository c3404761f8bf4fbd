/*
Package logging provides a small prefixed, color-coded logger used across
the application. Every component receives its own logger with a distinct
prefix and color so interleaved output stays readable.
*/
package logging

import (
	"errors"
	"io"
	"log"
	"sync"
)

const colorReset = "\033[0m"

// Logger is the logging interface components depend on.
type Logger interface {
	// Info logs a routine, informational message.
	Info(msg string)

	// Warning logs a recoverable, unexpected condition.
	Warning(msg string)

	// Error logs a failure.
	Error(msg string)
}

// PrefixLogger writes tagged, color-coded lines to a single writer.
type PrefixLogger struct {
	mu     sync.Mutex
	prefix string
	color  string
	out    *log.Logger
}

// New creates a PrefixLogger writing to out with the given tag and ANSI
// color code. The writer must not be nil.
func New(prefix, color string, out io.Writer) (*PrefixLogger, error) {
	if out == nil {
		return nil, errors.New("logging: nil writer")
	}

	return &PrefixLogger{
		prefix: prefix,
		color:  color,
		out:    log.New(out, "", log.LstdFlags),
	}, nil
}

func (l *PrefixLogger) emit(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out.Printf("%s[%s] [%s]%s %s", l.color, l.prefix, level, colorReset, msg)
}

// Info logs a routine, informational message.
func (l *PrefixLogger) Info(msg string) {
	l.emit("INFO", msg)
}

// Warning logs a recoverable, unexpected condition.
func (l *PrefixLogger) Warning(msg string) {
	l.emit("WARNING", msg)
}

// Error logs a failure.
func (l *PrefixLogger) Error(msg string) {
	l.emit("ERROR", msg)
}
