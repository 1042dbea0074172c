// Package logger prints colored, leveled progress lines for the CLI.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	stepColor    = color.New(color.FgCyan, color.Bold)
	infoColor    = color.New(color.FgWhite)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgHiMagenta)
	errorColor   = color.New(color.FgRed)
	debugColor   = color.New(color.FgCyan)
)

// Logger writes human-facing log lines. The zero value is not usable; call New.
type Logger struct {
	w     io.Writer
	debug bool
}

// New returns a Logger writing to w. A nil w means os.Stderr.
func New(w io.Writer, debug bool) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return &Logger{w: w, debug: debug}
}

// Discard returns a Logger that drops everything.
func Discard() *Logger {
	return &Logger{w: io.Discard}
}

// Step announces the start of a stage.
func (l *Logger) Step(format string, a ...any) {
	l.print(stepColor, "==> ", format, a...)
}

// Info logs an informational line.
func (l *Logger) Info(format string, a ...any) {
	l.print(infoColor, "    ", format, a...)
}

// Success logs a completed stage.
func (l *Logger) Success(format string, a ...any) {
	l.print(successColor, "[ OK ] ", format, a...)
}

// Warn logs a non-fatal problem.
func (l *Logger) Warn(format string, a ...any) {
	l.print(warnColor, "[WARN] ", format, a...)
}

// Error logs a fatal problem.
func (l *Logger) Error(format string, a ...any) {
	l.print(errorColor, "[FAIL] ", format, a...)
}

// Debug logs only when debug output was enabled.
func (l *Logger) Debug(format string, a ...any) {
	if !l.debug {
		return
	}
	l.print(debugColor, "[DBG ] ", format, a...)
}

func (l *Logger) print(c *color.Color, prefix, format string, a ...any) {
	c.Fprintln(l.w, prefix+fmt.Sprintf(format, a...))
}
