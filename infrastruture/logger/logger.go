// Package logger provides the leveled, colour-prefixed logger shared by the
// server and the CLI.
package logger

import (
	"errors"
	"io"
	"log"
)

const (
	ColorRed     = "\033[31m"
	ColorGreen   = "\033[32m"
	ColorYellow  = "\033[33m"
	ColorBlue    = "\033[34m"
	ColorPurple  = "\033[35m"
	ColorCyan    = "\033[36m"
	ColorReset   = "\033[0m"
	levelInfo    = "INFO"
	levelWarning = "WARNING"
	levelError   = "ERROR"
)

// Logger writes "[COMPONENT] [LEVEL] message" lines.
type Logger struct {
	component string
	color     string
	out       *log.Logger
}

// New creates a logger for component that writes to w.
func New(component, color string, w io.Writer) (*Logger, error) {
	if component == "" {
		return nil, errors.New("logger: component name is required")
	}
	if w == nil {
		return nil, errors.New("logger: writer is required")
	}
	return &Logger{
		component: component,
		color:     color,
		out:       log.New(w, "", log.LstdFlags),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.write(levelInfo, ColorGreen, msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.write(levelWarning, ColorYellow, msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.write(levelError, ColorRed, msg)
}

func (l *Logger) write(level, levelColor, msg string) {
	l.out.Printf("%s[%s]%s %s[%s]%s %s", l.color, l.component, ColorReset, levelColor, level, ColorReset, msg)
}

// Nop discards everything.
type Nop struct{}

func (Nop) Info(string)    {}
func (Nop) Warning(string) {}
func (Nop) Error(string)   {}
