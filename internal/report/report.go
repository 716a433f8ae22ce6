// Package report defines the reporter used for user-visible messages.
//
// The store never formats console output itself; callers inject a Reporter
// and decide how messages are presented.
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Level classifies a message for presentation.
type Level int

const (
	Info Level = iota
	Warn
	Error
	Success
)

// Reporter receives user-visible messages from the store and CLI layers.
type Reporter interface {
	Report(level Level, format string, args ...any)
}

// Console writes one colored line per message to a writer.
type Console struct {
	w io.Writer
}

// NewConsole returns a Console reporting to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

var (
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	successColor = color.New(color.FgGreen)
)

// Report prints the formatted message, colorized by level.
func (c *Console) Report(level Level, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	switch level {
	case Warn:
		warnColor.Fprintln(c.w, msg)
	case Error:
		errorColor.Fprintln(c.w, "ERROR: "+msg)
	case Success:
		successColor.Fprintln(c.w, msg)
	default:
		fmt.Fprintln(c.w, msg)
	}
}
