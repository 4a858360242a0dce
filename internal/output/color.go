package output

import (
	"fmt"
	"io"
	"os"
)

// ANSI escape sequences
const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiRed    = "\033[31m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiBlue   = "\033[34m"
	ansiCyan   = "\033[36m"
	ansiGray   = "\033[90m"
)

// Printer writes human-facing lines, colored when the destination is a
// terminal. Success, Info, Step, and Detail go to the output stream;
// Error and Warning go to the error stream.
type Printer struct {
	out      io.Writer
	err      io.Writer
	useColor bool
}

// NewPrinter binds a printer to stdout and stderr.
func NewPrinter() *Printer {
	return &Printer{out: os.Stdout, err: os.Stderr, useColor: isTerminal()}
}

// NewPrinterWithWriters binds a printer to the given writers, mainly
// for tests.
func NewPrinterWithWriters(out, err io.Writer, useColor bool) *Printer {
	return &Printer{out: out, err: err, useColor: useColor}
}

// stamp writes one line with a bold colored marker in front of it
func (p *Printer) stamp(w io.Writer, color, marker, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	if !p.useColor {
		_, _ = fmt.Fprintf(w, "%s %s\n", marker, message)
		return
	}
	_, _ = fmt.Fprintf(w, "%s%s%s %s%s\n", ansiBold, color, marker, message, ansiReset)
}

// Success prints a success message in green
func (p *Printer) Success(format string, args ...interface{}) {
	p.stamp(p.out, ansiGreen, "✓", format, args...)
}

// Error prints an error message in red
func (p *Printer) Error(format string, args ...interface{}) {
	p.stamp(p.err, ansiRed, "✗", format, args...)
}

// Warning prints a warning message in yellow
func (p *Printer) Warning(format string, args ...interface{}) {
	p.stamp(p.err, ansiYellow, "⚠", format, args...)
}

// Info prints an info message in cyan
func (p *Printer) Info(format string, args ...interface{}) {
	p.stamp(p.out, ansiCyan, "→", format, args...)
}

// Step prints a step message in blue
func (p *Printer) Step(format string, args ...interface{}) {
	p.stamp(p.out, ansiBlue, "▶", format, args...)
}

// Detail prints an indented detail line in gray. Unlike the marker
// methods it carries no leading symbol, just two spaces.
func (p *Printer) Detail(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	if !p.useColor {
		_, _ = fmt.Fprintf(p.out, "  %s\n", message)
		return
	}
	_, _ = fmt.Fprintf(p.out, "%s  %s%s\n", ansiGray, message, ansiReset)
}

// Print writes to the output stream with no marker or color
func (p *Printer) Print(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

// Println writes a plain line to the output stream
func (p *Printer) Println(args ...interface{}) {
	_, _ = fmt.Fprintln(p.out, args...)
}

// TerminalColorEnabled reports whether stdout can take colored output.
// It honors the NO_COLOR convention.
func TerminalColorEnabled() bool {
	return isTerminal()
}

func isTerminal() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	info, err := os.Stdout.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
