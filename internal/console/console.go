// Package console prints the wizard's status lines: section headers, info,
// success, warning and failure markers, and verbose-only debug output.
package console

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Printer writes status lines to w. Colors follow fatih/color's global
// setting, which is off when w is not a terminal or NO_COLOR is set.
type Printer struct {
	w       io.Writer
	verbose bool

	bold    *color.Color
	success *color.Color
	fail    *color.Color
	warn    *color.Color
	dim     *color.Color
}

// New returns a Printer writing to w. Debug lines are printed only when
// verbose is set.
func New(w io.Writer, verbose bool) *Printer {
	return &Printer{
		w:       w,
		verbose: verbose,
		bold:    color.New(color.Bold),
		success: color.New(color.FgGreen),
		fail:    color.New(color.FgRed),
		warn:    color.New(color.FgYellow),
		dim:     color.New(color.Faint),
	}
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer { return p.w }

// Verbose reports whether debug output is enabled.
func (p *Printer) Verbose() bool { return p.verbose }

// Section prints a blank line followed by a bold heading.
func (p *Printer) Section(s string) {
	fmt.Fprintf(p.w, "\n%s\n", p.bold.Sprint(s))
}

func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintf(p.w, "  %s\n", fmt.Sprintf(format, args...))
}

func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintf(p.w, "  %s %s\n", p.success.Sprint("✓"), fmt.Sprintf(format, args...))
}

func (p *Printer) Warn(format string, args ...any) {
	fmt.Fprintf(p.w, "  %s %s\n", p.warn.Sprint("⚠"), fmt.Sprintf(format, args...))
}

func (p *Printer) Fail(format string, args ...any) {
	fmt.Fprintf(p.w, "  %s %s\n", p.fail.Sprint("✗"), fmt.Sprintf(format, args...))
}

// Dim prints a muted hint line.
func (p *Printer) Dim(format string, args ...any) {
	fmt.Fprintf(p.w, "  %s\n", p.dim.Sprintf(format, args...))
}

// Debug prints only in verbose mode.
func (p *Printer) Debug(format string, args ...any) {
	if !p.verbose {
		return
	}
	fmt.Fprintf(p.w, "  %s %s\n", p.dim.Sprint("·"), p.dim.Sprintf(format, args...))
}
