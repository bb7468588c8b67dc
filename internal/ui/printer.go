// Package ui renders install progress and summaries for the terminal.
package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/artche/aikit/internal/installer"
)

var (
	stepColor    = color.New(color.FgBlue)
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	infoColor    = color.New(color.FgYellow)
	dimColor     = color.New(color.FgHiBlack)
)

// Printer writes progress lines to w. It implements installer.Reporter.
type Printer struct {
	w io.Writer
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// SetColor toggles coloured output for every Printer.
func SetColor(enabled bool) {
	color.NoColor = !enabled
}

// Step prints "[current/total] msg".
func (p *Printer) Step(current, total int, msg string) {
	fmt.Fprintf(p.w, "%s %s\n", stepColor.Sprintf("[%d/%d]", current, total), msg)
}

// Success prints a green check mark before msg.
func (p *Printer) Success(msg string) {
	fmt.Fprintf(p.w, "%s %s\n", successColor.Sprint("✓"), msg)
}

// Error prints a red cross before msg.
func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.w, "%s %s\n", errorColor.Sprint("✗"), msg)
}

// Info prints a yellow arrow before msg.
func (p *Printer) Info(msg string) {
	fmt.Fprintf(p.w, "%s %s\n", infoColor.Sprint("→"), msg)
}

// Blank prints an empty line.
func (p *Printer) Blank() {
	fmt.Fprintln(p.w)
}

// Summary prints what an install left in the destination.
func (p *Printer) Summary(res *installer.Result) {
	p.Blank()
	p.Success(fmt.Sprintf("AI skills installed to %s", res.Target.DisplayDir()))
	p.Blank()

	fmt.Fprintln(p.w, "Installed:")
	for _, item := range res.Installed {
		if item.IsDir {
			fmt.Fprintf(p.w, "  📁 %s/ %s\n", item.Path, dimColor.Sprintf("(%d files)", item.Files))
		} else {
			fmt.Fprintf(p.w, "  📄 %s\n", item.Path)
		}
	}

	if len(res.Failed) > 0 {
		p.Blank()
		fmt.Fprintln(p.w, "Failed:")
		for _, f := range res.Failed {
			fmt.Fprintf(p.w, "  %s %s: %v\n", errorColor.Sprint("✗"), f.Path, f.Err)
		}
	}

	p.Blank()
	fmt.Fprintln(p.w, "Your existing files were preserved (merge mode).")

	if len(res.Commands) > 0 {
		p.Blank()
		fmt.Fprintln(p.w, "Available commands:")
		for _, c := range res.Commands {
			fmt.Fprintf(p.w, "  %s\n", c)
		}
	}

	p.Blank()
}

// Fatal prints the top-level error line.
func Fatal(w io.Writer, err error) {
	fmt.Fprintf(w, "❌ Error: %v\n", err)
}
