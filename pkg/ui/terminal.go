package ui

import (
	"fmt"
	"io"
	"os"
	"time"

	"animalscraper/internal/downloader"

	"github.com/mattn/go-isatty"
)

// ASCII logo for the application
const ASCIILogo = `
    ╔═══════════════════════════════════════════════════╗
    ║   ▄▀▄ █▄ █ █ █▄ ▄█ ▄▀▄ █     ▄▀▀ ▄▀▀ █▀▄ ▄▀▄ █▀▄  ║
    ║   █▀█ █ ▀█ █ █ ▀ █ █▀█ █▄▄   ▄██ ▀▄▄ █▀▄ █▀█ █▀   ║
    ║     COLLATERAL ADJECTIVES & INFOBOX IMAGES        ║
    ╚═══════════════════════════════════════════════════╝
`

// Color functions for terminal output
var (
	Cyan    = colorize("\033[36m%s\033[0m")
	Yellow  = colorize("\033[33m%s\033[0m")
	Red     = colorize("\033[31m%s\033[0m")
	Green   = colorize("\033[32m%s\033[0m")
	Magenta = colorize("\033[35m%s\033[0m")
	Dim     = colorize("\033[2m%s\033[0m")
)

// colorize returns a function that wraps text with ANSI color codes
func colorize(colorString string) func(string) string {
	return func(text string) string {
		return fmt.Sprintf(colorString, text)
	}
}

// Printer writes human facing output. Colors are used only when the
// destination is a terminal, and a quiet printer only reports errors.
type Printer struct {
	out   io.Writer
	quiet bool
	color bool
}

// NewPrinter creates a printer writing to out
func NewPrinter(out io.Writer, quiet bool) *Printer {
	color := false
	if f, ok := out.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Printer{out: out, quiet: quiet, color: color}
}

func (p *Printer) paint(fn func(string) string, text string) string {
	if !p.color {
		return text
	}
	return fn(text)
}

// Writer returns the destination for reports, io.Discard when quiet
func (p *Printer) Writer() io.Writer {
	if p.quiet {
		return io.Discard
	}
	return p.out
}

// PrintLogo prints the ASCII logo with color
func (p *Printer) PrintLogo() {
	if p.quiet {
		return
	}
	fmt.Fprint(p.out, p.paint(Cyan, ASCIILogo))
}

// PrintError prints an error message in red. Errors are printed even when quiet.
func (p *Printer) PrintError(msg string, args ...interface{}) {
	if len(args) > 0 {
		msg = msg + ": " + fmt.Sprintf("%v", args[0])
	}
	fmt.Fprintln(p.out, p.paint(Red, msg))
}

// PrintSuccess prints a success message in green
func (p *Printer) PrintSuccess(msg string) {
	if p.quiet {
		return
	}
	fmt.Fprintln(p.out, p.paint(Green, msg))
}

// PrintInfo prints a label and value
func (p *Printer) PrintInfo(label string, value string) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.out, "%s: %s\n", p.paint(Cyan, label), p.paint(Yellow, value))
}

// PrintWarning prints a warning message in yellow
func (p *Printer) PrintWarning(msg string, args ...interface{}) {
	if p.quiet {
		return
	}
	if len(args) > 0 {
		msg = msg + ": " + fmt.Sprintf("%v", args[0])
	}
	fmt.Fprintln(p.out, p.paint(Yellow, msg))
}

// PrintHighlight prints a highlighted message in magenta
func (p *Printer) PrintHighlight(msg string) {
	if p.quiet {
		return
	}
	fmt.Fprintln(p.out, p.paint(Magenta, msg))
}

// PrintSummary prints the per-outcome counts of a run
func (p *Printer) PrintSummary(s downloader.Summary) {
	if p.quiet {
		return
	}

	p.PrintHighlight("\n[IMAGE DOWNLOAD SUMMARY]")
	p.PrintInfo("Animals", fmt.Sprintf("%d", s.Total))
	p.PrintInfo("Saved", fmt.Sprintf("%d (%s)", s.Saved, formatBytes(s.Bytes)))
	p.PrintInfo("Already present", fmt.Sprintf("%d", s.Skipped))
	p.PrintInfo("Without image", fmt.Sprintf("%d", s.NoImage))
	if s.Failed > 0 {
		fmt.Fprintf(p.out, "%s: %s\n", p.paint(Cyan, "Failed"), p.paint(Red, fmt.Sprintf("%d", s.Failed)))
	} else {
		p.PrintInfo("Failed", "0")
	}
	if s.Duration > 0 {
		p.PrintInfo("Elapsed", s.Duration.Round(time.Millisecond).String())
	}
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
