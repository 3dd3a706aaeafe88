// Package ui renders console output: colored diagnostics, tables and help text.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
)

var (
	// Colors
	PrimaryColor   = lipgloss.Color("#00D9FF")
	SecondaryColor = lipgloss.Color("#6C757D")

	// Styles
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	SecondaryStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor)
)

// Printer writes results to Out and diagnostics to Err.
type Printer struct {
	Out io.Writer
	Err io.Writer

	color     bool
	errColor  *color.Color
	warnColor *color.Color
	infoColor *color.Color
}

// NewPrinter creates a Printer. Color is used only when useColor is set
// and Err is a terminal.
func NewPrinter(out, errw io.Writer, useColor bool) *Printer {
	useColor = useColor && isTerminal(errw)

	p := &Printer{
		Out:       out,
		Err:       errw,
		color:     useColor,
		errColor:  color.New(color.FgRed, color.Bold),
		warnColor: color.New(color.FgYellow, color.Bold),
		infoColor: color.New(color.FgCyan),
	}
	if !useColor {
		p.errColor.DisableColor()
		p.warnColor.DisableColor()
		p.infoColor.DisableColor()
		pterm.DisableColor()
	}
	return p
}

// Color reports whether the printer emits ANSI colors.
func (p *Printer) Color() bool { return p.color }

// Error prints err as an error diagnostic.
func (p *Printer) Error(err error) {
	p.errColor.Fprint(p.Err, "Error: ")
	fmt.Fprintln(p.Err, err)
}

// Warn prints err as a warning diagnostic.
func (p *Printer) Warn(err error) {
	p.warnColor.Fprint(p.Err, "Warning: ")
	fmt.Fprintln(p.Err, err)
}

// Infof prints a status line to the diagnostic stream.
func (p *Printer) Infof(format string, args ...any) {
	p.infoColor.Fprintf(p.Err, format+"\n", args...)
}

// Printf writes a result line.
func (p *Printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.Out, format, args...)
}

// Header renders a boxed title for interactive commands.
func (p *Printer) Header(title, subtitle string) {
	if !p.color {
		fmt.Fprintf(p.Out, "%s\n%s\n\n", title, subtitle)
		return
	}
	header := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Padding(0, 2).
		Render(
			lipgloss.JoinVertical(
				lipgloss.Center,
				TitleStyle.Render(title),
				SecondaryStyle.Render(subtitle),
			),
		)
	fmt.Fprintln(p.Out, header)
	fmt.Fprintln(p.Out)
}

// Markdown renders markdown content for the terminal.
func (p *Printer) Markdown(content string) error {
	style := glamour.WithStandardStyle("notty")
	if p.color {
		style = glamour.WithAutoStyle()
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(100))
	if err != nil {
		return err
	}

	out, err := r.Render(content)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(p.Out, out)
	return err
}

// Table renders rows under headers with pterm.
func Table(headers []string, rows [][]string) (string, error) {
	data := pterm.TableData{headers}
	data = append(data, rows...)
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
