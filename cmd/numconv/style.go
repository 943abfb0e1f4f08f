package main

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/wippyai/numconv/table"
)

// Table columns produced by convtable.
const (
	colLiteral = iota
	colDecimal
	colHex
	colBin
)

type styles struct {
	title   lipgloss.Style
	literal lipgloss.Style
	decimal lipgloss.Style
	hex     lipgloss.Style
	bin     lipgloss.Style
	err     lipgloss.Style
	help    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1),
		literal: r.NewStyle().Bold(true),
		decimal: r.NewStyle().Foreground(lipgloss.Color("#FAFAFA")),
		hex:     r.NewStyle().Foreground(lipgloss.Color("#87CEEB")),
		bin:     r.NewStyle().Foreground(lipgloss.Color("#98FB98")),
		err:     r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		help:    r.NewStyle().Foreground(lipgloss.Color("#666666")),
	}
}

// tableOptions turns styles into table decorators.
func (s styles) tableOptions() []table.Option {
	return []table.Option{
		table.WithCellStyle(colLiteral, render(s.literal)),
		table.WithCellStyle(colDecimal, render(s.decimal)),
		table.WithCellStyle(colHex, render(s.hex)),
		table.WithCellStyle(colBin, render(s.bin)),
		table.WithSpanStyle(render(s.err)),
	}
}

func render(st lipgloss.Style) table.StyleFunc {
	return func(text string) string { return st.Render(text) }
}

// newRenderer returns a lipgloss renderer for w that honors mode.
func newRenderer(w io.Writer, mode colorMode) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	switch {
	case mode == colorNever:
		r.SetColorProfile(termenv.Ascii)
	case mode == colorAlways:
		r.SetColorProfile(termenv.TrueColor)
	case !isTerminal(w):
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// renderOptions returns the table options for the given flags.
func renderOptions(w io.Writer, opts *options) []table.Option {
	var tableOpts []table.Option
	switch opts.width {
	case "display":
		tableOpts = append(tableOpts, table.DisplayWidth())
	default:
		tableOpts = append(tableOpts, table.RuneWidth())
	}
	if useColor(w, opts.color) {
		tableOpts = append(tableOpts, newStyles(newRenderer(w, opts.color)).tableOptions()...)
	}
	return tableOpts
}

func useColor(w io.Writer, mode colorMode) bool {
	switch mode {
	case colorAlways:
		return true
	case colorNever:
		return false
	default:
		return isTerminal(w)
	}
}
