package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/multierr"

	"github.com/wippyai/numconv/convtable"
	"github.com/wippyai/numconv/table"
)

type interactiveModel struct {
	styles    styles
	tableOpts []table.Option
	input     textinput.Model
	literals  []string
	failed    int
	quitting  bool
}

func newInteractiveModel(s styles, tableOpts []table.Option, literals []string) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "42, -0x80, 0b1010, 0o17"
	ti.Prompt = "number: "
	ti.Width = 40
	ti.Focus()

	m := &interactiveModel{
		styles:    s,
		tableOpts: tableOpts,
		input:     ti,
	}
	for _, lit := range literals {
		m.push(lit)
	}
	return m
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit

		case tea.KeyEnter:
			m.push(m.input.Value())
			m.input.SetValue("")
			return m, nil

		case tea.KeyCtrlL:
			m.literals = nil
			m.failed = 0
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// push records a literal; blank input is ignored.
func (m *interactiveModel) push(lit string) {
	lit = strings.TrimSpace(lit)
	if lit == "" {
		return
	}
	m.literals = append(m.literals, lit)
	m.failed = len(multierr.Errors(m.build().Err()))
}

// build renders every literal from scratch; widths depend on all rows.
func (m *interactiveModel) build() *convtable.ConvTable {
	ct := convtable.New(m.tableOpts...)
	for _, lit := range m.literals {
		ct.Push(lit)
	}
	return ct
}

func (m *interactiveModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.title.Render("numconv"))
	b.WriteString(fmt.Sprintf(" %d numbers", len(m.literals)))
	if m.failed > 0 {
		b.WriteString(m.styles.err.Render(fmt.Sprintf(", %d invalid", m.failed)))
	}
	b.WriteString("\n\n")

	if len(m.literals) > 0 {
		b.WriteString(m.build().String())
		b.WriteString("\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.styles.help.Render("enter convert • ctrl+l clear • esc quit"))
	return b.String()
}

// runInteractive runs the TUI and prints the final table to out on exit.
func runInteractive(out io.Writer, opts *options) error {
	r := newRenderer(out, opts.color)
	m := newInteractiveModel(newStyles(r), renderOptions(out, opts), opts.literals)

	p := tea.NewProgram(m, tea.WithOutput(out))
	if _, err := p.Run(); err != nil {
		return err
	}

	if len(m.literals) == 0 {
		return nil
	}
	ct := m.build()
	if _, err := ct.WriteTo(out); err != nil {
		return err
	}
	if opts.strict {
		return ct.Err()
	}
	return nil
}
