package table

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/wippyai/numconv/errors"
)

// Table is an ordered list of rows printed with aligned columns.
type Table struct {
	width      func(string) int
	cellStyles map[int]StyleFunc
	spanStyle  StyleFunc
	gutter     string
	rows       []*Row
}

// New creates an empty table.
func New(opts ...Option) *Table {
	t := &Table{
		width:  utf8.RuneCountInString,
		gutter: DefaultGutter,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Add appends a row. The table takes ownership of it. Nil rows are ignored.
func (t *Table) Add(l Line) {
	if l == nil {
		return
	}
	if r := l.line(); r != nil {
		t.rows = append(t.rows, r)
	}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Widths measures every column across all rows. Rows with fewer cells do
// not contribute to the columns they lack.
func (t *Table) Widths() []int {
	var widths []int
	for _, row := range t.rows {
		for i, cell := range row.cells {
			w := t.width(cell)
			if i == len(widths) {
				widths = append(widths, w)
			} else if w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// Render writes every row to w, one line per row.
func (t *Table) Render(w io.Writer) error {
	widths := t.Widths()
	bw := bufio.NewWriter(w)

	for _, row := range t.rows {
		for i, cell := range row.cells {
			bw.WriteString(t.gutter)
			if pad := widths[i] - t.width(cell); pad > 0 {
				bw.WriteString(strings.Repeat(" ", pad))
			}
			if style := t.cellStyles[i]; style != nil {
				cell = style(cell)
			}
			bw.WriteString(cell)
		}
		if row.spanned {
			span := row.span
			if t.spanStyle != nil {
				span = t.spanStyle(span)
			}
			bw.WriteString(t.gutter)
			bw.WriteString(span)
		}
		bw.WriteByte('\n')
	}

	if err := bw.Flush(); err != nil {
		return errors.WriteFailed(errors.PhaseRender, err)
	}
	return nil
}

// String renders the table into a string.
func (t *Table) String() string {
	var b strings.Builder
	_ = t.Render(&b)
	return b.String()
}
