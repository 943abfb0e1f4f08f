package table

import (
	"github.com/wippyai/numconv/errors"
)

// Line is a row that can be added to a Table. It is implemented by *Row
// and *SpannedRow only.
type Line interface {
	line() *Row
}

// Row is an ordered list of right-aligned cells.
type Row struct {
	cells   []string
	span    string
	spanned bool
}

// NewRow creates an empty row without a span.
func NewRow() *Row {
	return &Row{}
}

// Append adds a cell to the row. It panics if the row already has a span.
func (r *Row) Append(cell string) *Row {
	if r.spanned {
		panic(errors.RowSpanned(cell))
	}
	r.cells = append(r.cells, cell)
	return r
}

// Span sets the trailing free text of the row and closes it for further
// cells.
func (r *Row) Span(text string) *SpannedRow {
	r.span = text
	r.spanned = true
	return &SpannedRow{row: r}
}

func (r *Row) line() *Row { return r }

// SpannedRow is a row whose span has been set.
type SpannedRow struct {
	row *Row
}

// Span replaces the span text.
func (s *SpannedRow) Span(text string) *SpannedRow {
	s.row.span = text
	return s
}

func (s *SpannedRow) line() *Row {
	if s == nil {
		return nil
	}
	return s.row
}
