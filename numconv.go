package numconv

import (
	"io"

	"github.com/wippyai/numconv/convtable"
	"github.com/wippyai/numconv/table"
)

// Print converts every literal and writes the resulting table to w. Literals
// that fail to parse appear as error rows and do not stop the others. The
// returned error reports output failures only; use convtable directly to
// inspect parse errors.
func Print(w io.Writer, literals ...string) error {
	ct := convtable.New()
	for _, lit := range literals {
		ct.Push(lit)
	}
	_, err := ct.WriteTo(w)
	return err
}

// Render is like Print but returns the table as a string.
func Render(literals []string, opts ...table.Option) string {
	ct := convtable.New(opts...)
	for _, lit := range literals {
		ct.Push(lit)
	}
	return ct.String()
}
