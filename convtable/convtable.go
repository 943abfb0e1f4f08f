// Package convtable collects integer conversions into an aligned table.
//
// Every successful conversion becomes a row of four cells: the literal as
// typed followed by a colon, the decimal value, the hex form and the binary
// form. A literal that fails to parse becomes a row with the literal and a
// span holding the parser's message.
package convtable

import (
	"errors"
	"io"
	"math/big"
	"os"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	numerrors "github.com/wippyai/numconv/errors"
	"github.com/wippyai/numconv/literal"
	"github.com/wippyai/numconv/radix"
	"github.com/wippyai/numconv/table"
)

// ConvTable is a table of number conversions.
type ConvTable struct {
	t    *table.Table
	errs error
}

// New creates an empty ConvTable. Options are passed to the underlying
// table.
func New(opts ...table.Option) *ConvTable {
	return &ConvTable{t: table.New(opts...)}
}

// Push parses arg and adds either its conversions or its parse error.
func (c *ConvTable) Push(arg string) {
	lit, err := literal.Parse(arg)
	if err != nil {
		c.PushError(strings.TrimSpace(arg), err)
		return
	}
	c.PushResult(lit.Text, lit.Value)
}

// PushResult adds a row with the conversions of n. orig is the number as
// entered by the user. A nil n is shown as zero.
func (c *ConvTable) PushResult(orig string, n *big.Int) {
	if n == nil {
		n = new(big.Int)
	}
	row := table.NewRow().
		Append(orig + ":").
		Append(n.String()).
		Append(radix.FormatHex(n)).
		Append(radix.FormatBin(n))
	c.t.Add(row)

	Logger().Debug("conversion added",
		zap.String("literal", orig),
		zap.Int("bitLen", n.BitLen()),
		zap.Int("rows", c.t.Len()))
}

// PushError adds a row holding the message of err. orig is the number as
// entered by the user.
func (c *ConvTable) PushError(orig string, err error) {
	row := table.NewRow().Append(orig + ":").Span(message(err))
	c.t.Add(row)
	c.errs = multierr.Append(c.errs, err)

	Logger().Debug("parse error added",
		zap.String("literal", orig),
		zap.Error(err))
}

// Len returns the number of rows.
func (c *ConvTable) Len() int {
	return c.t.Len()
}

// Err returns every error passed to PushError, combined. It is nil when
// all literals converted.
func (c *ConvTable) Err() error {
	return c.errs
}

// WriteTo renders the table to w.
func (c *ConvTable) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := c.t.Render(cw)
	Logger().Debug("table rendered",
		zap.Int("rows", c.t.Len()),
		zap.Ints("widths", c.t.Widths()),
		zap.Int64("bytes", cw.n))
	return cw.n, err
}

// Print renders the table to standard output.
func (c *ConvTable) Print() error {
	_, err := c.WriteTo(os.Stdout)
	return err
}

// String renders the table into a string.
func (c *ConvTable) String() string {
	return c.t.String()
}

// message returns the text shown in an error row.
func message(err error) string {
	var nerr *numerrors.Error
	if errors.As(err, &nerr) {
		return nerr.Message()
	}
	return err.Error()
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
