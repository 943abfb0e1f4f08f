package table

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// DefaultGutter is printed before every column and before the span.
const DefaultGutter = "  "

// Option configures a Table.
type Option func(*Table)

// StyleFunc decorates text after padding has been computed. It must not
// change the visible width of its input.
type StyleFunc func(string) string

// WithWidthFunc sets the function used to measure cells. The default counts
// runes.
func WithWidthFunc(fn func(string) int) Option {
	return func(t *Table) {
		if fn != nil {
			t.width = fn
		}
	}
}

// DisplayWidth measures cells by terminal columns, so wide East Asian
// characters count twice and combining marks count zero.
func DisplayWidth() Option {
	return WithWidthFunc(runewidth.StringWidth)
}

// RuneWidth measures cells by rune count.
func RuneWidth() Option {
	return WithWidthFunc(utf8.RuneCountInString)
}

// WithGutter replaces the two-space separator printed before each column.
func WithGutter(g string) Option {
	return func(t *Table) { t.gutter = g }
}

// WithCellStyle decorates every cell of column col.
func WithCellStyle(col int, fn StyleFunc) Option {
	return func(t *Table) {
		if t.cellStyles == nil {
			t.cellStyles = make(map[int]StyleFunc)
		}
		t.cellStyles[col] = fn
	}
}

// WithSpanStyle decorates every span.
func WithSpanStyle(fn StyleFunc) Option {
	return func(t *Table) { t.spanStyle = fn }
}
