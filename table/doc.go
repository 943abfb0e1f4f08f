// Package table prints rows of text with vertically aligned columns.
//
// Each row holds any number of cells, right-aligned in their column, and
// may end with a span: free text that is printed after the last cell
// without padding. Column widths are measured across the whole table at
// render time, so a row added last can still widen the first column.
//
//	t := table.New()
//	t.Add(table.NewRow().Append("10:").Append("0x0A"))
//	t.Add(table.NewRow().Append("abc:").Span("invalid digit"))
//	t.Render(os.Stdout)
//
// A row becomes a SpannedRow once Span is called; SpannedRow has no
// Append method. Appending to the original *Row after that panics.
package table
