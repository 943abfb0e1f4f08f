// Package literal parses integer literals typed on a command line.
//
// A literal is an optional sign, an optional radix prefix and one or more
// digits:
//
//	42  -42  +42          decimal
//	0xFF  -0x80  0XfF     hexadecimal
//	0o755  0O17           octal
//	0b1010  -0b1          binary
//	1_000_000  0xFF_FF    underscores between digits
//
// Values have arbitrary precision.
package literal
