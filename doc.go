// Package numconv displays integers in several radixes at once.
//
// Integer literals in decimal, hex, octal or binary, of any sign and
// magnitude, are parsed into arbitrary-precision values and printed as a
// table with their decimal, hexadecimal and binary forms. Negative values
// are shown in two's complement, framed in whole bytes:
//
//	  10:    10    0x0A           0b00001010
//	-129:  -129  0xFF7F  0b11111111_01111111
//	 abc:  invalid digit 'a' for decimal literal
//
// # Architecture Overview
//
// The module is organized into several packages with distinct responsibilities:
//
//	numconv/           Root package with the Print convenience function
//	├── radix/         Two's-complement hex and binary formatting
//	├── table/         Column-aligned text tables with trailing spans
//	├── literal/       Integer literal parsing (sign, prefix, separators)
//	├── convtable/     Conversion rows built from literals
//	├── errors/        Structured error types for debugging
//	└── cmd/numconv/   Command-line tool with an interactive mode
//
// # Quick Start
//
//	err := numconv.Print(os.Stdout, "10", "0xFF", "-0b1")
//
// Or build the table yourself:
//
//	ct := convtable.New()
//	ct.Push("64206")
//	ct.PushResult("answer", big.NewInt(42))
//	ct.Print()
//
// # Thread Safety
//
// Tables and rows are not safe for concurrent use. The radix functions are
// pure and may be called from any goroutine.
package numconv
