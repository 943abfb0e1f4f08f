// Package radix renders arbitrary-precision integers as hexadecimal and
// binary text using two's-complement digits.
//
// Output is always framed in whole bytes. Non-negative values use the
// fewest bytes that hold the magnitude; negative values use the fewest
// bytes whose top bit is set, so the text reads as a fixed-width
// two's-complement value of the smallest size that keeps its sign:
//
//	FormatHex(big.NewInt(-129))   // "0xFF7F"
//	FormatBin(big.NewInt(-129))   // "0b11111111_01111111"
//	FormatHex(big.NewInt(64206))  // "0xFACE"
//
// Negative numbers are encoded without materializing the sign extension:
// the formatter walks the digits of -n-1 and maps each one through an
// inverted digit table.
package radix
