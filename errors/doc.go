// Package errors provides structured error types for numconv.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the offending input, the radix it was read in, the byte
// offset of the failure, and an optional cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseParse, errors.KindInvalidDigit).
//		Input("0xFG").
//		Radix("hex").
//		Offset(3).
//		Detail("invalid digit %q for hex literal", 'G').
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidDigit(errors.PhaseParse, "0xFG", "hex", 'G', 3)
//	err := errors.EmptyInput(errors.PhaseParse, "0x")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
