package errors

import (
	"fmt"
	"strconv"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseParse  Phase = "parse"  // literal to integer
	PhaseFormat Phase = "format" // integer to/from radix text
	PhaseRender Phase = "render" // table output
	PhaseCLI    Phase = "cli"    // command-line handling
)

// Kind categorizes the error
type Kind string

const (
	KindEmptyInput   Kind = "empty_input"
	KindInvalidDigit Kind = "invalid_digit"
	KindInvalidRadix Kind = "invalid_radix"
	KindRowSpanned   Kind = "row_spanned"
	KindWriteFailed  Kind = "write_failed"
	KindUsage        Kind = "usage"
)

// NoOffset marks an error that is not tied to a position in the input.
const NoOffset = -1

// Error is the structured error type used throughout numconv
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Input  string
	Radix  string
	Detail string
	Offset int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Input != "" {
		b.WriteString(" in ")
		b.WriteString(strconv.Quote(e.Input))
		if e.Offset > NoOffset {
			b.WriteString(" at offset ")
			b.WriteString(strconv.Itoa(e.Offset))
		}
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Message returns the human-readable part of the error, without phase and
// kind decoration. It falls back to Error when no detail is set.
func (e *Error) Message() string {
	if e.Detail == "" {
		return e.Error()
	}
	return e.Detail
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase:  phase,
			Kind:   kind,
			Offset: NoOffset,
		},
	}
}

// Input sets the offending input text
func (b *Builder) Input(s string) *Builder {
	b.err.Input = s
	return b
}

// Radix sets the name of the radix the input was read in
func (b *Builder) Radix(name string) *Builder {
	b.err.Radix = name
	return b
}

// Offset sets the byte offset of the failure within the input
func (b *Builder) Offset(off int) *Builder {
	b.err.Offset = off
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// EmptyInput creates an error for a literal without any digits
func EmptyInput(phase Phase, input string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindEmptyInput,
		Input:  input,
		Offset: NoOffset,
		Detail: "cannot parse integer from empty string",
	}
}

// InvalidDigit creates an error for a rune that is not a digit of radix
func InvalidDigit(phase Phase, input, radix string, r rune, offset int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidDigit,
		Input:  input,
		Radix:  radix,
		Offset: offset,
		Value:  r,
		Detail: fmt.Sprintf("invalid digit %q for %s literal", r, radix),
	}
}

// InvalidRadix creates an error for input that carries none of the
// accepted radix prefixes
func InvalidRadix(phase Phase, input string, prefixes ...string) *Error {
	quoted := make([]string, len(prefixes))
	for i, p := range prefixes {
		quoted[i] = strconv.Quote(p)
	}
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidRadix,
		Input:  input,
		Offset: NoOffset,
		Detail: fmt.Sprintf("expected %s prefix", strings.Join(quoted, " or ")),
	}
}

// RowSpanned creates the error raised when a cell is appended after a span
func RowSpanned(cell string) *Error {
	return &Error{
		Phase:  PhaseRender,
		Kind:   KindRowSpanned,
		Offset: NoOffset,
		Value:  cell,
		Detail: "all columns are already spanned",
	}
}

// WriteFailed wraps an output error
func WriteFailed(phase Phase, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindWriteFailed,
		Offset: NoOffset,
		Detail: "write failed",
		Cause:  cause,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Offset: NoOffset,
		Detail: detail,
		Cause:  cause,
	}
}
