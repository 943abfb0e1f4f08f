package literal

import (
	"errors"
	"testing"

	numerrors "github.com/wippyai/numconv/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in       string
		want     string
		radix    Radix
		negative bool
	}{
		{"10", "10", Decimal, false},
		{"  42\t", "42", Decimal, false},
		{"+7", "7", Decimal, false},
		{"-129", "-129", Decimal, true},
		{"0", "0", Decimal, false},
		{"-0", "0", Decimal, true},
		{"0xFF", "255", Hex, false},
		{"0Xff", "255", Hex, false},
		{"-0x80", "-128", Hex, true},
		{"0o755", "493", Octal, false},
		{"0O17", "15", Octal, false},
		{"0b101", "5", Binary, false},
		{"-0b1", "-1", Binary, true},
		{"1_000_000", "1000000", Decimal, false},
		{"0xFF_FF", "65535", Hex, false},
		{"123456789012345678901234567890", "123456789012345678901234567890", Decimal, false},
		{"-0x1_0000_0000_0000_0000", "-18446744073709551616", Hex, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			lit, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.in, err)
			}
			if got := lit.Value.String(); got != tt.want {
				t.Errorf("value: got %s, want %s", got, tt.want)
			}
			if lit.Radix != tt.radix {
				t.Errorf("radix: got %v, want %v", lit.Radix, tt.radix)
			}
			if lit.Negative != tt.negative {
				t.Errorf("negative: got %v, want %v", lit.Negative, tt.negative)
			}
		})
	}
}

func TestParseTrimsText(t *testing.T) {
	lit, err := Parse("  0x1F ")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if lit.Text != "0x1F" {
		t.Errorf("Text: got %q, want %q", lit.Text, "0x1F")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in     string
		kind   numerrors.Kind
		offset int
		detail string
	}{
		{"", numerrors.KindEmptyInput, numerrors.NoOffset, "cannot parse integer from empty string"},
		{"-", numerrors.KindEmptyInput, numerrors.NoOffset, "cannot parse integer from empty string"},
		{"0x", numerrors.KindEmptyInput, numerrors.NoOffset, "cannot parse integer from empty string"},
		{"abc", numerrors.KindInvalidDigit, 0, "invalid digit 'a' for decimal literal"},
		{"12a", numerrors.KindInvalidDigit, 2, "invalid digit 'a' for decimal literal"},
		{"0xFG", numerrors.KindInvalidDigit, 3, "invalid digit 'G' for hex literal"},
		{"0o8", numerrors.KindInvalidDigit, 2, "invalid digit '8' for octal literal"},
		{"0b102", numerrors.KindInvalidDigit, 4, "invalid digit '2' for binary literal"},
		{"--5", numerrors.KindInvalidDigit, 1, "invalid digit '-' for decimal literal"},
		{"1 2", numerrors.KindInvalidDigit, 1, "invalid digit ' ' for decimal literal"},
		{"_1", numerrors.KindInvalidDigit, 0, "'_' must separate successive digits"},
		{"1_", numerrors.KindInvalidDigit, 1, "'_' must separate successive digits"},
		{"1__2", numerrors.KindInvalidDigit, 2, "'_' must separate successive digits"},
		{"0x_FF", numerrors.KindInvalidDigit, 2, "'_' must separate successive digits"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := Parse(tt.in)
			if err == nil {
				t.Fatalf("Parse(%q): expected error", tt.in)
			}

			var perr *numerrors.Error
			if !errors.As(err, &perr) {
				t.Fatalf("error %T is not *errors.Error", err)
			}
			if perr.Phase != numerrors.PhaseParse {
				t.Errorf("phase: got %v, want parse", perr.Phase)
			}
			if perr.Kind != tt.kind {
				t.Errorf("kind: got %v, want %v", perr.Kind, tt.kind)
			}
			if perr.Offset != tt.offset {
				t.Errorf("offset: got %d, want %d", perr.Offset, tt.offset)
			}
			if perr.Message() != tt.detail {
				t.Errorf("message: got %q, want %q", perr.Message(), tt.detail)
			}
		})
	}
}

func TestRadixString(t *testing.T) {
	tests := []struct {
		r    Radix
		want string
	}{
		{Binary, "binary"},
		{Octal, "octal"},
		{Decimal, "decimal"},
		{Hex, "hex"},
		{Radix(36), "radix-36"},
	}
	for _, tt := range tests {
		if got := tt.r.String(); got != tt.want {
			t.Errorf("Radix(%d).String(): got %q, want %q", int(tt.r), got, tt.want)
		}
	}
}
