package convtable

import (
	"bytes"
	"errors"
	"math/big"
	"strings"
	"testing"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	numerrors "github.com/wippyai/numconv/errors"
)

func TestEndToEnd(t *testing.T) {
	ct := New()
	for _, arg := range []string{"10", "0xFF", "0b101", "abc"} {
		ct.Push(arg)
	}

	want := "" +
		"     10:   10  0x0A  0b00001010\n" +
		"   0xFF:  255  0xFF  0b11111111\n" +
		"  0b101:    5  0x05  0b00000101\n" +
		"    abc:  invalid digit 'a' for decimal literal\n"

	var buf bytes.Buffer
	n, err := ct.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if got := buf.String(); got != want {
		t.Errorf("table mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
	if n != int64(len(want)) {
		t.Errorf("WriteTo count: got %d, want %d", n, len(want))
	}
	if ct.Len() != 4 {
		t.Errorf("Len: got %d, want 4", ct.Len())
	}
}

func TestPushResult(t *testing.T) {
	ct := New()
	ct.PushResult("-64206", big.NewInt(-64206))

	want := "  -64206:  -64206  0xFF0532  0b11111111_00000101_00110010\n"
	if got := ct.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if ct.Err() != nil {
		t.Errorf("Err: got %v, want nil", ct.Err())
	}
}

func TestPushResultNilIsZero(t *testing.T) {
	ct := New()
	ct.PushResult("none", nil)

	want := "  none:  0  0x00  0b00000000\n"
	if got := ct.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPushErrorMessages(t *testing.T) {
	ct := New()
	ct.PushError("x", errors.New("plain failure"))
	ct.PushError("0x", numerrors.EmptyInput(numerrors.PhaseParse, "0x"))

	want := "   x:  plain failure\n" +
		"  0x:  cannot parse integer from empty string\n"
	if got := ct.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPushTrimsInput(t *testing.T) {
	ct := New()
	ct.Push("  7 ")
	ct.Push(" zz ")

	want := "   7:  7  0x07  0b00000111\n" +
		"  zz:  invalid digit 'z' for decimal literal\n"
	if got := ct.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestErrCombinesParseErrors(t *testing.T) {
	ct := New()
	ct.Push("1")
	ct.Push("abc")
	ct.Push("0b2")

	err := ct.Err()
	if err == nil {
		t.Fatal("expected combined error")
	}
	if got := len(multierr.Errors(err)); got != 2 {
		t.Errorf("combined errors: got %d, want 2", got)
	}
	target := &numerrors.Error{Phase: numerrors.PhaseParse, Kind: numerrors.KindInvalidDigit}
	if !errors.Is(err, target) {
		t.Errorf("errors.Is(%v, invalid_digit) = false", err)
	}
}

func TestFirstColumnAlignsToLongestLiteral(t *testing.T) {
	ct := New()
	ct.Push("1")
	ct.Push("-0x8000_0000")
	ct.Push("nope")

	lines := strings.Split(strings.TrimSuffix(ct.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	col := len("  -0x8000_0000:")
	for i, line := range lines {
		if line[col-1] != ':' {
			t.Errorf("line %d %q: colon not at column %d", i, line, col)
		}
	}
}

func TestLogging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(zap.NewNop())

	ct := New()
	ct.Push("5")
	ct.Push("q")
	if _, err := ct.WriteTo(&bytes.Buffer{}); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	want := []string{"conversion added", "parse error added", "table rendered"}
	entries := logs.All()
	if len(entries) != len(want) {
		t.Fatalf("got %d log entries, want %d", len(entries), len(want))
	}
	for i, msg := range want {
		if entries[i].Message != msg {
			t.Errorf("entry %d: got %q, want %q", i, entries[i].Message, msg)
		}
	}
}
