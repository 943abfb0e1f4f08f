package literal

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/wippyai/numconv/errors"
)

// Radix is the base a literal was written in.
type Radix int

const (
	Binary  Radix = 2
	Octal   Radix = 8
	Decimal Radix = 10
	Hex     Radix = 16
)

// String returns the human name of the radix.
func (r Radix) String() string {
	switch r {
	case Binary:
		return "binary"
	case Octal:
		return "octal"
	case Decimal:
		return "decimal"
	case Hex:
		return "hex"
	default:
		return "radix-" + strconv.Itoa(int(r))
	}
}

// Literal is a successfully parsed integer literal.
type Literal struct {
	Value    *big.Int
	Text     string // input with surrounding whitespace removed
	Radix    Radix
	Negative bool
}

var prefixes = []struct {
	text  string
	radix Radix
}{
	{"0x", Hex},
	{"0X", Hex},
	{"0b", Binary},
	{"0B", Binary},
	{"0o", Octal},
	{"0O", Octal},
}

// Parse reads text as an integer literal. Errors are *errors.Error values
// in PhaseParse with offsets relative to the trimmed text.
func Parse(text string) (*Literal, error) {
	s := strings.TrimSpace(text)
	lit := &Literal{Text: s, Radix: Decimal}

	pos := 0
	if pos < len(s) && (s[pos] == '+' || s[pos] == '-') {
		lit.Negative = s[pos] == '-'
		pos++
	}
	for _, p := range prefixes {
		if strings.HasPrefix(s[pos:], p.text) {
			lit.Radix = p.radix
			pos += len(p.text)
			break
		}
	}

	digits, err := scanDigits(s, pos, lit.Radix)
	if err != nil {
		return nil, err
	}

	v, ok := new(big.Int).SetString(digits, int(lit.Radix))
	if !ok {
		return nil, errors.New(errors.PhaseParse, errors.KindInvalidDigit).
			Input(s).
			Radix(lit.Radix.String()).
			Offset(pos).
			Detail("malformed %s literal", lit.Radix).
			Build()
	}
	if lit.Negative {
		v.Neg(v)
	}
	lit.Value = v
	return lit, nil
}

// scanDigits validates s[start:] as digits of radix and returns them with
// separators removed.
func scanDigits(s string, start int, radix Radix) (string, error) {
	body := s[start:]
	if body == "" {
		return "", errors.EmptyInput(errors.PhaseParse, s)
	}

	var b strings.Builder
	b.Grow(len(body))
	prevDigit := false
	for i, r := range body {
		if r == '_' {
			if !prevDigit || i == len(body)-1 {
				return "", misplacedSeparator(s, radix, start+i)
			}
			prevDigit = false
			continue
		}
		if digitValue(r) >= int(radix) {
			return "", errors.InvalidDigit(errors.PhaseParse, s, radix.String(), r, start+i)
		}
		b.WriteRune(r)
		prevDigit = true
	}
	return b.String(), nil
}

func misplacedSeparator(s string, radix Radix, offset int) *errors.Error {
	return errors.New(errors.PhaseParse, errors.KindInvalidDigit).
		Input(s).
		Radix(radix.String()).
		Offset(offset).
		Value('_').
		Detail("'_' must separate successive digits").
		Build()
}

// digitValue returns the value of r as a digit, or 36 if r is not one.
func digitValue(r rune) int {
	switch {
	case '0' <= r && r <= '9':
		return int(r - '0')
	case 'a' <= r && r <= 'z':
		return int(r-'a') + 10
	case 'A' <= r && r <= 'Z':
		return int(r-'A') + 10
	}
	return 36
}
