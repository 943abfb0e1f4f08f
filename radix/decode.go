package radix

import (
	"math/big"
	"strings"

	"github.com/wippyai/numconv/errors"
)

// DecodeUnsigned reads text produced by FormatHex or FormatBin as a plain
// magnitude.
func DecodeUnsigned(s string) (*big.Int, error) {
	v, _, err := decode(s)
	return v, err
}

// DecodeSigned reads text produced by FormatHex or FormatBin as a
// two's-complement value: a set top bit makes the result negative.
func DecodeSigned(s string) (*big.Int, error) {
	v, bits, err := decode(s)
	if err != nil {
		return nil, err
	}
	if v.Bit(bits-1) == 1 {
		v.Sub(v, new(big.Int).Lsh(one, uint(bits)))
	}
	return v, nil
}

// decode returns the magnitude of s and its width in bits.
func decode(s string) (*big.Int, int, error) {
	var f frame
	switch {
	case strings.HasPrefix(s, hexFrame.prefix):
		f = hexFrame
	case strings.HasPrefix(s, binFrame.prefix):
		f = binFrame
	default:
		return nil, 0, errors.InvalidRadix(errors.PhaseFormat, s, hexFrame.prefix, binFrame.prefix)
	}

	body := s[len(f.prefix):]
	digits := make([]byte, 0, len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if f.sep != "" && c == f.sep[0] {
			continue
		}
		if strings.IndexByte(f.pos, upper(c)) < 0 {
			return nil, 0, errors.InvalidDigit(errors.PhaseFormat, s, radixName(f), rune(c), len(f.prefix)+i)
		}
		digits = append(digits, c)
	}
	if len(digits) == 0 {
		return nil, 0, errors.EmptyInput(errors.PhaseFormat, s)
	}

	v, ok := new(big.Int).SetString(string(digits), int(f.base))
	if !ok {
		return nil, 0, errors.New(errors.PhaseFormat, errors.KindInvalidDigit).
			Input(s).
			Radix(radixName(f)).
			Detail("malformed %s digits", radixName(f)).
			Build()
	}

	bitsPerDigit := 4
	if f.base == 2 {
		bitsPerDigit = 1
	}
	return v, len(digits) * bitsPerDigit, nil
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

func radixName(f frame) string {
	if f.base == 16 {
		return "hex"
	}
	return "binary"
}
