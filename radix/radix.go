package radix

import (
	"math/big"
)

// frame describes how digits of one base are grouped into bytes.
type frame struct {
	prefix  string
	pos     string // digit table for non-negative values
	neg     string // inverted table for negative values
	sep     string // separator between bytes, may be empty
	base    int64
	perByte int
}

var (
	hexFrame = frame{
		prefix:  "0x",
		pos:     "0123456789ABCDEF",
		neg:     "FEDCBA9876543210",
		base:    16,
		perByte: 2,
	}
	binFrame = frame{
		prefix:  "0b",
		pos:     "01",
		neg:     "10",
		sep:     "_",
		base:    2,
		perByte: 8,
	}
)

var one = big.NewInt(1)

// FormatHex returns n as "0x" followed by an even number of uppercase hex
// digits. A nil n formats as zero.
func FormatHex(n *big.Int) string {
	return hexFrame.format(n)
}

// FormatBin returns n as "0b" followed by groups of eight binary digits
// separated by underscores, most significant group first. A nil n formats
// as zero.
func FormatBin(n *big.Int) string {
	return binFrame.format(n)
}

// Bytes returns the byte framing used by FormatHex and FormatBin, most
// significant byte first.
func Bytes(n *big.Int) []byte {
	raw, negative := digits(n, 256, 1)
	out := make([]byte, len(raw))
	for i, d := range raw {
		b := byte(d)
		if negative {
			b = ^b
		}
		out[len(raw)-1-i] = b
	}
	return out
}

func (f frame) format(n *big.Int) string {
	raw, negative := digits(n, f.base, f.perByte)
	table := f.pos
	if negative {
		table = f.neg
	}

	groups := len(raw) / f.perByte
	size := len(f.prefix) + len(raw) + (groups-1)*len(f.sep)
	out := make([]byte, 0, size)
	out = append(out, f.prefix...)

	// raw is least significant first; walk it backwards.
	for i := len(raw) - 1; i >= 0; i-- {
		out = append(out, table[raw[i]])
		if i > 0 && i%f.perByte == 0 {
			out = append(out, f.sep...)
		}
	}
	return string(out)
}

// digits extracts the raw remainders of n in the given base, least
// significant first, perByte digits at a time. For negative n the
// remainders are those of -n-1; the caller inverts them.
//
// Extraction stops after a whole byte once the quotient is zero and, for
// negative n, the top digit of that byte leaves the sign bit set.
func digits(n *big.Int, base int64, perByte int) ([]int64, bool) {
	number := new(big.Int)
	if n != nil {
		number.Set(n)
	}

	negative := number.Sign() < 0
	if negative {
		number.Neg(number)
		number.Sub(number, one)
	}

	b := big.NewInt(base)
	rem := new(big.Int)
	half := base / 2

	var out []int64
	var correctSign bool
	for {
		for i := 0; i < perByte; i++ {
			number.QuoRem(number, b, rem)
			d := rem.Int64()
			out = append(out, d)
			correctSign = d < half
		}
		if number.Sign() == 0 && (!negative || correctSign) {
			break
		}
	}
	return out, negative
}
