package numconv_test

import (
	"fmt"
	"math/big"
	"os"

	"github.com/wippyai/numconv"
	"github.com/wippyai/numconv/radix"
	"github.com/wippyai/numconv/table"
)

func ExamplePrint() {
	numconv.Print(os.Stdout, "10", "-129", "0o17", "abc")
	// Output:
	//     10:    10    0x0A           0b00001010
	//   -129:  -129  0xFF7F  0b11111111_01111111
	//   0o17:    15    0x0F           0b00001111
	//    abc:  invalid digit 'a' for decimal literal
}

func ExampleRender() {
	fmt.Print(numconv.Render([]string{"1", "-1"}, table.WithGutter(" ")))
	// Output:
	//  1:  1 0x01 0b00000001
	//  -1: -1 0xFF 0b11111111
}

func Example_radix() {
	n := big.NewInt(-64206)
	fmt.Println(radix.FormatHex(n))
	fmt.Println(radix.FormatBin(n))
	// Output:
	// 0xFF0532
	// 0b11111111_00000101_00110010
}
