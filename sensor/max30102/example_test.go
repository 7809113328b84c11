package max30102_test

import (
	"fmt"

	"github.com/cwbudde/algo-ppg/sensor/max30102"
)

func ExampleDecodeSample() {
	red, ir, err := max30102.DecodeSample([]byte{0x00, 0x9C, 0x40, 0xFC, 0xC3, 0x50})
	fmt.Println(red, ir, err)
	// Output:
	// 40000 50000 <nil>
}
