package buffer_test

import (
	"fmt"

	"github.com/cwbudde/algo-stats/buffer"
)

func ExampleBuffer() {
	b, _ := buffer.New(2)
	for _, v := range []float64{10, 20, 30} {
		b.Append(v)
	}

	fmt.Println(b.Values())
	fmt.Println(b.Len(), b.Cap())

	// Output:
	// [10 20 30]
	// 3 4
}
