package butterworth_test

import (
	"fmt"

	"github.com/cwbudde/algo-ugen/dsp/filter/butterworth"
)

func ExampleHighPass_Process() {
	h, err := butterworth.New(48000, butterworth.WithCutoffHz(1000))
	if err != nil {
		panic(err)
	}

	for i := range 4 {
		var x float64
		if i == 0 {
			x = 1
		}
		y, err := h.Process(x, 1000)
		if err != nil {
			panic(err)
		}
		fmt.Printf("h[%d] = %+.6f\n", i, y)
	}

	// Output:
	// h[0] = +0.911587
	// h[1] = -0.168333
	// h[2] = -0.151528
	// h[3] = -0.135190
}
