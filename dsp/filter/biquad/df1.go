package biquad

import "github.com/cwbudde/algo-ugen/dsp/core"

// DF1 is the delay line of a Direct Form I section:
//
//	y[n] = B0*x[n] + B1*x[n-1] + B2*x[n-2] - A1*y[n-1] - A2*y[n-2]
//
// Coefficients are passed per call, so a caller may change them between any
// two samples without a state transformation.
type DF1 struct {
	X1, X2 float64 // x[n-1], x[n-2]
	Y1, Y2 float64 // y[n-1], y[n-2]
}

// Process filters one sample with c and advances the delay line.
func (d *DF1) Process(c *Coefficients, x float64) float64 {
	y := c.B0*x + c.B1*d.X1 + c.B2*d.X2 - c.A1*d.Y1 - c.A2*d.Y2

	d.X2 = d.X1
	d.X1 = x
	d.Y2 = d.Y1
	d.Y1 = core.FlushDenormals(y)

	return y
}

// ProcessBlock filters buf in place with fixed coefficients.
func (d *DF1) ProcessBlock(c *Coefficients, buf []float64) {
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2
	x1, x2, y1, y2 := d.X1, d.X2, d.Y1, d.Y2

	for i, x := range buf {
		y := b0*x + b1*x1 + b2*x2 - a1*y1 - a2*y2
		x2, x1 = x1, x
		y2, y1 = y1, core.FlushDenormals(y)
		buf[i] = y
	}

	d.X1, d.X2, d.Y1, d.Y2 = x1, x2, y1, y2
}

// Reset clears the delay line to zero.
func (d *DF1) Reset() {
	*d = DF1{}
}

// IsFinite reports whether every delay element is finite.
func (d *DF1) IsFinite() bool {
	return core.IsFinite(d.X1) && core.IsFinite(d.X2) &&
		core.IsFinite(d.Y1) && core.IsFinite(d.Y2)
}

// ImpulseResponse computes n samples of h[n] for c starting from zero state.
func ImpulseResponse(c Coefficients, n int) []float64 {
	if n <= 0 {
		return nil
	}

	var d DF1

	ir := make([]float64, n)
	ir[0] = d.Process(&c, 1)
	for i := 1; i < n; i++ {
		ir[i] = d.Process(&c, 0)
	}
	return ir
}
