package biquad

// Coefficients holds the transfer function coefficients for a single
// second-order section. a0 is normalized to 1 and not stored:
//
//	H(z) = (B0 + B1*z^-1 + B2*z^-2) / (1 + A1*z^-1 + A2*z^-2)
//
// A first-order section sets B2 = A2 = 0.
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// IsFirstOrder reports whether the section has no second-order terms.
func (c *Coefficients) IsFirstOrder() bool {
	return c.B2 == 0 && c.A2 == 0
}

// DCGain returns H(1), the gain for a constant input.
func (c *Coefficients) DCGain() float64 {
	return (c.B0 + c.B1 + c.B2) / (1 + c.A1 + c.A2)
}

// NyquistGain returns H(-1), the gain at half the sample rate.
func (c *Coefficients) NyquistGain() float64 {
	return (c.B0 - c.B1 + c.B2) / (1 - c.A1 + c.A2)
}
