package biquad

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-ugen/dsp/core"
)

// Response computes the complex frequency response H(e^jw) of a section
// at the given frequency (Hz) and sample rate (Hz).
func (c *Coefficients) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	ejw := cmplx.Exp(complex(0, -w))
	ej2w := cmplx.Exp(complex(0, -2*w))

	num := complex(c.B0, 0) + complex(c.B1, 0)*ejw + complex(c.B2, 0)*ej2w
	den := complex(1, 0) + complex(c.A1, 0)*ejw + complex(c.A2, 0)*ej2w
	return num / den
}

// MagnitudeSquared returns |H(f)|^2 without complex arithmetic.
//
// Both polynomials are expanded in s = sin^2(w/2), so the DC sums
// b0+b1+b2 and 1+a1+a2 appear directly instead of as the difference of
// O(1) terms. This keeps the result accurate for f << fs, where a
// cos(w) formulation loses most of its significant digits.
func (c *Coefficients) MagnitudeSquared(freqHz, sampleRate float64) float64 {
	sw := math.Sin(math.Pi * freqHz / sampleRate)
	s := sw * sw
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2

	bSum := b0 + b1 + b2
	aSum := 1 + a1 + a2
	num := bSum*bSum - 4*s*(b0*b1+b1*b2+4*b0*b2) + 16*s*s*b0*b2
	den := aSum*aSum - 4*s*(a1+a1*a2+4*a2) + 16*s*s*a2
	return math.Max(num, 0) / den
}

// MagnitudeDB returns |H(f)|^2 in decibels; a zero of the section gives -Inf.
func (c *Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return core.LinearPowerToDB(c.MagnitudeSquared(freqHz, sampleRate))
}

// Phase returns the phase response in radians at the given frequency,
// in [-pi, pi].
func (c *Coefficients) Phase(freqHz, sampleRate float64) float64 {
	return cmplx.Phase(c.Response(freqHz, sampleRate))
}
