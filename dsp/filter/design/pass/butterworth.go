package pass

import (
	"math"

	"github.com/cwbudde/algo-ugen/dsp/filter/biquad"
)

// ButterworthHP2 designs a second-order Butterworth high-pass section:
//
//	c  = tan(pi*fc/fs)
//	a0 = 1 + sqrt(2)*c + c^2
//	b0 = 1/a0, b1 = -2*b0, b2 = b0
//	a1 = 2*(c^2 - 1)/a0
//	a2 = (1 - sqrt(2)*c + c^2)/a0
//
// cutoffHz at or above Nyquist is clamped.
func ButterworthHP2(cutoffHz, sampleRate float64) (biquad.Coefficients, error) {
	fc, err := validate("cutoff", cutoffHz, sampleRate)
	if err != nil {
		return biquad.Coefficients{}, err
	}

	c := bilinearK(fc, sampleRate)
	c2 := c * c
	a0 := 1 + math.Sqrt2*c + c2
	b0 := 1 / a0

	return biquad.Coefficients{
		B0: b0,
		B1: -2 * b0,
		B2: b0,
		A1: 2 * (c2 - 1) / a0,
		A2: (1 - math.Sqrt2*c + c2) / a0,
	}, nil
}

// ButterworthLP2 designs the matching second-order Butterworth low-pass
// section. It shares the denominator of [ButterworthHP2]; the numerator is
// c^2*(1 + 2z^-1 + z^-2)/a0.
func ButterworthLP2(cutoffHz, sampleRate float64) (biquad.Coefficients, error) {
	fc, err := validate("cutoff", cutoffHz, sampleRate)
	if err != nil {
		return biquad.Coefficients{}, err
	}

	c := bilinearK(fc, sampleRate)
	c2 := c * c
	a0 := 1 + math.Sqrt2*c + c2
	b0 := c2 / a0

	return biquad.Coefficients{
		B0: b0,
		B1: 2 * b0,
		B2: b0,
		A1: 2 * (c2 - 1) / a0,
		A2: (1 - math.Sqrt2*c + c2) / a0,
	}, nil
}
