package pass

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-ugen/dsp/core"
	"github.com/cwbudde/algo-ugen/dsp/filter/biquad"
)

// OnePoleMode selects how a one-pole low-pass maps its half-power
// frequency to a feedback coefficient.
type OnePoleMode int

const (
	// OnePoleExponential uses the impulse-invariant pole a = exp(-2*pi*f/fs).
	OnePoleExponential OnePoleMode = iota
	// OnePoleHalfPower solves |H(f)|^2 = 1/2 exactly:
	// b = 2 - cos(2*pi*f/fs), a = b - sqrt(b^2 - 1).
	OnePoleHalfPower
)

func (m OnePoleMode) String() string {
	switch m {
	case OnePoleExponential:
		return "exponential"
	case OnePoleHalfPower:
		return "half_power"
	default:
		return "unknown"
	}
}

// Valid reports whether m is a known mode.
func (m OnePoleMode) Valid() bool {
	return m == OnePoleExponential || m == OnePoleHalfPower
}

// OnePoleLP returns the feedback coefficient a of the one-pole low-pass
//
//	y[n] = (1-a)*x[n] + a*y[n-1]
//
// for the given half-power frequency. halfPowerHz at or above Nyquist is
// clamped.
func OnePoleLP(halfPowerHz, sampleRate float64, mode OnePoleMode) (float64, error) {
	f, err := validate("half-power frequency", halfPowerHz, sampleRate)
	if err != nil {
		return 0, err
	}

	w := 2 * math.Pi * f / sampleRate

	switch mode {
	case OnePoleExponential:
		return math.Exp(-w), nil
	case OnePoleHalfPower:
		// b - 1 = 1 - cos(w) = 2*sin^2(w/2) keeps b^2 - 1 accurate for f << fs.
		s := math.Sin(w / 2)
		d := 2 * s * s
		return 1 + d - math.Sqrt(d*(d+2)), nil
	default:
		return 0, fmt.Errorf("pass: unknown one-pole mode %d: %w", mode, core.ErrInvalidParameter)
	}
}

// OnePoleCoefficients expresses the one-pole low-pass with feedback a as a
// first-order section, for response analysis.
func OnePoleCoefficients(a float64) biquad.Coefficients {
	return biquad.Coefficients{
		B0: 1 - a,
		A1: -a,
	}
}
