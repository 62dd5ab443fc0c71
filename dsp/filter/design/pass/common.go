package pass

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-ugen/dsp/core"
)

// validate checks freq and sampleRate and returns freq clamped below Nyquist.
func validate(what string, freq, sampleRate float64) (float64, error) {
	if !core.IsFinite(sampleRate) || sampleRate <= 0 {
		return 0, fmt.Errorf("pass: sample rate must be > 0 and finite: %g: %w", sampleRate, core.ErrInvalidParameter)
	}

	if !core.IsFinite(freq) || freq <= 0 {
		return 0, fmt.Errorf("pass: %s must be > 0 and finite: %g: %w", what, freq, core.ErrInvalidParameter)
	}

	return core.ClampFrequency(freq, sampleRate), nil
}

// bilinearK computes the prewarped bilinear transform factor tan(pi*freq/sampleRate).
// freq must already be validated.
func bilinearK(freq, sampleRate float64) float64 {
	return math.Tan(math.Pi * freq / sampleRate)
}
