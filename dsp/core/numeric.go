package core

import "math"

const (
	defaultEpsilon = 1e-12

	// nyquistMargin is the relative distance kept below Nyquist when a
	// control frequency is clamped.
	nyquistMargin = 1e-4
)

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// IsFinite reports whether x is neither NaN nor Inf.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// FlushDenormals converts tiny denormal-like values to exact zero.
// Recursive filters decaying towards silence call it on their feedback state.
func FlushDenormals(x float64) float64 {
	const epsilon = 1e-30
	if x > -epsilon && x < epsilon {
		return 0
	}

	return x
}

// Nyquist returns half the sample rate.
func Nyquist(sampleRate float64) float64 {
	return 0.5 * sampleRate
}

// MaxFrequency returns the highest control frequency a filter accepts
// before clamping: Nyquist reduced by a small relative margin.
func MaxFrequency(sampleRate float64) float64 {
	return Nyquist(sampleRate) * (1 - nyquistMargin)
}

// ClampFrequency limits freqHz to MaxFrequency(sampleRate). Values below
// the limit are returned unchanged; validation of non-positive values is
// left to the caller.
func ClampFrequency(freqHz, sampleRate float64) float64 {
	if limit := MaxFrequency(sampleRate); freqHz > limit {
		return limit
	}
	return freqHz
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// DBToLinear converts dB to linear amplitude (20*log10 convention).
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}

// LinearPowerToDB converts linear power to dB (10*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearPowerToDB(power float64) float64 {
	if power < 0 {
		return math.NaN()
	}

	if power == 0 {
		return math.Inf(-1)
	}

	return 10 * math.Log10(power)
}
