package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave starting at phase 0.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise in [-amplitude, amplitude] with a
// fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// HarmonicCycle returns one period of sum_k strengths[k-1]*sin(k*theta)
// sampled at n points, computed term by term as a reference for table
// builders.
func HarmonicCycle(n int, strengths []float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		theta := 2 * math.Pi * float64(i) / float64(n)
		var sum float64
		for k, s := range strengths {
			sum += s * math.Sin(float64(k+1)*theta)
		}
		out[i] = sum
	}
	return out
}

// RMS returns the root-mean-square of data, or 0 for an empty slice.
func RMS(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	var sum float64
	for _, v := range data {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(data)))
}
