package response

import (
	"fmt"
	"math"

	algofft "github.com/cwbudde/algo-fft"
	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-ugen/dsp/core"
	"github.com/cwbudde/algo-ugen/dsp/signal"
)

// DefaultFFTSize is the transform length used when fftSize is 0.
const DefaultFFTSize = 8192

// Spectrum is a one-sided magnitude spectrum of FFTSize/2+1 bins.
type Spectrum struct {
	SampleRate float64
	FFTSize    int
	Magnitude  []float64
}

// BinHz returns the frequency spacing between bins.
func (s *Spectrum) BinHz() float64 {
	return s.SampleRate / float64(s.FFTSize)
}

// FrequencyAt returns the center frequency of bin k.
func (s *Spectrum) FrequencyAt(k int) float64 {
	return float64(k) * s.BinHz()
}

// AtHz returns the linear magnitude at hz, interpolated between the two
// nearest bins. Frequencies outside [0, Nyquist] are clamped.
func (s *Spectrum) AtHz(hz float64) float64 {
	if len(s.Magnitude) == 0 {
		return 0
	}

	last := len(s.Magnitude) - 1
	pos := core.Clamp(hz/s.BinHz(), 0, float64(last))
	k := int(pos)
	if k >= last {
		return s.Magnitude[last]
	}

	frac := pos - float64(k)
	return s.Magnitude[k] + frac*(s.Magnitude[k+1]-s.Magnitude[k])
}

// AtHzDB returns AtHz in decibels.
func (s *Spectrum) AtHzDB(hz float64) float64 {
	return core.LinearToDB(s.AtHz(hz))
}

// Analyze zero-pads x to fftSize and returns its magnitude spectrum.
// fftSize 0 selects the next power of two covering x, at least
// DefaultFFTSize.
func Analyze(x []float64, sampleRate float64, fftSize int) (*Spectrum, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("response: input is empty: %w", core.ErrInvalidParameter)
	}
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return nil, fmt.Errorf("response: sample rate must be > 0: %f: %w", sampleRate, core.ErrInvalidParameter)
	}

	if fftSize == 0 {
		fftSize = max(DefaultFFTSize, nextPowerOf2(len(x)))
	}
	if fftSize < len(x) || !core.IsPowerOfTwo(fftSize) {
		return nil, fmt.Errorf("response: fft size %d must be a power of two >= %d: %w", fftSize, len(x), core.ErrInvalidParameter)
	}

	spectrum, err := forward(x, fftSize)
	if err != nil {
		return nil, err
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range bins {
		re[k] = real(spectrum[k])
		im[k] = imag(spectrum[k])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	return &Spectrum{
		SampleRate: sampleRate,
		FFTSize:    fftSize,
		Magnitude:  mag,
	}, nil
}

// ImpulseResponse resets p and records its response to a unit impulse.
// The processor is reset again afterwards.
func ImpulseResponse(p core.SampleProcessor, length int) ([]float64, error) {
	out, err := signal.NewGenerator().Impulse(length, 0)
	if err != nil {
		return nil, fmt.Errorf("response: %w", err)
	}

	p.Reset()
	defer p.Reset()

	for i, x := range out {
		out[i] = p.ProcessSample(x)
	}
	return out, nil
}

// Measure returns the magnitude response of p from an fftSize-long
// impulse response.
func Measure(p core.SampleProcessor, sampleRate float64, fftSize int) (*Spectrum, error) {
	if fftSize == 0 {
		fftSize = DefaultFFTSize
	}
	if fftSize < 2 || !core.IsPowerOfTwo(fftSize) {
		return nil, fmt.Errorf("response: fft size %d must be a power of two: %w", fftSize, core.ErrInvalidParameter)
	}

	ir, err := ImpulseResponse(p, fftSize)
	if err != nil {
		return nil, err
	}
	return Analyze(ir, sampleRate, fftSize)
}

func forward(x []float64, fftSize int) ([]complex128, error) {
	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("response: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, v := range x {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("response: forward FFT failed: %w", err)
	}
	return out, nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << uint(math.Ceil(math.Log2(float64(n))))
}
